// Schema Generator
//
// Generates JSON Schema files from the storefront API types so front-end
// clients can validate requests and responses against the Go definitions.
//
// Usage:
//
//	go run ./cmd/schema-gen [output-dir]
//
// Output (default directory ./schemas):
//
//	catalog.json
//	cart.json
//	wizards.json
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"

	"github.com/shinelaptops/storefront/internal/cart"
	"github.com/shinelaptops/storefront/internal/catalog"
	"github.com/shinelaptops/storefront/internal/filter"
	"github.com/shinelaptops/storefront/internal/handlers"
	"github.com/shinelaptops/storefront/internal/wizard"
)

// SchemaGroup represents a group of related schemas
type SchemaGroup struct {
	Name   string
	Types  []any
	Output string
}

func schemaGroups() []SchemaGroup {
	return []SchemaGroup{
		{
			Name: "catalog",
			Types: []any{
				// Request types
				handlers.ProductListRequest{},
				handlers.ServiceListRequest{},
				handlers.AccessoryListRequest{},
				filter.Query{},
				// Response types
				catalog.Category{},
				catalog.Brand{},
				handlers.ProductItem{},
				handlers.ProductDetail{},
				catalog.Service{},
				handlers.AccessoryItem{},
				catalog.Testimonial{},
				catalog.Stats{},
				catalog.WarrantyView{},
				catalog.Complaint{},
				catalog.Dashboard{},
				handlers.ErrorResponse{},
			},
			Output: "catalog.json",
		},
		{
			Name: "cart",
			Types: []any{
				handlers.AddCartItemRequest{},
				cart.Line{},
				cart.Summary{},
			},
			Output: "cart.json",
		},
		{
			Name: "wizards",
			Types: []any{
				handlers.OpenBookingRequest{},
				handlers.ContinueBookingRequest{},
				wizard.BookingDetails{},
				handlers.BookingResponse{},
				wizard.ContactForm{},
				handlers.ContactResponse{},
			},
			Output: "wizards.json",
		},
	}
}

func main() {
	outputDir := "schemas"
	if len(os.Args) > 1 {
		outputDir = os.Args[1]
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	for _, group := range schemaGroups() {
		schema := generateGroupSchema(group)
		outputPath := filepath.Join(outputDir, group.Output)

		if err := writeSchema(schema, outputPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", group.Output, err)
			os.Exit(1)
		}

		fmt.Printf("Generated %s\n", outputPath)
	}

	fmt.Println("Schema generation complete!")
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// mapMoney renders decimal amounts the way they are serialized: as strings.
func mapMoney(t reflect.Type) *jsonschema.Schema {
	if t == decimalType {
		return &jsonschema.Schema{Type: "string", Pattern: `^-?\d+(\.\d+)?$`}
	}
	return nil
}

// generateGroupSchema creates a combined schema with all types in a group
func generateGroupSchema(group SchemaGroup) map[string]any {
	reflector := &jsonschema.Reflector{
		DoNotReference: false,
		ExpandedStruct: false,
		Mapper:         mapMoney,
	}

	definitions := make(map[string]any)

	for _, t := range group.Types {
		schema := reflector.Reflect(t)

		typeName := ""
		if schema.Ref != "" {
			typeName = filepath.Base(schema.Ref)
		}

		for name, def := range schema.Definitions {
			definitions[name] = def
		}

		if typeName != "" && schema.Definitions[typeName] != nil {
			definitions[typeName] = schema.Definitions[typeName]
		}
	}

	return map[string]any{
		"$schema":     "https://json-schema.org/draft/2020-12/schema",
		"$id":         fmt.Sprintf("https://shinelaptops.com/schemas/%s.json", group.Name),
		"title":       fmt.Sprintf("%s API Types", capitalize(group.Name)),
		"description": fmt.Sprintf("JSON Schema for %s API types generated from Go structs", group.Name),
		"$defs":       definitions,
	}
}

// writeSchema writes a schema to a JSON file
func writeSchema(schema map[string]any, path string) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
