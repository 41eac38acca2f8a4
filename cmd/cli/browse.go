package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/shinelaptops/storefront/internal/catalog"
	"github.com/shinelaptops/storefront/internal/filter"
)

var (
	browseSearch   string
	browseCategory string
	browseBrand    string
	browseMinPrice string
	browseMaxPrice string
	browseSort     string
	browseOutput   string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List laptops with the storefront filters",
	Example: `  storefront products --sort price-high
  storefront products --category gaming --output json
  storefront products --min-price 800 --max-price 1300`,
	Args: cobra.NoArgs,
	RunE: runProducts,
}

var servicesCmd = &cobra.Command{
	Use:     "services",
	Short:   "List service offerings with the storefront filters",
	Example: `  storefront services --category Repairs --sort price-low`,
	Args:    cobra.NoArgs,
	RunE:    runServices,
}

var accessoriesCmd = &cobra.Command{
	Use:     "accessories",
	Short:   "List accessories with the storefront filters",
	Example: `  storefront accessories --search usb`,
	Args:    cobra.NoArgs,
	RunE:    runAccessories,
}

func init() {
	for _, cmd := range []*cobra.Command{productsCmd, servicesCmd, accessoriesCmd} {
		rootCmd.AddCommand(cmd)
		cmd.Flags().StringVar(&browseSearch, "search", "", "Case-insensitive text matched against name and description")
		cmd.Flags().StringVar(&browseCategory, "category", "", "Category filter")
		cmd.Flags().StringVar(&browseSort, "sort", "", "Sort key: latest, price-low, price-high or name")
		cmd.Flags().StringVar(&browseOutput, "output", "table", "Output format: table or json")
	}
	productsCmd.Flags().StringVar(&browseBrand, "brand", "", "Brand id filter")
	for _, cmd := range []*cobra.Command{productsCmd, servicesCmd} {
		cmd.Flags().StringVar(&browseMinPrice, "min-price", "", "Lower price bound")
		cmd.Flags().StringVar(&browseMaxPrice, "max-price", "", "Upper price bound")
	}
}

func priceRange(ceiling *decimal.Decimal) (*filter.PriceRange, error) {
	if browseMinPrice == "" && browseMaxPrice == "" && ceiling == nil {
		return nil, nil
	}
	r := &filter.PriceRange{Min: decimal.Zero, Max: decimal.New(1, 12)}
	if ceiling != nil {
		r.Max = *ceiling
	}
	var err error
	if browseMinPrice != "" {
		if r.Min, err = decimal.NewFromString(browseMinPrice); err != nil {
			return nil, fmt.Errorf("invalid --min-price %q: %w", browseMinPrice, err)
		}
	}
	if browseMaxPrice != "" {
		if r.Max, err = decimal.NewFromString(browseMaxPrice); err != nil {
			return nil, fmt.Errorf("invalid --max-price %q: %w", browseMaxPrice, err)
		}
	}
	return r, nil
}

func priceCeiling() decimal.Decimal {
	if cfg != nil {
		return cfg.Presentation.PriceCeilingDecimal()
	}
	return decimal.NewFromInt(2000)
}

func runProducts(cmd *cobra.Command, args []string) error {
	sortKey, err := filter.ParseSortKey(browseSort, filter.DefaultProductSort)
	if err != nil {
		return err
	}
	ceiling := priceCeiling()
	price, err := priceRange(&ceiling)
	if err != nil {
		return err
	}

	q := filter.Query{Search: browseSearch, Category: browseCategory, Brand: browseBrand, Price: price, Sort: sortKey}
	products := filter.Products(store, q)
	logger.Debug().Int("results", len(products)).Str("sort", string(sortKey)).Msg("Filtered products")

	return render(cmd.OutOrStdout(), products, "ID\tNAME\tBRAND\tPRICE\tSTOCK", func(p catalog.Product) string {
		return fmt.Sprintf("%s\t%s\t%s\t%s\t%d", p.ID, p.Name, p.BrandID, p.Price.StringFixed(2), p.Stock)
	})
}

func runServices(cmd *cobra.Command, args []string) error {
	sortKey, err := filter.ParseSortKey(browseSort, filter.DefaultServiceSort)
	if err != nil {
		return err
	}
	price, err := priceRange(nil)
	if err != nil {
		return err
	}

	q := filter.Query{Search: browseSearch, Category: browseCategory, Price: price, Sort: sortKey}
	services := filter.Services(store.Services(), q)

	return render(cmd.OutOrStdout(), services, "ID\tNAME\tCATEGORY\tPRICE\tTIME\tWARRANTY", func(s catalog.Service) string {
		return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s", s.ID, s.Name, s.Category, s.Price.StringFixed(2), s.EstimatedTime, s.Warranty)
	})
}

func runAccessories(cmd *cobra.Command, args []string) error {
	sortKey, err := filter.ParseSortKey(browseSort, filter.DefaultAccessorySort)
	if err != nil {
		return err
	}

	q := filter.Query{Search: browseSearch, Category: browseCategory, Sort: sortKey}
	accessories := filter.Accessories(store.Accessories(), q)

	return render(cmd.OutOrStdout(), accessories, "ID\tNAME\tCATEGORY\tPRICE\tAVAILABLE", func(a catalog.Accessory) string {
		available := "no"
		if a.Available() {
			available = "yes"
		}
		return fmt.Sprintf("%s\t%s\t%s\t%s\t%s", a.ID, a.Name, a.Category, a.Price.StringFixed(2), available)
	})
}

func render[T any](out io.Writer, items []T, header string, row func(T) string) error {
	switch strings.ToLower(browseOutput) {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if items == nil {
			items = []T{}
		}
		return encoder.Encode(items)
	case "table":
		if len(items) == 0 {
			fmt.Fprintln(out, "No results")
			return nil
		}
		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, header)
		for _, it := range items {
			fmt.Fprintln(w, row(it))
		}
		return w.Flush()
	default:
		return fmt.Errorf("invalid output format: %s (use 'table' or 'json')", browseOutput)
	}
}
