package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shinelaptops/storefront/docs"
)

// TestSwaggerRouteRegistration verifies that swagger routes can be registered on a Gin router.
func TestSwaggerRouteRegistration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	assert.NotPanics(t, func() {
		router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}, "Registering swagger handler should not panic")

	found := false
	for _, route := range router.Routes() {
		if route.Path == "/docs/*any" && route.Method == "GET" {
			found = true
			break
		}
	}
	assert.True(t, found, "Swagger route should be registered")
}

// TestSwaggerServesRegisteredDoc verifies the registered document is served
// and lists every route the handler mounts.
func TestSwaggerServesRegisteredDoc(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter(t)
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	for _, route := range router.Routes() {
		if route.Path == "/docs/*any" {
			continue
		}
		path := ginPathToSwagger(route.Path)
		methods, ok := doc.Paths[path]
		if assert.True(t, ok, "path %s should be documented", path) {
			_, ok = methods[strings.ToLower(route.Method)]
			assert.True(t, ok, "%s %s should be documented", route.Method, path)
		}
	}
}

type annotatedOperation struct {
	file        string
	success     string
	description string
}

var (
	successAnnotation = regexp.MustCompile(`^// @Success 200 \{object\} (\S+)`)
	routerAnnotation  = regexp.MustCompile(`^// @Router (\S+) \[(\w+)\]`)
)

// handlerAnnotations collects the 200 response type and description of every
// annotated handler in this package, keyed by "method path".
func handlerAnnotations(t *testing.T) map[string]annotatedOperation {
	t.Helper()
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	ops := map[string]annotatedOperation{}
	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		src, err := os.ReadFile(file)
		require.NoError(t, err)

		var op annotatedOperation
		for _, line := range strings.Split(string(src), "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "//") {
				op = annotatedOperation{}
				continue
			}
			if m := successAnnotation.FindStringSubmatch(line); m != nil {
				op.success = m[1]
			}
			if rest, ok := strings.CutPrefix(line, "// @Description "); ok {
				op.description = rest
			}
			if m := routerAnnotation.FindStringSubmatch(line); m != nil {
				op.file = file
				ops[m[2]+" "+m[1]] = op
			}
		}
	}
	return ops
}

// swagDefinitionName converts an annotation type such as
// handlers.ListResponse[catalog.Brand] to its definitions key.
func swagDefinitionName(annotated string) string {
	base, param, ok := strings.Cut(annotated, "[")
	if !ok {
		return annotated
	}
	param = strings.TrimSuffix(param, "]")
	return base + "-" + strings.ReplaceAll(param, ".", "_")
}

// TestSwaggerAnnotationsMatchRegisteredDoc keeps the handler annotations and
// the committed document in step, so regenerating the docs changes nothing.
func TestSwaggerAnnotationsMatchRegisteredDoc(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]map[string]struct {
			Description string `json:"description"`
			Responses   map[string]struct {
				Schema struct {
					Ref string `json:"$ref"`
				} `json:"schema"`
			} `json:"responses"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	ops := handlerAnnotations(t)
	require.NotEmpty(t, ops)
	for key, op := range ops {
		method, path, _ := strings.Cut(key, " ")
		documented, ok := doc.Paths[path][method]
		if !assert.True(t, ok, "%s (%s) should be documented", key, op.file) {
			continue
		}
		assert.Equal(t, op.description, documented.Description, "%s description", key)
		if op.success != "" {
			assert.Equal(t, "#/definitions/"+swagDefinitionName(op.success),
				documented.Responses["200"].Schema.Ref, "%s 200 response", key)
		}
	}
}

func TestSwagDefinitionName(t *testing.T) {
	assert.Equal(t, "handlers.ProductDetail", swagDefinitionName("handlers.ProductDetail"))
	assert.Equal(t, "handlers.FacetedListResponse-handlers_ProductItem",
		swagDefinitionName("handlers.FacetedListResponse[handlers.ProductItem]"))
	assert.Equal(t, "handlers.ListResponse-string", swagDefinitionName("handlers.ListResponse[string]"))
}

func ginPathToSwagger(p string) string {
	out := []byte{}
	for i := 0; i < len(p); i++ {
		if p[i] != ':' {
			out = append(out, p[i])
			continue
		}
		j := i + 1
		for j < len(p) && p[j] != '/' {
			j++
		}
		out = append(out, '{')
		out = append(out, p[i+1:j]...)
		out = append(out, '}')
		i = j - 1
	}
	return string(out)
}
