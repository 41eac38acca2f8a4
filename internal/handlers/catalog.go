package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shinelaptops/storefront/internal/catalog"
	"github.com/shinelaptops/storefront/internal/filter"
)

// ============================================================================
// Catalog Listings
// ============================================================================

// ProductListRequest holds the laptop listing query parameters
type ProductListRequest struct {
	Q        string `form:"q"`
	Category string `form:"category"`
	Brand    string `form:"brand"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
	Sort     string `form:"sort"`
}

// ServiceListRequest holds the service listing query parameters
type ServiceListRequest struct {
	Q        string `form:"q"`
	Category string `form:"category"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
	Sort     string `form:"sort"`
}

// AccessoryListRequest holds the accessory listing query parameters
type AccessoryListRequest struct {
	Q        string `form:"q"`
	Category string `form:"category"`
	Sort     string `form:"sort"`
}

// AccessoryItem is an accessory annotated with whether it can be added to a cart
type AccessoryItem struct {
	catalog.Accessory
	CanAdd bool `json:"canAdd"`
}

// ProductItem is a laptop annotated with its resolved category and cart affordance
type ProductItem struct {
	catalog.Product
	CategoryID string `json:"categoryId,omitempty"`
	CanAdd     bool   `json:"canAdd"`
}

// FacetedListResponse is a listing plus its filter chips
type FacetedListResponse[T any] struct {
	ListResponse[T]
	Categories []string     `json:"categories"`
	Query      filter.Query `json:"query"`
}

// ProductDetail is a laptop with its brand, category and variants
type ProductDetail struct {
	Product  catalog.Product      `json:"product"`
	Brand    *catalog.Brand       `json:"brand,omitempty"`
	Category *catalog.Category    `json:"category,omitempty"`
	Variants []catalog.SubProduct `json:"variants"`
	CanAdd   bool                 `json:"canAdd"`
}

// ServiceDetail is a service offering with its warranty flag
type ServiceDetail struct {
	Service     catalog.Service `json:"service"`
	HasWarranty bool            `json:"hasWarranty"`
}

func parsePrice(raw string, fallback decimal.Decimal, name string) (decimal.Decimal, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a number", errBadParam, name)
	}
	return d, nil
}

// parsePriceRange returns nil when neither bound is given and no default
// ceiling applies.
func parsePriceRange(minRaw, maxRaw string, ceiling *decimal.Decimal) (*filter.PriceRange, error) {
	if minRaw == "" && maxRaw == "" && ceiling == nil {
		return nil, nil
	}
	min, err := parsePrice(minRaw, decimal.Zero, "minPrice")
	if err != nil {
		return nil, err
	}
	maxFallback := decimal.New(1, 12)
	if ceiling != nil {
		maxFallback = *ceiling
	}
	max, err := parsePrice(maxRaw, maxFallback, "maxPrice")
	if err != nil {
		return nil, err
	}
	return &filter.PriceRange{Min: min, Max: max}, nil
}

// ListProducts runs the laptop filter/sort pipeline
// @Summary List laptops
// @Description Filters laptops by search text, category (through the brand), brand and inclusive price range, then sorts them
// @Tags catalog
// @Produce json
// @Param q query string false "Case-insensitive search over name and description"
// @Param category query string false "Category id"
// @Param brand query string false "Brand id"
// @Param minPrice query number false "Lower price bound" default(0)
// @Param maxPrice query number false "Upper price bound" default(2000)
// @Param sort query string false "Sort key" Enums(latest, price-low, price-high, name) default(latest)
// @Success 200 {object} handlers.FacetedListResponse[handlers.ProductItem]
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	var req ProductListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", errBadParam, err))
		return
	}

	sortKey, err := filter.ParseSortKey(req.Sort, filter.DefaultProductSort)
	if err != nil {
		h.respondError(c, err)
		return
	}
	ceiling := h.opts.PriceCeiling
	price, err := parsePriceRange(req.MinPrice, req.MaxPrice, &ceiling)
	if err != nil {
		h.respondError(c, err)
		return
	}

	q := filter.Query{Search: req.Q, Category: req.Category, Brand: req.Brand, Price: price, Sort: sortKey}
	products := runPipeline(h, c, "products", func() []catalog.Product {
		return filter.Products(h.store, q)
	})

	items := make([]ProductItem, 0, len(products))
	for _, p := range products {
		cat, _ := h.store.ProductCategoryID(p)
		items = append(items, ProductItem{Product: p, CategoryID: cat, CanAdd: p.Available()})
	}
	cachedJSON(c, FacetedListResponse[ProductItem]{
		ListResponse: newListResponse(c, items),
		Categories:   categoryIDs(h.store.Categories()),
		Query:        q,
	})
}

func categoryIDs(cats []catalog.Category) []string {
	ids := make([]string, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	return ids
}

// GetProduct returns one laptop with brand, category and variants
// @Summary Get laptop
// @Tags catalog
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} handlers.ProductDetail
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.store.Product(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	detail := ProductDetail{Product: p, Variants: h.store.Variants(p.ID), CanAdd: p.Available()}
	if b, err := h.store.Brand(p.BrandID); err == nil {
		detail.Brand = &b
		if cat, err := h.store.Category(b.CategoryID); err == nil {
			detail.Category = &cat
		}
	}
	cachedJSON(c, detail)
}

// ListServices runs the service filter/sort pipeline
// @Summary List services
// @Tags catalog
// @Produce json
// @Param q query string false "Case-insensitive search over name and description"
// @Param category query string false "Service category label"
// @Param minPrice query number false "Lower price bound"
// @Param maxPrice query number false "Upper price bound"
// @Param sort query string false "Sort key" Enums(latest, price-low, price-high, name) default(latest)
// @Success 200 {object} handlers.FacetedListResponse[catalog.Service]
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/services [get]
func (h *Handler) ListServices(c *gin.Context) {
	var req ServiceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", errBadParam, err))
		return
	}

	sortKey, err := filter.ParseSortKey(req.Sort, filter.DefaultServiceSort)
	if err != nil {
		h.respondError(c, err)
		return
	}
	price, err := parsePriceRange(req.MinPrice, req.MaxPrice, nil)
	if err != nil {
		h.respondError(c, err)
		return
	}

	q := filter.Query{Search: req.Q, Category: req.Category, Price: price, Sort: sortKey}
	services := runPipeline(h, c, "services", func() []catalog.Service {
		return filter.Services(h.store.Services(), q)
	})

	cachedJSON(c, FacetedListResponse[catalog.Service]{
		ListResponse: newListResponse(c, services),
		Categories:   h.store.ServiceCategories(),
		Query:        q,
	})
}

// GetService returns one service offering
// @Summary Get service
// @Tags catalog
// @Produce json
// @Param id path string true "Service id"
// @Success 200 {object} handlers.ServiceDetail
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/services/{id} [get]
func (h *Handler) GetService(c *gin.Context) {
	svc, err := h.store.Service(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	cachedJSON(c, ServiceDetail{Service: svc, HasWarranty: svc.HasWarranty()})
}

// ListAccessories runs the accessory filter/sort pipeline
// @Summary List accessories
// @Tags catalog
// @Produce json
// @Param q query string false "Case-insensitive search over name and description"
// @Param category query string false "Accessory category label"
// @Param sort query string false "Sort key" Enums(latest, price-low, price-high, name) default(name)
// @Success 200 {object} handlers.FacetedListResponse[handlers.AccessoryItem]
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/accessories [get]
func (h *Handler) ListAccessories(c *gin.Context) {
	var req AccessoryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", errBadParam, err))
		return
	}

	sortKey, err := filter.ParseSortKey(req.Sort, filter.DefaultAccessorySort)
	if err != nil {
		h.respondError(c, err)
		return
	}

	q := filter.Query{Search: req.Q, Category: req.Category, Sort: sortKey}
	accessories := runPipeline(h, c, "accessories", func() []catalog.Accessory {
		return filter.Accessories(h.store.Accessories(), q)
	})

	items := make([]AccessoryItem, 0, len(accessories))
	for _, a := range accessories {
		items = append(items, AccessoryItem{Accessory: a, CanAdd: a.Available()})
	}
	cachedJSON(c, FacetedListResponse[AccessoryItem]{
		ListResponse: newListResponse(c, items),
		Categories:   h.store.AccessoryCategories(),
		Query:        q,
	})
}

// ListCategories returns every laptop category
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {object} handlers.ListResponse[catalog.Category]
// @Router /api/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	cachedJSON(c, newListResponse(c, h.store.Categories()))
}

// ListBrands returns every brand, optionally limited to one category
// @Summary List brands
// @Tags catalog
// @Produce json
// @Param category query string false "Category id"
// @Success 200 {object} handlers.ListResponse[catalog.Brand]
// @Router /api/brands [get]
func (h *Handler) ListBrands(c *gin.Context) {
	category := c.Query("category")
	brands := make([]catalog.Brand, 0, len(h.store.Brands()))
	for _, b := range h.store.Brands() {
		if category == "" || b.CategoryID == category {
			brands = append(brands, b)
		}
	}
	cachedJSON(c, newListResponse(c, brands))
}

// ListTestimonials returns the home page testimonials
// @Summary List testimonials
// @Tags content
// @Produce json
// @Success 200 {object} handlers.ListResponse[catalog.Testimonial]
// @Router /api/testimonials [get]
func (h *Handler) ListTestimonials(c *gin.Context) {
	cachedJSON(c, newListResponse(c, h.store.Testimonials()))
}

// GetStats returns the headline numbers
// @Summary Headline stats
// @Tags content
// @Produce json
// @Success 200 {object} catalog.Stats
// @Router /api/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	cachedJSON(c, h.store.Stats())
}

// ListIssueAreas returns the complaint issue areas
// @Summary List issue areas
// @Tags content
// @Produce json
// @Success 200 {object} handlers.ListResponse[string]
// @Router /api/issue-areas [get]
func (h *Handler) ListIssueAreas(c *gin.Context) {
	cachedJSON(c, newListResponse(c, h.store.IssueAreas()))
}
