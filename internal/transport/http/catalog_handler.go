package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marketfront/catalog-service/internal/app/catalog/domain"
	"github.com/marketfront/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/marketfront/catalog-service/internal/app/catalog/queries/get_products"
)

// Handler contains the catalog HTTP handlers.
type Handler struct {
	listQuery   *get_products.Query
	detailQuery *get_product.Query
	maxPerPage  int
}

// NewHandler creates a new catalog HTTP handler.
func NewHandler(listQuery *get_products.Query, detailQuery *get_product.Query, maxPerPage int) *Handler {
	if maxPerPage <= 0 {
		maxPerPage = 100
	}
	return &Handler{
		listQuery:   listQuery,
		detailQuery: detailQuery,
		maxPerPage:  maxPerPage,
	}
}

// SetupRoutes sets up HTTP routes.
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())

	router.GET("/healthz", h.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", h.listProducts)
		v1.GET("/products/:id", h.getProduct)
	}
}

func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// listProducts handles GET /api/v1/products.
func (h *Handler) listProducts(c *gin.Context) {
	req := &get_products.Request{
		SellerID:     c.Query("seller_id"),
		CategoryID:   c.Query("category_id"),
		CategorySlug: c.Query("category_slug"),
		SearchQuery:  c.Query("q"),
		PriceRange:   c.Query("price_range"),
		SortBy:       c.Query("sort"),
		Page:         positiveIntParam(c.Query("page"), 1),
		PerPage:      positiveIntParam(c.Query("per_page"), get_products.DefaultPerPage),
	}
	if req.PerPage > h.maxPerPage {
		req.PerPage = h.maxPerPage
	}

	res := h.listQuery.Execute(c.Request.Context(), req)

	c.JSON(http.StatusOK, gin.H{
		"products": res.Products,
		"total":    res.Total,
	})
}

// getProduct handles GET /api/v1/products/:id.
func (h *Handler) getProduct(c *gin.Context) {
	dto, err := h.detailQuery.Execute(c.Request.Context(), &get_product.Request{
		ProductID: c.Param("id"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch product",
		})
		return
	}

	c.JSON(http.StatusOK, dto)
}

// positiveIntParam parses a positive integer query parameter, falling back
// to the default on anything malformed or non-positive.
func positiveIntParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
