package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// --------------------------------------------------
// Wizard criteria (ordered, stable)
// --------------------------------------------------
func (h *Handler) ListCriteria(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"criteria": h.store.Criteria()})
}

// --------------------------------------------------
// Products, optionally filtered by category
// --------------------------------------------------
func (h *Handler) ListProducts(c *gin.Context) {
	if cat := c.Query("category"); cat != "" {
		c.JSON(http.StatusOK, gin.H{"products": h.store.ProductsByCategory(Category(cat))})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": h.store.Products()})
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, ok := h.store.ProductBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// Mesh materials
// --------------------------------------------------
func (h *Handler) ListMaterials(c *gin.Context) {
	if cat := c.Query("category"); cat != "" {
		c.JSON(http.StatusOK, gin.H{"materials": h.store.MaterialsForCategory(Category(cat))})
		return
	}
	c.JSON(http.StatusOK, gin.H{"materials": h.store.Materials()})
}

// --------------------------------------------------
// Per-category price table
// --------------------------------------------------
func (h *Handler) GetPricing(c *gin.Context) {
	p, ok := h.store.PricingForCategory(Category(c.Param("category")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category"})
		return
	}
	c.JSON(http.StatusOK, p)
}
