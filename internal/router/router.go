package router

import (
	"akcayapi/internal/catalog"
	"akcayapi/internal/quote"
	"akcayapi/internal/recommend"
	"akcayapi/internal/wizard"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Catalog   *catalog.Handler
	Recommend *recommend.Handler
	Quote     *quote.Handler
	Wizard    *wizard.Handler
}

// New assembles the gin engine. Middleware (CORS etc.) is installed
// before any route so it applies everywhere.
func New(h Handlers, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.Default()
	r.Use(middleware...)

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	cat := r.Group("/catalog")
	{
		cat.GET("/criteria", h.Catalog.ListCriteria)
		cat.GET("/products", h.Catalog.ListProducts)
		cat.GET("/products/:slug", h.Catalog.GetProduct)
		cat.GET("/materials", h.Catalog.ListMaterials)
		cat.GET("/pricing/:category", h.Catalog.GetPricing)
	}

	r.POST("/recommendation", h.Recommend.Compute)
	r.POST("/quote", h.Quote.Compute)

	sessions := r.Group("/sessions")
	{
		sessions.POST("", h.Wizard.Create)
		sessions.GET("/:id", h.Wizard.Get)
		sessions.POST("/:id/answer", h.Wizard.Answer)
		sessions.POST("/:id/back", h.Wizard.Back)
		sessions.POST("/:id/reset", h.Wizard.Reset)
	}

	return r
}
