package recommend

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Compute recommendation from a full (or partial) selection
// --------------------------------------------------
func (h *Handler) Compute(c *gin.Context) {
	var req struct {
		Selection Selection `json:"selection"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, h.service.Compute(req.Selection))
}
