package wizard

import (
	"errors"
	"net/http"

	"akcayapi/internal/recommend"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store       *Store
	recommender *recommend.Service
}

func NewHandler(store *Store, recommender *recommend.Service) *Handler {
	return &Handler{store: store, recommender: recommender}
}

// --------------------------------------------------
// Start a new wizard session
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	s := h.store.Create()
	c.JSON(http.StatusCreated, h.state(s))
}

// --------------------------------------------------
// Session state (+ recommendation once completed)
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	s, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, h.state(s))
}

// --------------------------------------------------
// Answer the current question
// --------------------------------------------------
func (h *Handler) Answer(c *gin.Context) {
	s, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req struct {
		Value string `json:"value"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := s.Advance(req.Value); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrCompleted) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.state(s))
}

// --------------------------------------------------
// Go back one question
// --------------------------------------------------
func (h *Handler) Back(c *gin.Context) {
	s, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	if err := s.Retreat(); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrCompleted) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.state(s))
}

// --------------------------------------------------
// Restart from the first question
// --------------------------------------------------
func (h *Handler) Reset(c *gin.Context) {
	s, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	s.Reset()
	c.JSON(http.StatusOK, h.state(s))
}

func (h *Handler) state(s *Session) gin.H {
	resp := gin.H{
		"id":          s.ID,
		"step":        s.Step,
		"total_steps": s.TotalSteps(),
		"completed":   s.Completed,
		"selection":   s.Selection,
	}
	if crit, ok := s.Current(); ok {
		resp["current"] = crit
	}
	if s.Completed {
		resp["recommendation"] = h.recommender.Compute(s.Selection)
	}
	return resp
}
