package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"callsheet/internal/service"
	"callsheet/internal/store"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /projects/:id/stats. With ?cached=true the
// worker-maintained redis entry is served when present, falling back to a
// fresh computation.
func (h *StatsHandler) GetStats(c *gin.Context) {
	projectID := c.Param("id")

	if c.Query("cached") == "true" {
		if cached, err := h.statsService.CachedStats(c.Request.Context(), projectID); err == nil && cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	stats, err := h.statsService.Compute(projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
