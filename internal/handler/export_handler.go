package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"callsheet/internal/export"
	"callsheet/internal/service"
	"callsheet/internal/store"
	"callsheet/pkg/metrics"
)

type ExportHandler struct {
	projects *service.ProjectService
	sink     export.Sink
	logger   *zap.Logger
}

func NewExportHandler(projects *service.ProjectService, sink export.Sink, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		projects: projects,
		sink:     sink,
		logger:   logger,
	}
}

// ExportSection handles GET /projects/:id/export/:section. The artifact
// is written through the configured sink and returned as a download.
func (h *ExportHandler) ExportSection(c *gin.Context) {
	p, err := h.projects.GetProject(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		return
	}

	section := c.Param("section")
	content, err := export.Section(p, section)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filename := export.Filename(p.Title, section, time.Now())

	if err := h.sink.Export(filename, content); err != nil {
		h.logger.Error("Export sink failed",
			zap.String("project_id", p.ID),
			zap.String("filename", filename),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	metrics.ExportCount.WithLabelValues(section).Inc()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", content)
}
