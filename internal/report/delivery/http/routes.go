package http

import (
	"reportlog-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")

	// Producer-facing ingestion, authenticated by shared internal key.
	ingest := api.Group("/reports")
	ingest.Use(mw.InternalAuth())
	{
		ingest.POST("", h.IngestReport)
		ingest.POST("/batch", h.IngestReportBatch)
	}

	// Viewer-facing reads, group-filtered per JWT scope.
	read := api.Group("/reports")
	read.Use(mw.Auth())
	{
		read.GET("", h.ListReports)
		read.GET("/:execution_id", h.GetReport)
		read.GET("/:execution_id/flatten", h.FlattenReport)
		read.GET("/:execution_id/files", h.ListReportFiles)
	}
}
