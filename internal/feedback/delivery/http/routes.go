package http

import (
	"reportlog-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/reports/:execution_id/feedback", h.SubmitFeedback)
		api.GET("/reports/:execution_id/feedback", h.GetFeedback)
		api.GET("/feedback/executions", h.ListFeedbackExecutions)
	}
}
