package http

import (
	"reportlog-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/auth")
	{
		api.POST("/login", h.Login)
		api.POST("/logout", h.Logout)
	}
}
