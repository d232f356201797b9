package http

import (
	"reportlog-srv/internal/feedback"
	"reportlog-srv/internal/middleware"
	"reportlog-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc feedback.UseCase
}

// New - Factory
func New(l log.Logger, uc feedback.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
