package http

import (
	"reportlog-srv/internal/middleware"
	"reportlog-srv/internal/report"
	"reportlog-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc report.UseCase
}

// New - Factory
func New(l log.Logger, uc report.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
