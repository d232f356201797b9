package http

import (
	"reportlog-srv/config"
	"reportlog-srv/internal/authentication"
	"reportlog-srv/internal/middleware"
	"reportlog-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l            log.Logger
	uc           authentication.UseCase
	cookieConfig config.CookieConfig
}

// New - Factory
func New(l log.Logger, uc authentication.UseCase, cookieConfig config.CookieConfig) Handler {
	return &handler{
		l:            l,
		uc:           uc,
		cookieConfig: cookieConfig,
	}
}
