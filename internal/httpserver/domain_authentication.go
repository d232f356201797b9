package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "reportlog-srv/internal/authentication/delivery/http"
	authPostgre "reportlog-srv/internal/authentication/repository/postgre"
	authUsecase "reportlog-srv/internal/authentication/usecase"
	"reportlog-srv/internal/middleware"
)

func (srv *HTTPServer) setupAuthenticationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := authPostgre.New(srv.postgresDB, srv.l)

	uc := authUsecase.New(repo, srv.jwtManager, srv.l)

	handler := authHTTP.New(srv.l, uc, srv.cookieConfig)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Authentication domain registered")
	return nil
}
