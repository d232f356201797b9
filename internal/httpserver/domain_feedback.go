package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	feedbackHTTP "reportlog-srv/internal/feedback/delivery/http"
	feedbackPostgre "reportlog-srv/internal/feedback/repository/postgre"
	feedbackUsecase "reportlog-srv/internal/feedback/usecase"
	"reportlog-srv/internal/middleware"
)

// setupFeedbackDomain must run after setupReportDomain: feedback visibility
// checks go through the report usecase.
func (srv *HTTPServer) setupFeedbackDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	if srv.reportUC == nil {
		return errors.New("report usecase must be initialized before feedback domain")
	}

	repo := feedbackPostgre.New(srv.postgresDB, srv.l)

	uc := feedbackUsecase.New(repo, srv.reportUC, srv.rabbitPublisher, srv.l)

	handler := feedbackHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Feedback domain registered")
	return nil
}
