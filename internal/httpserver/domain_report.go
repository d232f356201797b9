package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"reportlog-srv/internal/middleware"
	reportHTTP "reportlog-srv/internal/report/delivery/http"
	reportPostgre "reportlog-srv/internal/report/repository/postgre"
	reportRedis "reportlog-srv/internal/report/repository/redis"
	reportUsecase "reportlog-srv/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := reportPostgre.New(srv.postgresDB, srv.l)
	cache := reportRedis.New(srv.redisClient, srv.l)

	uc := reportUsecase.New(repo, cache, srv.kafkaProducer, srv.minioClient, srv.l, reportUsecase.Config{
		DocumentBucket: srv.config.MinIO.Bucket,
	})
	srv.reportUC = uc

	handler := reportHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
