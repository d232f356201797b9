package redis

import (
	"reportlog-srv/internal/report/repository"
	"reportlog-srv/pkg/log"
	pkgRedis "reportlog-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
