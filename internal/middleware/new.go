package middleware

import (
	"reportlog-srv/config"
	"reportlog-srv/pkg/jwt"
	"reportlog-srv/pkg/log"
)

type Middleware struct {
	l            log.Logger
	jwtManager   *jwt.Manager
	cookieConfig config.CookieConfig
	internalKey  string
}

func New(l log.Logger, jwtManager *jwt.Manager, cookieConfig config.CookieConfig, internalKey string) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		internalKey:  internalKey,
	}
}
