package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls cross-origin access to the API.
type CORSConfig struct {
	// AllowedOrigins lists exact origins allowed in production mode.
	AllowedOrigins []string
	// Permissive echoes any origin; used outside production.
	Permissive bool
}

// DefaultCORSConfig returns a strict config in production and a permissive
// one everywhere else.
func DefaultCORSConfig(environment string) CORSConfig {
	if environment == "production" {
		return CORSConfig{
			AllowedOrigins: []string{},
			Permissive:     false,
		}
	}
	return CORSConfig{Permissive: true}
}

// CORS sets cross-origin headers and answers preflight requests.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[strings.TrimRight(origin, "/")] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			_, ok := allowed[strings.TrimRight(origin, "/")]
			if cfg.Permissive || ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept")
				c.Header("Vary", "Origin")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
