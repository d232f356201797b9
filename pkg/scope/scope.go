package scope

import (
	"context"

	"reportlog-srv/internal/model"
)

type contextKey string

const scopeContextKey contextKey = "scope"

// SetScopeToContext attaches the caller scope to the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey, sc)
}

// GetScopeFromContext returns the caller scope from the context.
// Returns a zero scope (no groups) when none was set.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeContextKey).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
