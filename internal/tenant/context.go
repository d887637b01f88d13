// Package tenant carries the caller's tenant through request contexts.
//
// Stores call Require on every query so rows are always filtered by tenant_id.
package tenant

import (
	"context"
	"errors"
	"strings"
)

var ErrNoTenant = errors.New("tenant not resolved")

type ctxKey struct{}

// CtxTenantID is the gin context key holding the resolved tenant.
const CtxTenantID = "tenant_id"

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, strings.TrimSpace(id))
}

func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Require returns the tenant or ErrNoTenant.
func Require(ctx context.Context) (string, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return "", ErrNoTenant
	}
	return id, nil
}
