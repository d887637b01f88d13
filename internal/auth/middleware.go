package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenants"
)

const (
	HeaderTenantID = "X-Tenant-Id"
	DemoTenant     = "demo-tenant"
)

// TenantRegistry records tenants as they show up.
type TenantRegistry interface {
	EnsureTenant(ctx context.Context, u tenants.UpsertTenant) (string, error)
}

type MiddlewareOptions struct {
	// Verifier checks bearer tokens. Nil means bearer tokens are rejected.
	Verifier Verifier
	Registry TenantRegistry
	// AllowHeader accepts X-Tenant-Id without a token (development only).
	AllowHeader bool
}

// TenantMiddleware resolves the caller's tenant and scopes the request to it.
func TenantMiddleware(opts MiddlewareOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := resolve(c, opts)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
			return
		}

		tid, err := opts.Registry.EnsureTenant(c.Request.Context(), tenants.UpsertTenant{
			ID:          id.TenantID,
			DisplayName: id.DisplayName,
			Email:       id.Email,
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "ensure tenant: " + err.Error()})
			return
		}

		c.Set(tenant.CtxTenantID, tid)
		c.Request = c.Request.WithContext(tenant.WithID(c.Request.Context(), tid))
		c.Next()
	}
}

func resolve(c *gin.Context, opts MiddlewareOptions) (*Identity, error) {
	if token := extractToken(c); token != "" {
		if opts.Verifier == nil {
			return nil, ErrInvalidToken
		}
		return opts.Verifier.Verify(c.Request.Context(), token)
	}

	if !opts.AllowHeader {
		return nil, ErrMissingToken
	}

	id := strings.TrimSpace(c.GetHeader(HeaderTenantID))
	if id == "" {
		id = DemoTenant
	}
	return &Identity{TenantID: id}, nil
}

func extractToken(c *gin.Context) string {
	bearer := c.GetHeader("Authorization")
	if len(bearer) > 7 && strings.EqualFold(bearer[:7], "Bearer ") {
		return strings.TrimSpace(bearer[7:])
	}
	return ""
}
