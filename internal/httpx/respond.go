// Package httpx maps handler results onto the JSON envelope used by every route.
package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

func OK(c *gin.Context, key string, v any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, key: v})
}

func Created(c *gin.Context, key string, v any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, key: v})
}

func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func BadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
}

// Error writes the status for err. Unknown errors are logged and hidden.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, apperr.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, apperr.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, tenant.ErrNoTenant):
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), "Unhandled request error",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
	}
}

// QueryInt reads an integer query parameter, returning def when it is absent.
func QueryInt(c *gin.Context, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Invalid("%s must be an integer", key)
	}
	return n, nil
}

// QueryTime reads an RFC 3339 timestamp or a YYYY-MM-DD date. Missing values yield nil.
func QueryTime(c *gin.Context, key string) (*time.Time, error) {
	t, _, err := queryTime(c, key)
	return t, err
}

// QueryUntil reads an upper bound. A YYYY-MM-DD date covers that whole day, so it
// comes back as the following midnight with exclusive set.
func QueryUntil(c *gin.Context, key string) (t *time.Time, exclusive bool, err error) {
	t, dateOnly, err := queryTime(c, key)
	if err != nil || t == nil || !dateOnly {
		return t, false, err
	}
	next := t.AddDate(0, 0, 1)
	return &next, true, nil
}

func queryTime(c *gin.Context, key string) (*time.Time, bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, false, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, false, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return &t, true, nil
	}
	return nil, false, apperr.Invalid("%s must be RFC 3339 or YYYY-MM-DD", key)
}
