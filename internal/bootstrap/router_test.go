package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenants"
	"github.com/GoSim-25-26J-441/trackers-backend/pkg/logging"
)

type registry struct{ seen []string }

func (r *registry) EnsureTenant(_ context.Context, u tenants.UpsertTenant) (string, error) {
	r.seen = append(r.seen, u.ID)
	return u.ID, nil
}

func newTestRouter(t *testing.T, allowHeader bool, burst int) (*gin.Engine, sqlmock.Sqlmock, *registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logging.Discard()
	met := metrics.New()
	reg := &registry{}
	r := BuildRouter(RouterDeps{
		ServiceName: "trackers-backend",
		Version:     "test",
		CORSOrigins: []string{"http://localhost:4200"},
		RateRPS:     1,
		RateBurst:   burst,
		AllowHeader: allowHeader,
		DB:          db,
		Mediator:    NewMediator(db, logger, met),
		Tenants:     reg,
		Metrics:     met,
		Logger:      logger,
	})
	return r, mock, reg
}

func do(r http.Handler, method, path, tenantID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if tenantID != "" {
		req.Header.Set("X-Tenant-Id", tenantID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	r, _, _ := newTestRouter(t, true, 10)

	w := do(r, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"db":"up"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestRouter_ListScopedToTenant(t *testing.T) {
	r, mock, reg := newTestRouter(t, true, 10)

	mock.ExpectQuery(`from recipes where tenant_id = \$1`).
		WithArgs("household-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := do(r, http.MethodGet, "/api/v1/recipes", "household-1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		OK      bool              `json:"ok"`
		Recipes []json.RawMessage `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Empty(t, body.Recipes)
	assert.Equal(t, []string{"household-1"}, reg.seen)
	assert.NoError(t, mock.ExpectationsWereMet())

	w = do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `request="ListRecipes"`)
}

func TestRouter_InvalidIDIsNotFound(t *testing.T) {
	r, mock, _ := newTestRouter(t, true, 100)

	for _, path := range []string{
		"/api/v1/recipes/nope", "/api/v1/anniversaries/nope", "/api/v1/donations/nope",
		"/api/v1/sleep-records/nope", "/api/v1/destinations/nope", "/api/v1/prompts/nope",
		"/api/v1/properties/nope", "/api/v1/leases/nope", "/api/v1/skills/nope",
		"/api/v1/courses/nope", "/api/v1/compensations/nope",
	} {
		w := do(r, http.MethodGet, path, "t1")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.True(t, strings.Contains(w.Body.String(), "not found"), path)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_HeaderTenantDisabled(t *testing.T) {
	r, _, _ := newTestRouter(t, false, 10)

	w := do(r, http.MethodGet, "/api/v1/recipes", "t1")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_RateLimited(t *testing.T) {
	r, _, _ := newTestRouter(t, true, 1)

	w := do(r, http.MethodGet, "/api/v1/recipes/nope", "t1")
	require.Equal(t, http.StatusNotFound, w.Code)
	w = do(r, http.MethodGet, "/api/v1/recipes/nope", "t1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
