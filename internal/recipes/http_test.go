package recipes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/mediator"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := mediator.New()
	RegisterHandlers(m, newMemStore())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(tenant.WithID(c.Request.Context(), "pitmaster"))
	})
	Register(r.Group("/api/v1/recipes"), m)
	return r
}

func call(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

type recipeEnvelope struct {
	OK     bool   `json:"ok"`
	Recipe Recipe `json:"recipe"`
	Error  string `json:"error"`
}

func TestHTTP_CRUD(t *testing.T) {
	r := newTestRouter()

	rr := call(r, http.MethodPost, "/api/v1/recipes", map[string]any{
		"name": "Beef Ribs", "meat": "beef", "smoker_temp_f": 275, "cook_minutes": 480,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created recipeEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.True(t, created.OK)
	id := created.Recipe.ID

	rr = call(r, http.MethodGet, "/api/v1/recipes/"+id, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = call(r, http.MethodPut, "/api/v1/recipes/"+id, map[string]any{"name": "Dino Ribs", "smoker_temp_f": 300})
	require.Equal(t, http.StatusOK, rr.Code)
	var updated recipeEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Dino Ribs", updated.Recipe.Name)
	assert.Equal(t, 0, updated.Recipe.CookMinutes)

	rr = call(r, http.MethodPost, "/api/v1/recipes/"+id+"/rating", map[string]any{"rating": 5})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = call(r, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list struct {
		Recipes []Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list.Recipes, 1)

	rr = call(r, http.MethodDelete, "/api/v1/recipes/"+id, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = call(r, http.MethodGet, "/api/v1/recipes/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHTTP_BadRequests(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = call(r, http.MethodPost, "/api/v1/recipes", map[string]any{"name": "Ribs", "rating": 7})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var env recipeEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Contains(t, env.Error, "rating must be between 1 and 5")
}
