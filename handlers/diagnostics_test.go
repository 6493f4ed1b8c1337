package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/huts-app/huts-backend/internal/store"
)

func get(t *testing.T, g *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRootMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	RegisterDiagnostics(g, nil, false)

	w := get(t, g, "/")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Huts-style backend running"}`, w.Body.String())
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	RegisterDiagnostics(g, nil, false)

	w := get(t, g, "/test")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "✅ Running", resp["backend"])
	require.Equal(t, "❌ Not Available", resp["database"])
	require.Equal(t, "Not Connected", resp["connection_status"])
	require.Nil(t, resp["database_url"])
	require.Nil(t, resp["database_name"])
	require.Empty(t, resp["collections"])
}

func TestDiagnosticsWithStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := store.NewMemoryStore()
	_, err := st.Insert(context.Background(), "property", bson.M{"title": "x"})
	require.NoError(t, err)

	g := gin.New()
	RegisterDiagnostics(g, st, true)

	w := get(t, g, "/test")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "✅ Connected & Working", resp["database"])
	require.Equal(t, "✅ Set", resp["database_url"])
	require.Equal(t, "memory", resp["database_name"])
	require.Equal(t, "Connected", resp["connection_status"])
	require.Equal(t, []interface{}{"property"}, resp["collections"])
}
