package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(origins *OriginList) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(origins))
	RegisterRoutes(router, NewAPIHandler(&fakeGenerator{reply: "ok"}, Options{}))
	return router
}

func preflight(router http.Handler, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/generate-site", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	router := corsRouter(NewOriginList([]string{"http://localhost:5173"}))

	w := preflight(router, "http://localhost:5173")
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight(router, "https://evil.example")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORSOriginsCanBeReplaced(t *testing.T) {
	origins := NewOriginList([]string{"http://localhost:5173"})
	router := corsRouter(origins)

	origins.Set([]string{"https://builder.example.com"})

	assert.Empty(t, preflight(router, "http://localhost:5173").Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "https://builder.example.com",
		preflight(router, "https://builder.example.com").Header().Get("Access-Control-Allow-Origin"))
}

func TestOriginListWildcard(t *testing.T) {
	assert.True(t, NewOriginList([]string{"*"}).Allowed("https://anything.example"))
	assert.False(t, NewOriginList(nil).Allowed("https://anything.example"))
}
