package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattwebdev/devcamper/internal/app/controllers"
	"github.com/mattwebdev/devcamper/internal/middleware"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(nil, 0, false),
		controllers.NewBootcampController(nil),
		controllers.NewCourseController(nil),
		middleware.NewAuthMiddleware(nil),
	)
	return router
}

func TestHealthRouteUnderAPIPrefix(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	router := testRouter()

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/bootcamps"},
		{http.MethodPut, "/api/v1/bootcamps/1"},
		{http.MethodDelete, "/api/v1/courses/1"},
		{http.MethodGet, "/api/v1/auth/me"},
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}
}
