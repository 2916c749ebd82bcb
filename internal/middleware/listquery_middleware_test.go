package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattwebdev/devcamper/internal/app/listquery"
)

func listQueryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	res := listquery.Resource{
		Table:       "things",
		Columns:     map[string]string{"id": "id", "name": "name"},
		DefaultSort: "created_at",
	}

	router := gin.New()
	router.GET("/things", ParseListQuery(res), func(c *gin.Context) {
		q := GetListQuery(c)
		c.JSON(http.StatusOK, gin.H{"page": q.Page, "limit": q.Limit, "filters": len(q.Filters)})
	})
	return router
}

func TestParseListQueryStashesPlan(t *testing.T) {
	router := listQueryRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things?name=widget&page=2&limit=5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"page":2,"limit":5,"filters":1}`, w.Body.String())
}

func TestParseListQueryRejectsUnknownField(t *testing.T) {
	router := listQueryRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things?bogus=1", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
}
