package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mattwebdev/devcamper/internal/app/listquery"
)

// ListQueryKey is the gin context key carrying the parsed list query
const ListQueryKey = "listQuery"

// ParseListQuery parses the request query string against the resource's
// queryable surface and stashes the plan for the handler. Unknown fields
// and malformed operators abort with a 400.
func ParseListQuery(res listquery.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := listquery.Parse(c.Request.URL.Query(), res)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ListQueryKey, q)
		c.Next()
	}
}

// GetListQuery retrieves the query plan stored by ParseListQuery
func GetListQuery(c *gin.Context) *listquery.Query {
	value, exists := c.Get(ListQueryKey)
	if !exists {
		return nil
	}
	q, _ := value.(*listquery.Query)
	return q
}
