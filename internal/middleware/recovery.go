package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"astro-chart-api/pkg/response"
)

// Recovery turns a panic into the 500 failure envelope and logs the stack.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				m.l.Errorf(c.Request.Context(), "panic recovered: %v\n%s", r, debug.Stack())
				response.InternalError(c, fmt.Errorf("%v", r))
			}
		}()
		c.Next()
	}
}
