package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/roguepikachu/petshop/pkg"
	"github.com/roguepikachu/petshop/pkg/logger"
)

// Recovery recovers from panics, logs them, and returns a 500 notice.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				// stack goes to the log only, never to the client
				logger.With(c.Request.Context(), map[string]any{"panic": r, "stack": string(debug.Stack())}).Error("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					pkg.NewNotice(http.StatusInternalServerError, pkg.TitleInternal, "internal server error", time.Now()))
			}
		}()
		c.Next()
	}
}
