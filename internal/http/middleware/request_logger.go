package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/roguepikachu/petshop/pkg"
	"github.com/roguepikachu/petshop/pkg/logger"
)

// quietRoutes are logged at debug level when they succeed.
var quietRoutes = map[string]bool{
	pkg.HealthCheckPath: true,
	pkg.LivezPath:       true,
	pkg.ReadyzPath:      true,
	pkg.MetricsPath:     true,
}

// RequestLogger logs one line per HTTP request, with the level chosen by status class.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		size := c.Writer.Size()
		if size < 0 {
			size = 0
		}
		route := c.FullPath()
		fields := map[string]any{
			"method":     c.Request.Method,
			"path":       path,
			"route":      route,
			"status":     status,
			"latency_ms": latency.Milliseconds(),
			"bytes":      size,
			"ip":         c.ClientIP(),
			"ua":         c.Request.UserAgent(),
		}
		if len(c.Errors) > 0 {
			msgs := make([]string, 0, len(c.Errors))
			for _, e := range c.Errors {
				msgs = append(msgs, e.Error())
			}
			fields["errors"] = strings.Join(msgs, "; ")
		}
		entry := logger.With(c.Request.Context(), fields)
		switch {
		case status >= 500:
			entry.Error("request completed")
		case status >= 400:
			entry.Warn("request completed")
		case quietRoutes[route]:
			entry.Debug("request completed")
		default:
			entry.Info("request completed")
		}
	}
}
