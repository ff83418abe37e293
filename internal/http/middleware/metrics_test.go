package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountsByRouteAndStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/species/:id", func(c *gin.Context) {
		if c.Param("id") == "0" {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	for _, p := range []string{"/species/1", "/species/2", "/species/0"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if got := testutil.ToFloat64(m.requests.WithLabelValues("/species/:id", "GET", "200")); got != 2 {
		t.Fatalf("want 2 ok requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.errors.WithLabelValues("/species/:id", "GET", "client_error")); got != 1 {
		t.Fatalf("want 1 client error, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("unknown", "GET", "404")); got != 1 {
		t.Fatalf("unmatched routes should be labelled unknown, got %v", got)
	}
	if got := testutil.ToFloat64(m.inFlight); got != 0 {
		t.Fatalf("in-flight gauge should settle at 0, got %v", got)
	}
}

func TestNewMetrics_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	defer func() {
		if recover() == nil {
			t.Fatalf("registering twice on one registry should panic")
		}
	}()
	NewMetrics(reg)
}
