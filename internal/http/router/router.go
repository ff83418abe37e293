// Package router sets up the HTTP routes for the petshop API server.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roguepikachu/petshop/internal/http/handler"
	"github.com/roguepikachu/petshop/internal/http/middleware"
	"github.com/roguepikachu/petshop/pkg"
)

// NewRouter wires the middleware chain and every route onto a new engine.
// A nil metrics disables instrumentation and a nil gatherer leaves /metrics unmounted.
func NewRouter(species *handler.SpeciesHandler, breeds *handler.BreedHandler, health *handler.HealthHandler, metrics *middleware.Metrics, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	if metrics != nil {
		r.Use(metrics.Middleware())
	}
	r.Use(middleware.RequestLogger())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, pkg.NewNotice(http.StatusNotFound, pkg.TitleNotFound, "route "+c.Request.URL.Path+" not found", time.Now()))
	})

	r.GET(pkg.HealthCheckPath, handler.Health)
	r.GET(pkg.LivezPath, health.Liveness)
	r.GET(pkg.ReadyzPath, health.Readiness)
	if gatherer != nil {
		r.GET(pkg.MetricsPath, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group(pkg.BasePath)

	sp := v1.Group(pkg.SpeciesPath)
	sp.GET("", species.List)
	sp.GET("/resumed", species.ListResumed)
	sp.GET("/:id", species.Get)
	sp.POST("", species.Create)
	sp.PATCH("/:id", species.Update)
	sp.DELETE("/:id", species.Delete)

	br := v1.Group(pkg.BreedsPath)
	br.GET("", breeds.List)
	br.GET("/resumed", breeds.ListResumed)
	br.GET("/:id", breeds.Get)
	br.POST("", breeds.Create)
	br.PATCH("/:id", breeds.Update)
	br.DELETE("/:id", breeds.Delete)

	return r
}
