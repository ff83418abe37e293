// Package handler provides the HTTP handlers of the petshop API.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"github.com/roguepikachu/petshop/pkg"
	"github.com/roguepikachu/petshop/pkg/logger"
)

const defaultPingTimeout = time.Second

// Health keeps the legacy simple health endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, pkg.NewResponse(http.StatusOK, gin.H{"ok": true}, "ok"))
}

// Pinger reports whether a downstream dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependency is a named Pinger checked by readiness.
type Dependency struct {
	Name   string
	Pinger Pinger
}

// PostgresDependency adapts a pgx pool. A nil pool yields a zero Dependency.
func PostgresDependency(pool *pgxpool.Pool) Dependency {
	if pool == nil {
		return Dependency{}
	}
	return Dependency{Name: "postgres", Pinger: pgPinger{pool}}
}

// SQLiteDependency adapts a gorm handle.
func SQLiteDependency(db *gorm.DB) Dependency {
	if db == nil {
		return Dependency{}
	}
	return Dependency{Name: "sqlite", Pinger: gormPinger{db}}
}

// RedisDependency adapts a redis client.
func RedisDependency(c *redis.Client) Dependency {
	if c == nil {
		return Dependency{}
	}
	return Dependency{Name: "redis", Pinger: redisPinger{c}}
}

type pgPinger struct{ pool *pgxpool.Pool }

func (p pgPinger) Ping(ctx context.Context) error { return p.pool.Ping(ctx) }

type gormPinger struct{ db *gorm.DB }

func (g gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type redisPinger struct{ c *redis.Client }

func (r redisPinger) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

// HealthHandler provides liveness and readiness probes.
type HealthHandler struct {
	deps        []Dependency
	pingTimeout time.Duration
}

// NewHealthHandler constructs a HealthHandler. Dependencies without a Pinger are skipped.
func NewHealthHandler(deps ...Dependency) *HealthHandler {
	kept := make([]Dependency, 0, len(deps))
	for _, d := range deps {
		if d.Pinger != nil {
			kept = append(kept, d)
		}
	}
	return &HealthHandler{deps: kept, pingTimeout: defaultPingTimeout}
}

// Check is the per-dependency readiness result.
type Check struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Liveness reports that the process is up. External deps are not checked.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, pkg.NewResponse(http.StatusOK, gin.H{"status": "alive"}, "ok"))
}

// Readiness pings every dependency within a shared timeout.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.pingTimeout)
	defer cancel()

	results := make([]Check, 0, len(h.deps))
	ready := true
	for _, d := range h.deps {
		if err := d.Pinger.Ping(ctx); err != nil {
			ready = false
			results = append(results, Check{Name: d.Name, Status: "down", Error: err.Error()})
			continue
		}
		results = append(results, Check{Name: d.Name, Status: "up"})
	}

	if ready {
		c.JSON(http.StatusOK, pkg.NewResponse(http.StatusOK, gin.H{"ready": true, "checks": results}, "ready"))
		return
	}
	logger.Warn(c.Request.Context(), "readiness failed: %+v", results)
	c.JSON(http.StatusServiceUnavailable, pkg.NewResponse(http.StatusServiceUnavailable, gin.H{"ready": false, "checks": results}, "not ready"))
}
