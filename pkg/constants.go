// Package pkg provides shared types and constants for the pet shop API.
package pkg

// Common API path constants.
const (
	// BasePath is the root path for the API.
	BasePath = "/v1"

	// HealthCheckPath is the legacy health endpoint.
	HealthCheckPath = BasePath + "/health"

	// LivezPath and ReadyzPath are the liveness and readiness probes.
	LivezPath  = BasePath + "/livez"
	ReadyzPath = BasePath + "/readyz"

	// SpeciesPath is the species collection.
	SpeciesPath = "/species"

	// BreedsPath is the breeds collection.
	BreedsPath = "/breeds"

	// MetricsPath exposes Prometheus metrics outside the versioned API.
	MetricsPath = "/metrics"
)
