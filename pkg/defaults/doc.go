// Package defaults centralizes timeouts and limits shared by the CLI and
// the API server.
//
// Keeping these values in one place avoids magic numbers in handlers and
// server setup:
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.CalculateHandlerTimeout)
//	defer cancel()
//
// # Categories
//
//   - Handler timeouts and limits: per-request bounds for /v1/bmi endpoints
//   - Server timeouts: http.Server configuration and graceful shutdown
//   - ConfigMap timeouts: Kubernetes API writes for cm:// outputs
package defaults
