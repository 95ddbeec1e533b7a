// Package middleware provides HTTP middleware for the storefront server.
//
// It includes:
//   - Request logging in W3C Extended Log Format
//   - Response compression (gzip)
//   - Prometheus request metrics labelled by route template
//   - Per-client rate limiting for form endpoints
package middleware
