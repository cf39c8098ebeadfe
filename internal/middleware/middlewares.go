package middleware

import (
	"github.com/emelinabraham-cmd/homeease-api/internal/authz"
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups every middleware component the router installs, so
// shared dependencies are wired in one place.
type Middlewares struct {
	// Global holds the middleware applied to the whole API: CORS, request
	// logging, recovery, secure headers, and the global error handler.
	Global *GlobalMiddlewares

	// Auth provides Clerk-based authentication and the admin role gate.
	Auth *AuthMiddleware

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip, optional user and trace metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing installs New Relic transactions and custom attributes.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components. roles backs the
// admin gate; it is the same profile store the services use, so a caller's
// role is always read from the database rather than trusted from the token.
func NewMiddlewares(s *server.Server, roles authz.RoleSource) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s, authz.NewGate(roles)),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
