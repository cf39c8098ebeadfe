// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// authentication (via Clerk), the admin role gate, request logging, CORS,
// and panic recovery.
package middleware
