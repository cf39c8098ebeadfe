package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/emelinabraham-cmd/homeease-api/internal/authz"
	"github.com/emelinabraham-cmd/homeease-api/internal/errs"
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the caller's identity from the Authorization
// header and, for admin routes, checks the caller's role before the request
// body is even bound.
type AuthMiddleware struct {
	server *server.Server
	gate   *authz.Gate
}

func NewAuthMiddleware(s *server.Server, gate *authz.Gate) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		gate:   gate,
	}
}

// RequireAuth enforces authentication using Clerk.
//
// A request with no Authorization header is rejected before the Clerk
// verifier runs. Otherwise Clerk validates the bearer token, and the
// session subject is stored in Echo context as "user_id" for the handlers.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	verified := echo.WrapMiddleware(
		clerkhttp.WithHeaderAuthorization(
			clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)

				if err := json.NewEncoder(w).Encode(errs.NewUnauthorizedError("User not authenticated")); err != nil {
					auth.server.Logger.Error().
						Err(err).
						Str("function", "RequireAuth").
						Msg("failed to write JSON response")
				}
			}))))(
		func(c echo.Context) error {
			claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
			if !ok {
				auth.server.Logger.Error().
					Str("function", "RequireAuth").
					Str("request_id", GetRequestID(c)).
					Msg("could not get session claims from context")

				return errs.NewUnauthorizedError("User not authenticated")
			}

			c.Set(UserIDKey, claims.Subject)

			return next(c)
		})

	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return errs.NewUnauthorizedError("User not authenticated")
		}
		return verified(c)
	}
}

// RequireAdmin rejects callers whose stored profile role is not admin.
// It must run after RequireAuth. forbiddenMessage is returned verbatim on
// the 403, so each route names the action it refused.
func (auth *AuthMiddleware) RequireAdmin(forbiddenMessage string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerID := GetUserID(c)
			if err := auth.gate.Allow(c.Request().Context(), authz.AdminOnly(), callerID, "", forbiddenMessage); err != nil {
				return err
			}
			return next(c)
		}
	}
}
