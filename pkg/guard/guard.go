// Package guard holds declarative per-route authorization predicates.
// Every predicate runs after authentication and before the handler, so a
// rejected request never reaches a mutation.
package guard

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/bookcourier/pkg/auth0"
)

// RoleResolver returns the stored role of the principal.
type RoleResolver[R ~string] interface {
	Role(ctx context.Context, email string) (R, error)
}

// OwnerLoader returns the owner email of the resource addressed by the request.
type OwnerLoader func(c echo.Context) (string, error)

// Authenticated verifies the bearer token.
func Authenticated(v auth0.Verifier) echo.MiddlewareFunc {
	return auth0.Middleware(v)
}

// HasRole admits principals whose stored role is one of roles.
func HasRole[R ~string](resolver RoleResolver[R], roles ...R) echo.MiddlewareFunc {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}
	denied := fmt.Sprintf("requires role %s", strings.Join(names, " or "))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, err := auth0.GetEmail(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
			}
			role, err := resolver.Role(c.Request().Context(), email)
			if err != nil {
				return err
			}
			for _, r := range roles {
				if r == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, denied)
		}
	}
}

// OwnsResource admits the principal only if it owns the addressed resource.
func OwnsResource(loader OwnerLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, err := auth0.GetEmail(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
			}
			owner, err := loader(c)
			if err != nil {
				return err
			}
			if owner != email {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}
			return next(c)
		}
	}
}
