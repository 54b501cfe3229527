package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RouteRoles is the declarative access table: registered route path (as Echo
// reports it via c.Path()) to the set of roles allowed through. Routes absent
// from the table are open to any authenticated session.
type RouteRoles map[string][]string

// Guard enforces the table. The decision is made fresh on every request;
// nothing is cached between navigations.
func Guard(table RouteRoles) echo.MiddlewareFunc {
	allowed := make(map[string]map[string]struct{}, len(table))
	for path, roles := range table {
		set := make(map[string]struct{}, len(roles))
		for _, r := range roles {
			set[r] = struct{}{}
		}
		allowed[path] = set
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			set, guarded := allowed[c.Path()]
			if !guarded {
				return next(c)
			}

			role, _ := c.Get("role").(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := set[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
