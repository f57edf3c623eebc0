package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	IdentityHeader = "X-User-Id"
	IdentityCookie = "FARMER_ID"
	ContextKey     = "uid"
)

// Identity stores the optional caller identity under ContextKey. It reads the
// X-User-Id header, then the FARMER_ID cookie, then the uid query parameter.
// A uid given in the query is remembered in the cookie.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := strings.TrimSpace(c.Request().Header.Get(IdentityHeader))
			if uid == "" {
				if ck, err := c.Cookie(IdentityCookie); err == nil {
					uid = strings.TrimSpace(ck.Value)
				}
			}
			if uid == "" {
				if q := strings.TrimSpace(c.QueryParam("uid")); q != "" {
					uid = q
					c.SetCookie(&http.Cookie{Name: IdentityCookie, Value: q, Path: "/", HttpOnly: true})
				}
			}
			c.Set(ContextKey, uid)
			return next(c)
		}
	}
}

// RequireIdentity answers 401 when Identity found no caller.
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if uid, _ := c.Get(ContextKey).(string); uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "caller identity required"})
			}
			return next(c)
		}
	}
}
