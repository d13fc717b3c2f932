package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"peerlend/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const userContextKey = "auth.user"

// Auth verifies the bearer token and re-fetches the user record, so a deleted
// user invalidates outstanding tokens implicitly.
func Auth(secret []byte, users user.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			token, err := jwt.Parse(strings.TrimPrefix(h, "Bearer "), func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token payload"})
			}
			sub, _ := claims["sub"].(string)
			if sub == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token payload"})
			}

			u, err := users.GetByUserID(c.Request().Context(), sub)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "user not found"})
			}

			c.Set(userContextKey, u)
			return next(c)
		}
	}
}

// UserFrom returns the authenticated user stashed by Auth.
func UserFrom(c echo.Context) (*user.User, bool) {
	u, ok := c.Get(userContextKey).(*user.User)
	return u, ok
}

// SetUser is a test hook for handlers that read the authenticated user.
func SetUser(c echo.Context, u *user.User) { c.Set(userContextKey, u) }
