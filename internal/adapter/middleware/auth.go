package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"brickvest-backend/internal/auth"
	"brickvest-backend/internal/domain/user"
)

// Auth validates the HS256 bearer token issued by the auth collaborator and
// puts the caller's principal into the request context. Claims: sub = 32-hex
// user id, role = investor|lender|admin.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" || !strings.HasPrefix(raw, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			tokenStr := strings.TrimPrefix(raw, "Bearer ")

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			sub, _ := claims["sub"].(string)
			roleStr, _ := claims["role"].(string)
			if !reHex32.MatchString(sub) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid subject"})
			}
			role := user.Role(roleStr)
			switch role {
			case user.RoleInvestor, user.RoleLender, user.RoleAdmin:
			default:
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown role"})
			}

			ctx := auth.WithPrincipal(c.Request().Context(), auth.Principal{UserID: sub, Role: role})
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
