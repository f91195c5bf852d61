// file: internals/middlewares/auth/jwt_auth.go
package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helperAuth "bodhira_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // use the access_token cookie when no Bearer header
	Leeway              time.Duration
}

// AuthJWT verifies the bearer token and hydrates locals with
// user_id / user_name / user_role. Token issuance lives in a separate
// service; this backend only consumes the claims.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}
	leeway := o.Leeway
	if leeway <= 0 {
		leeway = 30 * time.Second
	}

	return func(c *fiber.Ctx) error {
		// 1) Token source: Authorization: Bearer xxx (or cookie when allowed)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verify signing method
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		tok, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		// 3) Expiry check with a small leeway
		if exp, ok := claims["exp"].(float64); ok {
			if time.Now().After(time.Unix(int64(exp), 0).Add(leeway)) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
			}
		} else {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing exp claim")
		}

		c.Locals("jwt_claims", claims)

		// 4) Hydrate the locals the helpers expect
		if v, ok := claims["user_id"].(string); ok && v != "" {
			c.Locals(helperAuth.LocUserID, v)
		} else if v, ok := claims["sub"].(string); ok && v != "" {
			c.Locals(helperAuth.LocUserID, v)
		} else {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		if v, ok := claims["name"].(string); ok {
			c.Locals(helperAuth.LocUserName, v)
		}
		if v, ok := claims["role"].(string); ok {
			c.Locals(helperAuth.LocRole, v)
		}

		return c.Next()
	}
}
