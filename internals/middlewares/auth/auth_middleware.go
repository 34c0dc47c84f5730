// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"guruku_backend/internals/configs"
)

// Public webhook path yang di-skip auth (dipanggil Midtrans tanpa token)
var skipPaths = map[string]struct{}{
	"/api/bookings/notification": {},
}

func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Skip path tertentu (webhook dsb.)
		if _, ok := skipPaths[c.Path()]; ok {
			log.Println("[INFO] Skip AuthMiddleware for:", c.Path())
			return c.Next()
		}

		// 2) Ambil Authorization (atau cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 3) Parse & verifikasi JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 4) Validasi exp (toleransi clock skew 30 detik)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 5) Simpan klaim ke context
		if err := storeClaimsToLocals(c, claims); err != nil {
			log.Println("[ERROR] claims:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid claims")
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
		return "", errors.New("Unauthorized - Malformed Authorization header")
	}
	// fallback: cookie access_token
	if tok := c.Cookies("access_token"); tok != "" {
		return tok, nil
	}
	return "", errors.New("Unauthorized - Missing token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) error {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return errors.New("missing user_id claim")
	}
	c.Locals("user_id", userID)

	if role, ok := claims["role"].(string); ok {
		c.Locals("role", role)
	}
	if name, ok := claims["user_name"].(string); ok {
		c.Locals("user_name", name)
	}
	if email, ok := claims["email"].(string); ok {
		c.Locals("email", email)
	}
	return nil
}
