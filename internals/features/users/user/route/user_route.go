// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guruku_backend/internals/features/users/user/controller"
	"guruku_backend/internals/middlewares"
)

// AuthRoutes: /api/auth — register & login, rate limit lebih ketat
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	authGroup := r.Group("/auth")
	authGroup.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	authGroup.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
