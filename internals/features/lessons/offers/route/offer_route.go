// file: internals/features/lessons/offers/route/offer_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guruku_backend/internals/features/lessons/offers/controller"
)

// OfferTeacherRoutes: /api/t/offers (auth + role teacher di group)
func OfferTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLessonOfferController(db)

	offers := r.Group("/offers")
	offers.Post("/", ctrl.UpsertOffer)
	offers.Get("/", ctrl.ListMyOffers)
	offers.Delete("/:id", ctrl.DeleteOffer)
}

// OfferPublicRoutes: /api/public/teachers/:teacher_id/offers
func OfferPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLessonOfferController(db)

	r.Get("/teachers/:teacher_id/offers", ctrl.ListPublicOffers)
}
