// file: internals/features/lessons/bookings/route/booking_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guruku_backend/internals/features/lessons/bookings/controller"
)

// BookingStudentRoutes: /api/u/bookings (auth + role student di group)
func BookingStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBookingController(db)

	bookings := r.Group("/bookings")
	bookings.Post("/", ctrl.CreateBooking)
	bookings.Get("/", ctrl.ListMyBookings)
	bookings.Get("/:id", ctrl.GetBookingDetail)
	bookings.Post("/:id/cancel", ctrl.CancelBooking)
}

// BookingTeacherRoutes: /api/t/bookings
func BookingTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBookingController(db)

	r.Get("/bookings", ctrl.ListIncomingBookings)
}

// BookingWebhookRoutes: endpoint notifikasi Midtrans, TANPA auth
// (path-nya juga masuk skip-list AuthMiddleware).
func BookingWebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBookingWebhookController(db)

	r.Post("/bookings/notification", ctrl.HandleMidtransNotification)
}
