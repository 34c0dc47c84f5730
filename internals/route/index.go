// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	availabilityRoute "guruku_backend/internals/features/lessons/availability/route"
	bookingRoute "guruku_backend/internals/features/lessons/bookings/route"
	offerRoute "guruku_backend/internals/features/lessons/offers/route"
	userRoute "guruku_backend/internals/features/users/user/route"
	"guruku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang seluruh route aplikasi:
//
//	/api/auth/...    — register & login (tanpa token)
//	/api/public/...  — katalog & kalender teacher (tanpa token)
//	/api/bookings/notification — webhook payment gateway (tanpa token)
//	/api/u/...       — student (token + role student)
//	/api/t/...       — teacher (token + role teacher)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ---------- tanpa auth ----------
	log.Println("🛣️  Mounting auth routes...")
	userRoute.AuthRoutes(api, db)

	log.Println("🛣️  Mounting public routes...")
	public := api.Group("/public")
	offerRoute.OfferPublicRoutes(public, db)
	availabilityRoute.AvailabilityPublicRoutes(public, db)

	log.Println("🛣️  Mounting webhook routes...")
	bookingRoute.BookingWebhookRoutes(api, db)

	// ---------- student ----------
	log.Println("🛣️  Mounting student routes...")
	student := api.Group("/u", auth.AuthMiddleware(), auth.IsStudent())
	bookingRoute.BookingStudentRoutes(student, db)

	// ---------- teacher ----------
	log.Println("🛣️  Mounting teacher routes...")
	teacher := api.Group("/t", auth.AuthMiddleware(), auth.IsTeacher())
	offerRoute.OfferTeacherRoutes(teacher, db)
	availabilityRoute.AvailabilityTeacherRoutes(teacher, db)
	bookingRoute.BookingTeacherRoutes(teacher, db)

	log.Println("✅ Semua route berhasil dipasang")
}
