// file: internals/features/lessons/availability/route/availability_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guruku_backend/internals/features/lessons/availability/controller"
)

// AvailabilityTeacherRoutes: /api/t/availability (auth + role teacher di group)
func AvailabilityTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAvailabilityController(db)
	query := controller.NewAvailabilityQueryController(db)

	av := r.Group("/availability")
	av.Post("/rules", ctrl.CreateRule)
	av.Get("/rules", ctrl.ListRules)
	av.Delete("/rules/:id", ctrl.DeleteRule)

	av.Post("/blocks", ctrl.AddManualRange)
	av.Delete("/blocks", ctrl.DeleteBlocks)

	av.Get("/preview", query.PreviewFromRules)
}

// AvailabilityPublicRoutes: kalender & free-slot per teacher, tanpa auth
func AvailabilityPublicRoutes(r fiber.Router, db *gorm.DB) {
	query := controller.NewAvailabilityQueryController(db)

	r.Get("/teachers/:teacher_id/availability", query.GetCalendar)
	r.Get("/teachers/:teacher_id/free-slots", query.GetFreeSlots)
}
