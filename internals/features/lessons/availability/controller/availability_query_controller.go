// file: internals/features/lessons/availability/controller/availability_query_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guruku_backend/internals/features/lessons/availability/dto"
	avModel "guruku_backend/internals/features/lessons/availability/model"
	"guruku_backend/internals/features/lessons/availability/service"
	offerModel "guruku_backend/internals/features/lessons/offers/model"
	offerSvc "guruku_backend/internals/features/lessons/offers/service"
	helper "guruku_backend/internals/helpers"
)

type AvailabilityQueryController struct {
	DB *gorm.DB
}

func NewAvailabilityQueryController(db *gorm.DB) *AvailabilityQueryController {
	return &AvailabilityQueryController{DB: db}
}

/* =========================================================
   GET /api/public/teachers/:teacher_id/calendar?from=&to=&mode=
   Kalender availability dari STORE (block yang benar-benar ada).
     mode=atomic (default) — row 30 menit apa adanya
     mode=merged           — run yang bersambung digabung jadi satu
                             event display dengan event_id sintetis
========================================================= */

func (ctrl *AvailabilityQueryController) GetCalendar(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacher_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
	}
	from, to, err := helper.ParseUTCRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := service.FetchBlocksInRange(ctrl.DB, teacherID, from, to)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil kalender")
	}

	mode := c.Query("mode", "atomic")
	switch mode {
	case "atomic":
		out := make([]*dto.AvailabilityBlockResponse, 0, len(rows))
		for i := range rows {
			out = append(out, dto.FromModelAvailabilityBlock(&rows[i]))
		}
		return helper.JsonOK(c, "OK", fiber.Map{"mode": mode, "events": out})

	case "merged":
		merged, err := service.MergeIntervals(service.BlocksToIntervals(rows))
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menggabungkan kalender")
		}
		return helper.JsonOK(c, "OK", fiber.Map{
			"mode":   mode,
			"events": dto.MergedEvents(teacherID, merged),
		})

	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "mode harus atomic atau merged")
	}
}

/* =========================================================
   GET /api/public/teachers/:teacher_id/free-slots?from=&to=
   Slot bookable dari STORE: block di range → merge jadi window →
   fan-out durasi offer aktif di grid start 15 menit. Ini daftar yang
   dilihat student; kebenaran final tetap diputuskan saat checkout.
========================================================= */

func (ctrl *AvailabilityQueryController) GetFreeSlots(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacher_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
	}
	from, to, err := helper.ParseUTCRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var offers []offerModel.LessonOfferModel
	if err := ctrl.DB.
		Where("lesson_offer_teacher_id = ?", teacherID).
		Where("lesson_offer_deleted_at IS NULL").
		Find(&offers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil offer")
	}
	durations := offerSvc.ActiveDurations(offers)
	if len(durations) == 0 {
		return helper.JsonOK(c, "OK", []service.FreeSlot{})
	}

	rows, err := service.FetchBlocksInRange(ctrl.DB, teacherID, from, to)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil availability")
	}
	windows, err := service.MergeIntervals(service.BlocksToIntervals(rows))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memproses availability")
	}

	slots := service.EnumerateSlots(windows, durations)
	if slots == nil {
		slots = []service.FreeSlot{}
	}
	return helper.JsonOK(c, "OK", slots)
}

/* =========================================================
   GET /api/t/availability/preview?from=&to=
   Preview murni dari RULE + offer aktif (tanpa menyentuh store):
   teacher melihat jadwal yang AKAN dihasilkan rule-nya, termasuk
   slot yang sudah terlanjur dibooking.
========================================================= */

func (ctrl *AvailabilityQueryController) PreviewFromRules(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	from, to, err := helper.ParseUTCRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var rules []avModel.AvailabilityRuleModel
	if err := ctrl.DB.
		Where("availability_rule_teacher_id = ?", teacherID).
		Where("availability_rule_deleted_at IS NULL").
		Find(&rules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil rules")
	}

	var offers []offerModel.LessonOfferModel
	if err := ctrl.DB.
		Where("lesson_offer_teacher_id = ?", teacherID).
		Where("lesson_offer_deleted_at IS NULL").
		Find(&offers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil offer")
	}

	slots, err := service.GenerateFreeSlots(from, to, rules, offers)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if slots == nil {
		slots = []service.FreeSlot{}
	}
	return helper.JsonOK(c, "OK", slots)
}
