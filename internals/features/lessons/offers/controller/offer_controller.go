// file: internals/features/lessons/offers/controller/offer_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guruku_backend/internals/features/lessons/offers/dto"
	"guruku_backend/internals/features/lessons/offers/model"
	"guruku_backend/internals/features/lessons/offers/service"
	helper "guruku_backend/internals/helpers"
)

type LessonOfferController struct {
	DB *gorm.DB
}

func NewLessonOfferController(db *gorm.DB) *LessonOfferController {
	return &LessonOfferController{DB: db}
}

/* =========================================================
   POST /api/t/offers
   Upsert per (teacher, duration): satu teacher maksimal satu offer
   per durasi, request kedua untuk durasi sama = update harga/flag.
========================================================= */

func (ctrl *LessonOfferController) UpsertOffer(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpsertLessonOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var saved model.LessonOfferModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.LessonOfferModel
		err := tx.
			Where("lesson_offer_teacher_id = ?", teacherID).
			Where("lesson_offer_duration_minutes = ?", req.LessonOfferDurationMinutes).
			Where("lesson_offer_deleted_at IS NULL").
			First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			row := req.ToModel(teacherID)
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			saved = *row
			return nil
		}
		if err != nil {
			return err
		}

		active := service.CoerceActiveFlag(req.LessonOfferActive)
		currency := req.LessonOfferCurrency
		if currency == "" {
			currency = existing.LessonOfferCurrency
		}
		now := time.Now().UTC()
		if err := tx.Model(&model.LessonOfferModel{}).
			Where("lesson_offer_id = ?", existing.LessonOfferID).
			Updates(map[string]any{
				"lesson_offer_price_cents": req.LessonOfferPriceCents,
				"lesson_offer_currency":    currency,
				"lesson_offer_active":      active,
				"lesson_offer_updated_at":  now,
			}).Error; err != nil {
			return err
		}
		existing.LessonOfferPriceCents = req.LessonOfferPriceCents
		existing.LessonOfferCurrency = currency
		existing.LessonOfferActive = &active
		existing.LessonOfferUpdatedAt = now
		saved = existing
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menyimpan offer")
	}

	return helper.JsonCreated(c, "Offer berhasil disimpan", dto.FromModelLessonOffer(&saved))
}

/* =========================================================
   GET /api/t/offers — semua offer milik teacher (termasuk nonaktif)
========================================================= */

func (ctrl *LessonOfferController) ListMyOffers(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var rows []model.LessonOfferModel
	if err := ctrl.DB.
		Where("lesson_offer_teacher_id = ?", teacherID).
		Where("lesson_offer_deleted_at IS NULL").
		Order("lesson_offer_duration_minutes ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil offer")
	}

	out := make([]*dto.LessonOfferResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelLessonOffer(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

/* =========================================================
   GET /api/public/teachers/:teacher_id/offers — hanya offer AKTIF
========================================================= */

func (ctrl *LessonOfferController) ListPublicOffers(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacher_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
	}

	var rows []model.LessonOfferModel
	if err := ctrl.DB.
		Where("lesson_offer_teacher_id = ?", teacherID).
		Where("lesson_offer_deleted_at IS NULL").
		Order("lesson_offer_duration_minutes ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil offer")
	}

	out := make([]*dto.LessonOfferResponse, 0, len(rows))
	for i := range rows {
		if !service.OfferIsActive(&rows[i]) {
			continue
		}
		out = append(out, dto.FromModelLessonOffer(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

/* =========================================================
   DELETE /api/t/offers/:id — soft delete
========================================================= */

func (ctrl *LessonOfferController) DeleteOffer(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	offerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	now := time.Now().UTC()
	res := ctrl.DB.Model(&model.LessonOfferModel{}).
		Where("lesson_offer_id = ?", offerID).
		Where("lesson_offer_teacher_id = ?", teacherID).
		Where("lesson_offer_deleted_at IS NULL").
		Updates(map[string]any{
			"lesson_offer_deleted_at": now,
			"lesson_offer_updated_at": now,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus offer")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "offer tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Offer dihapus", fiber.Map{"lesson_offer_id": offerID})
}
