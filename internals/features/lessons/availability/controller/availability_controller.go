// file: internals/features/lessons/availability/controller/availability_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guruku_backend/internals/features/lessons/availability/dto"
	"guruku_backend/internals/features/lessons/availability/model"
	"guruku_backend/internals/features/lessons/availability/service"
	helper "guruku_backend/internals/helpers"
)

type AvailabilityController struct {
	DB *gorm.DB
}

func NewAvailabilityController(db *gorm.DB) *AvailabilityController {
	return &AvailabilityController{DB: db}
}

/* =========================================================
   POST /api/t/availability/rules
   Create rule + expansion SINKRON di transaksi yang sama: begitu
   response 201 keluar, block atomiknya sudah bisa dibooking.
========================================================= */

func (ctrl *AvailabilityController) CreateRule(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateAvailabilityRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if req.AvailabilityRuleStartMinute >= req.AvailabilityRuleEndMinute {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_minute harus < end_minute")
	}
	if _, err := time.LoadLocation(req.AvailabilityRuleTimezone); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "timezone tidak dikenal")
	}

	validFrom, err := helper.ParseStrictUTC(req.AvailabilityRuleValidFrom)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "valid_from: "+err.Error())
	}
	var validTo *time.Time
	if req.AvailabilityRuleValidTo != nil && *req.AvailabilityRuleValidTo != "" {
		t, err := helper.ParseStrictUTC(*req.AvailabilityRuleValidTo)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "valid_to: "+err.Error())
		}
		if !validFrom.Before(t) {
			return helper.JsonError(c, fiber.StatusBadRequest, "valid_to harus setelah valid_from")
		}
		validTo = &t
	}

	rule := model.AvailabilityRuleModel{
		AvailabilityRuleTeacherID:   teacherID,
		AvailabilityRuleWeekday:     req.AvailabilityRuleWeekday,
		AvailabilityRuleStartMinute: req.AvailabilityRuleStartMinute,
		AvailabilityRuleEndMinute:   req.AvailabilityRuleEndMinute,
		AvailabilityRuleTimezone:    req.AvailabilityRuleTimezone,
		AvailabilityRuleValidFrom:   validFrom,
		AvailabilityRuleValidTo:     validTo,
		AvailabilityRuleCreatedAt:   time.Now().UTC(),
	}

	var inserted int
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rule).Error; err != nil {
			return err
		}
		n, err := service.ExpandRule(tx, &rule, time.Now().UTC())
		if err != nil {
			return err
		}
		inserted = n
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat rule")
	}

	return helper.JsonCreated(c, "Rule dibuat", fiber.Map{
		"rule":            dto.FromModelAvailabilityRule(&rule),
		"blocks_inserted": inserted,
	})
}

/* =========================================================
   GET /api/t/availability/rules
========================================================= */

func (ctrl *AvailabilityController) ListRules(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var rows []model.AvailabilityRuleModel
	if err := ctrl.DB.
		Where("availability_rule_teacher_id = ?", teacherID).
		Where("availability_rule_deleted_at IS NULL").
		Order("availability_rule_weekday ASC, availability_rule_start_minute ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil rules")
	}

	out := make([]*dto.AvailabilityRuleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelAvailabilityRule(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

/* =========================================================
   DELETE /api/t/availability/rules/:id
   Soft-delete rule saja. Block yang sudah dimaterialisasi TIDAK ikut
   terhapus: block adalah fakta independen milik teacher; bersihkan
   lewat endpoint delete block kalau memang mau dihapus.
========================================================= */

func (ctrl *AvailabilityController) DeleteRule(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	ruleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	now := time.Now().UTC()
	res := ctrl.DB.Model(&model.AvailabilityRuleModel{}).
		Where("availability_rule_id = ?", ruleID).
		Where("availability_rule_teacher_id = ?", teacherID).
		Where("availability_rule_deleted_at IS NULL").
		Update("availability_rule_deleted_at", now)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus rule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "rule tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Rule dihapus", fiber.Map{"availability_rule_id": ruleID})
}

/* =========================================================
   POST /api/t/availability/blocks
   Tambah availability manual one-off untuk satu range [start, end).
   Range didekomposisi ke block 30 menit; instant yang sudah ada
   di-skip (idempoten), jadi range yang overlap otomatis "merge".
========================================================= */

func (ctrl *AvailabilityController) AddManualRange(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.ManualBlockRangeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	start, end, err := helper.ParseUTCRange(req.Start, req.End)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var inserted int
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		n, err := service.InsertRangeBlocks(tx, teacherID, start, end, model.BlockSourceManual)
		if err != nil {
			return err
		}
		inserted = n
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menambah availability")
	}

	return helper.JsonCreated(c, "Availability ditambahkan", fiber.Map{
		"blocks_inserted": inserted,
	})
}

/* =========================================================
   DELETE /api/t/availability/blocks
   Tiga mode addressing, persis satu yang boleh dipakai per request:
     ?id=<block_uuid>         — satu row atomik
     ?event_id=<merged id>    — event merged dari view kalender
     ?from=&to=               — range UTC bebas
   Semua mode diresolve ke window UTC lalu dihapus per-row atomik.
========================================================= */

func (ctrl *AvailabilityController) DeleteBlocks(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	idStr := c.Query("id")
	eventID := c.Query("event_id")
	fromStr, toStr := c.Query("from"), c.Query("to")

	modes := 0
	if idStr != "" {
		modes++
	}
	if eventID != "" {
		modes++
	}
	if fromStr != "" || toStr != "" {
		modes++
	}
	if modes != 1 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"pakai tepat satu mode: ?id= atau ?event_id= atau ?from=&to=")
	}

	var start, end time.Time

	switch {
	case idStr != "":
		blockID, err := uuid.Parse(idStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
		}
		var row model.AvailabilityBlockModel
		if err := ctrl.DB.
			Where("availability_block_id = ?", blockID).
			Where("availability_block_teacher_id = ?", teacherID).
			First(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "block tidak ditemukan")
		}
		start, end = row.AvailabilityBlockStartUTC, row.AvailabilityBlockEndUTC

	case eventID != "":
		evTeacher, evStart, evEnd, err := service.DecodeMergedEventID(eventID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
		}
		if evTeacher != teacherID {
			return helper.JsonError(c, fiber.StatusForbidden, "event_id bukan milik Anda")
		}
		start, end = evStart, evEnd

	default:
		start, end, err = helper.ParseUTCRange(fromStr, toStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	var deleted int64
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		n, err := service.DeleteBlocksInRange(tx, teacherID, start, end)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus availability")
	}

	return helper.JsonDeleted(c, "Availability dihapus", fiber.Map{
		"blocks_deleted": deleted,
	})
}
