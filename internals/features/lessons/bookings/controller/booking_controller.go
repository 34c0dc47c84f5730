// file: internals/features/lessons/bookings/controller/booking_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guruku_backend/internals/configs"
	"guruku_backend/internals/features/lessons/bookings/dto"
	"guruku_backend/internals/features/lessons/bookings/model"
	"guruku_backend/internals/features/lessons/bookings/service"
	userModel "guruku_backend/internals/features/users/user/model"
	helper "guruku_backend/internals/helpers"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

/* =========================================================
   POST /api/u/bookings
   Checkout: seluruh protokol reservasi jalan di service.ReserveSlot
   dalam satu transaksi. Pemetaan error → HTTP:
     durasi/grid salah            → 400
     offer aktif tidak ada        → 422
     slot tidak tersedia          → 409
     gateway gagal                → 502 (transaksi sudah rollback)
========================================================= */

func (ctrl *BookingController) CreateBooking(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	start, err := helper.ParseStrictUTC(req.BookingStart)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "booking_start: "+err.Error())
	}

	// data customer untuk sesi checkout gateway
	var student userModel.UserModel
	if err := ctrl.DB.Where("id = ?", studentID).First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "akun tidak ditemukan")
	}

	result, err := service.ReserveSlot(c.Context(), ctrl.DB, service.ReserveInput{
		TeacherID:       req.BookingTeacherID,
		StudentID:       studentID,
		StudentName:     student.UserName,
		StudentEmail:    student.Email,
		Start:           start,
		DurationMinutes: req.BookingDurationMinutes,
		SkipPayment:     configs.PaymentDisabled,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedDuration),
			errors.Is(err, service.ErrStartOffGrid):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNoActiveOffer):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrSlotUnavailable):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		case strings.Contains(err.Error(), "midtrans"):
			return helper.JsonError(c, fiber.StatusBadGateway, "checkout gateway gagal, coba lagi")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat booking")
		}
	}

	return helper.JsonCreated(c, "Booking dibuat", fiber.Map{
		"booking":      dto.FromModelBooking(&result.Booking),
		"snap_token":   result.SnapToken,
		"redirect_url": result.RedirectURL,
	})
}

/* =========================================================
   POST /api/u/bookings/:id/cancel
========================================================= */

func (ctrl *BookingController) CancelBooking(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	restored, err := service.CancelBooking(c.Context(), ctrl.DB, bookingID, studentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotBookingOwner):
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrBookingNotCancelable):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membatalkan booking")
		}
	}

	return helper.JsonOK(c, "Booking dibatalkan", fiber.Map{
		"booking_id":      bookingID,
		"blocks_restored": restored,
	})
}

/* =========================================================
   GET /api/u/bookings — booking milik student
========================================================= */

func (ctrl *BookingController) ListMyBookings(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	q := ctrl.DB.Where("booking_student_id = ?", studentID)
	if status := c.Query("status"); status != "" {
		q = q.Where("booking_status = ?", status)
	}

	var rows []model.BookingModel
	if err := q.Order("booking_start_utc DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil booking")
	}

	out := make([]*dto.BookingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelBooking(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

/* =========================================================
   GET /api/t/bookings — booking yang masuk ke teacher
========================================================= */

func (ctrl *BookingController) ListIncomingBookings(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	q := ctrl.DB.Where("booking_teacher_id = ?", teacherID)
	if status := c.Query("status"); status != "" {
		q = q.Where("booking_status = ?", status)
	}

	var rows []model.BookingModel
	if err := q.Order("booking_start_utc ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil booking")
	}

	out := make([]*dto.BookingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelBooking(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

/* =========================================================
   GET /api/u/bookings/:id — detail, hanya pihak yang terlibat
========================================================= */

func (ctrl *BookingController) GetBookingDetail(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var b model.BookingModel
	if err := ctrl.DB.Where("booking_id = ?", bookingID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "booking tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil booking")
	}
	if b.BookingStudentID != userID && b.BookingTeacherID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "booking bukan milik Anda")
	}

	return helper.JsonOK(c, "OK", dto.FromModelBooking(&b))
}
