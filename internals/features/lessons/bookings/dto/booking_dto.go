// file: internals/features/lessons/bookings/dto/booking_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"guruku_backend/internals/features/lessons/bookings/model"
)

/* =========================================================
   CREATE
========================================================= */

type CreateBookingRequest struct {
	BookingTeacherID       uuid.UUID `json:"booking_teacher_id" validate:"required"`
	BookingStart           string    `json:"booking_start"      validate:"required"`
	BookingDurationMinutes int       `json:"booking_duration_minutes" validate:"required"`
}

/* =========================================================
   RESPONSE
========================================================= */

type BookingResponse struct {
	BookingID              uuid.UUID           `json:"booking_id"`
	BookingTeacherID       uuid.UUID           `json:"booking_teacher_id"`
	BookingStudentID       uuid.UUID           `json:"booking_student_id"`
	BookingStartUTC        time.Time           `json:"booking_start_utc"`
	BookingEndUTC          time.Time           `json:"booking_end_utc"`
	BookingDurationMinutes int                 `json:"booking_duration_minutes"`
	BookingPriceCents      int                 `json:"booking_price_cents"`
	BookingCurrency        string              `json:"booking_currency"`
	BookingStatus          model.BookingStatus `json:"booking_status"`
	BookingCheckoutURL     *string             `json:"booking_checkout_url,omitempty"`
	BookingSnapToken       *string             `json:"booking_snap_token,omitempty"`
	BookingCreatedAt       time.Time           `json:"booking_created_at"`
}

func FromModelBooking(m *model.BookingModel) *BookingResponse {
	if m == nil {
		return nil
	}
	return &BookingResponse{
		BookingID:              m.BookingID,
		BookingTeacherID:       m.BookingTeacherID,
		BookingStudentID:       m.BookingStudentID,
		BookingStartUTC:        m.BookingStartUTC,
		BookingEndUTC:          m.BookingEndUTC,
		BookingDurationMinutes: m.BookingDurationMinutes,
		BookingPriceCents:      m.BookingPriceCents,
		BookingCurrency:        m.BookingCurrency,
		BookingStatus:          m.BookingStatus,
		BookingCheckoutURL:     m.BookingCheckoutURL,
		BookingSnapToken:       m.BookingSnapToken,
		BookingCreatedAt:       m.BookingCreatedAt,
	}
}
