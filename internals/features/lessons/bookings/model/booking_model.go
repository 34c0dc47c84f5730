// file: internals/features/lessons/bookings/model/booking_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ================================
   ENUM mirror (harus cocok dgn DB)
================================ */

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusPaid     BookingStatus = "paid"
	BookingStatusCanceled BookingStatus = "canceled"
	BookingStatusRefunded BookingStatus = "refunded"
)

// Transisi yang diizinkan state machine booking:
//
//	pending → paid      (konfirmasi payment)
//	pending → canceled  (cancel student / payment gagal)
//	paid    → refunded  (flow refund terpisah)
//
// canceled & refunded terminal.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingStatusPending:
		return to == BookingStatusPaid || to == BookingStatusCanceled
	case BookingStatusPaid:
		return to == BookingStatusRefunded
	default:
		return false
	}
}

/* ================================
   MODEL: bookings
   Tidak pernah dihapus fisik (audit).
================================ */

type BookingModel struct {
	BookingID uuid.UUID `json:"booking_id" gorm:"column:booking_id;type:uuid;default:gen_random_uuid();primaryKey"`

	BookingTeacherID uuid.UUID `json:"booking_teacher_id" gorm:"column:booking_teacher_id;type:uuid;not null;index"`
	BookingStudentID uuid.UUID `json:"booking_student_id" gorm:"column:booking_student_id;type:uuid;not null;index"`

	BookingStartUTC        time.Time `json:"booking_start_utc" gorm:"column:booking_start_utc;type:timestamptz;not null"`
	BookingEndUTC          time.Time `json:"booking_end_utc"   gorm:"column:booking_end_utc;type:timestamptz;not null"`
	BookingDurationMinutes int       `json:"booking_duration_minutes" gorm:"column:booking_duration_minutes;type:int;not null"`

	// Harga dibekukan dari offer saat reservasi
	BookingPriceCents int    `json:"booking_price_cents" gorm:"column:booking_price_cents;type:int;not null;check:booking_price_cents>=0"`
	BookingCurrency   string `json:"booking_currency"    gorm:"column:booking_currency;type:varchar(8);not null;default:IDR"`

	BookingStatus BookingStatus `json:"booking_status" gorm:"column:booking_status;type:varchar(16);not null;default:'pending'"`

	// Referensi gateway (NULL sebelum checkout / kalau payment di-skip)
	BookingSnapToken        *string `json:"booking_snap_token"        gorm:"column:booking_snap_token;type:text"`
	BookingCheckoutURL      *string `json:"booking_checkout_url"      gorm:"column:booking_checkout_url;type:text"`
	BookingPaymentReference *string `json:"booking_payment_reference" gorm:"column:booking_payment_reference;type:text"`

	BookingPaidAt     *time.Time `json:"booking_paid_at"     gorm:"column:booking_paid_at;type:timestamptz"`
	BookingCanceledAt *time.Time `json:"booking_canceled_at" gorm:"column:booking_canceled_at;type:timestamptz"`

	BookingCreatedAt time.Time `json:"booking_created_at" gorm:"column:booking_created_at;type:timestamptz;not null;default:now()"`
	BookingUpdatedAt time.Time `json:"booking_updated_at" gorm:"column:booking_updated_at;type:timestamptz;not null;default:now()"`
}

func (BookingModel) TableName() string { return "bookings" }
