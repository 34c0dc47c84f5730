// file: internals/features/lessons/offers/model/lesson_offer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Durasi lesson yang dikenali platform (menit).
const (
	Duration30 = 30
	Duration45 = 45
	Duration60 = 60
)

func IsSupportedDuration(min int) bool {
	return min == Duration30 || min == Duration45 || min == Duration60
}

/* ================================
   MODEL: lesson_offers
   Maksimal satu offer per (teacher, duration).
================================ */

type LessonOfferModel struct {
	LessonOfferID uuid.UUID `json:"lesson_offer_id" gorm:"column:lesson_offer_id;type:uuid;default:gen_random_uuid();primaryKey"`

	LessonOfferTeacherID uuid.UUID `json:"lesson_offer_teacher_id" gorm:"column:lesson_offer_teacher_id;type:uuid;not null;uniqueIndex:uq_lesson_offer_teacher_duration"`

	LessonOfferDurationMinutes int `json:"lesson_offer_duration_minutes" gorm:"column:lesson_offer_duration_minutes;type:int;not null;uniqueIndex:uq_lesson_offer_teacher_duration;check:lesson_offer_duration_minutes IN (30,45,60)"`

	LessonOfferPriceCents int    `json:"lesson_offer_price_cents" gorm:"column:lesson_offer_price_cents;type:int;not null;check:lesson_offer_price_cents>=0"`
	LessonOfferCurrency   string `json:"lesson_offer_currency"    gorm:"column:lesson_offer_currency;type:varchar(8);not null;default:IDR"`

	// NULL = aktif (row lama sebelum kolom ini ada). Koersi toleran lewat
	// CoerceActiveFlag di service.
	LessonOfferActive *bool `json:"lesson_offer_active" gorm:"column:lesson_offer_active;type:boolean"`

	LessonOfferCreatedAt time.Time  `json:"lesson_offer_created_at" gorm:"column:lesson_offer_created_at;type:timestamptz;not null;default:now()"`
	LessonOfferUpdatedAt time.Time  `json:"lesson_offer_updated_at" gorm:"column:lesson_offer_updated_at;type:timestamptz;not null;default:now()"`
	LessonOfferDeletedAt *time.Time `json:"lesson_offer_deleted_at" gorm:"column:lesson_offer_deleted_at;type:timestamptz"`
}

func (LessonOfferModel) TableName() string { return "lesson_offers" }
