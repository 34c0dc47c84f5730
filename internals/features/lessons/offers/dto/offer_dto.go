// file: internals/features/lessons/offers/dto/offer_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"guruku_backend/internals/features/lessons/offers/model"
	"guruku_backend/internals/features/lessons/offers/service"
)

/* =========================================================
   CREATE / UPSERT
========================================================= */

type UpsertLessonOfferRequest struct {
	LessonOfferDurationMinutes int    `json:"lesson_offer_duration_minutes" validate:"required,oneof=30 45 60"`
	LessonOfferPriceCents      int    `json:"lesson_offer_price_cents"      validate:"gte=0"`
	LessonOfferCurrency        string `json:"lesson_offer_currency"`

	// Sengaja any: klien lama mengirim flag ini sebagai bool/angka/string.
	// Koersi HANYA lewat service.CoerceActiveFlag.
	LessonOfferActive any `json:"lesson_offer_active"`
}

func (r *UpsertLessonOfferRequest) ToModel(teacherID uuid.UUID) *model.LessonOfferModel {
	active := service.CoerceActiveFlag(r.LessonOfferActive)
	currency := r.LessonOfferCurrency
	if currency == "" {
		currency = "IDR"
	}
	now := time.Now().UTC()
	return &model.LessonOfferModel{
		LessonOfferTeacherID:       teacherID,
		LessonOfferDurationMinutes: r.LessonOfferDurationMinutes,
		LessonOfferPriceCents:      r.LessonOfferPriceCents,
		LessonOfferCurrency:        currency,
		LessonOfferActive:          &active,
		LessonOfferCreatedAt:       now,
		LessonOfferUpdatedAt:       now,
	}
}

/* =========================================================
   RESPONSE
========================================================= */

type LessonOfferResponse struct {
	LessonOfferID              uuid.UUID `json:"lesson_offer_id"`
	LessonOfferTeacherID       uuid.UUID `json:"lesson_offer_teacher_id"`
	LessonOfferDurationMinutes int       `json:"lesson_offer_duration_minutes"`
	LessonOfferPriceCents      int       `json:"lesson_offer_price_cents"`
	LessonOfferCurrency        string    `json:"lesson_offer_currency"`
	LessonOfferActive          bool      `json:"lesson_offer_active"`
	LessonOfferCreatedAt       time.Time `json:"lesson_offer_created_at"`
}

func FromModelLessonOffer(m *model.LessonOfferModel) *LessonOfferResponse {
	if m == nil {
		return nil
	}
	return &LessonOfferResponse{
		LessonOfferID:              m.LessonOfferID,
		LessonOfferTeacherID:       m.LessonOfferTeacherID,
		LessonOfferDurationMinutes: m.LessonOfferDurationMinutes,
		LessonOfferPriceCents:      m.LessonOfferPriceCents,
		LessonOfferCurrency:        m.LessonOfferCurrency,
		LessonOfferActive:          service.OfferIsActive(m),
		LessonOfferCreatedAt:       m.LessonOfferCreatedAt,
	}
}
