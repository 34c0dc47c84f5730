// file: internals/features/lessons/offers/service/active_flag_test.go
package service

import (
	"encoding/json"
	"testing"
	"time"

	"guruku_backend/internals/features/lessons/offers/model"
)

func TestCoerceActiveFlag(t *testing.T) {
	yes, no := true, false
	onStr, offStr := "yes", "off"

	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil = aktif", nil, true},
		{"bool true", true, true},
		{"bool false", false, false},
		{"*bool nil = aktif", (*bool)(nil), true},
		{"*bool true", &yes, true},
		{"*bool false", &no, false},

		{"int 1", 1, true},
		{"int 0", 0, false},
		{"int64 -1", int64(-1), true},
		{"float64 1.0", 1.0, true},
		{"float64 0.0", 0.0, false},
		{"json.Number 1", json.Number("1"), true},
		{"json.Number 0", json.Number("0"), false},

		{"string true", "true", true},
		{"string TRUE", "TRUE", true},
		{"string false", "false", false},
		{"string 0", "0", false},
		{"string no", "no", false},
		{"string off", "off", false},
		{"string OFF dengan spasi", "  OFF ", false},
		{"string 1", "1", true},
		{"string yes", "yes", true},
		{"string sembarang", "banana", true},
		{"string kosong", "", true},
		{"*string nil = aktif", (*string)(nil), true},
		{"*string yes", &onStr, true},
		{"*string off", &offStr, false},

		{"tipe tak dikenal", struct{}{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CoerceActiveFlag(tc.in); got != tc.want {
				t.Errorf("CoerceActiveFlag(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestOfferIsActive(t *testing.T) {
	yes := true

	if OfferIsActive(nil) {
		t.Error("nil offer tidak boleh aktif")
	}

	deletedAt := time.Now().UTC()
	deleted := &model.LessonOfferModel{
		LessonOfferActive:    &yes,
		LessonOfferDeletedAt: &deletedAt,
	}
	if OfferIsActive(deleted) {
		t.Error("offer soft-deleted tidak boleh aktif")
	}

	if !OfferIsActive(&model.LessonOfferModel{}) {
		t.Error("flag NULL harus aktif (row lama)")
	}
}

func TestActiveDurations(t *testing.T) {
	off := false
	offers := []model.LessonOfferModel{
		{LessonOfferDurationMinutes: 30},                          // NULL flag → aktif
		{LessonOfferDurationMinutes: 45, LessonOfferActive: &off}, // nonaktif
		{LessonOfferDurationMinutes: 60},                          // aktif
		{LessonOfferDurationMinutes: 90},                          // durasi tak dikenal
	}

	got := ActiveDurations(offers)
	if !got[30] || got[45] || !got[60] || got[90] {
		t.Errorf("ActiveDurations = %v, want {30:true, 60:true}", got)
	}
}
