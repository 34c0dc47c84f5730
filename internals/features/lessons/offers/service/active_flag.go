// file: internals/features/lessons/offers/service/active_flag.go
package service

import (
	"encoding/json"
	"strings"

	"guruku_backend/internals/features/lessons/offers/model"
)

// CoerceActiveFlag adalah SATU-SATUNYA tempat koersi flag aktif offer.
// Tabel kebenaran:
//   - nil / field hilang            → aktif
//   - bool / *bool                  → nilainya (pointer nil → aktif)
//   - angka (int/float/json.Number) → aktif jika bukan nol
//   - string                       → non-aktif hanya untuk
//     {"0","false","no","off"} (case-insensitive, trimmed); sisanya aktif
//   - tipe lain                    → non-aktif
func CoerceActiveFlag(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return t
	case *bool:
		if t == nil {
			return true
		}
		return *t
	case string:
		return activeString(t)
	case *string:
		if t == nil {
			return true
		}
		return activeString(*t)
	case int:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case float32:
		return t != 0
	case float64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return activeString(t.String())
		}
		return f != 0
	default:
		return false
	}
}

func activeString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

// OfferIsActive menerapkan koersi toleran ke row offer.
func OfferIsActive(m *model.LessonOfferModel) bool {
	if m == nil || m.LessonOfferDeletedAt != nil {
		return false
	}
	return CoerceActiveFlag(m.LessonOfferActive)
}

// ActiveDurations mengembalikan set durasi (menit) yang punya offer aktif,
// hanya untuk durasi yang dikenali (30/45/60).
func ActiveDurations(offers []model.LessonOfferModel) map[int]bool {
	out := map[int]bool{}
	for i := range offers {
		o := &offers[i]
		if !model.IsSupportedDuration(o.LessonOfferDurationMinutes) {
			continue
		}
		if OfferIsActive(o) {
			out[o.LessonOfferDurationMinutes] = true
		}
	}
	return out
}
