// file: internals/features/lessons/availability/service/slot_generator_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	avModel "guruku_backend/internals/features/lessons/availability/model"
	offerModel "guruku_backend/internals/features/lessons/offers/model"
)

func activeOffer(teacherID uuid.UUID, duration int) offerModel.LessonOfferModel {
	active := true
	return offerModel.LessonOfferModel{
		LessonOfferID:              uuid.New(),
		LessonOfferTeacherID:       teacherID,
		LessonOfferDurationMinutes: duration,
		LessonOfferPriceCents:      500000,
		LessonOfferCurrency:        "IDR",
		LessonOfferActive:          &active,
	}
}

// Rule Rabu 09:00–12:00 UTC dengan offer aktif 30/45/60: slot mulai di grid
// 15 menit, setiap durasi muat penuh di window.
func TestGenerateFreeSlotsWednesdayWindow(t *testing.T) {
	teacherID := uuid.New()
	rule := avModel.AvailabilityRuleModel{
		AvailabilityRuleID:          uuid.New(),
		AvailabilityRuleTeacherID:   teacherID,
		AvailabilityRuleWeekday:     3, // Rabu
		AvailabilityRuleStartMinute: 9 * 60,
		AvailabilityRuleEndMinute:   12 * 60,
		AvailabilityRuleTimezone:    "UTC",
		AvailabilityRuleValidFrom:   ts(t, "2026-09-01T00:00:00Z"),
	}
	offers := []offerModel.LessonOfferModel{
		activeOffer(teacherID, 30),
		activeOffer(teacherID, 45),
		activeOffer(teacherID, 60),
	}

	// 2026-09-02 adalah Rabu
	from := ts(t, "2026-09-02T00:00:00Z")
	to := ts(t, "2026-09-03T00:00:00Z")

	slots, err := GenerateFreeSlots(from, to, []avModel.AvailabilityRuleModel{rule}, offers)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// window 180 menit:
	//   30m → start 09:00..11:30 step 15 → 11 slot
	//   45m → start 09:00..11:15 step 15 → 10 slot
	//   60m → start 09:00..11:00 step 15 → 9 slot
	counts := map[int]int{}
	for _, s := range slots {
		counts[s.DurationMinutes]++

		if s.Start.Minute()%15 != 0 || s.Start.Second() != 0 {
			t.Errorf("slot %s tidak di grid 15 menit", s.Start.Format(time.RFC3339))
		}
		if got := int(s.End.Sub(s.Start).Minutes()); got != s.DurationMinutes {
			t.Errorf("slot %s: lebar %d != duration %d", s.Start.Format(time.RFC3339), got, s.DurationMinutes)
		}
		if s.Start.Before(ts(t, "2026-09-02T09:00:00Z")) || s.End.After(ts(t, "2026-09-02T12:00:00Z")) {
			t.Errorf("slot [%s, %s) keluar window", s.Start.Format(time.RFC3339), s.End.Format(time.RFC3339))
		}
	}
	if counts[30] != 11 || counts[45] != 10 || counts[60] != 9 {
		t.Errorf("jumlah slot per durasi = %v, want 30:11 45:10 60:9", counts)
	}

	// terurut by start lalu durasi
	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		if cur.Start.Before(prev.Start) {
			t.Fatalf("slot tidak terurut di index %d", i)
		}
		if cur.Start.Equal(prev.Start) && cur.DurationMinutes < prev.DurationMinutes {
			t.Fatalf("durasi tidak terurut di index %d", i)
		}
	}
}

// Dua rule yang overlap tidak boleh menghasilkan slot duplikat.
func TestGenerateFreeSlotsDedupeAcrossRules(t *testing.T) {
	teacherID := uuid.New()
	mk := func(startMin, endMin int) avModel.AvailabilityRuleModel {
		return avModel.AvailabilityRuleModel{
			AvailabilityRuleID:          uuid.New(),
			AvailabilityRuleTeacherID:   teacherID,
			AvailabilityRuleWeekday:     3,
			AvailabilityRuleStartMinute: startMin,
			AvailabilityRuleEndMinute:   endMin,
			AvailabilityRuleTimezone:    "UTC",
			AvailabilityRuleValidFrom:   ts(t, "2026-09-01T00:00:00Z"),
		}
	}
	rules := []avModel.AvailabilityRuleModel{
		mk(9*60, 11*60),
		mk(10*60, 12*60), // overlap 10:00–11:00
	}
	offers := []offerModel.LessonOfferModel{activeOffer(teacherID, 30)}

	slots, err := GenerateFreeSlots(
		ts(t, "2026-09-02T00:00:00Z"), ts(t, "2026-09-03T00:00:00Z"), rules, offers)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	seen := map[string]bool{}
	for _, s := range slots {
		key := s.Start.Format(time.RFC3339)
		if seen[key] {
			t.Errorf("slot duplikat di %s", key)
		}
		seen[key] = true
	}
}

// Rule di timezone non-UTC: window lokal 09:00–10:00 Asia/Jakarta (UTC+7)
// = 02:00–03:00 UTC.
func TestRuleWindowsTimezoneConversion(t *testing.T) {
	rule := avModel.AvailabilityRuleModel{
		AvailabilityRuleID:          uuid.New(),
		AvailabilityRuleTeacherID:   uuid.New(),
		AvailabilityRuleWeekday:     3,
		AvailabilityRuleStartMinute: 9 * 60,
		AvailabilityRuleEndMinute:   10 * 60,
		AvailabilityRuleTimezone:    "Asia/Jakarta",
		AvailabilityRuleValidFrom:   ts(t, "2026-09-01T00:00:00Z"),
	}

	windows, err := RuleWindowsWithin(&rule,
		ts(t, "2026-09-02T00:00:00Z"), ts(t, "2026-09-03T00:00:00Z"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("want 1 window, got %d", len(windows))
	}
	if !windows[0].Start.Equal(ts(t, "2026-09-02T02:00:00Z")) ||
		!windows[0].End.Equal(ts(t, "2026-09-02T03:00:00Z")) {
		t.Errorf("window = [%s, %s), want [02:00Z, 03:00Z)",
			windows[0].Start.Format(time.RFC3339), windows[0].End.Format(time.RFC3339))
	}
}

// Window hari sebelumnya yang menjorok masuk range tetap kebawa (walk
// mundur satu hari).
func TestRuleWindowsCrossMidnightIntoRange(t *testing.T) {
	// Selasa 23:00–24:00 Asia/Jakarta = Selasa 16:00–17:00 UTC.
	// Range query mulai Selasa 16:30 UTC → potongan window harus muncul.
	rule := avModel.AvailabilityRuleModel{
		AvailabilityRuleID:          uuid.New(),
		AvailabilityRuleTeacherID:   uuid.New(),
		AvailabilityRuleWeekday:     2, // Selasa
		AvailabilityRuleStartMinute: 23 * 60,
		AvailabilityRuleEndMinute:   24 * 60,
		AvailabilityRuleTimezone:    "Asia/Jakarta",
		AvailabilityRuleValidFrom:   ts(t, "2026-09-01T00:00:00Z"),
	}

	windows, err := RuleWindowsWithin(&rule,
		ts(t, "2026-09-01T16:30:00Z"), ts(t, "2026-09-02T00:00:00Z"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("want 1 window, got %d (%v)", len(windows), windows)
	}
	if !windows[0].Start.Equal(ts(t, "2026-09-01T16:30:00Z")) ||
		!windows[0].End.Equal(ts(t, "2026-09-01T17:00:00Z")) {
		t.Errorf("window = [%s, %s)", windows[0].Start.Format(time.RFC3339),
			windows[0].End.Format(time.RFC3339))
	}
}

func TestGenerateFreeSlotsNoActiveOffers(t *testing.T) {
	teacherID := uuid.New()
	rule := avModel.AvailabilityRuleModel{
		AvailabilityRuleID:          uuid.New(),
		AvailabilityRuleTeacherID:   teacherID,
		AvailabilityRuleWeekday:     3,
		AvailabilityRuleStartMinute: 9 * 60,
		AvailabilityRuleEndMinute:   12 * 60,
		AvailabilityRuleTimezone:    "UTC",
		AvailabilityRuleValidFrom:   ts(t, "2026-09-01T00:00:00Z"),
	}
	inactive := activeOffer(teacherID, 30)
	off := false
	inactive.LessonOfferActive = &off

	slots, err := GenerateFreeSlots(
		ts(t, "2026-09-02T00:00:00Z"), ts(t, "2026-09-03T00:00:00Z"),
		[]avModel.AvailabilityRuleModel{rule},
		[]offerModel.LessonOfferModel{inactive})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("offer nonaktif tidak boleh menghasilkan slot, got %d", len(slots))
	}
}

func TestGenerateFreeSlotsInvalidRange(t *testing.T) {
	if _, err := GenerateFreeSlots(
		ts(t, "2026-09-03T00:00:00Z"), ts(t, "2026-09-02T00:00:00Z"), nil, nil); err == nil {
		t.Error("from >= to harus error")
	}
}
