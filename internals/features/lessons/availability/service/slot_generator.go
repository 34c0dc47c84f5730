// file: internals/features/lessons/availability/service/slot_generator.go
package service

import (
	"fmt"
	"sort"
	"time"

	avModel "guruku_backend/internals/features/lessons/availability/model"
	offerModel "guruku_backend/internals/features/lessons/offers/model"
	offerSvc "guruku_backend/internals/features/lessons/offers/service"
)

// Grid start slot kandidat: 15 menit. Lebih rapat dari grid storage 30 menit
// supaya slot 45 menit bisa mulai di luar batas 30 menit.
const SlotStartGridMinutes = 15

type FreeSlot struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
}

/* =========================================================
   Slot Generator
   Expand rule mingguan + offer aktif → kandidat slot untuk DISPLAY.
   Ini bukan sumber kebenaran booking: hanya instant yang sudah
   dimaterialisasi sebagai availability_blocks yang bisa dibooking.
========================================================= */

// GenerateFreeSlots mengembalikan kandidat slot di [from, to), terurut
// by start lalu durasi, tanpa duplikat (start,end,duration).
func GenerateFreeSlots(
	from, to time.Time,
	rules []avModel.AvailabilityRuleModel,
	offers []offerModel.LessonOfferModel,
) ([]FreeSlot, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("range tidak valid: from harus sebelum to")
	}

	durations := offerSvc.ActiveDurations(offers)
	if len(rules) == 0 || len(durations) == 0 {
		return nil, nil
	}

	from = from.UTC()
	to = to.UTC()

	var windows []Interval
	for i := range rules {
		rule := &rules[i]
		if rule.AvailabilityRuleDeletedAt != nil {
			continue
		}
		ws, err := RuleWindowsWithin(rule, from, to)
		if err != nil {
			return nil, err
		}
		windows = append(windows, ws...)
	}

	return EnumerateSlots(windows, durations), nil
}

// RuleWindowsWithin menghitung window UTC konkret yang dihasilkan satu rule
// di dalam [from, to): jalan per hari kalender di timezone rule, cek weekday
// lokal, konversi [startMin,endMin) lokal → UTC, lalu clip ke validity
// window rule dan ke range query.
func RuleWindowsWithin(rule *avModel.AvailabilityRuleModel, from, to time.Time) ([]Interval, error) {
	if rule.AvailabilityRuleStartMinute < 0 ||
		rule.AvailabilityRuleStartMinute >= rule.AvailabilityRuleEndMinute ||
		rule.AvailabilityRuleEndMinute > 1440 {
		return nil, fmt.Errorf("rule %s: window menit tidak valid [%d,%d)",
			rule.AvailabilityRuleID, rule.AvailabilityRuleStartMinute, rule.AvailabilityRuleEndMinute)
	}

	loc, err := time.LoadLocation(rule.AvailabilityRuleTimezone)
	if err != nil {
		return nil, fmt.Errorf("rule %s: timezone %q tidak dikenal: %w",
			rule.AvailabilityRuleID, rule.AvailabilityRuleTimezone, err)
	}

	// clip range query ke validity window dulu
	lo := from
	if rule.AvailabilityRuleValidFrom.After(lo) {
		lo = rule.AvailabilityRuleValidFrom
	}
	hi := to
	if rule.AvailabilityRuleValidTo != nil && rule.AvailabilityRuleValidTo.Before(hi) {
		hi = *rule.AvailabilityRuleValidTo
	}
	if !lo.Before(hi) {
		return nil, nil
	}

	var out []Interval

	// mundur satu hari: window hari lokal sebelumnya bisa menjorok masuk range
	localFrom := lo.In(loc)
	day := time.Date(localFrom.Year(), localFrom.Month(), localFrom.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -1)
	localTo := hi.In(loc)

	for !day.After(localTo) {
		if int(day.Weekday()) == rule.AvailabilityRuleWeekday {
			// offset menit dari tengah malam lokal; Add (bukan jam+menit
			// literal) supaya transisi DST tidak menggeser durasi window
			winStart := day.Add(time.Duration(rule.AvailabilityRuleStartMinute) * time.Minute).UTC()
			winEnd := day.Add(time.Duration(rule.AvailabilityRuleEndMinute) * time.Minute).UTC()

			if winStart.Before(lo) {
				winStart = lo
			}
			if winEnd.After(hi) {
				winEnd = hi
			}
			if winStart.Before(winEnd) {
				out = append(out, Interval{Start: winStart, End: winEnd})
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return out, nil
}

// EnumerateSlots menjalankan fan-out durasi di atas window: start slot di
// grid 15 menit, emit (t, t+durasi) selama muat di window. Dipakai generator
// (window dari rule) dan listing free-slot (window dari merge block store).
func EnumerateSlots(windows []Interval, durations map[int]bool) []FreeSlot {
	if len(windows) == 0 || len(durations) == 0 {
		return nil
	}

	grid := time.Duration(SlotStartGridMinutes) * time.Minute

	seen := map[string]struct{}{}
	var out []FreeSlot
	for _, w := range windows {
		start := w.Start.UTC().Truncate(grid)
		if start.Before(w.Start) {
			start = start.Add(grid)
		}
		for t := start; t.Before(w.End); t = t.Add(grid) {
			for dur := range durations {
				end := t.Add(time.Duration(dur) * time.Minute)
				if end.After(w.End) {
					continue
				}
				key := fmt.Sprintf("%d|%d", t.Unix(), dur)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, FreeSlot{Start: t, End: end, DurationMinutes: dur})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].DurationMinutes < out[j].DurationMinutes
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
