// file: internals/features/lessons/availability/service/interval.go
package service

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

/* =========================================================
   Interval Algebra
   Interval half-open [Start, End) dalam waktu absolut (UTC).

   Kebijakan input invalid: KEDUA fungsi (merge & subtract) fail
   loudly dengan ErrInvalidInterval. Tidak ada data yang di-drop
   diam-diam; caller memfilter di boundary.
========================================================= */

var ErrInvalidInterval = errors.New("interval tidak valid: end harus setelah start")

type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Valid() bool {
	return !iv.Start.IsZero() && !iv.End.IsZero() && iv.End.After(iv.Start)
}

// Overlaps: dua interval half-open beririsan (touching TIDAK dihitung overlap).
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

func validateIntervals(ivs []Interval) error {
	for i, iv := range ivs {
		if !iv.Valid() {
			return fmt.Errorf("%w (index %d: [%s, %s))", ErrInvalidInterval, i,
				iv.Start.Format(time.RFC3339), iv.End.Format(time.RFC3339))
		}
	}
	return nil
}

// MergeIntervals menggabungkan interval menjadi cover minimal yang terurut
// dan tidak saling overlap. Interval yang menempel (next.Start == cur.End)
// ikut digabung, supaya gap tepat di batas grid tertutup.
// Deterministik dan idempoten: MergeIntervals(MergeIntervals(x)) == MergeIntervals(x).
func MergeIntervals(ivs []Interval) ([]Interval, error) {
	if err := validateIntervals(ivs); err != nil {
		return nil, err
	}
	if len(ivs) == 0 {
		return nil, nil
	}

	sorted := make([]Interval, len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].End.Before(sorted[j].End)
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	out := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		cur := &out[len(out)-1]
		// touching dihitung overlap: next.Start <= cur.End
		if !iv.Start.After(cur.End) {
			if iv.End.After(cur.End) {
				cur.End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}
	return out, nil
}

// SubtractIntervals membuang semua bagian base yang beririsan dengan cut.
// Hasil: nol atau lebih sisa interval, terurut, pairwise disjoint, dan
// selalu subset dari base.
func SubtractIntervals(base, cut []Interval) ([]Interval, error) {
	if err := validateIntervals(base); err != nil {
		return nil, err
	}
	if err := validateIntervals(cut); err != nil {
		return nil, err
	}

	mergedCut, err := MergeIntervals(cut)
	if err != nil {
		return nil, err
	}

	var out []Interval
	for _, b := range base {
		remainders := []Interval{b}
		for _, c := range mergedCut {
			var next []Interval
			for _, r := range remainders {
				if !Overlaps(r, c) {
					next = append(next, r)
					continue
				}
				// sisa kiri
				if r.Start.Before(c.Start) {
					next = append(next, Interval{Start: r.Start, End: c.Start})
				}
				// sisa kanan
				if c.End.Before(r.End) {
					next = append(next, Interval{Start: c.End, End: r.End})
				}
			}
			remainders = next
		}
		out = append(out, remainders...)
	}
	return out, nil
}
