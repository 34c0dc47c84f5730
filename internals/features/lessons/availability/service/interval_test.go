// file: internals/features/lessons/availability/service/interval_test.go
package service

import (
	"errors"
	"testing"
	"time"
)

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v.UTC()
}

func iv(t *testing.T, start, end string) Interval {
	t.Helper()
	return Interval{Start: ts(t, start), End: ts(t, end)}
}

func sameIntervals(a, b []Interval) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Start.Equal(b[i].Start) || !a[i].End.Equal(b[i].End) {
			return false
		}
	}
	return true
}

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name string
		in   []Interval
		want []Interval
	}{
		{
			name: "kosong",
			in:   nil,
			want: nil,
		},
		{
			name: "disjoint tetap terpisah",
			in: []Interval{
				iv(t, "2026-09-02T10:00:00Z", "2026-09-02T10:30:00Z"),
				iv(t, "2026-09-02T12:00:00Z", "2026-09-02T12:30:00Z"),
			},
			want: []Interval{
				iv(t, "2026-09-02T10:00:00Z", "2026-09-02T10:30:00Z"),
				iv(t, "2026-09-02T12:00:00Z", "2026-09-02T12:30:00Z"),
			},
		},
		{
			name: "overlap digabung",
			in: []Interval{
				iv(t, "2026-09-02T10:00:00Z", "2026-09-02T11:00:00Z"),
				iv(t, "2026-09-02T10:30:00Z", "2026-09-02T11:30:00Z"),
			},
			want: []Interval{
				iv(t, "2026-09-02T10:00:00Z", "2026-09-02T11:30:00Z"),
			},
		},
		{
			name: "touching ikut digabung",
			in: []Interval{
				iv(t, "2026-09-02T10:00:00Z", "2026-09-02T10:30:00Z"),
				iv(t, "2026-09-02T10:30:00Z", "2026-09-02T11:00:00Z"),
			},
			want: []Interval{
				iv(t, "2026-09-02T10:00:00Z", "2026-09-02T11:00:00Z"),
			},
		},
		{
			name: "input tidak terurut",
			in: []Interval{
				iv(t, "2026-09-02T12:00:00Z", "2026-09-02T12:30:00Z"),
				iv(t, "2026-09-02T09:00:00Z", "2026-09-02T10:00:00Z"),
				iv(t, "2026-09-02T09:30:00Z", "2026-09-02T11:00:00Z"),
			},
			want: []Interval{
				iv(t, "2026-09-02T09:00:00Z", "2026-09-02T11:00:00Z"),
				iv(t, "2026-09-02T12:00:00Z", "2026-09-02T12:30:00Z"),
			},
		},
		{
			name: "interval termuat di interval lain",
			in: []Interval{
				iv(t, "2026-09-02T09:00:00Z", "2026-09-02T12:00:00Z"),
				iv(t, "2026-09-02T10:00:00Z", "2026-09-02T10:30:00Z"),
			},
			want: []Interval{
				iv(t, "2026-09-02T09:00:00Z", "2026-09-02T12:00:00Z"),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MergeIntervals(tc.in)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !sameIntervals(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}

			// idempoten: merge hasil merge = hasil yang sama
			again, err := MergeIntervals(got)
			if err != nil {
				t.Fatalf("merge ulang err: %v", err)
			}
			if !sameIntervals(again, got) {
				t.Errorf("tidak idempoten: %v vs %v", again, got)
			}
		})
	}
}

func TestMergeIntervalsInvalid(t *testing.T) {
	bad := []Interval{
		{Start: ts(t, "2026-09-02T11:00:00Z"), End: ts(t, "2026-09-02T10:00:00Z")},
	}
	if _, err := MergeIntervals(bad); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("want ErrInvalidInterval, got %v", err)
	}
}

func TestSubtractIntervals(t *testing.T) {
	tests := []struct {
		name string
		base []Interval
		cut  []Interval
		want []Interval
	}{
		{
			name: "cut di tengah membelah dua",
			base: []Interval{iv(t, "2026-09-02T09:00:00Z", "2026-09-02T12:00:00Z")},
			cut:  []Interval{iv(t, "2026-09-02T10:00:00Z", "2026-09-02T11:00:00Z")},
			want: []Interval{
				iv(t, "2026-09-02T09:00:00Z", "2026-09-02T10:00:00Z"),
				iv(t, "2026-09-02T11:00:00Z", "2026-09-02T12:00:00Z"),
			},
		},
		{
			name: "cut menutup seluruh base",
			base: []Interval{iv(t, "2026-09-02T10:00:00Z", "2026-09-02T11:00:00Z")},
			cut:  []Interval{iv(t, "2026-09-02T09:00:00Z", "2026-09-02T12:00:00Z")},
			want: nil,
		},
		{
			name: "cut tidak beririsan",
			base: []Interval{iv(t, "2026-09-02T09:00:00Z", "2026-09-02T10:00:00Z")},
			cut:  []Interval{iv(t, "2026-09-02T11:00:00Z", "2026-09-02T12:00:00Z")},
			want: []Interval{iv(t, "2026-09-02T09:00:00Z", "2026-09-02T10:00:00Z")},
		},
		{
			name: "cut touching tidak memotong",
			base: []Interval{iv(t, "2026-09-02T09:00:00Z", "2026-09-02T10:00:00Z")},
			cut:  []Interval{iv(t, "2026-09-02T10:00:00Z", "2026-09-02T11:00:00Z")},
			want: []Interval{iv(t, "2026-09-02T09:00:00Z", "2026-09-02T10:00:00Z")},
		},
		{
			name: "potong tepi kiri",
			base: []Interval{iv(t, "2026-09-02T09:00:00Z", "2026-09-02T11:00:00Z")},
			cut:  []Interval{iv(t, "2026-09-02T08:00:00Z", "2026-09-02T09:30:00Z")},
			want: []Interval{iv(t, "2026-09-02T09:30:00Z", "2026-09-02T11:00:00Z")},
		},
		{
			name: "beberapa cut terhadap beberapa base",
			base: []Interval{
				iv(t, "2026-09-02T09:00:00Z", "2026-09-02T10:00:00Z"),
				iv(t, "2026-09-02T11:00:00Z", "2026-09-02T12:00:00Z"),
			},
			cut: []Interval{
				iv(t, "2026-09-02T09:30:00Z", "2026-09-02T11:30:00Z"),
			},
			want: []Interval{
				iv(t, "2026-09-02T09:00:00Z", "2026-09-02T09:30:00Z"),
				iv(t, "2026-09-02T11:30:00Z", "2026-09-02T12:00:00Z"),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SubtractIntervals(tc.base, tc.cut)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !sameIntervals(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSubtractIntervalsInvalid(t *testing.T) {
	good := []Interval{iv(t, "2026-09-02T09:00:00Z", "2026-09-02T10:00:00Z")}
	bad := []Interval{{Start: ts(t, "2026-09-02T11:00:00Z"), End: ts(t, "2026-09-02T10:00:00Z")}}

	if _, err := SubtractIntervals(bad, good); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("base invalid: want ErrInvalidInterval, got %v", err)
	}
	if _, err := SubtractIntervals(good, bad); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("cut invalid: want ErrInvalidInterval, got %v", err)
	}
}

func TestOverlaps(t *testing.T) {
	a := iv(t, "2026-09-02T09:00:00Z", "2026-09-02T10:00:00Z")
	touching := iv(t, "2026-09-02T10:00:00Z", "2026-09-02T11:00:00Z")
	inside := iv(t, "2026-09-02T09:15:00Z", "2026-09-02T09:45:00Z")

	if Overlaps(a, touching) {
		t.Error("touching tidak boleh dihitung overlap")
	}
	if !Overlaps(a, inside) {
		t.Error("interval di dalam harus overlap")
	}
}
