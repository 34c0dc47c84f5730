// file: internals/features/lessons/bookings/service/reservation_test.go
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

func TestRequiredBlockStarts(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		duration int
		want     []string
		wantErr  error
	}{
		{
			name:     "30 menit = satu block",
			start:    "2026-09-02T10:00:00Z",
			duration: 30,
			want:     []string{"2026-09-02T10:00:00Z"},
		},
		{
			name:     "60 menit = dua block berurutan",
			start:    "2026-09-02T10:30:00Z",
			duration: 60,
			want:     []string{"2026-09-02T10:30:00Z", "2026-09-02T11:00:00Z"},
		},
		{
			name:     "45 menit ditolak",
			start:    "2026-09-02T10:00:00Z",
			duration: 45,
			wantErr:  ErrUnsupportedDuration,
		},
		{
			name:     "durasi asing ditolak",
			start:    "2026-09-02T10:00:00Z",
			duration: 90,
			wantErr:  ErrUnsupportedDuration,
		},
		{
			name:     "start off-grid ditolak",
			start:    "2026-09-02T10:15:00Z",
			duration: 30,
			wantErr:  ErrStartOffGrid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RequiredBlockStarts(ts(t, tc.start), tc.duration)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d start, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if !got[i].Equal(ts(t, tc.want[i])) {
					t.Errorf("start %d = %s, want %s", i, got[i].Format(time.RFC3339), tc.want[i])
				}
			}
		})
	}
}

func TestRestoreBlockStarts(t *testing.T) {
	got := RestoreBlockStarts(ts(t, "2026-09-02T10:00:00Z"), ts(t, "2026-09-02T11:00:00Z"))
	want := []string{"2026-09-02T10:00:00Z", "2026-09-02T10:30:00Z"}
	if len(got) != len(want) {
		t.Fatalf("got %d start, want %d", len(got), len(want))
	}
	for i := range got {
		if !got[i].Equal(ts(t, want[i])) {
			t.Errorf("start %d = %s, want %s", i, got[i].Format(time.RFC3339), want[i])
		}
	}

	// booking 30 menit → satu block
	got = RestoreBlockStarts(ts(t, "2026-09-02T10:00:00Z"), ts(t, "2026-09-02T10:30:00Z"))
	if len(got) != 1 || !got[0].Equal(ts(t, "2026-09-02T10:00:00Z")) {
		t.Errorf("booking 30m: got %v", got)
	}
}
