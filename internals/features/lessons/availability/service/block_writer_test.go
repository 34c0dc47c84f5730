// file: internals/features/lessons/availability/service/block_writer_test.go
package service

import (
	"testing"
	"time"
)

func TestAlignToAtomicGrid(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-09-02T10:00:00Z", "2026-09-02T10:00:00Z"},
		{"2026-09-02T10:29:59Z", "2026-09-02T10:00:00Z"},
		{"2026-09-02T10:30:00Z", "2026-09-02T10:30:00Z"},
		{"2026-09-02T10:45:00Z", "2026-09-02T10:30:00Z"},
	}
	for _, tc := range tests {
		got := AlignToAtomicGrid(ts(t, tc.in))
		if !got.Equal(ts(t, tc.want)) {
			t.Errorf("AlignToAtomicGrid(%s) = %s, want %s", tc.in, got.Format(time.RFC3339), tc.want)
		}
	}
}

func TestIsOnAtomicGrid(t *testing.T) {
	if !IsOnAtomicGrid(ts(t, "2026-09-02T10:30:00Z")) {
		t.Error("10:30 harus di grid")
	}
	if IsOnAtomicGrid(ts(t, "2026-09-02T10:15:00Z")) {
		t.Error("10:15 bukan grid 30 menit")
	}
}

func TestDecomposeRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string // start tiap block
	}{
		{
			name:  "range pas dua block",
			start: "2026-09-02T10:00:00Z",
			end:   "2026-09-02T11:00:00Z",
			want:  []string{"2026-09-02T10:00:00Z", "2026-09-02T10:30:00Z"},
		},
		{
			name:  "start off-grid dibulatkan ke bawah",
			start: "2026-09-02T10:10:00Z",
			end:   "2026-09-02T11:00:00Z",
			want:  []string{"2026-09-02T10:00:00Z", "2026-09-02T10:30:00Z"},
		},
		{
			name:  "ekor tidak genap 30 menit di-drop",
			start: "2026-09-02T10:00:00Z",
			end:   "2026-09-02T10:45:00Z",
			want:  []string{"2026-09-02T10:00:00Z"},
		},
		{
			name:  "range lebih pendek dari satu block",
			start: "2026-09-02T10:10:00Z",
			end:   "2026-09-02T10:20:00Z",
			want:  nil,
		},
		{
			name:  "range kosong",
			start: "2026-09-02T10:00:00Z",
			end:   "2026-09-02T10:00:00Z",
			want:  nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DecomposeRange(ts(t, tc.start), ts(t, tc.end))
			if len(got) != len(tc.want) {
				t.Fatalf("got %d block, want %d (%v)", len(got), len(tc.want), got)
			}
			for i, b := range got {
				if !b.Start.Equal(ts(t, tc.want[i])) {
					t.Errorf("block %d start = %s, want %s", i, b.Start.Format(time.RFC3339), tc.want[i])
				}
				if b.End.Sub(b.Start) != 30*time.Minute {
					t.Errorf("block %d lebarnya %v, want 30m", i, b.End.Sub(b.Start))
				}
			}
		})
	}
}
