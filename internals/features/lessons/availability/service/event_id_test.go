// file: internals/features/lessons/availability/service/event_id_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMergedEventIDRoundtrip(t *testing.T) {
	teacherID := uuid.New()
	start := ts(t, "2026-09-02T10:00:00Z")
	end := ts(t, "2026-09-02T11:30:00Z")

	id := EncodeMergedEventID(teacherID, start, end)

	gotTeacher, gotStart, gotEnd, err := DecodeMergedEventID(id)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if gotTeacher != teacherID {
		t.Errorf("teacher = %s, want %s", gotTeacher, teacherID)
	}
	if !gotStart.Equal(start) || !gotEnd.Equal(end) {
		t.Errorf("range = [%s, %s), want [%s, %s)",
			gotStart.Format(time.RFC3339), gotEnd.Format(time.RFC3339),
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
}

func TestDecodeMergedEventIDRejects(t *testing.T) {
	teacherID := uuid.New()
	tests := []struct {
		name string
		in   string
	}{
		{"kosong", ""},
		{"prefix salah", "xxx~" + teacherID.String() + "~2026-09-02T10:00:00Z~2026-09-02T11:00:00Z"},
		{"kurang bagian", "avl~" + teacherID.String() + "~2026-09-02T10:00:00Z"},
		{"uuid rusak", "avl~not-a-uuid~2026-09-02T10:00:00Z~2026-09-02T11:00:00Z"},
		{"timestamp rusak", "avl~" + teacherID.String() + "~bukan-waktu~2026-09-02T11:00:00Z"},
		{"range terbalik", "avl~" + teacherID.String() + "~2026-09-02T11:00:00Z~2026-09-02T10:00:00Z"},
		{"range kosong", "avl~" + teacherID.String() + "~2026-09-02T10:00:00Z~2026-09-02T10:00:00Z"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, _, err := DecodeMergedEventID(tc.in); !errors.Is(err, ErrBadMergedEventID) {
				t.Errorf("want ErrBadMergedEventID, got %v", err)
			}
		})
	}
}
