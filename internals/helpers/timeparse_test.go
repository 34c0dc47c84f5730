// file: internals/helpers/timeparse_test.go
package helper

import (
	"errors"
	"testing"
	"time"
)

func TestParseStrictUTC(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "UTC eksplisit", in: "2026-09-02T10:00:00Z", want: "2026-09-02T10:00:00Z"},
		{name: "offset positif dinormalisasi", in: "2026-09-02T17:00:00+07:00", want: "2026-09-02T10:00:00Z"},
		{name: "offset negatif dinormalisasi", in: "2026-09-02T05:00:00-05:00", want: "2026-09-02T10:00:00Z"},
		{name: "dengan spasi pinggir", in: "  2026-09-02T10:00:00Z  ", want: "2026-09-02T10:00:00Z"},
		{name: "naive ditolak", in: "2026-09-02T10:00:00", wantErr: ErrNaiveTimestamp},
		{name: "kosong ditolak", in: ""},
		{name: "format rusak ditolak", in: "02/09/2026 10:00"},
		{name: "tanggal saja ditolak", in: "2026-09-02"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStrictUTC(tc.in)
			if tc.want == "" {
				if err == nil {
					t.Fatalf("want error, got %v", got)
				}
				if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			want, _ := time.Parse(time.RFC3339, tc.want)
			if !got.Equal(want) {
				t.Errorf("got %s, want %s", got.Format(time.RFC3339), tc.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("hasil harus UTC, got %v", got.Location())
			}
		})
	}
}

func TestParseUTCRange(t *testing.T) {
	from, to, err := ParseUTCRange("2026-09-02T10:00:00Z", "2026-09-02T12:00:00Z")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !from.Before(to) {
		t.Error("from harus sebelum to")
	}

	if _, _, err := ParseUTCRange("2026-09-02T12:00:00Z", "2026-09-02T10:00:00Z"); err == nil {
		t.Error("range terbalik harus error")
	}
	if _, _, err := ParseUTCRange("2026-09-02T10:00:00Z", "2026-09-02T10:00:00Z"); err == nil {
		t.Error("range kosong harus error")
	}
	if _, _, err := ParseUTCRange("2026-09-02T10:00:00", "2026-09-02T12:00:00Z"); !errors.Is(err, ErrNaiveTimestamp) {
		t.Errorf("from naive: want ErrNaiveTimestamp, got %v", err)
	}
}
