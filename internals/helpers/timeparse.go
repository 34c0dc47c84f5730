// file: internals/helpers/timeparse.go
package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kebijakan boundary: timestamp WAJIB menyertakan offset eksplisit
// (Z atau +hh:mm). Timestamp "naive" tanpa zona ditolak, tidak pernah
// ditebak sebagai UTC/lokal. Hasil selalu dinormalisasi ke UTC.

var ErrNaiveTimestamp = errors.New("timestamp tanpa offset zona ditolak, gunakan ISO-8601 dengan Z/+hh:mm")

// ParseStrictUTC menerima RFC3339 (dengan offset) dan mengembalikan UTC.
func ParseStrictUTC(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("timestamp kosong")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// bedakan pesan untuk kasus naive yang paling sering (tanpa offset)
		if _, err2 := time.Parse("2006-01-02T15:04:05", s); err2 == nil {
			return time.Time{}, ErrNaiveTimestamp
		}
		return time.Time{}, fmt.Errorf("timestamp tidak valid (RFC3339): %w", err)
	}
	return t.UTC(), nil
}

// ParseUTCRange memparse pasangan from/to dan memastikan from < to.
func ParseUTCRange(fromStr, toStr string) (from, to time.Time, err error) {
	from, err = ParseStrictUTC(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("from: %w", err)
	}
	to, err = ParseStrictUTC(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("to: %w", err)
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, errors.New("range tidak valid: from harus sebelum to")
	}
	return from, to, nil
}
