// file: internals/features/lessons/availability/service/event_id.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   Merged-event identifier
   Satu format terstruktur: "avl~<teacher_uuid>~<startRFC3339>~<endRFC3339>".
   Separator '~' tidak pernah muncul di UUID maupun ISO-8601, jadi parsing
   cukup split — tidak perlu dua format + regex.
========================================================= */

const mergedEventPrefix = "avl"
const mergedEventSep = "~"

var ErrBadMergedEventID = errors.New("merged event id tidak valid")

func EncodeMergedEventID(teacherID uuid.UUID, start, end time.Time) string {
	return strings.Join([]string{
		mergedEventPrefix,
		teacherID.String(),
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	}, mergedEventSep)
}

func DecodeMergedEventID(s string) (teacherID uuid.UUID, start, end time.Time, err error) {
	parts := strings.Split(strings.TrimSpace(s), mergedEventSep)
	if len(parts) != 4 || parts[0] != mergedEventPrefix {
		return uuid.Nil, time.Time{}, time.Time{}, ErrBadMergedEventID
	}
	teacherID, err = uuid.Parse(parts[1])
	if err != nil || teacherID == uuid.Nil {
		return uuid.Nil, time.Time{}, time.Time{}, ErrBadMergedEventID
	}
	start, err = time.Parse(time.RFC3339, parts[2])
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, ErrBadMergedEventID
	}
	end, err = time.Parse(time.RFC3339, parts[3])
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, ErrBadMergedEventID
	}
	if !start.Before(end) {
		return uuid.Nil, time.Time{}, time.Time{}, fmt.Errorf("%w: range kosong", ErrBadMergedEventID)
	}
	return teacherID, start.UTC(), end.UTC(), nil
}
