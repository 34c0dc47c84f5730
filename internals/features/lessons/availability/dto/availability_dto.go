// file: internals/features/lessons/availability/dto/availability_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"guruku_backend/internals/features/lessons/availability/model"
	"guruku_backend/internals/features/lessons/availability/service"
)

/* =========================================================
   CREATE RULE
   Timestamp boundary WAJIB RFC3339 dengan offset (helper.ParseStrictUTC
   di controller); di DTO cukup string.
========================================================= */

type CreateAvailabilityRuleRequest struct {
	AvailabilityRuleWeekday     int    `json:"availability_rule_weekday"      validate:"gte=0,lte=6"`
	AvailabilityRuleStartMinute int    `json:"availability_rule_start_minute" validate:"gte=0,lt=1440"`
	AvailabilityRuleEndMinute   int    `json:"availability_rule_end_minute"   validate:"gt=0,lte=1440"`
	AvailabilityRuleTimezone    string `json:"availability_rule_timezone"     validate:"required"`

	AvailabilityRuleValidFrom string  `json:"availability_rule_valid_from" validate:"required"`
	AvailabilityRuleValidTo   *string `json:"availability_rule_valid_to"`
}

type ManualBlockRangeRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end"   validate:"required"`
}

/* =========================================================
   RESPONSE
========================================================= */

type AvailabilityRuleResponse struct {
	AvailabilityRuleID          uuid.UUID  `json:"availability_rule_id"`
	AvailabilityRuleTeacherID   uuid.UUID  `json:"availability_rule_teacher_id"`
	AvailabilityRuleWeekday     int        `json:"availability_rule_weekday"`
	AvailabilityRuleStartMinute int        `json:"availability_rule_start_minute"`
	AvailabilityRuleEndMinute   int        `json:"availability_rule_end_minute"`
	AvailabilityRuleTimezone    string     `json:"availability_rule_timezone"`
	AvailabilityRuleValidFrom   time.Time  `json:"availability_rule_valid_from"`
	AvailabilityRuleValidTo     *time.Time `json:"availability_rule_valid_to,omitempty"`
	AvailabilityRuleCreatedAt   time.Time  `json:"availability_rule_created_at"`
}

func FromModelAvailabilityRule(m *model.AvailabilityRuleModel) *AvailabilityRuleResponse {
	if m == nil {
		return nil
	}
	return &AvailabilityRuleResponse{
		AvailabilityRuleID:          m.AvailabilityRuleID,
		AvailabilityRuleTeacherID:   m.AvailabilityRuleTeacherID,
		AvailabilityRuleWeekday:     m.AvailabilityRuleWeekday,
		AvailabilityRuleStartMinute: m.AvailabilityRuleStartMinute,
		AvailabilityRuleEndMinute:   m.AvailabilityRuleEndMinute,
		AvailabilityRuleTimezone:    m.AvailabilityRuleTimezone,
		AvailabilityRuleValidFrom:   m.AvailabilityRuleValidFrom,
		AvailabilityRuleValidTo:     m.AvailabilityRuleValidTo,
		AvailabilityRuleCreatedAt:   m.AvailabilityRuleCreatedAt,
	}
}

type AvailabilityBlockResponse struct {
	AvailabilityBlockID       uuid.UUID `json:"availability_block_id"`
	AvailabilityBlockStartUTC time.Time `json:"availability_block_start_utc"`
	AvailabilityBlockEndUTC   time.Time `json:"availability_block_end_utc"`
	AvailabilityBlockSource   string    `json:"availability_block_source"`
}

func FromModelAvailabilityBlock(m *model.AvailabilityBlockModel) *AvailabilityBlockResponse {
	if m == nil {
		return nil
	}
	return &AvailabilityBlockResponse{
		AvailabilityBlockID:       m.AvailabilityBlockID,
		AvailabilityBlockStartUTC: m.AvailabilityBlockStartUTC,
		AvailabilityBlockEndUTC:   m.AvailabilityBlockEndUTC,
		AvailabilityBlockSource:   m.AvailabilityBlockSource,
	}
}

// CalendarEventResponse: view display-only. Mode merged: satu event =
// gabungan block yang bersambung, event_id sintetis hasil codec.
type CalendarEventResponse struct {
	EventID string    `json:"event_id"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

func MergedEvents(teacherID uuid.UUID, intervals []service.Interval) []CalendarEventResponse {
	out := make([]CalendarEventResponse, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, CalendarEventResponse{
			EventID: service.EncodeMergedEventID(teacherID, iv.Start, iv.End),
			Start:   iv.Start,
			End:     iv.End,
		})
	}
	return out
}
