// file: internals/features/lessons/availability/model/availability_rule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ================================
   MODEL: availability_rules
   Rule recurring mingguan milik teacher. Immutable setelah di-expand:
   edit = soft-delete rule lama + buat rule baru (superseded, bukan update).
================================ */

type AvailabilityRuleModel struct {
	AvailabilityRuleID uuid.UUID `json:"availability_rule_id" gorm:"column:availability_rule_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AvailabilityRuleTeacherID uuid.UUID `json:"availability_rule_teacher_id" gorm:"column:availability_rule_teacher_id;type:uuid;not null;index"`

	// 0=Minggu .. 6=Sabtu (locale-independent, sama dengan time.Weekday)
	AvailabilityRuleWeekday int `json:"availability_rule_weekday" gorm:"column:availability_rule_weekday;type:int;not null;check:availability_rule_weekday BETWEEN 0 AND 6"`

	// Offset menit dari tengah malam lokal. Invariant: 0 <= start < end <= 1440.
	AvailabilityRuleStartMinute int `json:"availability_rule_start_minute" gorm:"column:availability_rule_start_minute;type:int;not null"`
	AvailabilityRuleEndMinute   int `json:"availability_rule_end_minute"   gorm:"column:availability_rule_end_minute;type:int;not null;check:availability_rule_end_minute<=1440"`

	// IANA timezone, mis. "Asia/Jakarta"
	AvailabilityRuleTimezone string `json:"availability_rule_timezone" gorm:"column:availability_rule_timezone;type:varchar(64);not null"`

	// Validity window [valid_from, valid_to) dalam UTC. valid_to NULL = open-ended.
	AvailabilityRuleValidFrom time.Time  `json:"availability_rule_valid_from" gorm:"column:availability_rule_valid_from;type:timestamptz;not null"`
	AvailabilityRuleValidTo   *time.Time `json:"availability_rule_valid_to"   gorm:"column:availability_rule_valid_to;type:timestamptz"`

	AvailabilityRuleCreatedAt time.Time  `json:"availability_rule_created_at" gorm:"column:availability_rule_created_at;type:timestamptz;not null;default:now()"`
	AvailabilityRuleDeletedAt *time.Time `json:"availability_rule_deleted_at" gorm:"column:availability_rule_deleted_at;type:timestamptz"`
}

func (AvailabilityRuleModel) TableName() string { return "availability_rules" }
