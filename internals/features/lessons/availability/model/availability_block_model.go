// file: internals/features/lessons/availability/model/availability_block_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Sumber pembuatan block.
const (
	BlockSourceRule   = "rule"
	BlockSourceManual = "manual"
)

/* ================================
   MODEL: availability_blocks
   Unit atomik 30 menit milik teacher — SATU-SATUNYA state availability
   yang dimaterialisasi. Dibuat oleh expansion rule / input manual,
   dihapus karena dikonsumsi booking (lock) atau dihapus teacher.
   Tidak ada dua block satu teacher dengan start sama (unique index).
================================ */

type AvailabilityBlockModel struct {
	AvailabilityBlockID uuid.UUID `json:"availability_block_id" gorm:"column:availability_block_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AvailabilityBlockTeacherID uuid.UUID `json:"availability_block_teacher_id" gorm:"column:availability_block_teacher_id;type:uuid;not null;uniqueIndex:uq_availability_block_teacher_start"`

	AvailabilityBlockStartUTC time.Time `json:"availability_block_start_utc" gorm:"column:availability_block_start_utc;type:timestamptz;not null;uniqueIndex:uq_availability_block_teacher_start"`
	AvailabilityBlockEndUTC   time.Time `json:"availability_block_end_utc"   gorm:"column:availability_block_end_utc;type:timestamptz;not null"`

	AvailabilityBlockSource string `json:"availability_block_source" gorm:"column:availability_block_source;type:varchar(16);not null;default:'manual'"`

	AvailabilityBlockCreatedAt time.Time `json:"availability_block_created_at" gorm:"column:availability_block_created_at;type:timestamptz;not null;default:now()"`
}

func (AvailabilityBlockModel) TableName() string { return "availability_blocks" }
