// file: internals/features/lessons/availability/service/block_writer.go
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	avModel "guruku_backend/internals/features/lessons/availability/model"

	"github.com/google/uuid"
)

// Grid storage atomik: 30 menit. Booking/cancel hanya pernah menyentuh
// row atomik ini, tidak pernah range mentah.
const AtomicBlockMinutes = 30

// Horizon expansion rule: ±3 bulan ke depan dari saat rule dibuat.
const ExpansionHorizonDays = 92

// AlignToAtomicGrid membulatkan t KE BAWAH ke grid 30 menit UTC.
func AlignToAtomicGrid(t time.Time) time.Time {
	return t.UTC().Truncate(time.Duration(AtomicBlockMinutes) * time.Minute)
}

func IsOnAtomicGrid(t time.Time) bool {
	return t.UTC().Equal(AlignToAtomicGrid(t))
}

// DecomposeRange memecah [start, end) menjadi block 30 menit berurutan di
// grid UTC tetap. Start input dibulatkan ke bawah ke grid; ekor yang tidak
// genap 30 menit tidak menghasilkan block.
func DecomposeRange(start, end time.Time) []Interval {
	unit := time.Duration(AtomicBlockMinutes) * time.Minute
	s := AlignToAtomicGrid(start)
	end = end.UTC()

	var out []Interval
	for !s.Add(unit).After(end) {
		out = append(out, Interval{Start: s, End: s.Add(unit)})
		s = s.Add(unit)
	}
	return out
}

/* =========================================================
   Penulisan ke store (selalu lewat tx milik caller)
========================================================= */

// InsertRangeBlocks mendekomposisi range lalu insert row atomik yang belum
// ada (idempoten: (teacher, start) yang sudah ada di-skip, bukan error).
// Kebijakan merge-on-write jatuh dengan sendirinya dari representasi atomik:
// range baru yang overlap/menempel range lama collapse ke set row yang sama.
func InsertRangeBlocks(tx *gorm.DB, teacherID uuid.UUID, start, end time.Time, source string) (int, error) {
	blocks := DecomposeRange(start, end)
	if len(blocks) == 0 {
		return 0, nil
	}

	starts := make([]time.Time, 0, len(blocks))
	for _, b := range blocks {
		starts = append(starts, b.Start)
	}

	var existing []avModel.AvailabilityBlockModel
	if err := tx.
		Where("availability_block_teacher_id = ?", teacherID).
		Where("availability_block_start_utc IN ?", starts).
		Find(&existing).Error; err != nil {
		return 0, fmt.Errorf("cek block existing: %w", err)
	}

	have := make(map[int64]struct{}, len(existing))
	for i := range existing {
		have[existing[i].AvailabilityBlockStartUTC.UTC().Unix()] = struct{}{}
	}

	inserted := 0
	for _, b := range blocks {
		if _, ok := have[b.Start.Unix()]; ok {
			continue
		}
		row := avModel.AvailabilityBlockModel{
			AvailabilityBlockTeacherID: teacherID,
			AvailabilityBlockStartUTC:  b.Start,
			AvailabilityBlockEndUTC:    b.End,
			AvailabilityBlockSource:    source,
		}
		if err := tx.Create(&row).Error; err != nil {
			return inserted, fmt.Errorf("insert block %s: %w", b.Start.Format(time.RFC3339), err)
		}
		inserted++
	}
	return inserted, nil
}

// ExpandRule mematerialisasi satu rule menjadi row atomik sampai horizon.
// Dipanggil sinkron di dalam tx pembuatan rule. Idempoten: expand ulang
// rule+hari yang sama tidak menghasilkan duplikat.
func ExpandRule(tx *gorm.DB, rule *avModel.AvailabilityRuleModel, now time.Time) (int, error) {
	from := rule.AvailabilityRuleValidFrom
	if now.After(from) {
		from = now
	}
	to := now.AddDate(0, 0, ExpansionHorizonDays)
	if rule.AvailabilityRuleValidTo != nil && rule.AvailabilityRuleValidTo.Before(to) {
		to = *rule.AvailabilityRuleValidTo
	}
	if !from.Before(to) {
		return 0, nil
	}

	windows, err := RuleWindowsWithin(rule, from.UTC(), to.UTC())
	if err != nil {
		return 0, err
	}

	total := 0
	for _, w := range windows {
		n, err := InsertRangeBlocks(tx, rule.AvailabilityRuleTeacherID, w.Start, w.End, avModel.BlockSourceRule)
		if err != nil {
			return total, err
		}
		total += n
	}
	log.Printf("[ExpandRule] rule=%s teacher=%s windows=%d inserted=%d",
		rule.AvailabilityRuleID, rule.AvailabilityRuleTeacherID, len(windows), total)
	return total, nil
}

// DeleteBlocksInRange menghapus row atomik teacher yang beririsan dengan
// [start, end). Dipakai ketiga mode delete (row id / merged event / range)
// setelah diresolve ke window UTC.
func DeleteBlocksInRange(tx *gorm.DB, teacherID uuid.UUID, start, end time.Time) (int64, error) {
	res := tx.
		Where("availability_block_teacher_id = ?", teacherID).
		Where("availability_block_start_utc < ?", end.UTC()).
		Where("availability_block_end_utc > ?", start.UTC()).
		Delete(&avModel.AvailabilityBlockModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("hapus block: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// FetchBlocksInRange membaca row atomik teacher di [start, end), terurut.
func FetchBlocksInRange(db *gorm.DB, teacherID uuid.UUID, start, end time.Time) ([]avModel.AvailabilityBlockModel, error) {
	var rows []avModel.AvailabilityBlockModel
	if err := db.
		Where("availability_block_teacher_id = ?", teacherID).
		Where("availability_block_start_utc < ?", end.UTC()).
		Where("availability_block_end_utc > ?", start.UTC()).
		Order("availability_block_start_utc ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// BlocksToIntervals mengubah rows ke interval untuk Interval Algebra.
func BlocksToIntervals(rows []avModel.AvailabilityBlockModel) []Interval {
	out := make([]Interval, 0, len(rows))
	for i := range rows {
		out = append(out, Interval{
			Start: rows[i].AvailabilityBlockStartUTC.UTC(),
			End:   rows[i].AvailabilityBlockEndUTC.UTC(),
		})
	}
	return out
}
