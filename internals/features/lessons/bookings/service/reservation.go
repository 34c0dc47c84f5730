// file: internals/features/lessons/bookings/service/reservation.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	avModel "guruku_backend/internals/features/lessons/availability/model"
	avSvc "guruku_backend/internals/features/lessons/availability/service"
	"guruku_backend/internals/features/lessons/bookings/model"
	offerModel "guruku_backend/internals/features/lessons/offers/model"
	offerSvc "guruku_backend/internals/features/lessons/offers/service"
)

/* =========================================================
   Error taxonomy (lihat pemetaan HTTP di controller)
========================================================= */

var (
	// validasi — sebelum transaksi dimulai
	ErrUnsupportedDuration = errors.New("durasi checkout hanya 30 atau 60 menit; lesson 45 menit belum bisa dibooking online karena grid atomik 30 menit")
	ErrStartOffGrid        = errors.New("start booking harus tepat di grid 30 menit UTC")

	// precondition — fatal untuk request ini
	ErrNoActiveOffer = errors.New("teacher tidak punya offer aktif untuk durasi ini")

	// konflik — caller boleh re-query lalu coba slot lain
	ErrSlotUnavailable      = errors.New("slot tidak tersedia")
	ErrBookingNotFound      = errors.New("booking tidak ditemukan")
	ErrNotBookingOwner      = errors.New("booking bukan milik Anda")
	ErrBookingNotCancelable = errors.New("booking paid/refunded tidak bisa dibatalkan lewat jalur ini")
)

// RequiredBlockStarts menghitung start instant block atomik yang harus
// dikonsumsi satu booking: 30 menit → satu block, 60 menit → dua block
// berurutan. 45 menit ditolak eksplisit (limitasi terdokumentasi, bukan
// bug): tidak bisa dipecah di grid 30 menit.
func RequiredBlockStarts(start time.Time, durationMinutes int) ([]time.Time, error) {
	if durationMinutes != 30 && durationMinutes != 60 {
		return nil, ErrUnsupportedDuration
	}
	if !avSvc.IsOnAtomicGrid(start) {
		return nil, ErrStartOffGrid
	}
	start = start.UTC()
	if durationMinutes == 30 {
		return []time.Time{start}, nil
	}
	return []time.Time{start, start.Add(30 * time.Minute)}, nil
}

// RestoreBlockStarts: block atomik yang diduduki booking [start, end) —
// dipakai waktu cancel untuk mengembalikan availability.
func RestoreBlockStarts(start, end time.Time) []time.Time {
	blocks := avSvc.DecomposeRange(start, end)
	out := make([]time.Time, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Start)
	}
	return out
}

/* =========================================================
   Reservasi
========================================================= */

type ReserveInput struct {
	TeacherID       uuid.UUID
	StudentID       uuid.UUID
	StudentName     string
	StudentEmail    string
	Start           time.Time
	DurationMinutes int
	// SkipPayment = escape hatch konfigurasi (PAYMENT_GATEWAY_DISABLED):
	// booking langsung paid di transaksi yang sama, tanpa checkout gateway.
	SkipPayment bool
}

type ReserveResult struct {
	Booking     model.BookingModel
	SnapToken   string
	RedirectURL string
}

// ReserveSlot menjalankan seluruh protokol reservasi dalam SATU transaksi:
// lock row block yang dibutuhkan (FOR UPDATE), short-read = slot tidak
// tersedia, insert booking pending, hapus block (lock), checkout gateway.
// Gagal di titik mana pun → rollback total, tidak ada state parsial.
// Dua reservasi konkuren yang rebutan block yang sama tidak mungkin
// dua-duanya sukses: yang commit duluan menghapus row, yang kedua melihat
// count kurang dan abort.
func ReserveSlot(ctx context.Context, db *gorm.DB, in ReserveInput) (*ReserveResult, error) {
	starts, err := RequiredBlockStarts(in.Start, in.DurationMinutes)
	if err != nil {
		return nil, err
	}

	var out ReserveResult
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) Offer aktif untuk durasi ini — absen = precondition gagal
		var offer offerModel.LessonOfferModel
		if err := tx.
			Where("lesson_offer_teacher_id = ?", in.TeacherID).
			Where("lesson_offer_duration_minutes = ?", in.DurationMinutes).
			Where("lesson_offer_deleted_at IS NULL").
			First(&offer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveOffer
			}
			return fmt.Errorf("load offer: %w", err)
		}
		if !offerSvc.OfferIsActive(&offer) {
			return ErrNoActiveOffer
		}

		// 2) Ambil PERSIS row block yang dibutuhkan (FOR UPDATE).
		// Isolasi read-committed cukup karena delete di bawah mengunci row;
		// FOR UPDATE di sini menutup kemungkinan store dengan isolasi lebih lemah.
		var blocks []avModel.AvailabilityBlockModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("availability_block_teacher_id = ?", in.TeacherID).
			Where("availability_block_start_utc IN ?", starts).
			Find(&blocks).Error; err != nil {
			return fmt.Errorf("load blocks: %w", err)
		}

		// 3) Short read atau lebar row salah → slot tidak tersedia, abort total
		if len(blocks) < len(starts) {
			log.Printf("[ReserveSlot] short read: butuh %d block, dapat %d (teacher=%s start=%s)",
				len(starts), len(blocks), in.TeacherID, in.Start.Format(time.RFC3339))
			return ErrSlotUnavailable
		}
		unit := time.Duration(avSvc.AtomicBlockMinutes) * time.Minute
		for i := range blocks {
			if blocks[i].AvailabilityBlockEndUTC.Sub(blocks[i].AvailabilityBlockStartUTC) != unit {
				log.Printf("[ReserveSlot] block %s lebarnya bukan %d menit, tolak",
					blocks[i].AvailabilityBlockID, avSvc.AtomicBlockMinutes)
				return ErrSlotUnavailable
			}
		}

		// 4) Insert booking pending, harga dibekukan dari offer
		now := time.Now().UTC()
		booking := model.BookingModel{
			BookingTeacherID:       in.TeacherID,
			BookingStudentID:       in.StudentID,
			BookingStartUTC:        in.Start.UTC(),
			BookingEndUTC:          in.Start.UTC().Add(time.Duration(in.DurationMinutes) * time.Minute),
			BookingDurationMinutes: in.DurationMinutes,
			BookingPriceCents:      offer.LessonOfferPriceCents,
			BookingCurrency:        offer.LessonOfferCurrency,
			BookingStatus:          model.BookingStatusPending,
			BookingCreatedAt:       now,
			BookingUpdatedAt:       now,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		// 5) Hapus block yang dikonsumsi — ini LOCK-nya: setelah terhapus,
		// reservasi konkuren lain tidak bisa melihat/mengonsumsi row ini
		ids := make([]uuid.UUID, 0, len(blocks))
		for i := range blocks {
			ids = append(ids, blocks[i].AvailabilityBlockID)
		}
		res := tx.Where("availability_block_id IN ?", ids).Delete(&avModel.AvailabilityBlockModel{})
		if res.Error != nil {
			return fmt.Errorf("hapus block: %w", res.Error)
		}
		if res.RowsAffected != int64(len(ids)) {
			return ErrSlotUnavailable
		}

		// 6) Checkout gateway DI DALAM transaksi: gateway unreachable /
		// menolak → seluruh transaksi (insert+delete di atas) ikut rollback
		if in.SkipPayment {
			booking.BookingStatus = model.BookingStatusPaid
			booking.BookingPaidAt = &now
			if err := tx.Model(&model.BookingModel{}).
				Where("booking_id = ?", booking.BookingID).
				Updates(map[string]any{
					"booking_status":     model.BookingStatusPaid,
					"booking_paid_at":    now,
					"booking_updated_at": now,
				}).Error; err != nil {
				return fmt.Errorf("mark paid (skip payment): %w", err)
			}
		} else {
			token, redirectURL, err := GenerateSnapToken(&booking, CustomerInput{
				Name:  in.StudentName,
				Email: in.StudentEmail,
			})
			if err != nil {
				return fmt.Errorf("midtrans checkout gagal: %w", err)
			}
			booking.BookingSnapToken = &token
			booking.BookingCheckoutURL = &redirectURL
			if err := tx.Model(&model.BookingModel{}).
				Where("booking_id = ?", booking.BookingID).
				Updates(map[string]any{
					"booking_snap_token":   token,
					"booking_checkout_url": redirectURL,
					"booking_updated_at":   now,
				}).Error; err != nil {
				return fmt.Errorf("simpan referensi checkout: %w", err)
			}
			out.SnapToken = token
			out.RedirectURL = redirectURL
		}

		out.Booking = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[ReserveSlot] SUCCESS booking=%s teacher=%s student=%s start=%s dur=%d status=%s",
		out.Booking.BookingID, in.TeacherID, in.StudentID,
		in.Start.Format(time.RFC3339), in.DurationMinutes, out.Booking.BookingStatus)
	return &out, nil
}

/* =========================================================
   Cancel + restore
========================================================= */

// CancelBooking membatalkan booking milik student dan mengembalikan block
// atomik yang tadinya diduduki. paid/refunded → ErrBookingNotCancelable.
// Cancel booking yang sudah canceled = idempoten: restore block yang masih
// hilang, return 0 kalau semuanya sudah ada, tidak pernah error.
func CancelBooking(ctx context.Context, db *gorm.DB, bookingID, studentID uuid.UUID) (restored int, err error) {
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b model.BookingModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", bookingID).
			First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("load booking: %w", err)
		}

		if b.BookingStudentID != studentID {
			return ErrNotBookingOwner
		}
		if b.BookingStatus == model.BookingStatusPaid || b.BookingStatus == model.BookingStatusRefunded {
			return ErrBookingNotCancelable
		}

		if b.BookingStatus == model.BookingStatusPending {
			now := time.Now().UTC()
			if err := tx.Model(&model.BookingModel{}).
				Where("booking_id = ?", b.BookingID).
				Updates(map[string]any{
					"booking_status":      model.BookingStatusCanceled,
					"booking_canceled_at": now,
					"booking_updated_at":  now,
				}).Error; err != nil {
				return fmt.Errorf("update status canceled: %w", err)
			}
		}

		n, err := restoreBlocks(tx, &b)
		if err != nil {
			return err
		}
		restored = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	log.Printf("[CancelBooking] booking=%s student=%s restored=%d", bookingID, studentID, restored)
	return restored, nil
}

// restoreBlocks mengembalikan block yang diduduki booking; hanya insert
// instant yang belum punya row (retry cancel tidak bikin duplikat).
// Block hasil restore diberi source "manual".
func restoreBlocks(tx *gorm.DB, b *model.BookingModel) (int, error) {
	n, err := avSvc.InsertRangeBlocks(
		tx,
		b.BookingTeacherID,
		b.BookingStartUTC,
		b.BookingEndUTC,
		avModel.BlockSourceManual,
	)
	if err != nil {
		return 0, fmt.Errorf("restore block: %w", err)
	}
	return n, nil
}

/* =========================================================
   Transisi dari payment gateway (at-least-once)
========================================================= */

// MarkBookingPaid memproses konfirmasi pembayaran. Referensi booking yang
// tidak dikenal / tidak bisa diparse = no-op sukses (event di-ack, bukan
// retry) — caller adalah webhook tanpa auth, tidak boleh melempar error
// yang tidak tertangani.
func MarkBookingPaid(ctx context.Context, db *gorm.DB, orderID string, paymentRef string) error {
	bookingID, err := uuid.Parse(orderID)
	if err != nil {
		log.Printf("[MarkBookingPaid] order_id %q bukan uuid, abaikan", orderID)
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b model.BookingModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", bookingID).
			First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[MarkBookingPaid] booking %s tidak ditemukan, abaikan", bookingID)
				return nil
			}
			return fmt.Errorf("load booking: %w", err)
		}

		if !model.CanTransition(b.BookingStatus, model.BookingStatusPaid) {
			// duplikat delivery / sudah terminal → no-op sukses
			log.Printf("[MarkBookingPaid] booking %s status=%s, abaikan", bookingID, b.BookingStatus)
			return nil
		}

		now := time.Now().UTC()
		if err := tx.Model(&model.BookingModel{}).
			Where("booking_id = ?", b.BookingID).
			Updates(map[string]any{
				"booking_status":            model.BookingStatusPaid,
				"booking_payment_reference": paymentRef,
				"booking_paid_at":           now,
				"booking_updated_at":        now,
			}).Error; err != nil {
			return fmt.Errorf("mark paid: %w", err)
		}
		log.Printf("[MarkBookingPaid] booking %s → paid (ref=%s)", bookingID, paymentRef)
		return nil
	})
}

// MarkBookingFailed memproses payment gagal/expired/deny: booking pending
// dibatalkan dan block-nya dikembalikan. Semantik no-op sama dengan
// MarkBookingPaid.
func MarkBookingFailed(ctx context.Context, db *gorm.DB, orderID string, reason string) error {
	bookingID, err := uuid.Parse(orderID)
	if err != nil {
		log.Printf("[MarkBookingFailed] order_id %q bukan uuid, abaikan", orderID)
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b model.BookingModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", bookingID).
			First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[MarkBookingFailed] booking %s tidak ditemukan, abaikan", bookingID)
				return nil
			}
			return fmt.Errorf("load booking: %w", err)
		}

		if b.BookingStatus != model.BookingStatusPending {
			log.Printf("[MarkBookingFailed] booking %s status=%s, abaikan", bookingID, b.BookingStatus)
			return nil
		}

		now := time.Now().UTC()
		if err := tx.Model(&model.BookingModel{}).
			Where("booking_id = ?", b.BookingID).
			Updates(map[string]any{
				"booking_status":      model.BookingStatusCanceled,
				"booking_canceled_at": now,
				"booking_updated_at":  now,
			}).Error; err != nil {
			return fmt.Errorf("mark canceled: %w", err)
		}
		if _, err := restoreBlocks(tx, &b); err != nil {
			return err
		}
		log.Printf("[MarkBookingFailed] booking %s → canceled (%s), block dikembalikan", bookingID, reason)
		return nil
	})
}
