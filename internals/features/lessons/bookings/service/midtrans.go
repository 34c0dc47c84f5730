// file: internals/features/lessons/bookings/service/midtrans.go
package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"guruku_backend/internals/features/lessons/bookings/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type CustomerInput struct {
	Name  string
	Email string
}

// GenerateSnapToken membuat sesi checkout Snap untuk satu booking.
// OrderID = booking_id, supaya notifikasi webhook bisa diresolve balik.
func GenerateSnapToken(b *model.BookingModel, cust CustomerInput) (string, string, error) {
	if b.BookingPriceCents <= 0 {
		return "", "", errors.New("invalid booking_price_cents")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID: b.BookingID.String(),
			// Midtrans pakai unit mayor IDR
			GrossAmt: int64(b.BookingPriceCents / 100),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       b.BookingID.String(),
				Price:    int64(b.BookingPriceCents / 100),
				Qty:      1,
				Name:     "Lesson booking",
				Category: "lesson",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
