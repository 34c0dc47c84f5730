// file: internals/features/lessons/bookings/model/booking_model_test.go
package model

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := map[[2]BookingStatus]bool{
		{BookingStatusPending, BookingStatusPaid}:     true,
		{BookingStatusPending, BookingStatusCanceled}: true,
		{BookingStatusPaid, BookingStatusRefunded}:    true,
	}

	statuses := []BookingStatus{
		BookingStatusPending, BookingStatusPaid, BookingStatusCanceled, BookingStatusRefunded,
	}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]BookingStatus{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}

	if CanTransition("unknown", BookingStatusPaid) {
		t.Error("status asing tidak boleh punya transisi")
	}
}
