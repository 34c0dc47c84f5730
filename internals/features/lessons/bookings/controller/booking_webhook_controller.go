// file: internals/features/lessons/bookings/controller/booking_webhook_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"guruku_backend/internals/features/lessons/bookings/model"
	"guruku_backend/internals/features/lessons/bookings/service"
	helper "guruku_backend/internals/helpers"
)

type BookingWebhookController struct {
	DB *gorm.DB
}

func NewBookingWebhookController(db *gorm.DB) *BookingWebhookController {
	return &BookingWebhookController{DB: db}
}

/* =========================================================
   POST /api/bookings/notification  (tanpa auth — dipanggil Midtrans)

   Semantik at-least-once: notifikasi duplikat, unknown order_id, atau
   status yang tidak kami proses SELALU di-ack 200. Balas non-2xx hanya
   untuk kegagalan internal yang memang butuh redelivery.
   Setiap event dicatat ke booking_gateway_events sebagai audit trail.
========================================================= */

func (ctrl *BookingWebhookController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		log.Printf("[Webhook] body tidak bisa diparse: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
	}

	orderID, _ := body["order_id"].(string)
	txStatus, _ := body["transaction_status"].(string)
	fraudStatus, _ := body["fraud_status"].(string)
	txID, _ := body["transaction_id"].(string)

	log.Printf("[Webhook] order_id=%s transaction_status=%s fraud_status=%s",
		orderID, txStatus, fraudStatus)

	event := ctrl.recordEvent(orderID, txStatus, txID, c.Body())

	var procErr error
	applied := false

	switch txStatus {
	case "capture":
		if fraudStatus == "accept" || fraudStatus == "" {
			procErr = service.MarkBookingPaid(c.Context(), ctrl.DB, orderID, txID)
			applied = procErr == nil
		}
	case "settlement":
		procErr = service.MarkBookingPaid(c.Context(), ctrl.DB, orderID, txID)
		applied = procErr == nil
	case "deny", "cancel", "expire", "failure":
		procErr = service.MarkBookingFailed(c.Context(), ctrl.DB, orderID, txStatus)
		applied = procErr == nil
	case "pending":
		// belum final, tunggu notifikasi berikutnya
	default:
		log.Printf("[Webhook] transaction_status %q tidak dikenali, abaikan", txStatus)
	}

	ctrl.finishEvent(event, applied, procErr)

	if procErr != nil {
		// internal error beneran → biar Midtrans redeliver
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memproses notifikasi")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"order_id": orderID, "applied": applied})
}

// recordEvent menulis audit row SEBELUM diproses; gagal mencatat tidak
// menggagalkan pemrosesan (audit best-effort, transisi booking tetap jalan).
func (ctrl *BookingWebhookController) recordEvent(orderID, txStatus, txID string, raw []byte) *model.BookingGatewayEventModel {
	event := model.BookingGatewayEventModel{
		GatewayEventProvider: "midtrans",
		GatewayEventPayload:  datatypes.JSON(raw),
		GatewayEventStatus:   model.GatewayEventStatusReceived,
	}
	if txStatus != "" {
		event.GatewayEventType = &txStatus
	}
	if txID != "" {
		event.GatewayEventExternalID = &txID
	}
	if bookingID, err := uuid.Parse(orderID); err == nil {
		event.GatewayEventBookingID = &bookingID
	}
	if err := ctrl.DB.Create(&event).Error; err != nil {
		log.Printf("[Webhook] gagal mencatat event audit: %v", err)
		return nil
	}
	return &event
}

func (ctrl *BookingWebhookController) finishEvent(event *model.BookingGatewayEventModel, applied bool, procErr error) {
	if event == nil {
		return
	}
	status := model.GatewayEventStatusIgnored
	if applied {
		status = model.GatewayEventStatusApplied
	}
	now := time.Now().UTC()
	updates := map[string]any{
		"gateway_event_status":       status,
		"gateway_event_processed_at": now,
	}
	if procErr != nil {
		note := procErr.Error()
		updates["gateway_event_note"] = note
	}
	if err := ctrl.DB.Model(&model.BookingGatewayEventModel{}).
		Where("gateway_event_id = ?", event.GatewayEventID).
		Updates(updates).Error; err != nil {
		log.Printf("[Webhook] gagal update status event audit: %v", err)
	}
}
