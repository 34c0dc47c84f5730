// file: internals/features/lessons/bookings/model/booking_gateway_event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status pemrosesan event webhook.
const (
	GatewayEventStatusReceived = "received"
	GatewayEventStatusApplied  = "applied"
	GatewayEventStatusIgnored  = "ignored"
)

/* ================================
   MODEL: booking_gateway_events
   Audit trail notifikasi payment gateway (at-least-once: event duplikat /
   unknown tetap dicatat, tidak pernah bikin webhook error).
================================ */

type BookingGatewayEventModel struct {
	GatewayEventID uuid.UUID `json:"gateway_event_id" gorm:"column:gateway_event_id;type:uuid;default:gen_random_uuid();primaryKey"`

	GatewayEventBookingID *uuid.UUID `json:"gateway_event_booking_id" gorm:"column:gateway_event_booking_id;type:uuid;index"`

	GatewayEventProvider   string  `json:"gateway_event_provider"    gorm:"column:gateway_event_provider;type:varchar(32);not null;default:'midtrans'"`
	GatewayEventType       *string `json:"gateway_event_type"        gorm:"column:gateway_event_type;type:text"`
	GatewayEventExternalID *string `json:"gateway_event_external_id" gorm:"column:gateway_event_external_id;type:text"`

	GatewayEventPayload datatypes.JSON `json:"gateway_event_payload" gorm:"column:gateway_event_payload;type:jsonb"`

	GatewayEventStatus string  `json:"gateway_event_status" gorm:"column:gateway_event_status;type:varchar(16);not null;default:'received'"`
	GatewayEventNote   *string `json:"gateway_event_note"   gorm:"column:gateway_event_note;type:text"`

	GatewayEventReceivedAt  time.Time  `json:"gateway_event_received_at"  gorm:"column:gateway_event_received_at;type:timestamptz;not null;default:now()"`
	GatewayEventProcessedAt *time.Time `json:"gateway_event_processed_at" gorm:"column:gateway_event_processed_at;type:timestamptz"`
}

func (BookingGatewayEventModel) TableName() string { return "booking_gateway_events" }
