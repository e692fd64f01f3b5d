package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Booking records a confirmed reservation made through the booking service.
// ProviderResponse keeps the raw JSON body returned by the service.
type Booking struct {
	UUID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"uuid"`
	SessionKey       string         `gorm:"not null;index" json:"session_key"`
	RoomID           int            `gorm:"not null" json:"room_id"`
	RoomName         string         `gorm:"not null" json:"room_name"`
	FullName         string         `gorm:"not null" json:"full_name"`
	Email            string         `gorm:"not null" json:"email"`
	Nights           int            `gorm:"not null" json:"nights"`
	BookingRef       string         `gorm:"not null" json:"booking_ref"`
	ProviderResponse datatypes.JSON `json:"provider_response"`
	CreatedAt        time.Time      `json:"created_at"`
}
