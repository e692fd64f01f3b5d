package models

import (
	"time"

	"github.com/google/uuid"
)

// Session groups the turns of one conversation. SessionKey is the wire-level
// userId: an opaque, caller-chosen token scoped to a single conversation, not
// an account identifier. TurnCount is bumped on every appended turn and gives
// each turn its Seq.
type Session struct {
	UUID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"uuid"`
	SessionKey string    `gorm:"not null;uniqueIndex" json:"session_key"`
	TurnCount  int       `gorm:"not null;default:0" json:"turn_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
