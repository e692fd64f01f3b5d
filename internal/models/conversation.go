package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one message of a session. Rows are create-only and
// ordered by Seq, the per-session turn counter at insert time.
type ConversationTurn struct {
	UUID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"uuid"`
	SessionKey string    `gorm:"not null;index" json:"session_key"`
	Content    string    `gorm:"not null" json:"content"`
	Role       Role      `gorm:"not null" json:"role"`
	Seq        int       `gorm:"not null" json:"seq"`
	CreatedAt  time.Time `json:"created_at"`
}
