package chat

import (
	"context"
	"time"

	"titan-server/internal/domain/query"
)

// ===============================================
// Chat Message Types
// ===============================================

// Role labels who authored a chat message.
type Role string

const (
	RoleUser    Role = "user"
	RolePersona Role = "persona"
)

// MaxContentLength bounds inbound message size.
const MaxContentLength = 8000

// Message is one row of a persona's chat log. Immutable once written;
// messages for a persona are totally ordered by CreatedAt.
type Message struct {
	ID        uint      `json:"-"`
	PublicID  string    `json:"id"`
	PersonaID uint      `json:"-"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Tokens    int       `json:"tokens,omitempty"`     // completion usage, persona rows only
	LatencyMS int64     `json:"latency_ms,omitempty"` // generation latency, persona rows only
	CreatedAt time.Time `json:"created_at"`
}

// FromPersona reports whether the message was generated by the persona.
func (m *Message) FromPersona() bool {
	return m.Role == RolePersona
}

// ===============================================
// Chat Message Repository
// ===============================================

type Repository interface {
	Create(ctx context.Context, msg *Message) error
	// ListRecent returns the most recent limit messages for the persona in
	// chronological order (oldest first).
	ListRecent(ctx context.Context, personaID uint, limit int) ([]*Message, error)
	// ListByPersonaID pages through the full log, newest first by default.
	ListByPersonaID(ctx context.Context, personaID uint, pagination *query.Pagination) ([]*Message, int64, error)
	CountByPersonaID(ctx context.Context, personaID uint) (int64, error)
}
