package dbschema

import (
	"time"

	"titan-server/internal/domain/chat"
	"titan-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(ChatMessage{})
}

// ChatMessage represents the database schema for chat messages. Rows are
// immutable once written, so the model carries no update or soft-delete
// columns.
type ChatMessage struct {
	ID        uint      `gorm:"primarykey"`
	PublicID  string    `gorm:"uniqueIndex;size:64;not null"`
	PersonaID uint      `gorm:"index:idx_chat_messages_persona;not null"`
	Role      string    `gorm:"size:16;not null"`
	Content   string    `gorm:"type:text;not null"`
	Tokens    int       `gorm:"not null;default:0"`
	LatencyMS int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"index:idx_chat_messages_persona"`
}

// TableName specifies the table name for ChatMessage
func (ChatMessage) TableName() string {
	return "titan.chat_messages"
}

// EtoD converts database schema to domain message (Entity to Domain)
func (m *ChatMessage) EtoD() *chat.Message {
	return &chat.Message{
		ID:        m.ID,
		PublicID:  m.PublicID,
		PersonaID: m.PersonaID,
		Role:      chat.Role(m.Role),
		Content:   m.Content,
		Tokens:    m.Tokens,
		LatencyMS: m.LatencyMS,
		CreatedAt: m.CreatedAt,
	}
}

// ChatMessageDtoE converts domain message to database schema (Domain to Entity)
func ChatMessageDtoE(m *chat.Message) *ChatMessage {
	return &ChatMessage{
		ID:        m.ID,
		PublicID:  m.PublicID,
		PersonaID: m.PersonaID,
		Role:      string(m.Role),
		Content:   m.Content,
		Tokens:    m.Tokens,
		LatencyMS: m.LatencyMS,
		CreatedAt: m.CreatedAt,
	}
}
