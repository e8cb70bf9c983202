package chatres

import (
	"titan-server/internal/domain/chat"
)

// MessageResponse represents one chat log row
type MessageResponse struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Tokens    int    `json:"tokens,omitempty"`
	LatencyMS int64  `json:"latency_ms,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// MessageListResponse represents a page of the chat log
type MessageListResponse struct {
	Object  string            `json:"object"`
	Data    []MessageResponse `json:"data"`
	HasMore bool              `json:"has_more"`
	Total   int64             `json:"total"`
}

// ExchangeResponse is the outcome of the response pipeline. A fallback
// exchange carries only the reply text.
type ExchangeResponse struct {
	Object         string           `json:"object"`
	Reply          string           `json:"reply"`
	Fallback       bool             `json:"fallback"`
	Tokens         int              `json:"tokens,omitempty"`
	LatencyMS      int64            `json:"latency_ms,omitempty"`
	UserMessage    *MessageResponse `json:"user_message,omitempty"`
	PersonaMessage *MessageResponse `json:"persona_message,omitempty"`
}

// NewMessageResponse creates a response from a domain message
func NewMessageResponse(msg *chat.Message) *MessageResponse {
	return &MessageResponse{
		ID:        msg.PublicID,
		Object:    "chat.message",
		Role:      string(msg.Role),
		Content:   msg.Content,
		Tokens:    msg.Tokens,
		LatencyMS: msg.LatencyMS,
		CreatedAt: msg.CreatedAt.Unix(),
	}
}

// NewMessageListResponse creates a list response from domain messages
func NewMessageListResponse(messages []*chat.Message, hasMore bool, total int64) *MessageListResponse {
	data := make([]MessageResponse, len(messages))
	for i, msg := range messages {
		data[i] = *NewMessageResponse(msg)
	}

	return &MessageListResponse{
		Object:  "list",
		Data:    data,
		HasMore: hasMore,
		Total:   total,
	}
}

// NewExchangeResponse creates a response from a pipeline exchange
func NewExchangeResponse(exchange *chat.Exchange) *ExchangeResponse {
	resp := &ExchangeResponse{
		Object:    "chat.exchange",
		Reply:     exchange.Reply,
		Fallback:  exchange.Fallback,
		Tokens:    exchange.Tokens,
		LatencyMS: exchange.LatencyMS,
	}
	if exchange.UserMessage != nil {
		resp.UserMessage = NewMessageResponse(exchange.UserMessage)
	}
	if exchange.PersonaMessage != nil {
		resp.PersonaMessage = NewMessageResponse(exchange.PersonaMessage)
	}
	return resp
}
