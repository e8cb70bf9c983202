package chathandler

import (
	"context"
	"strings"

	"titan-server/internal/domain/chat"
	"titan-server/internal/domain/query"
	"titan-server/internal/infrastructure/metrics"
	"titan-server/internal/interfaces/httpserver/requests/chatreq"
	"titan-server/internal/interfaces/httpserver/responses/chatres"
	"titan-server/internal/utils/platformerrors"
)

type ChatHandler struct {
	chatService *chat.Service
}

func NewChatHandler(chatService *chat.Service) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// SendMessage runs the response pipeline for a persona. A provider failure
// surfaces as a fallback exchange, not an error.
func (h *ChatHandler) SendMessage(
	ctx context.Context,
	personaID string,
	req chatreq.SendMessageRequest,
) (*chatres.ExchangeResponse, error) {
	exchange, err := h.chatService.SendMessage(ctx, personaID, strings.TrimSpace(req.Message))
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to send message")
	}

	outcome := "reply"
	if exchange.Fallback {
		outcome = "fallback"
	}
	metrics.RecordChatExchange(outcome)

	return chatres.NewExchangeResponse(exchange), nil
}

// GetHistory pages through a persona's chat log
func (h *ChatHandler) GetHistory(
	ctx context.Context,
	personaID string,
	pagination *query.Pagination,
) (*chatres.MessageListResponse, error) {
	// Fetch limit+1 to determine hasMore
	var requestedLimit *int
	if pagination != nil && pagination.Limit != nil {
		requestedLimit = pagination.Limit
		extraLimit := *pagination.Limit + 1
		pagination.Limit = &extraLimit
	}

	messages, total, err := h.chatService.History(ctx, personaID, pagination)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to load chat history")
	}

	hasMore := false
	if requestedLimit != nil && len(messages) > *requestedLimit {
		hasMore = true
		messages = messages[:*requestedLimit]
	}

	return chatres.NewMessageListResponse(messages, hasMore, total), nil
}
