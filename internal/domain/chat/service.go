package chat

import (
	"context"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"titan-server/internal/domain/events"
	"titan-server/internal/domain/persona"
	"titan-server/internal/domain/query"
	"titan-server/internal/infrastructure/logger"
	"titan-server/internal/infrastructure/metrics"
	"titan-server/internal/utils/idgen"
	"titan-server/internal/utils/platformerrors"
)

// FallbackReply is returned verbatim whenever generation fails after input
// validation. Always answering in character is a deliberate policy; no
// partial state is persisted on failure.
const FallbackReply = "I'm having trouble processing your request right now. Please try again later."

// Fixed generation parameters. Single attempt, no retries, no streaming.
const (
	generationTemperature = 0.8
	generationMaxTokens   = 500
)

// responseRateDecay is the EMA factor for the stored response rate; each
// successful exchange moves the rate a tenth of the way toward 100.
const responseRateDecay = 0.9

// CompletionClient is the single external call the pipeline makes. The model
// field is filled by the implementation when the request leaves it empty.
type CompletionClient interface {
	Configured() bool
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
}

// Exchange is the outcome of one pipeline invocation.
type Exchange struct {
	Reply          string
	Fallback       bool
	Tokens         int
	LatencyMS      int64
	UserMessage    *Message // nil when Fallback
	PersonaMessage *Message // nil when Fallback
}

// Service orchestrates the response pipeline: the only unit in the chat
// domain that performs side effects.
type Service struct {
	personas    persona.Repository
	messages    Repository
	completions CompletionClient
	broadcaster events.Broadcaster
}

// NewService creates a new chat service.
func NewService(
	personas persona.Repository,
	messages Repository,
	completions CompletionClient,
	broadcaster events.Broadcaster,
) *Service {
	return &Service{
		personas:    personas,
		messages:    messages,
		completions: completions,
		broadcaster: broadcaster,
	}
}

// SendMessage runs the pipeline for one inbound user message:
// validate, load history, build prompt, call the completion service once,
// persist the user row then the persona row, update stats, broadcast.
//
// Generation failure of any kind after validation persists nothing and
// returns FallbackReply. There is no per-persona lock; concurrent exchanges
// for the same persona may interleave, which yields a valid (timestamp
// ordered) but non-deterministic log.
func (s *Service) SendMessage(ctx context.Context, personaPublicID, content string) (*Exchange, error) {
	p, err := s.personas.GetByPublicID(ctx, personaPublicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "persona not found")
	}

	if !p.Active {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInvalidState,
			"persona is inactive", nil, "")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"message content cannot be empty", nil, "")
	}
	if len(content) > MaxContentLength {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"message content exceeds maximum length", nil, "")
	}

	history, err := s.messages.ListRecent(ctx, p.ID, HistoryWindow)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load chat history")
	}

	req := openai.ChatCompletionRequest{
		Messages:    BuildMessages(p, history, content),
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	}

	start := time.Now()
	resp, err := s.completions.CreateChatCompletion(ctx, req)
	latency := time.Since(start)
	if err != nil {
		metrics.RecordCompletion(req.Model, "error", latency.Seconds(), 0)
		log := logger.GetLogger()
		log.Warn().Err(err).Str("persona_id", p.PublicID).Msg("completion failed, returning fallback reply")
		return &Exchange{Reply: FallbackReply, Fallback: true}, nil
	}

	reply := ""
	tokens := 0
	if len(resp.Choices) > 0 {
		reply = strings.TrimSpace(resp.Choices[0].Message.Content)
		tokens = resp.Usage.CompletionTokens
	}
	if reply == "" {
		metrics.RecordCompletion(resp.Model, "empty", latency.Seconds(), tokens)
		log := logger.GetLogger()
		log.Warn().Str("persona_id", p.PublicID).Msg("completion returned no content, returning fallback reply")
		return &Exchange{Reply: FallbackReply, Fallback: true}, nil
	}
	metrics.RecordCompletion(resp.Model, "ok", latency.Seconds(), tokens)

	exchange, err := s.persistExchange(ctx, p, content, reply, tokens, latency)
	if err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(events.ChatMessage, exchange.PersonaMessage)
	return exchange, nil
}

// persistExchange writes the user row first, then the persona row, so the
// timestamp order matches the conversational order, then folds the exchange
// into the persona's stats (single update, last writer wins).
func (s *Service) persistExchange(
	ctx context.Context,
	p *persona.Persona,
	content, reply string,
	tokens int,
	latency time.Duration,
) (*Exchange, error) {
	userPublicID, err := idgen.GenerateSecureID("msg", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to generate message ID")
	}
	personaPublicID, err := idgen.GenerateSecureID("msg", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to generate message ID")
	}

	userMsg := &Message{
		PublicID:  userPublicID,
		PersonaID: p.ID,
		Role:      RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.messages.Create(ctx, userMsg); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to persist user message")
	}

	personaMsg := &Message{
		PublicID:  personaPublicID,
		PersonaID: p.ID,
		Role:      RolePersona,
		Content:   reply,
		Tokens:    tokens,
		LatencyMS: latency.Milliseconds(),
		CreatedAt: time.Now(),
	}
	if err := s.messages.Create(ctx, personaMsg); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to persist persona message")
	}

	stats := p.Stats
	stats.MessageCount++
	n := float64(stats.MessageCount)
	stats.AvgResponseSeconds = (stats.AvgResponseSeconds*(n-1) + latency.Seconds()) / n
	stats.ResponseRate = stats.ResponseRate*responseRateDecay + 100*(1-responseRateDecay)
	now := personaMsg.CreatedAt
	stats.LastActivityAt = &now

	if err := s.personas.UpdateStats(ctx, p.ID, stats); err != nil {
		// stats are advisory; the exchange rows are already written
		log := logger.GetLogger()
		log.Error().Err(err).Str("persona_id", p.PublicID).Msg("failed to update persona stats")
	}

	return &Exchange{
		Reply:          reply,
		Tokens:         tokens,
		LatencyMS:      latency.Milliseconds(),
		UserMessage:    userMsg,
		PersonaMessage: personaMsg,
	}, nil
}

// History pages through a persona's chat log.
func (s *Service) History(ctx context.Context, personaPublicID string, pagination *query.Pagination) ([]*Message, int64, error) {
	p, err := s.personas.GetByPublicID(ctx, personaPublicID)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "persona not found")
	}

	msgs, total, err := s.messages.ListByPersonaID(ctx, p.ID, pagination)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list chat messages")
	}
	return msgs, total, nil
}
