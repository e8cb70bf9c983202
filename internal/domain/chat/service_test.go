package chat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"titan-server/internal/domain/chat"
	"titan-server/internal/domain/events"
	"titan-server/internal/domain/persona"
	"titan-server/internal/domain/query"
	"titan-server/internal/infrastructure/metrics"
	"titan-server/internal/utils/platformerrors"
)

// fakePersonaRepo serves a single persona and records stat updates.
type fakePersonaRepo struct {
	persona      *persona.Persona
	updatedStats *persona.Stats
}

func (f *fakePersonaRepo) Create(ctx context.Context, p *persona.Persona) error { return nil }
func (f *fakePersonaRepo) GetByPublicID(ctx context.Context, publicID string) (*persona.Persona, error) {
	if f.persona == nil || f.persona.PublicID != publicID {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "persona not found", nil, "")
	}
	return f.persona, nil
}
func (f *fakePersonaRepo) GetByID(ctx context.Context, id uint) (*persona.Persona, error) {
	return f.persona, nil
}
func (f *fakePersonaRepo) List(ctx context.Context, filter persona.Filter, pagination *query.Pagination) ([]*persona.Persona, int64, error) {
	return nil, 0, nil
}
func (f *fakePersonaRepo) ListAutonomous(ctx context.Context) ([]*persona.Persona, error) {
	return nil, nil
}
func (f *fakePersonaRepo) Update(ctx context.Context, p *persona.Persona) error { return nil }
func (f *fakePersonaRepo) UpdateStats(ctx context.Context, id uint, stats persona.Stats) error {
	f.updatedStats = &stats
	return nil
}
func (f *fakePersonaRepo) Delete(ctx context.Context, publicID string) error { return nil }

// fakeMessageRepo stores created messages in order.
type fakeMessageRepo struct {
	history []*chat.Message
	created []*chat.Message
}

func (f *fakeMessageRepo) Create(ctx context.Context, msg *chat.Message) error {
	f.created = append(f.created, msg)
	return nil
}
func (f *fakeMessageRepo) ListRecent(ctx context.Context, personaID uint, limit int) ([]*chat.Message, error) {
	return f.history, nil
}
func (f *fakeMessageRepo) ListByPersonaID(ctx context.Context, personaID uint, pagination *query.Pagination) ([]*chat.Message, int64, error) {
	return f.history, int64(len(f.history)), nil
}
func (f *fakeMessageRepo) CountByPersonaID(ctx context.Context, personaID uint) (int64, error) {
	return int64(len(f.history)), nil
}

// fakeCompletionClient returns a canned response or error.
type fakeCompletionClient struct {
	response *openai.ChatCompletionResponse
	err      error
	requests []openai.ChatCompletionRequest
}

func (f *fakeCompletionClient) Configured() bool { return true }
func (f *fakeCompletionClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

// recordingBroadcaster captures event types.
type recordingBroadcaster struct {
	events []string
}

func (r *recordingBroadcaster) Broadcast(eventType string, data any) {
	r.events = append(r.events, eventType)
}

func activePersona() *persona.Persona {
	p := persona.New("pers_test", "Ava")
	p.ID = 1
	return p
}

func completionResponse(content string, tokens int) *openai.ChatCompletionResponse {
	return &openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
		Usage: openai.Usage{CompletionTokens: tokens},
	}
}

func TestSendMessagePersistsExchangeInOrder(t *testing.T) {
	personas := &fakePersonaRepo{persona: activePersona()}
	messages := &fakeMessageRepo{}
	completions := &fakeCompletionClient{response: completionResponse("Happy to help!", 12)}
	broadcaster := &recordingBroadcaster{}
	svc := chat.NewService(personas, messages, completions, broadcaster)

	exchange, err := svc.SendMessage(context.Background(), "pers_test", "  hello  ")
	require.NoError(t, err)
	require.False(t, exchange.Fallback)
	require.Equal(t, "Happy to help!", exchange.Reply)
	require.Equal(t, 12, exchange.Tokens)

	require.Len(t, messages.created, 2)
	require.Equal(t, chat.RoleUser, messages.created[0].Role)
	require.Equal(t, "hello", messages.created[0].Content)
	require.Equal(t, chat.RolePersona, messages.created[1].Role)
	require.Equal(t, "Happy to help!", messages.created[1].Content)
	require.Equal(t, 12, messages.created[1].Tokens)

	require.NotNil(t, personas.updatedStats)
	require.Equal(t, 1, personas.updatedStats.MessageCount)
	require.InDelta(t, 10.0, personas.updatedStats.ResponseRate, 0.001)
	require.NotNil(t, personas.updatedStats.LastActivityAt)

	require.Equal(t, []string{events.ChatMessage}, broadcaster.events)
}

func TestSendMessageFallbackOnCompletionError(t *testing.T) {
	personas := &fakePersonaRepo{persona: activePersona()}
	messages := &fakeMessageRepo{}
	completions := &fakeCompletionClient{err: errors.New("upstream unavailable")}
	broadcaster := &recordingBroadcaster{}
	svc := chat.NewService(personas, messages, completions, broadcaster)

	exchange, err := svc.SendMessage(context.Background(), "pers_test", "hello")
	require.NoError(t, err)
	require.True(t, exchange.Fallback)
	require.Equal(t, chat.FallbackReply, exchange.Reply)
	require.Nil(t, exchange.UserMessage)
	require.Nil(t, exchange.PersonaMessage)

	// nothing persisted, nothing broadcast, stats untouched
	require.Empty(t, messages.created)
	require.Empty(t, broadcaster.events)
	require.Nil(t, personas.updatedStats)
}

func TestSendMessageFallbackOnEmptyCompletion(t *testing.T) {
	personas := &fakePersonaRepo{persona: activePersona()}
	messages := &fakeMessageRepo{}
	completions := &fakeCompletionClient{response: completionResponse("   ", 0)}
	svc := chat.NewService(personas, messages, completions, &recordingBroadcaster{})

	exchange, err := svc.SendMessage(context.Background(), "pers_test", "hello")
	require.NoError(t, err)
	require.True(t, exchange.Fallback)
	require.Empty(t, messages.created)
}

func TestSendMessageRecordsCompletionMetrics(t *testing.T) {
	personas := &fakePersonaRepo{persona: activePersona()}
	resp := completionResponse("measured reply", 7)
	resp.Model = "titan-metrics-model"
	completions := &fakeCompletionClient{response: resp}
	svc := chat.NewService(personas, &fakeMessageRepo{}, completions, &recordingBroadcaster{})

	before := testutil.ToFloat64(metrics.TokensTotal.WithLabelValues("titan-metrics-model"))

	_, err := svc.SendMessage(context.Background(), "pers_test", "hello")
	require.NoError(t, err)

	after := testutil.ToFloat64(metrics.TokensTotal.WithLabelValues("titan-metrics-model"))
	require.InDelta(t, 7.0, after-before, 0.001)
	require.GreaterOrEqual(t, testutil.CollectAndCount(metrics.CompletionDuration), 1)
}

func TestSendMessageRejectsEmptyContent(t *testing.T) {
	personas := &fakePersonaRepo{persona: activePersona()}
	svc := chat.NewService(personas, &fakeMessageRepo{}, &fakeCompletionClient{}, &recordingBroadcaster{})

	_, err := svc.SendMessage(context.Background(), "pers_test", "   ")
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestSendMessageRejectsOversizedContent(t *testing.T) {
	personas := &fakePersonaRepo{persona: activePersona()}
	svc := chat.NewService(personas, &fakeMessageRepo{}, &fakeCompletionClient{}, &recordingBroadcaster{})

	long := make([]byte, chat.MaxContentLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := svc.SendMessage(context.Background(), "pers_test", string(long))
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestSendMessageRejectsInactivePersona(t *testing.T) {
	p := activePersona()
	p.Active = false
	personas := &fakePersonaRepo{persona: p}
	svc := chat.NewService(personas, &fakeMessageRepo{}, &fakeCompletionClient{}, &recordingBroadcaster{})

	_, err := svc.SendMessage(context.Background(), "pers_test", "hello")
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeInvalidState))
}

func TestSendMessageReplaysHistoryIntoPrompt(t *testing.T) {
	personas := &fakePersonaRepo{persona: activePersona()}
	messages := &fakeMessageRepo{history: []*chat.Message{
		{Role: chat.RoleUser, Content: "earlier question"},
		{Role: chat.RolePersona, Content: "earlier answer"},
	}}
	completions := &fakeCompletionClient{response: completionResponse("sure", 1)}
	svc := chat.NewService(personas, messages, completions, &recordingBroadcaster{})

	_, err := svc.SendMessage(context.Background(), "pers_test", "follow-up")
	require.NoError(t, err)

	require.Len(t, completions.requests, 1)
	turns := completions.requests[0].Messages
	require.Len(t, turns, 4) // system, two history rows, new message
	require.Equal(t, "earlier question", turns[1].Content)
	require.Equal(t, openai.ChatMessageRoleAssistant, turns[2].Role)
	require.Equal(t, "follow-up", turns[3].Content)
}

func TestHistoryResolvesPersona(t *testing.T) {
	personas := &fakePersonaRepo{persona: activePersona()}
	messages := &fakeMessageRepo{history: []*chat.Message{{Role: chat.RoleUser, Content: "hi"}}}
	svc := chat.NewService(personas, messages, &fakeCompletionClient{}, &recordingBroadcaster{})

	msgs, total, err := svc.History(context.Background(), "pers_test", nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, msgs, 1)

	_, _, err = svc.History(context.Background(), "pers_missing", nil)
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}
