package content_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"titan-server/internal/domain/content"
	"titan-server/internal/domain/events"
	"titan-server/internal/domain/persona"
	"titan-server/internal/domain/query"
	"titan-server/internal/utils/platformerrors"
)

// fakeContentRepo keeps items in memory keyed by public ID.
type fakeContentRepo struct {
	items       map[string]*content.Item
	published   int64
	withRevenue int64
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{items: map[string]*content.Item{}}
}

func (f *fakeContentRepo) Create(ctx context.Context, item *content.Item) error {
	f.items[item.PublicID] = item
	return nil
}
func (f *fakeContentRepo) GetByPublicID(ctx context.Context, publicID string) (*content.Item, error) {
	item, ok := f.items[publicID]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "content item not found", nil, "")
	}
	return item, nil
}
func (f *fakeContentRepo) List(ctx context.Context, filter content.Filter, pagination *query.Pagination) ([]*content.Item, int64, error) {
	return nil, 0, nil
}
func (f *fakeContentRepo) Update(ctx context.Context, item *content.Item) error {
	f.items[item.PublicID] = item
	return nil
}
func (f *fakeContentRepo) Delete(ctx context.Context, publicID string) error {
	delete(f.items, publicID)
	return nil
}
func (f *fakeContentRepo) CountPublished(ctx context.Context, personaID uint) (int64, int64, error) {
	return f.published, f.withRevenue, nil
}

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

// recordingBroadcaster captures event types.
type recordingBroadcaster struct {
	events []string
}

func (r *recordingBroadcaster) Broadcast(eventType string, data any) {
	r.events = append(r.events, eventType)
}

func newFixture() (*content.Service, *fakeContentRepo, *fakePersonaRepo, *recordingBroadcaster) {
	p := persona.New("pers_test", "Ava")
	p.ID = 1
	personas := &fakePersonaRepo{persona: p}
	repo := newFakeContentRepo()
	broadcaster := &recordingBroadcaster{}
	return content.NewService(repo, personas, broadcaster), repo, personas, broadcaster
}

func TestCreateForcesDraftAndBumpsCounter(t *testing.T) {
	svc, repo, personas, broadcaster := newFixture()

	item := &content.Item{
		PublicID:    "cont_1",
		Title:       "  Beach day  ",
		ContentType: content.TypePost,
		Status:      content.StatusPublished,
		Engagement:  content.Engagement{Revenue: decimal.NewFromInt(99)},
	}
	created, err := svc.Create(context.Background(), "pers_test", item)
	require.NoError(t, err)
	require.Equal(t, content.StatusDraft, created.Status)
	require.Equal(t, "Beach day", created.Title)
	require.True(t, created.Engagement.Revenue.IsZero())
	require.Equal(t, uint(1), created.PersonaID)

	require.Contains(t, repo.items, "cont_1")
	require.NotNil(t, personas.updatedStats)
	require.Equal(t, 1, personas.updatedStats.ContentCreated)
	require.Equal(t, []string{events.ContentUpdated}, broadcaster.events)
}

func TestCreateKeepsPendingStatus(t *testing.T) {
	svc, _, _, _ := newFixture()

	item := &content.Item{PublicID: "cont_1", Title: "Teaser", Status: content.StatusPending}
	created, err := svc.Create(context.Background(), "pers_test", item)
	require.NoError(t, err)
	require.Equal(t, content.StatusPending, created.Status)
	require.Equal(t, content.TypePost, created.ContentType)
}

func TestCreateDerivesTitleFromBody(t *testing.T) {
	svc, _, _, _ := newFixture()

	item := &content.Item{PublicID: "cont_1", Body: "Morning routine\nthe rest of the post"}
	created, err := svc.Create(context.Background(), "pers_test", item)
	require.NoError(t, err)
	require.Equal(t, "Morning routine", created.Title)
}

func TestCreateRejectsEmptyTitleAndBody(t *testing.T) {
	svc, _, _, _ := newFixture()

	_, err := svc.Create(context.Background(), "pers_test", &content.Item{PublicID: "cont_1"})
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestCreateRejectsInvalidContentType(t *testing.T) {
	svc, _, _, _ := newFixture()

	item := &content.Item{PublicID: "cont_1", Title: "Clip", ContentType: content.ContentType("video")}
	_, err := svc.Create(context.Background(), "pers_test", item)
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestTransitionPublishStampsAndRefreshesStats(t *testing.T) {
	svc, repo, personas, broadcaster := newFixture()
	repo.items["cont_1"] = &content.Item{PublicID: "cont_1", PersonaID: 1, Title: "Teaser", Status: content.StatusPending}
	repo.published = 4
	repo.withRevenue = 1

	item, err := svc.Transition(context.Background(), "cont_1", content.StatusPublished)
	require.NoError(t, err)
	require.Equal(t, content.StatusPublished, item.Status)
	require.NotNil(t, item.PublishedAt)

	require.NotNil(t, personas.updatedStats)
	require.Equal(t, 4, personas.updatedStats.ContentPublished)
	require.InDelta(t, 25.0, personas.updatedStats.ConversionRate, 0.001)
	require.NotNil(t, personas.updatedStats.LastActivityAt)
	require.Equal(t, []string{events.ContentPublished}, broadcaster.events)
}

func TestTransitionRejectsIllegalMove(t *testing.T) {
	svc, repo, _, broadcaster := newFixture()
	repo.items["cont_1"] = &content.Item{PublicID: "cont_1", PersonaID: 1, Title: "Done", Status: content.StatusPublished}

	_, err := svc.Transition(context.Background(), "cont_1", content.StatusDraft)
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeInvalidState))
	require.Empty(t, broadcaster.events)
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	svc, repo, _, _ := newFixture()
	repo.items["cont_1"] = &content.Item{PublicID: "cont_1", PersonaID: 1, Title: "Draft", Status: content.StatusDraft}

	_, err := svc.Transition(context.Background(), "cont_1", content.Status("archived"))
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestRecordEngagementFoldsRevenueIntoIncome(t *testing.T) {
	svc, repo, personas, broadcaster := newFixture()
	repo.items["cont_1"] = &content.Item{
		PublicID:   "cont_1",
		PersonaID:  1,
		Title:      "Beach day",
		Status:     content.StatusPublished,
		Engagement: content.Engagement{Views: 100, Likes: 10, Comments: 4, Conversions: 1, Revenue: decimal.NewFromInt(5)},
	}
	repo.published = 1
	repo.withRevenue = 1

	item, err := svc.RecordEngagement(context.Background(), "cont_1", content.EngagementDelta{
		Views:       50,
		Likes:       3,
		Comments:    2,
		Conversions: 1,
		Revenue:     decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)
	require.Equal(t, 150, item.Engagement.Views)
	require.Equal(t, 13, item.Engagement.Likes)
	require.Equal(t, 6, item.Engagement.Comments)
	require.Equal(t, 2, item.Engagement.Conversions)
	require.True(t, item.Engagement.Revenue.Equal(decimal.RequireFromString("17.50")))

	require.NotNil(t, personas.updatedStats)
	require.True(t, personas.updatedStats.TotalIncome.Equal(decimal.RequireFromString("12.50")))
	require.InDelta(t, 100.0, personas.updatedStats.ConversionRate, 0.001)
	require.Equal(t, []string{events.ContentUpdated}, broadcaster.events)
}

func TestRecordEngagementRejectsNegativeDelta(t *testing.T) {
	svc, repo, _, _ := newFixture()
	repo.items["cont_1"] = &content.Item{PublicID: "cont_1", PersonaID: 1, Title: "Beach day", Status: content.StatusPublished}

	for _, delta := range []content.EngagementDelta{
		{Views: -1},
		{Comments: -1},
		{Conversions: -1},
	} {
		_, err := svc.RecordEngagement(context.Background(), "cont_1", delta)
		require.Error(t, err)
		require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	}
}

func TestUpdateRejectsBlankTitle(t *testing.T) {
	svc, repo, _, _ := newFixture()
	repo.items["cont_1"] = &content.Item{PublicID: "cont_1", PersonaID: 1, Title: "Keep me", Status: content.StatusDraft}

	blank := "   "
	_, err := svc.Update(context.Background(), "cont_1", content.UpdateInput{Title: &blank})
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	require.Equal(t, "Keep me", repo.items["cont_1"].Title)
}
