package roadmap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"titan-server/internal/domain/project"
	"titan-server/internal/domain/query"
	"titan-server/internal/domain/roadmap"
	"titan-server/internal/utils/platformerrors"
)

// fakeProjectRepo serves a single project.
type fakeProjectRepo struct {
	project *project.Project
}

func (f *fakeProjectRepo) Create(ctx context.Context, proj *project.Project) error { return nil }
func (f *fakeProjectRepo) GetByPublicID(ctx context.Context, publicID string) (*project.Project, error) {
	if f.project == nil || f.project.PublicID != publicID {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "project not found", nil, "")
	}
	return f.project, nil
}
func (f *fakeProjectRepo) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	return f.project, nil
}
func (f *fakeProjectRepo) List(ctx context.Context, filter project.Filter, pagination *query.Pagination) ([]*project.Project, int64, error) {
	return nil, 0, nil
}
func (f *fakeProjectRepo) Update(ctx context.Context, proj *project.Project) error { return nil }
func (f *fakeProjectRepo) Delete(ctx context.Context, publicID string) error       { return nil }

// fakeFeatureRepo records created features.
type fakeFeatureRepo struct {
	created []*roadmap.Feature
}

func (f *fakeFeatureRepo) Create(ctx context.Context, feature *roadmap.Feature) error {
	f.created = append(f.created, feature)
	return nil
}
func (f *fakeFeatureRepo) GetByPublicID(ctx context.Context, publicID string) (*roadmap.Feature, error) {
	return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "feature not found", nil, "")
}
func (f *fakeFeatureRepo) ListByProjectID(ctx context.Context, projectID uint) ([]*roadmap.Feature, error) {
	return f.created, nil
}
func (f *fakeFeatureRepo) Update(ctx context.Context, feature *roadmap.Feature) error { return nil }
func (f *fakeFeatureRepo) Delete(ctx context.Context, publicID string) error          { return nil }

type nopMilestoneRepo struct{}

func (nopMilestoneRepo) Create(ctx context.Context, m *roadmap.Milestone) error { return nil }
func (nopMilestoneRepo) GetByPublicID(ctx context.Context, publicID string) (*roadmap.Milestone, error) {
	return nil, nil
}
func (nopMilestoneRepo) ListByProjectID(ctx context.Context, projectID uint) ([]*roadmap.Milestone, error) {
	return nil, nil
}
func (nopMilestoneRepo) Update(ctx context.Context, m *roadmap.Milestone) error { return nil }
func (nopMilestoneRepo) Delete(ctx context.Context, publicID string) error      { return nil }

type nopGoalRepo struct{}

func (nopGoalRepo) Create(ctx context.Context, g *roadmap.Goal) error { return nil }
func (nopGoalRepo) GetByPublicID(ctx context.Context, publicID string) (*roadmap.Goal, error) {
	return nil, nil
}
func (nopGoalRepo) ListByProjectID(ctx context.Context, projectID uint) ([]*roadmap.Goal, error) {
	return nil, nil
}
func (nopGoalRepo) Update(ctx context.Context, g *roadmap.Goal) error { return nil }
func (nopGoalRepo) Delete(ctx context.Context, publicID string) error { return nil }

func newFixture() (*roadmap.Service, *fakeFeatureRepo) {
	proj := project.New("proj_test", "Titan", "")
	proj.ID = 7
	features := &fakeFeatureRepo{}
	svc := roadmap.NewService(&fakeProjectRepo{project: proj}, features, nopMilestoneRepo{}, nopGoalRepo{})
	return svc, features
}

func TestCreateFeatureDefaultsStatus(t *testing.T) {
	svc, features := newFixture()

	created, err := svc.CreateFeature(context.Background(), "proj_test", &roadmap.Feature{
		PublicID: "feat_1",
		Title:    "  Persona chat  ",
		Priority: roadmap.PriorityDefault,
	})
	require.NoError(t, err)
	require.Equal(t, roadmap.FeaturePlanned, created.Status)
	require.Equal(t, "Persona chat", created.Title)
	require.Equal(t, uint(7), created.ProjectID)
	require.Len(t, features.created, 1)
}

func TestCreateFeatureRejectsBlankTitle(t *testing.T) {
	svc, features := newFixture()

	_, err := svc.CreateFeature(context.Background(), "proj_test", &roadmap.Feature{PublicID: "feat_1", Title: "   "})
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	require.Empty(t, features.created)
}

func TestCreateFeatureRejectsPriorityOutOfRange(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.CreateFeature(context.Background(), "proj_test", &roadmap.Feature{
		PublicID: "feat_1",
		Title:    "Persona chat",
		Priority: roadmap.PriorityMax + 1,
	})
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestCreateFeatureUnknownProject(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.CreateFeature(context.Background(), "proj_missing", &roadmap.Feature{PublicID: "feat_1", Title: "Persona chat"})
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}
