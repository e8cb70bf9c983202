package project_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"titan-server/internal/domain/events"
	"titan-server/internal/domain/project"
	"titan-server/internal/domain/query"
	"titan-server/internal/utils/platformerrors"
)

// fakeProjectRepo keeps projects in memory keyed by public ID.
type fakeProjectRepo struct {
	projects map[string]*project.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]*project.Project{}}
}

func (f *fakeProjectRepo) Create(ctx context.Context, proj *project.Project) error {
	f.projects[proj.PublicID] = proj
	return nil
}
func (f *fakeProjectRepo) GetByPublicID(ctx context.Context, publicID string) (*project.Project, error) {
	proj, ok := f.projects[publicID]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "project not found", nil, "")
	}
	return proj, nil
}
func (f *fakeProjectRepo) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	return nil, nil
}
func (f *fakeProjectRepo) List(ctx context.Context, filter project.Filter, pagination *query.Pagination) ([]*project.Project, int64, error) {
	return nil, 0, nil
}
func (f *fakeProjectRepo) Update(ctx context.Context, proj *project.Project) error {
	f.projects[proj.PublicID] = proj
	return nil
}
func (f *fakeProjectRepo) Delete(ctx context.Context, publicID string) error {
	delete(f.projects, publicID)
	return nil
}

// recordingBroadcaster captures event types.
type recordingBroadcaster struct {
	events []string
}

func (r *recordingBroadcaster) Broadcast(eventType string, data any) {
	r.events = append(r.events, eventType)
}

func TestCreateBroadcasts(t *testing.T) {
	repo := newFakeProjectRepo()
	broadcaster := &recordingBroadcaster{}
	svc := project.NewService(repo, broadcaster)

	proj, err := svc.Create(context.Background(), project.New("proj_1", "Titan", "AI persona platform"))
	require.NoError(t, err)
	require.Equal(t, "Titan", proj.Name)
	require.Equal(t, project.PriorityDefault, proj.Priority)
	require.Zero(t, proj.Progress)
	require.Contains(t, repo.projects, "proj_1")
	require.Equal(t, []string{events.ProjectCreated}, broadcaster.events)
}

func TestCreateRejectsPriorityOutOfRange(t *testing.T) {
	svc := project.NewService(newFakeProjectRepo(), &recordingBroadcaster{})

	for _, priority := range []int{0, 11, -3} {
		proj := project.New("proj_1", "Titan", "")
		proj.Priority = priority
		_, err := svc.Create(context.Background(), proj)
		require.Error(t, err)
		require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	}
}

func TestCreateRejectsBadNames(t *testing.T) {
	svc := project.NewService(newFakeProjectRepo(), &recordingBroadcaster{})

	_, err := svc.Create(context.Background(), project.New("proj_1", "   ", ""))
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))

	_, err = svc.Create(context.Background(), project.New("proj_2", strings.Repeat("x", 201), ""))
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestUpdateAppliesPartialInput(t *testing.T) {
	repo := newFakeProjectRepo()
	broadcaster := &recordingBroadcaster{}
	svc := project.NewService(repo, broadcaster)

	_, err := svc.Create(context.Background(), project.New("proj_1", "Titan", "old description"))
	require.NoError(t, err)

	status := project.StatusPaused
	autonomy := true
	progress := 42.5
	priority := 9
	updated, err := svc.Update(context.Background(), "proj_1", project.UpdateInput{
		Status:          &status,
		AutonomyEnabled: &autonomy,
		Progress:        &progress,
		Priority:        &priority,
	})
	require.NoError(t, err)
	require.Equal(t, project.StatusPaused, updated.Status)
	require.True(t, updated.AutonomyEnabled)
	require.InDelta(t, 42.5, updated.Progress, 0.001)
	require.Equal(t, 9, updated.Priority)
	require.Equal(t, "Titan", updated.Name)
	require.Equal(t, "old description", updated.Description)
	require.Equal(t, []string{events.ProjectCreated, events.ProjectUpdated}, broadcaster.events)
}

func TestUpdateRejectsProgressAndPriorityOutOfRange(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := project.NewService(repo, &recordingBroadcaster{})

	_, err := svc.Create(context.Background(), project.New("proj_1", "Titan", ""))
	require.NoError(t, err)

	tooMuch := 101.0
	_, err = svc.Update(context.Background(), "proj_1", project.UpdateInput{Progress: &tooMuch})
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))

	negative := -0.5
	_, err = svc.Update(context.Background(), "proj_1", project.UpdateInput{Progress: &negative})
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))

	for _, priority := range []int{0, 11} {
		p := priority
		_, err = svc.Update(context.Background(), "proj_1", project.UpdateInput{Priority: &p})
		require.Error(t, err)
		require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	}

	require.Zero(t, repo.projects["proj_1"].Progress)
	require.Equal(t, project.PriorityDefault, repo.projects["proj_1"].Priority)
}

func TestUpdateRejectsInvalidStatus(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := project.NewService(repo, &recordingBroadcaster{})

	_, err := svc.Create(context.Background(), project.New("proj_1", "Titan", ""))
	require.NoError(t, err)

	bad := project.Status("cancelled")
	_, err = svc.Update(context.Background(), "proj_1", project.UpdateInput{Status: &bad})
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestUpdateUnknownProject(t *testing.T) {
	svc := project.NewService(newFakeProjectRepo(), &recordingBroadcaster{})

	name := "New name"
	_, err := svc.Update(context.Background(), "proj_missing", project.UpdateInput{Name: &name})
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}
