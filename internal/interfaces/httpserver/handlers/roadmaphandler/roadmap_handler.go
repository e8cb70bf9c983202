package roadmaphandler

import (
	"context"

	"titan-server/internal/domain/roadmap"
	"titan-server/internal/interfaces/httpserver/requests/roadmapreq"
	"titan-server/internal/interfaces/httpserver/responses/roadmapres"
	"titan-server/internal/utils/idgen"
	"titan-server/internal/utils/platformerrors"
)

type RoadmapHandler struct {
	roadmapService *roadmap.Service
}

func NewRoadmapHandler(roadmapService *roadmap.Service) *RoadmapHandler {
	return &RoadmapHandler{
		roadmapService: roadmapService,
	}
}

// ===============================================
// Features
// ===============================================

// CreateFeature creates a feature under a project
func (h *RoadmapHandler) CreateFeature(
	ctx context.Context,
	projectID string,
	req roadmapreq.CreateFeatureRequest,
) (*roadmapres.FeatureResponse, error) {
	publicID, err := idgen.GenerateSecureID("feat", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to generate feature ID")
	}

	priority := roadmap.PriorityDefault
	if req.Priority != nil {
		priority = *req.Priority
	}

	f := &roadmap.Feature{
		PublicID:    publicID,
		Title:       req.Title,
		Description: req.Description,
		Status:      roadmap.FeatureStatus(req.Status),
		Priority:    priority,
	}

	f, err = h.roadmapService.CreateFeature(ctx, projectID, f)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to create feature")
	}

	return roadmapres.NewFeatureResponse(f), nil
}

// ListFeatures lists a project's features
func (h *RoadmapHandler) ListFeatures(ctx context.Context, projectID string) (*roadmapres.ListResponse[roadmapres.FeatureResponse], error) {
	features, err := h.roadmapService.ListFeatures(ctx, projectID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list features")
	}
	return roadmapres.NewFeatureListResponse(features), nil
}

// UpdateFeature updates a feature
func (h *RoadmapHandler) UpdateFeature(
	ctx context.Context,
	featureID string,
	req roadmapreq.UpdateFeatureRequest,
) (*roadmapres.FeatureResponse, error) {
	input := roadmap.FeatureUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	}
	if req.Status != nil {
		st := roadmap.FeatureStatus(*req.Status)
		input.Status = &st
	}

	f, err := h.roadmapService.UpdateFeature(ctx, featureID, input)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to update feature")
	}

	return roadmapres.NewFeatureResponse(f), nil
}

// DeleteFeature deletes a feature
func (h *RoadmapHandler) DeleteFeature(ctx context.Context, featureID string) (*roadmapres.DeletedResponse, error) {
	if err := h.roadmapService.DeleteFeature(ctx, featureID); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to delete feature")
	}
	return roadmapres.NewDeletedResponse(featureID, "feature"), nil
}

// ===============================================
// Milestones
// ===============================================

// CreateMilestone creates a milestone under a project
func (h *RoadmapHandler) CreateMilestone(
	ctx context.Context,
	projectID string,
	req roadmapreq.CreateMilestoneRequest,
) (*roadmapres.MilestoneResponse, error) {
	publicID, err := idgen.GenerateSecureID("mile", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to generate milestone ID")
	}

	m := &roadmap.Milestone{
		PublicID:    publicID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	}

	m, err = h.roadmapService.CreateMilestone(ctx, projectID, m)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to create milestone")
	}

	return roadmapres.NewMilestoneResponse(m), nil
}

// ListMilestones lists a project's milestones
func (h *RoadmapHandler) ListMilestones(ctx context.Context, projectID string) (*roadmapres.ListResponse[roadmapres.MilestoneResponse], error) {
	milestones, err := h.roadmapService.ListMilestones(ctx, projectID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list milestones")
	}
	return roadmapres.NewMilestoneListResponse(milestones), nil
}

// UpdateMilestone updates a milestone
func (h *RoadmapHandler) UpdateMilestone(
	ctx context.Context,
	milestoneID string,
	req roadmapreq.UpdateMilestoneRequest,
) (*roadmapres.MilestoneResponse, error) {
	input := roadmap.MilestoneUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	}

	m, err := h.roadmapService.UpdateMilestone(ctx, milestoneID, input)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to update milestone")
	}

	return roadmapres.NewMilestoneResponse(m), nil
}

// DeleteMilestone deletes a milestone
func (h *RoadmapHandler) DeleteMilestone(ctx context.Context, milestoneID string) (*roadmapres.DeletedResponse, error) {
	if err := h.roadmapService.DeleteMilestone(ctx, milestoneID); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to delete milestone")
	}
	return roadmapres.NewDeletedResponse(milestoneID, "milestone"), nil
}

// ===============================================
// Goals
// ===============================================

// CreateGoal creates a goal under a project
func (h *RoadmapHandler) CreateGoal(
	ctx context.Context,
	projectID string,
	req roadmapreq.CreateGoalRequest,
) (*roadmapres.GoalResponse, error) {
	publicID, err := idgen.GenerateSecureID("goal", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to generate goal ID")
	}

	g := &roadmap.Goal{
		PublicID:     publicID,
		Title:        req.Title,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
	}

	g, err = h.roadmapService.CreateGoal(ctx, projectID, g)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to create goal")
	}

	return roadmapres.NewGoalResponse(g), nil
}

// ListGoals lists a project's goals
func (h *RoadmapHandler) ListGoals(ctx context.Context, projectID string) (*roadmapres.ListResponse[roadmapres.GoalResponse], error) {
	goals, err := h.roadmapService.ListGoals(ctx, projectID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list goals")
	}
	return roadmapres.NewGoalListResponse(goals), nil
}

// UpdateGoal updates a goal
func (h *RoadmapHandler) UpdateGoal(
	ctx context.Context,
	goalID string,
	req roadmapreq.UpdateGoalRequest,
) (*roadmapres.GoalResponse, error) {
	input := roadmap.GoalUpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
	}

	g, err := h.roadmapService.UpdateGoal(ctx, goalID, input)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to update goal")
	}

	return roadmapres.NewGoalResponse(g), nil
}

// DeleteGoal deletes a goal
func (h *RoadmapHandler) DeleteGoal(ctx context.Context, goalID string) (*roadmapres.DeletedResponse, error) {
	if err := h.roadmapService.DeleteGoal(ctx, goalID); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to delete goal")
	}
	return roadmapres.NewDeletedResponse(goalID, "goal"), nil
}
