package roadmap

import (
	"github.com/gin-gonic/gin"

	"titan-server/internal/interfaces/httpserver/handlers/roadmaphandler"
	"titan-server/internal/interfaces/httpserver/requests/roadmapreq"
	"titan-server/internal/interfaces/httpserver/responses"
	"titan-server/internal/utils/platformerrors"
)

type RoadmapRoute struct {
	handler *roadmaphandler.RoadmapHandler
}

func NewRoadmapRoute(handler *roadmaphandler.RoadmapHandler) *RoadmapRoute {
	return &RoadmapRoute{handler: handler}
}

// RegisterRoutes registers top-level roadmap item routes. Creation and
// listing live under the owning project.
func (r *RoadmapRoute) RegisterRoutes(rg *gin.RouterGroup) {
	features := rg.Group("/features")
	features.PATCH("/:feature_id", r.updateFeature)
	features.DELETE("/:feature_id", r.deleteFeature)

	milestones := rg.Group("/milestones")
	milestones.PATCH("/:milestone_id", r.updateMilestone)
	milestones.DELETE("/:milestone_id", r.deleteMilestone)

	goals := rg.Group("/goals")
	goals.PATCH("/:goal_id", r.updateGoal)
	goals.DELETE("/:goal_id", r.deleteGoal)
}

// updateFeature godoc
// @Summary Update feature
// @Description Update a feature's title, description, status, or priority
// @Tags Roadmap API
// @Accept json
// @Produce json
// @Param feature_id path string true "Feature ID"
// @Param request body roadmapreq.UpdateFeatureRequest true "Update request"
// @Success 200 {object} roadmapres.FeatureResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/features/{feature_id} [patch]
func (r *RoadmapRoute) updateFeature(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req roadmapreq.UpdateFeatureRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "feat-update-001")
		return
	}

	response, err := r.handler.UpdateFeature(ctx, reqCtx.Param("feature_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to update feature")
		return
	}

	reqCtx.JSON(200, response)
}

// deleteFeature godoc
// @Summary Delete feature
// @Description Remove a feature from the roadmap
// @Tags Roadmap API
// @Produce json
// @Param feature_id path string true "Feature ID"
// @Success 200 {object} roadmapres.DeletedResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/features/{feature_id} [delete]
func (r *RoadmapRoute) deleteFeature(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.handler.DeleteFeature(ctx, reqCtx.Param("feature_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to delete feature")
		return
	}

	reqCtx.JSON(200, response)
}

// updateMilestone godoc
// @Summary Update milestone
// @Description Update a milestone, including marking it completed
// @Tags Roadmap API
// @Accept json
// @Produce json
// @Param milestone_id path string true "Milestone ID"
// @Param request body roadmapreq.UpdateMilestoneRequest true "Update request"
// @Success 200 {object} roadmapres.MilestoneResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/milestones/{milestone_id} [patch]
func (r *RoadmapRoute) updateMilestone(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req roadmapreq.UpdateMilestoneRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "mile-update-001")
		return
	}

	response, err := r.handler.UpdateMilestone(ctx, reqCtx.Param("milestone_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to update milestone")
		return
	}

	reqCtx.JSON(200, response)
}

// deleteMilestone godoc
// @Summary Delete milestone
// @Description Remove a milestone from the roadmap
// @Tags Roadmap API
// @Produce json
// @Param milestone_id path string true "Milestone ID"
// @Success 200 {object} roadmapres.DeletedResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/milestones/{milestone_id} [delete]
func (r *RoadmapRoute) deleteMilestone(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.handler.DeleteMilestone(ctx, reqCtx.Param("milestone_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to delete milestone")
		return
	}

	reqCtx.JSON(200, response)
}

// updateGoal godoc
// @Summary Update goal
// @Description Update a goal's target or current value
// @Tags Roadmap API
// @Accept json
// @Produce json
// @Param goal_id path string true "Goal ID"
// @Param request body roadmapreq.UpdateGoalRequest true "Update request"
// @Success 200 {object} roadmapres.GoalResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/goals/{goal_id} [patch]
func (r *RoadmapRoute) updateGoal(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req roadmapreq.UpdateGoalRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "goal-update-001")
		return
	}

	response, err := r.handler.UpdateGoal(ctx, reqCtx.Param("goal_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to update goal")
		return
	}

	reqCtx.JSON(200, response)
}

// deleteGoal godoc
// @Summary Delete goal
// @Description Remove a goal from its project
// @Tags Roadmap API
// @Produce json
// @Param goal_id path string true "Goal ID"
// @Success 200 {object} roadmapres.DeletedResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/goals/{goal_id} [delete]
func (r *RoadmapRoute) deleteGoal(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.handler.DeleteGoal(ctx, reqCtx.Param("goal_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to delete goal")
		return
	}

	reqCtx.JSON(200, response)
}
