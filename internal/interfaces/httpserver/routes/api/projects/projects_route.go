package projects

import (
	"github.com/gin-gonic/gin"

	"titan-server/internal/interfaces/httpserver/handlers/projecthandler"
	"titan-server/internal/interfaces/httpserver/handlers/roadmaphandler"
	"titan-server/internal/interfaces/httpserver/requests"
	"titan-server/internal/interfaces/httpserver/requests/projectreq"
	"titan-server/internal/interfaces/httpserver/requests/roadmapreq"
	"titan-server/internal/interfaces/httpserver/responses"
	"titan-server/internal/utils/platformerrors"
)

type ProjectRoute struct {
	handler        *projecthandler.ProjectHandler
	roadmapHandler *roadmaphandler.RoadmapHandler
}

func NewProjectRoute(handler *projecthandler.ProjectHandler, roadmapHandler *roadmaphandler.RoadmapHandler) *ProjectRoute {
	return &ProjectRoute{
		handler:        handler,
		roadmapHandler: roadmapHandler,
	}
}

// RegisterRoutes registers project and nested roadmap routes
func (r *ProjectRoute) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	projects.POST("", r.createProject)
	projects.GET("", r.listProjects)
	projects.GET("/:project_id", r.getProject)
	projects.PATCH("/:project_id", r.updateProject)
	projects.DELETE("/:project_id", r.deleteProject)

	projects.GET("/:project_id/features", r.listFeatures)
	projects.POST("/:project_id/features", r.createFeature)
	projects.GET("/:project_id/milestones", r.listMilestones)
	projects.POST("/:project_id/milestones", r.createMilestone)
	projects.GET("/:project_id/goals", r.listGoals)
	projects.POST("/:project_id/goals", r.createGoal)
}

// createProject godoc
// @Summary Create project
// @Description Create a new project for grouping personas and roadmap items
// @Tags Projects API
// @Accept json
// @Produce json
// @Param request body projectreq.CreateProjectRequest true "Create project request"
// @Success 201 {object} projectres.ProjectResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/projects [post]
func (r *ProjectRoute) createProject(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req projectreq.CreateProjectRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "proj-create-001")
		return
	}

	response, err := r.handler.CreateProject(ctx, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to create project")
		return
	}

	reqCtx.JSON(201, response)
}

// listProjects godoc
// @Summary List projects
// @Description List projects, optionally filtered by status
// @Tags Projects API
// @Produce json
// @Param status query string false "Filter by project status"
// @Param limit query int false "Maximum number of projects to return"
// @Param after query string false "Return projects after the given numeric ID"
// @Param order query string false "Sort order (asc or desc)"
// @Success 200 {object} projectres.ProjectListResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/projects [get]
func (r *ProjectRoute) listProjects(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	pagination, err := requests.GetCursorPaginationFromQuery(reqCtx, nil)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to process pagination")
		return
	}

	response, err := r.handler.ListProjects(ctx, reqCtx.Query("status"), pagination)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to list projects")
		return
	}

	reqCtx.JSON(200, response)
}

// getProject godoc
// @Summary Get project
// @Description Get a single project by ID
// @Tags Projects API
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} projectres.ProjectResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/projects/{project_id} [get]
func (r *ProjectRoute) getProject(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.handler.GetProject(ctx, reqCtx.Param("project_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to get project")
		return
	}

	reqCtx.JSON(200, response)
}

// updateProject godoc
// @Summary Update project
// @Description Update project name, description, status, or autonomy flag
// @Tags Projects API
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param request body projectreq.UpdateProjectRequest true "Update request"
// @Success 200 {object} projectres.ProjectResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/projects/{project_id} [patch]
func (r *ProjectRoute) updateProject(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req projectreq.UpdateProjectRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "proj-update-001")
		return
	}

	response, err := r.handler.UpdateProject(ctx, reqCtx.Param("project_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to update project")
		return
	}

	reqCtx.JSON(200, response)
}

// deleteProject godoc
// @Summary Delete project
// @Description Soft-delete a project
// @Tags Projects API
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} projectres.ProjectDeletedResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/projects/{project_id} [delete]
func (r *ProjectRoute) deleteProject(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.handler.DeleteProject(ctx, reqCtx.Param("project_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to delete project")
		return
	}

	reqCtx.JSON(200, response)
}

// listFeatures godoc
// @Summary List features
// @Description List a project's features ordered by priority
// @Tags Roadmap API
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} roadmapres.ListResponse[roadmapres.FeatureResponse]
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/projects/{project_id}/features [get]
func (r *ProjectRoute) listFeatures(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.roadmapHandler.ListFeatures(ctx, reqCtx.Param("project_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to list features")
		return
	}

	reqCtx.JSON(200, response)
}

// createFeature godoc
// @Summary Create feature
// @Description Add a feature to a project's roadmap
// @Tags Roadmap API
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param request body roadmapreq.CreateFeatureRequest true "Create feature request"
// @Success 201 {object} roadmapres.FeatureResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/projects/{project_id}/features [post]
func (r *ProjectRoute) createFeature(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req roadmapreq.CreateFeatureRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "feat-create-001")
		return
	}

	response, err := r.roadmapHandler.CreateFeature(ctx, reqCtx.Param("project_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to create feature")
		return
	}

	reqCtx.JSON(201, response)
}

// listMilestones godoc
// @Summary List milestones
// @Description List a project's milestones ordered by due date
// @Tags Roadmap API
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} roadmapres.ListResponse[roadmapres.MilestoneResponse]
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/projects/{project_id}/milestones [get]
func (r *ProjectRoute) listMilestones(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.roadmapHandler.ListMilestones(ctx, reqCtx.Param("project_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to list milestones")
		return
	}

	reqCtx.JSON(200, response)
}

// createMilestone godoc
// @Summary Create milestone
// @Description Add a milestone to a project's roadmap
// @Tags Roadmap API
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param request body roadmapreq.CreateMilestoneRequest true "Create milestone request"
// @Success 201 {object} roadmapres.MilestoneResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/projects/{project_id}/milestones [post]
func (r *ProjectRoute) createMilestone(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req roadmapreq.CreateMilestoneRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "mile-create-001")
		return
	}

	response, err := r.roadmapHandler.CreateMilestone(ctx, reqCtx.Param("project_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to create milestone")
		return
	}

	reqCtx.JSON(201, response)
}

// listGoals godoc
// @Summary List goals
// @Description List a project's goals with computed progress
// @Tags Roadmap API
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} roadmapres.ListResponse[roadmapres.GoalResponse]
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/projects/{project_id}/goals [get]
func (r *ProjectRoute) listGoals(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.roadmapHandler.ListGoals(ctx, reqCtx.Param("project_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to list goals")
		return
	}

	reqCtx.JSON(200, response)
}

// createGoal godoc
// @Summary Create goal
// @Description Add a measurable goal to a project
// @Tags Roadmap API
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param request body roadmapreq.CreateGoalRequest true "Create goal request"
// @Success 201 {object} roadmapres.GoalResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/projects/{project_id}/goals [post]
func (r *ProjectRoute) createGoal(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req roadmapreq.CreateGoalRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "goal-create-001")
		return
	}

	response, err := r.roadmapHandler.CreateGoal(ctx, reqCtx.Param("project_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to create goal")
		return
	}

	reqCtx.JSON(201, response)
}
