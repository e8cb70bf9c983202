package contentitems

import (
	"github.com/gin-gonic/gin"

	"titan-server/internal/interfaces/httpserver/handlers/contenthandler"
	"titan-server/internal/interfaces/httpserver/requests"
	"titan-server/internal/interfaces/httpserver/requests/contentreq"
	"titan-server/internal/interfaces/httpserver/responses"
	"titan-server/internal/utils/platformerrors"
)

type ContentRoute struct {
	handler *contenthandler.ContentHandler
}

func NewContentRoute(handler *contenthandler.ContentHandler) *ContentRoute {
	return &ContentRoute{handler: handler}
}

// RegisterRoutes registers content item routes. Creation lives under the
// authoring persona.
func (r *ContentRoute) RegisterRoutes(rg *gin.RouterGroup) {
	content := rg.Group("/content")
	content.GET("", r.listContent)
	content.GET("/:content_id", r.getContent)
	content.PATCH("/:content_id", r.updateContent)
	content.DELETE("/:content_id", r.deleteContent)
	content.POST("/:content_id/status", r.transitionContent)
	content.POST("/:content_id/engagement", r.recordEngagement)
}

// listContent godoc
// @Summary List content
// @Description List content items across personas with optional filters
// @Tags Content API
// @Produce json
// @Param persona_id query string false "Filter by authoring persona ID"
// @Param status query string false "Filter by content status"
// @Param limit query int false "Maximum number of items to return"
// @Param after query string false "Return items after the given numeric ID"
// @Param order query string false "Sort order (asc or desc)"
// @Success 200 {object} contentres.ContentListResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/content [get]
func (r *ContentRoute) listContent(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	pagination, err := requests.GetCursorPaginationFromQuery(reqCtx, nil)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to process pagination")
		return
	}

	response, err := r.handler.ListContent(ctx, reqCtx.Query("persona_id"), reqCtx.Query("status"), pagination)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to list content")
		return
	}

	reqCtx.JSON(200, response)
}

// getContent godoc
// @Summary Get content item
// @Description Get a single content item by ID
// @Tags Content API
// @Produce json
// @Param content_id path string true "Content ID"
// @Success 200 {object} contentres.ContentResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/content/{content_id} [get]
func (r *ContentRoute) getContent(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.handler.GetContent(ctx, reqCtx.Param("content_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to get content")
		return
	}

	reqCtx.JSON(200, response)
}

// updateContent godoc
// @Summary Update content item
// @Description Update a content item's title, body, type, or schedule
// @Tags Content API
// @Accept json
// @Produce json
// @Param content_id path string true "Content ID"
// @Param request body contentreq.UpdateContentRequest true "Update request"
// @Success 200 {object} contentres.ContentResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/content/{content_id} [patch]
func (r *ContentRoute) updateContent(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req contentreq.UpdateContentRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "cont-update-001")
		return
	}

	response, err := r.handler.UpdateContent(ctx, reqCtx.Param("content_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to update content")
		return
	}

	reqCtx.JSON(200, response)
}

// deleteContent godoc
// @Summary Delete content item
// @Description Soft-delete a content item
// @Tags Content API
// @Produce json
// @Param content_id path string true "Content ID"
// @Success 200 {object} contentres.ContentDeletedResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/content/{content_id} [delete]
func (r *ContentRoute) deleteContent(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.handler.DeleteContent(ctx, reqCtx.Param("content_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to delete content")
		return
	}

	reqCtx.JSON(200, response)
}

// transitionContent godoc
// @Summary Transition content status
// @Description Move a content item through its publication lifecycle
// @Tags Content API
// @Accept json
// @Produce json
// @Param content_id path string true "Content ID"
// @Param request body contentreq.TransitionRequest true "Target status"
// @Success 200 {object} contentres.ContentResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/content/{content_id}/status [post]
func (r *ContentRoute) transitionContent(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req contentreq.TransitionRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "cont-status-001")
		return
	}

	response, err := r.handler.TransitionContent(ctx, reqCtx.Param("content_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to transition content")
		return
	}

	reqCtx.JSON(200, response)
}

// recordEngagement godoc
// @Summary Record engagement
// @Description Apply a views, likes, and revenue delta to a content item
// @Tags Content API
// @Accept json
// @Produce json
// @Param content_id path string true "Content ID"
// @Param request body contentreq.EngagementRequest true "Engagement delta"
// @Success 200 {object} contentres.ContentResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/content/{content_id}/engagement [post]
func (r *ContentRoute) recordEngagement(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req contentreq.EngagementRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "cont-engage-001")
		return
	}

	response, err := r.handler.RecordEngagement(ctx, reqCtx.Param("content_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to record engagement")
		return
	}

	reqCtx.JSON(200, response)
}
