package personas

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"titan-server/internal/interfaces/httpserver/handlers/chathandler"
	"titan-server/internal/interfaces/httpserver/handlers/contenthandler"
	"titan-server/internal/interfaces/httpserver/handlers/personahandler"
	"titan-server/internal/interfaces/httpserver/requests"
	"titan-server/internal/interfaces/httpserver/requests/chatreq"
	"titan-server/internal/interfaces/httpserver/requests/contentreq"
	"titan-server/internal/interfaces/httpserver/requests/personareq"
	"titan-server/internal/interfaces/httpserver/responses"
	"titan-server/internal/utils/platformerrors"
)

type PersonaRoute struct {
	handler        *personahandler.PersonaHandler
	chatHandler    *chathandler.ChatHandler
	contentHandler *contenthandler.ContentHandler
}

func NewPersonaRoute(
	handler *personahandler.PersonaHandler,
	chatHandler *chathandler.ChatHandler,
	contentHandler *contenthandler.ContentHandler,
) *PersonaRoute {
	return &PersonaRoute{
		handler:        handler,
		chatHandler:    chatHandler,
		contentHandler: contentHandler,
	}
}

// RegisterRoutes registers persona routes and their chat and content
// sub-resources
func (r *PersonaRoute) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/persona-templates", r.listTemplates)

	personas := rg.Group("/personas")
	personas.POST("", r.createPersona)
	personas.GET("", r.listPersonas)
	personas.GET("/:persona_id", r.getPersona)
	personas.PATCH("/:persona_id", r.updatePersona)
	personas.DELETE("/:persona_id", r.deletePersona)
	personas.POST("/:persona_id/toggle-active", r.toggleActive)
	personas.GET("/:persona_id/performance", r.getPerformance)
	personas.GET("/:persona_id/messages", r.getMessages)
	personas.POST("/:persona_id/chat", r.sendMessage)
	personas.GET("/:persona_id/content", r.listContent)
	personas.POST("/:persona_id/content", r.createContent)
}

// listTemplates godoc
// @Summary List persona templates
// @Description List the built-in persona template catalog
// @Tags Personas API
// @Produce json
// @Success 200 {object} personares.TemplateListResponse
// @Router /api/persona-templates [get]
func (r *PersonaRoute) listTemplates(reqCtx *gin.Context) {
	reqCtx.JSON(200, r.handler.ListTemplates(reqCtx.Request.Context()))
}

// createPersona godoc
// @Summary Create persona
// @Description Create a new AI persona, optionally from a template
// @Tags Personas API
// @Accept json
// @Produce json
// @Param request body personareq.CreatePersonaRequest true "Create persona request"
// @Success 201 {object} personares.PersonaResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/personas [post]
func (r *PersonaRoute) createPersona(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req personareq.CreatePersonaRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "pers-create-001")
		return
	}

	response, err := r.handler.CreatePersona(ctx, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to create persona")
		return
	}

	reqCtx.JSON(201, response)
}

// listPersonas godoc
// @Summary List personas
// @Description List personas, optionally filtered by project or active flag
// @Tags Personas API
// @Produce json
// @Param project_id query string false "Filter by project ID"
// @Param active query bool false "Filter by active flag"
// @Param limit query int false "Maximum number of personas to return"
// @Param after query string false "Return personas after the given numeric ID"
// @Param order query string false "Sort order (asc or desc)"
// @Success 200 {object} personares.PersonaListResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/personas [get]
func (r *PersonaRoute) listPersonas(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	pagination, err := requests.GetCursorPaginationFromQuery(reqCtx, nil)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to process pagination")
		return
	}

	var active *bool
	if activeStr := reqCtx.Query("active"); activeStr != "" {
		parsed, err := strconv.ParseBool(activeStr)
		if err != nil {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid active filter", "pers-list-001")
			return
		}
		active = &parsed
	}

	response, err := r.handler.ListPersonas(ctx, reqCtx.Query("project_id"), active, pagination)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to list personas")
		return
	}

	reqCtx.JSON(200, response)
}

// getPersona godoc
// @Summary Get persona
// @Description Get a single persona by ID
// @Tags Personas API
// @Produce json
// @Param persona_id path string true "Persona ID"
// @Success 200 {object} personares.PersonaResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/personas/{persona_id} [get]
func (r *PersonaRoute) getPersona(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.handler.GetPersona(ctx, reqCtx.Param("persona_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to get persona")
		return
	}

	reqCtx.JSON(200, response)
}

// updatePersona godoc
// @Summary Update persona
// @Description Update a persona's profile, behavior, or autonomy settings
// @Tags Personas API
// @Accept json
// @Produce json
// @Param persona_id path string true "Persona ID"
// @Param request body personareq.UpdatePersonaRequest true "Update request"
// @Success 200 {object} personares.PersonaResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/personas/{persona_id} [patch]
func (r *PersonaRoute) updatePersona(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req personareq.UpdatePersonaRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "pers-update-001")
		return
	}

	response, err := r.handler.UpdatePersona(ctx, reqCtx.Param("persona_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to update persona")
		return
	}

	reqCtx.JSON(200, response)
}

// deletePersona godoc
// @Summary Delete persona
// @Description Soft-delete a persona
// @Tags Personas API
// @Produce json
// @Param persona_id path string true "Persona ID"
// @Success 200 {object} personares.PersonaDeletedResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/personas/{persona_id} [delete]
func (r *PersonaRoute) deletePersona(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.handler.DeletePersona(ctx, reqCtx.Param("persona_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to delete persona")
		return
	}

	reqCtx.JSON(200, response)
}

// toggleActive godoc
// @Summary Toggle persona active flag
// @Description Flip whether the persona responds to chat and autonomy ticks
// @Tags Personas API
// @Produce json
// @Param persona_id path string true "Persona ID"
// @Success 200 {object} personares.PersonaResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/personas/{persona_id}/toggle-active [post]
func (r *PersonaRoute) toggleActive(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.handler.ToggleActive(ctx, reqCtx.Param("persona_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to toggle persona")
		return
	}

	reqCtx.JSON(200, response)
}

// getPerformance godoc
// @Summary Get persona performance
// @Description Compute the persona's weighted performance score
// @Tags Personas API
// @Produce json
// @Param persona_id path string true "Persona ID"
// @Success 200 {object} personares.PerformanceResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/personas/{persona_id}/performance [get]
func (r *PersonaRoute) getPerformance(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.handler.GetPerformance(ctx, reqCtx.Param("persona_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to compute performance")
		return
	}

	reqCtx.JSON(200, response)
}

// getMessages godoc
// @Summary Get chat history
// @Description Page through a persona's chat log, newest first
// @Tags Chat API
// @Produce json
// @Param persona_id path string true "Persona ID"
// @Param limit query int false "Maximum number of messages to return"
// @Param after query string false "Return messages after the given numeric ID"
// @Param order query string false "Sort order (asc or desc)"
// @Success 200 {object} chatres.MessageListResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/personas/{persona_id}/messages [get]
func (r *PersonaRoute) getMessages(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	pagination, err := requests.GetCursorPaginationFromQuery(reqCtx, nil)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to process pagination")
		return
	}

	response, err := r.chatHandler.GetHistory(ctx, reqCtx.Param("persona_id"), pagination)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to get chat history")
		return
	}

	reqCtx.JSON(200, response)
}

// sendMessage godoc
// @Summary Send chat message
// @Description Send a message to a persona and receive its reply
// @Tags Chat API
// @Accept json
// @Produce json
// @Param persona_id path string true "Persona ID"
// @Param request body chatreq.SendMessageRequest true "Message"
// @Success 200 {object} chatres.ExchangeResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/personas/{persona_id}/chat [post]
func (r *PersonaRoute) sendMessage(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req chatreq.SendMessageRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "chat-send-001")
		return
	}

	response, err := r.chatHandler.SendMessage(ctx, reqCtx.Param("persona_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to send message")
		return
	}

	reqCtx.JSON(200, response)
}

// listContent godoc
// @Summary List persona content
// @Description List a persona's content items, optionally filtered by status
// @Tags Content API
// @Produce json
// @Param persona_id path string true "Persona ID"
// @Param status query string false "Filter by content status"
// @Param limit query int false "Maximum number of items to return"
// @Param after query string false "Return items after the given numeric ID"
// @Param order query string false "Sort order (asc or desc)"
// @Success 200 {object} contentres.ContentListResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/personas/{persona_id}/content [get]
func (r *PersonaRoute) listContent(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	pagination, err := requests.GetCursorPaginationFromQuery(reqCtx, nil)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to process pagination")
		return
	}

	response, err := r.contentHandler.ListPersonaContent(ctx, reqCtx.Param("persona_id"), reqCtx.Query("status"), pagination)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to list content")
		return
	}

	reqCtx.JSON(200, response)
}

// createContent godoc
// @Summary Create content item
// @Description Create a content item authored by the persona
// @Tags Content API
// @Accept json
// @Produce json
// @Param persona_id path string true "Persona ID"
// @Param request body contentreq.CreateContentRequest true "Create content request"
// @Success 201 {object} contentres.ContentResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/personas/{persona_id}/content [post]
func (r *PersonaRoute) createContent(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req contentreq.CreateContentRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "cont-create-001")
		return
	}

	response, err := r.contentHandler.CreateContent(ctx, reqCtx.Param("persona_id"), req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to create content")
		return
	}

	reqCtx.JSON(201, response)
}
