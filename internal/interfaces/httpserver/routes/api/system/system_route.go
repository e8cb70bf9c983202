package system

import (
	"github.com/gin-gonic/gin"

	"titan-server/internal/interfaces/httpserver/handlers/systemhandler"
	"titan-server/internal/interfaces/httpserver/responses"
)

type SystemRoute struct {
	handler *systemhandler.SystemHandler
}

func NewSystemRoute(handler *systemhandler.SystemHandler) *SystemRoute {
	return &SystemRoute{handler: handler}
}

// RegisterRoutes registers system routes
func (r *SystemRoute) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	system.GET("/capabilities", r.getCapabilities)
	system.POST("/redeploy", r.redeploy)
}

// getCapabilities godoc
// @Summary Get system capabilities
// @Description Report which optional subsystems are configured
// @Tags System API
// @Produce json
// @Success 200 {object} systemres.CapabilitiesResponse
// @Router /api/system/capabilities [get]
func (r *SystemRoute) getCapabilities(reqCtx *gin.Context) {
	reqCtx.JSON(200, r.handler.GetCapabilities(reqCtx.Request.Context()))
}

// redeploy godoc
// @Summary Trigger redeploy
// @Description Accept a signed redeploy webhook and notify realtime subscribers
// @Tags System API
// @Produce json
// @Param X-Webhook-Signature header string true "Hex SHA-256 of the shared secret"
// @Success 200 {object} systemres.RedeployResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/system/redeploy [post]
func (r *SystemRoute) redeploy(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.handler.Redeploy(ctx, reqCtx.GetHeader("X-Webhook-Signature"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to accept redeploy")
		return
	}

	reqCtx.JSON(200, response)
}
