package webaccounts

import (
	"github.com/gin-gonic/gin"

	"titan-server/internal/interfaces/httpserver/handlers/webaccounthandler"
	"titan-server/internal/interfaces/httpserver/requests"
	"titan-server/internal/interfaces/httpserver/requests/webaccountreq"
	"titan-server/internal/interfaces/httpserver/responses"
	"titan-server/internal/utils/platformerrors"
)

type WebAccountRoute struct {
	handler *webaccounthandler.WebAccountHandler
}

func NewWebAccountRoute(handler *webaccounthandler.WebAccountHandler) *WebAccountRoute {
	return &WebAccountRoute{handler: handler}
}

// RegisterRoutes registers web account routes
func (r *WebAccountRoute) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/web-accounts")
	accounts.POST("", r.createAccount)
	accounts.GET("", r.listAccounts)
	accounts.GET("/:account_id", r.getAccount)
	accounts.DELETE("/:account_id", r.deleteAccount)
}

// createAccount godoc
// @Summary Link web account
// @Description Link a platform account, optionally with an encrypted credential
// @Tags Web Accounts API
// @Accept json
// @Produce json
// @Param request body webaccountreq.CreateAccountRequest true "Create account request"
// @Success 201 {object} webaccountres.AccountResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/web-accounts [post]
func (r *WebAccountRoute) createAccount(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req webaccountreq.CreateAccountRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "acct-create-001")
		return
	}

	response, err := r.handler.CreateAccount(ctx, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to link web account")
		return
	}

	reqCtx.JSON(201, response)
}

// listAccounts godoc
// @Summary List web accounts
// @Description List linked accounts with optional persona and platform filters
// @Tags Web Accounts API
// @Produce json
// @Param persona_id query string false "Filter by persona ID"
// @Param platform query string false "Filter by platform"
// @Param limit query int false "Maximum number of accounts to return"
// @Param after query string false "Return accounts after the given numeric ID"
// @Param order query string false "Sort order (asc or desc)"
// @Success 200 {object} webaccountres.AccountListResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/web-accounts [get]
func (r *WebAccountRoute) listAccounts(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	pagination, err := requests.GetCursorPaginationFromQuery(reqCtx, nil)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to process pagination")
		return
	}

	response, err := r.handler.ListAccounts(ctx, reqCtx.Query("persona_id"), reqCtx.Query("platform"), pagination)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to list web accounts")
		return
	}

	reqCtx.JSON(200, response)
}

// getAccount godoc
// @Summary Get web account
// @Description Get a single linked account by ID
// @Tags Web Accounts API
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {object} webaccountres.AccountResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/web-accounts/{account_id} [get]
func (r *WebAccountRoute) getAccount(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.handler.GetAccount(ctx, reqCtx.Param("account_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to get web account")
		return
	}

	reqCtx.JSON(200, response)
}

// deleteAccount godoc
// @Summary Unlink web account
// @Description Remove an account link and its stored credential
// @Tags Web Accounts API
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {object} webaccountres.AccountDeletedResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/web-accounts/{account_id} [delete]
func (r *WebAccountRoute) deleteAccount(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := r.handler.DeleteAccount(ctx, reqCtx.Param("account_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to unlink web account")
		return
	}

	reqCtx.JSON(200, response)
}
