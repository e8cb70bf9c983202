package webaccounthandler

import (
	"context"

	"titan-server/internal/domain/persona"
	"titan-server/internal/domain/query"
	"titan-server/internal/domain/webaccount"
	"titan-server/internal/interfaces/httpserver/requests/webaccountreq"
	"titan-server/internal/interfaces/httpserver/responses/webaccountres"
	"titan-server/internal/utils/idgen"
	"titan-server/internal/utils/platformerrors"
)

type WebAccountHandler struct {
	accountService *webaccount.Service
	personaService *persona.Service
}

func NewWebAccountHandler(accountService *webaccount.Service, personaService *persona.Service) *WebAccountHandler {
	return &WebAccountHandler{
		accountService: accountService,
		personaService: personaService,
	}
}

// CreateAccount links a platform account
func (h *WebAccountHandler) CreateAccount(
	ctx context.Context,
	req webaccountreq.CreateAccountRequest,
) (*webaccountres.AccountResponse, error) {
	publicID, err := idgen.GenerateSecureID("acct", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to generate account ID")
	}

	var personaID *uint
	if req.PersonaID != "" {
		p, err := h.personaService.GetByPublicID(ctx, req.PersonaID)
		if err != nil {
			return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "persona not found")
		}
		personaID = &p.ID
	}

	account, err := h.accountService.Create(ctx, publicID, webaccount.CreateInput{
		PersonaID:  personaID,
		Platform:   req.Platform,
		Username:   req.Username,
		Credential: req.Credential,
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to create web account")
	}

	return webaccountres.NewAccountResponse(account), nil
}

// GetAccount retrieves a single account
func (h *WebAccountHandler) GetAccount(
	ctx context.Context,
	accountID string,
) (*webaccountres.AccountResponse, error) {
	account, err := h.accountService.GetByPublicID(ctx, accountID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to get web account")
	}

	return webaccountres.NewAccountResponse(account), nil
}

// ListAccounts lists linked accounts with optional persona and platform filters
func (h *WebAccountHandler) ListAccounts(
	ctx context.Context,
	personaPublicID string,
	platform string,
	pagination *query.Pagination,
) (*webaccountres.AccountListResponse, error) {
	filter := webaccount.Filter{}
	if platform != "" {
		filter.Platform = &platform
	}
	if personaPublicID != "" {
		p, err := h.personaService.GetByPublicID(ctx, personaPublicID)
		if err != nil {
			return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "persona not found")
		}
		filter.PersonaID = &p.ID
	}

	// Fetch limit+1 to determine hasMore
	var requestedLimit *int
	if pagination != nil && pagination.Limit != nil {
		requestedLimit = pagination.Limit
		extraLimit := *pagination.Limit + 1
		pagination.Limit = &extraLimit
	}

	accounts, total, err := h.accountService.List(ctx, filter, pagination)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list web accounts")
	}

	hasMore := false
	if requestedLimit != nil && len(accounts) > *requestedLimit {
		hasMore = true
		accounts = accounts[:*requestedLimit]
	}

	return webaccountres.NewAccountListResponse(accounts, hasMore, total), nil
}

// DeleteAccount unlinks an account
func (h *WebAccountHandler) DeleteAccount(
	ctx context.Context,
	accountID string,
) (*webaccountres.AccountDeletedResponse, error) {
	if err := h.accountService.Delete(ctx, accountID); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to delete web account")
	}

	return webaccountres.NewAccountDeletedResponse(accountID), nil
}
