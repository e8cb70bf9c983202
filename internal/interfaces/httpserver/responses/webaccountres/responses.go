package webaccountres

import (
	"time"

	"titan-server/internal/domain/webaccount"
)

// AccountResponse represents a linked platform account. The credential is
// never included; only its presence is reported.
type AccountResponse struct {
	ID            string     `json:"id"`
	Object        string     `json:"object"`
	Platform      string     `json:"platform"`
	Username      string     `json:"username"`
	Status        string     `json:"status"`
	HasCredential bool       `json:"has_credential"`
	LastSyncAt    *time.Time `json:"last_sync_at,omitempty"`
	CreatedAt     int64      `json:"created_at"`
	UpdatedAt     int64      `json:"updated_at"`
}

// AccountListResponse represents a paginated list of accounts
type AccountListResponse struct {
	Object  string            `json:"object"`
	Data    []AccountResponse `json:"data"`
	HasMore bool              `json:"has_more"`
	Total   int64             `json:"total"`
}

// AccountDeletedResponse represents the delete confirmation response
type AccountDeletedResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// NewAccountResponse creates a response from a domain account
func NewAccountResponse(account *webaccount.Account) *AccountResponse {
	return &AccountResponse{
		ID:            account.PublicID,
		Object:        "web_account",
		Platform:      account.Platform,
		Username:      account.Username,
		Status:        string(account.Status),
		HasCredential: account.HasCredential(),
		LastSyncAt:    account.LastSyncAt,
		CreatedAt:     account.CreatedAt.Unix(),
		UpdatedAt:     account.UpdatedAt.Unix(),
	}
}

// NewAccountListResponse creates a list response from domain accounts
func NewAccountListResponse(accounts []*webaccount.Account, hasMore bool, total int64) *AccountListResponse {
	data := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		data[i] = *NewAccountResponse(account)
	}

	return &AccountListResponse{
		Object:  "list",
		Data:    data,
		HasMore: hasMore,
		Total:   total,
	}
}

// NewAccountDeletedResponse creates a delete response
func NewAccountDeletedResponse(publicID string) *AccountDeletedResponse {
	return &AccountDeletedResponse{
		ID:      publicID,
		Object:  "web_account",
		Deleted: true,
	}
}
