package webaccount

import (
	"context"
	"time"

	"titan-server/internal/domain/query"
)

// ===============================================
// Web Account Types
// ===============================================

type Status string

const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
	StatusError        Status = "error"
)

func (s Status) Valid() bool {
	switch s {
	case StatusConnected, StatusDisconnected, StatusError:
		return true
	}
	return false
}

// Account links a persona to an external platform account. The credential is
// stored AES-GCM encrypted and never returned; responses expose only a
// has_credential boolean.
type Account struct {
	ID               uint       `json:"-"`
	PublicID         string     `json:"id"`
	PersonaID        *uint      `json:"-"`
	Platform         string     `json:"platform"`
	Username         string     `json:"username"`
	CredentialCipher string     `json:"-"`
	Status           Status     `json:"status"`
	LastSyncAt       *time.Time `json:"last_sync_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// HasCredential reports whether an encrypted credential is stored.
func (a *Account) HasCredential() bool {
	return a.CredentialCipher != ""
}

// ===============================================
// Web Account Repository
// ===============================================

type Filter struct {
	PersonaID *uint
	Platform  *string
}

type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByPublicID(ctx context.Context, publicID string) (*Account, error)
	GetByPlatformAndUsername(ctx context.Context, platform, username string) (*Account, error)
	List(ctx context.Context, filter Filter, pagination *query.Pagination) ([]*Account, int64, error)
	Delete(ctx context.Context, publicID string) error
}
