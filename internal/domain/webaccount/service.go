package webaccount

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"titan-server/internal/domain/query"
	"titan-server/internal/utils/crypto"
	"titan-server/internal/utils/platformerrors"
)

// Secret is the AES key used for credential encryption. A distinct type so
// dependency injection can tell it apart from other string configuration.
type Secret string

// Service handles business logic for web accounts.
type Service struct {
	repo   Repository
	secret string
}

// NewService creates a new web account service. An empty secret disables
// credential storage.
func NewService(repo Repository, secret Secret) *Service {
	return &Service{
		repo:   repo,
		secret: string(secret),
	}
}

// CreateInput carries the fields for a new account link.
type CreateInput struct {
	PersonaID  *uint
	Platform   string
	Username   string
	Credential string // plaintext, encrypted before persistence
}

// Create encrypts the provided credential and persists the account. A
// duplicate (platform, username) pair is a conflict.
func (s *Service) Create(ctx context.Context, publicID string, input CreateInput) (*Account, error) {
	platform := strings.ToLower(strings.TrimSpace(input.Platform))
	username := strings.TrimSpace(input.Username)
	if platform == "" || username == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"platform and username are required", nil, "")
	}

	existing, err := s.repo.GetByPlatformAndUsername(ctx, platform, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to check for existing account")
	}
	if existing != nil {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
			"account already linked", nil, "", map[string]any{
				"platform": platform,
				"username": username,
			})
	}

	cipher := ""
	if input.Credential != "" {
		if s.secret == "" {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConfiguration,
				"credential storage is not configured", nil, "")
		}
		cipher, err = crypto.EncryptString(s.secret, input.Credential)
		if err != nil {
			return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to encrypt credential")
		}
	}

	now := time.Now()
	account := &Account{
		PublicID:         publicID,
		PersonaID:        input.PersonaID,
		Platform:         platform,
		Username:         username,
		CredentialCipher: cipher,
		Status:           StatusConnected,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create web account")
	}
	return account, nil
}

// GetByPublicID retrieves an account by public ID.
func (s *Service) GetByPublicID(ctx context.Context, publicID string) (*Account, error) {
	account, err := s.repo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "web account not found")
	}
	return account, nil
}

// List retrieves accounts matching the filter with pagination.
func (s *Service) List(ctx context.Context, filter Filter, pagination *query.Pagination) ([]*Account, int64, error) {
	accounts, total, err := s.repo.List(ctx, filter, pagination)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list web accounts")
	}
	return accounts, total, nil
}

// Delete removes an account link and its stored credential.
func (s *Service) Delete(ctx context.Context, publicID string) error {
	if err := s.repo.Delete(ctx, publicID); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete web account")
	}
	return nil
}
