package webaccount_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"titan-server/internal/domain/query"
	"titan-server/internal/domain/webaccount"
	"titan-server/internal/utils/crypto"
	"titan-server/internal/utils/platformerrors"
)

// fakeAccountRepo keeps accounts in memory keyed by (platform, username).
type fakeAccountRepo struct {
	accounts map[string]*webaccount.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*webaccount.Account{}}
}

func (f *fakeAccountRepo) key(platform, username string) string { return platform + "/" + username }

func (f *fakeAccountRepo) Create(ctx context.Context, account *webaccount.Account) error {
	f.accounts[f.key(account.Platform, account.Username)] = account
	return nil
}
func (f *fakeAccountRepo) GetByPublicID(ctx context.Context, publicID string) (*webaccount.Account, error) {
	for _, account := range f.accounts {
		if account.PublicID == publicID {
			return account, nil
		}
	}
	return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "web account not found", nil, "")
}
func (f *fakeAccountRepo) GetByPlatformAndUsername(ctx context.Context, platform, username string) (*webaccount.Account, error) {
	account, ok := f.accounts[f.key(platform, username)]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "web account not found", nil, "")
	}
	return account, nil
}
func (f *fakeAccountRepo) List(ctx context.Context, filter webaccount.Filter, pagination *query.Pagination) ([]*webaccount.Account, int64, error) {
	return nil, 0, nil
}
func (f *fakeAccountRepo) Delete(ctx context.Context, publicID string) error { return nil }

func TestCreateNormalizesAndEncrypts(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := webaccount.NewService(repo, "test-credential-secret")

	account, err := svc.Create(context.Background(), "acct_1", webaccount.CreateInput{
		Platform:   "  Instagram ",
		Username:   " ava.official ",
		Credential: "hunter2",
	})
	require.NoError(t, err)
	require.Equal(t, "instagram", account.Platform)
	require.Equal(t, "ava.official", account.Username)
	require.Equal(t, webaccount.StatusConnected, account.Status)
	require.True(t, account.HasCredential())
	require.NotEqual(t, "hunter2", account.CredentialCipher)

	plaintext, err := crypto.DecryptString("test-credential-secret", account.CredentialCipher)
	require.NoError(t, err)
	require.Equal(t, "hunter2", plaintext)
}

func TestCreateWithoutCredential(t *testing.T) {
	svc := webaccount.NewService(newFakeAccountRepo(), "")

	account, err := svc.Create(context.Background(), "acct_1", webaccount.CreateInput{
		Platform: "fanvue",
		Username: "ava",
	})
	require.NoError(t, err)
	require.False(t, account.HasCredential())
}

func TestCreateCredentialWithoutSecret(t *testing.T) {
	svc := webaccount.NewService(newFakeAccountRepo(), "")

	_, err := svc.Create(context.Background(), "acct_1", webaccount.CreateInput{
		Platform:   "fanvue",
		Username:   "ava",
		Credential: "hunter2",
	})
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConfiguration))
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := webaccount.NewService(newFakeAccountRepo(), "secret")

	_, err := svc.Create(context.Background(), "acct_1", webaccount.CreateInput{Platform: "  ", Username: "ava"})
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))

	_, err = svc.Create(context.Background(), "acct_2", webaccount.CreateInput{Platform: "fanvue"})
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestCreateDuplicateConflict(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := webaccount.NewService(repo, "secret")

	_, err := svc.Create(context.Background(), "acct_1", webaccount.CreateInput{Platform: "instagram", Username: "ava"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "acct_2", webaccount.CreateInput{Platform: "Instagram", Username: " ava "})
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict))
}
