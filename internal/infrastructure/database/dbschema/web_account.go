package dbschema

import (
	"time"

	"titan-server/internal/domain/webaccount"
	"titan-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(WebAccount{})
}

// WebAccount represents the database schema for external platform accounts
type WebAccount struct {
	BaseModel
	PublicID         string `gorm:"uniqueIndex;size:64;not null"`
	PersonaID        *uint  `gorm:"index"`
	Platform         string `gorm:"size:64;not null;uniqueIndex:idx_web_accounts_platform_username"`
	Username         string `gorm:"size:255;not null;uniqueIndex:idx_web_accounts_platform_username"`
	CredentialCipher string `gorm:"type:text"`
	Status           string `gorm:"size:16;not null;default:'disconnected'"`
	LastSyncAt       *time.Time
}

// TableName specifies the table name for WebAccount
func (WebAccount) TableName() string {
	return "titan.web_accounts"
}

// EtoD converts database schema to domain account (Entity to Domain)
func (a *WebAccount) EtoD() *webaccount.Account {
	return &webaccount.Account{
		ID:               a.ID,
		PublicID:         a.PublicID,
		PersonaID:        a.PersonaID,
		Platform:         a.Platform,
		Username:         a.Username,
		CredentialCipher: a.CredentialCipher,
		Status:           webaccount.Status(a.Status),
		LastSyncAt:       a.LastSyncAt,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// WebAccountDtoE converts domain account to database schema (Domain to Entity)
func WebAccountDtoE(account *webaccount.Account) *WebAccount {
	schema := &WebAccount{
		PublicID:         account.PublicID,
		PersonaID:        account.PersonaID,
		Platform:         account.Platform,
		Username:         account.Username,
		CredentialCipher: account.CredentialCipher,
		Status:           string(account.Status),
		LastSyncAt:       account.LastSyncAt,
	}
	schema.ID = account.ID
	return schema
}
