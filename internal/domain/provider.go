package domain

import (
	"github.com/google/wire"

	"titan-server/internal/config"
	"titan-server/internal/domain/chat"
	"titan-server/internal/domain/content"
	"titan-server/internal/domain/persona"
	"titan-server/internal/domain/project"
	"titan-server/internal/domain/roadmap"
	"titan-server/internal/domain/webaccount"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	project.NewService,
	roadmap.NewService,
	persona.NewService,
	chat.NewService,
	content.NewService,
	webaccount.NewService,

	ProvidePersonaTemplates,
	ProvideCredentialSecret,
)

// ProvidePersonaTemplates loads the curated persona catalog from config.
func ProvidePersonaTemplates(cfg *config.Config) ([]persona.Template, error) {
	entries, err := config.LoadPersonaTemplates(cfg.PersonaTemplateFile)
	if err != nil {
		return nil, err
	}

	templates := make([]persona.Template, len(entries))
	for i, entry := range entries {
		templates[i] = persona.Template{
			Slug:      entry.Slug,
			Name:      entry.Name,
			Archetype: entry.Archetype,
			Bio:       entry.Bio,
			Behavior: persona.Behavior{
				Tone:           entry.Tone,
				Style:          entry.Style,
				Vocabulary:     entry.Vocabulary,
				Guidelines:     entry.Guidelines,
				Responsiveness: entry.Responsiveness,
			},
		}
	}
	return templates, nil
}

// ProvideCredentialSecret extracts the web account encryption secret.
func ProvideCredentialSecret(cfg *config.Config) webaccount.Secret {
	return webaccount.Secret(cfg.CredentialSecret)
}
