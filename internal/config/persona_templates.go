package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates/personas.yml
var embeddedPersonaTemplates []byte

// PersonaTemplateEntry describes one entry of the curated persona catalog
// seeded at startup and served read-only by the API.
type PersonaTemplateEntry struct {
	Slug           string `yaml:"slug"`
	Name           string `yaml:"name"`
	Archetype      string `yaml:"archetype"`
	Bio            string `yaml:"bio"`
	Tone           string `yaml:"tone"`
	Style          string `yaml:"style"`
	Vocabulary     string `yaml:"vocabulary"`
	Guidelines     string `yaml:"guidelines"`
	Responsiveness int    `yaml:"responsiveness"`
}

type personaTemplateDocument struct {
	Templates []PersonaTemplateEntry `yaml:"templates"`
}

// LoadPersonaTemplates parses the catalog from path, or from the embedded
// default catalog when path is empty.
func LoadPersonaTemplates(path string) ([]PersonaTemplateEntry, error) {
	data := embeddedPersonaTemplates
	if strings.TrimSpace(path) != "" {
		cleanPath := filepath.Clean(path)
		fileData, err := os.ReadFile(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("read persona template file %q: %w", cleanPath, err)
		}
		data = fileData
	}

	var doc personaTemplateDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse persona templates: %w", err)
	}

	for i, tpl := range doc.Templates {
		if strings.TrimSpace(tpl.Slug) == "" {
			return nil, fmt.Errorf("persona template %d: slug is required", i)
		}
		if strings.TrimSpace(tpl.Name) == "" {
			return nil, fmt.Errorf("persona template %q: name is required", tpl.Slug)
		}
	}

	return doc.Templates, nil
}
