package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPersonaTemplatesEmbedded(t *testing.T) {
	templates, err := LoadPersonaTemplates("")
	if err != nil {
		t.Fatalf("LoadPersonaTemplates failed: %v", err)
	}
	if len(templates) == 0 {
		t.Fatal("embedded catalog is empty")
	}
	for _, tpl := range templates {
		if tpl.Slug == "" || tpl.Name == "" {
			t.Errorf("template missing slug or name: %+v", tpl)
		}
	}
}

func TestLoadPersonaTemplatesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yml")
	doc := `templates:
  - slug: custom
    name: Custom
    tone: Warm
    responsiveness: 3
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	templates, err := LoadPersonaTemplates(path)
	if err != nil {
		t.Fatalf("LoadPersonaTemplates failed: %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("got %d templates", len(templates))
	}
	if templates[0].Slug != "custom" || templates[0].Tone != "Warm" || templates[0].Responsiveness != 3 {
		t.Errorf("unexpected template: %+v", templates[0])
	}
}

func TestLoadPersonaTemplatesMissingFile(t *testing.T) {
	if _, err := LoadPersonaTemplates(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("missing file should error")
	}
}

func TestLoadPersonaTemplatesRejectsMissingSlug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yml")
	doc := `templates:
  - name: Anonymous
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPersonaTemplates(path); err == nil {
		t.Fatal("missing slug should error")
	}
}

func TestLoadPersonaTemplatesRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yml")
	if err := os.WriteFile(path, []byte("templates: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPersonaTemplates(path); err == nil {
		t.Fatal("invalid yaml should error")
	}
}
