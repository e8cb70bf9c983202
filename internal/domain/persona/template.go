package persona

// Template is one entry of the curated persona catalog. The catalog is
// loaded at startup and served read-only; creating a persona may reference a
// template slug to prefill identity and behavior fields.
type Template struct {
	Slug      string   `json:"slug"`
	Name      string   `json:"name"`
	Archetype string   `json:"archetype"`
	Bio       string   `json:"bio"`
	Behavior  Behavior `json:"behavior"`
}

// Apply copies the template's identity and behavior onto p, leaving fields
// the caller already set untouched.
func (t Template) Apply(p *Persona) {
	if p.Name == "" {
		p.Name = t.Name
	}
	if p.Archetype == "" {
		p.Archetype = t.Archetype
	}
	if p.Bio == "" {
		p.Bio = t.Bio
	}
	if p.Behavior.Tone == "" {
		p.Behavior.Tone = t.Behavior.Tone
	}
	if p.Behavior.Style == "" {
		p.Behavior.Style = t.Behavior.Style
	}
	if p.Behavior.Vocabulary == "" {
		p.Behavior.Vocabulary = t.Behavior.Vocabulary
	}
	if p.Behavior.Guidelines == "" {
		p.Behavior.Guidelines = t.Behavior.Guidelines
	}
	if p.Behavior.Responsiveness == 0 {
		p.Behavior.Responsiveness = t.Behavior.Responsiveness
	}
}
