package personareq

// CreatePersonaRequest represents the request to create a persona. When a
// template slug is given, its presets fill any empty behavior field.
type CreatePersonaRequest struct {
	Name           string `json:"name" binding:"required" validate:"required,max=255"`
	Archetype      string `json:"archetype,omitempty" validate:"max=255"`
	Bio            string `json:"bio,omitempty"`
	AvatarURL      string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	ProjectID      string `json:"project_id,omitempty"`
	TemplateSlug   string `json:"template,omitempty"`
	Tone           string `json:"tone,omitempty" validate:"max=64"`
	Style          string `json:"style,omitempty" validate:"max=64"`
	Vocabulary     string `json:"vocabulary,omitempty" validate:"max=64"`
	Guidelines     string `json:"guidelines,omitempty"`
	Responsiveness int    `json:"responsiveness,omitempty" validate:"min=0,max=10"`
	AutonomyLevel  int    `json:"autonomy_level,omitempty" validate:"min=0,max=10"`
}

// UpdatePersonaRequest represents the request to update a persona
type UpdatePersonaRequest struct {
	Name            *string   `json:"name,omitempty"`
	Archetype       *string   `json:"archetype,omitempty"`
	Bio             *string   `json:"bio,omitempty"`
	AvatarURL       *string   `json:"avatar_url,omitempty"`
	ProjectID       *string   `json:"project_id,omitempty"`
	Tone            *string   `json:"tone,omitempty"`
	Style           *string   `json:"style,omitempty"`
	Vocabulary      *string   `json:"vocabulary,omitempty"`
	Guidelines      *string   `json:"guidelines,omitempty"`
	Responsiveness  *int      `json:"responsiveness,omitempty"`
	AutonomyEnabled *bool     `json:"autonomy_enabled,omitempty"`
	AutonomyLevel   *int      `json:"autonomy_level,omitempty"`
	Permissions     *[]string `json:"permissions,omitempty"`
}
