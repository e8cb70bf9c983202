package webaccountreq

// CreateAccountRequest represents the request to link a platform account. The
// credential is encrypted at rest and never echoed back.
type CreateAccountRequest struct {
	Platform   string `json:"platform" binding:"required"`
	Username   string `json:"username" binding:"required"`
	PersonaID  string `json:"persona_id,omitempty"`
	Credential string `json:"credential,omitempty"`
}
