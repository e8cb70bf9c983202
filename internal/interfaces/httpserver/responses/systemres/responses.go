package systemres

// CapabilitiesResponse reports which optional subsystems are live
type CapabilitiesResponse struct {
	Object             string `json:"object"`
	Version            string `json:"version"`
	ChatConfigured     bool   `json:"chat_configured"`
	AutonomyEnabled    bool   `json:"autonomy_enabled"`
	RealtimeEnabled    bool   `json:"realtime_enabled"`
	CredentialsEnabled bool   `json:"credentials_enabled"`
	WebhookConfigured  bool   `json:"webhook_configured"`
}

// RedeployResponse acknowledges an accepted redeploy webhook
type RedeployResponse struct {
	Object   string `json:"object"`
	Accepted bool   `json:"accepted"`
}
