package systemhandler

import (
	"context"
	"crypto/subtle"
	"time"

	"titan-server/internal/config"
	"titan-server/internal/domain/events"
	"titan-server/internal/interfaces/httpserver/responses/systemres"
	"titan-server/internal/utils/idgen"
	"titan-server/internal/utils/platformerrors"
)

type SystemHandler struct {
	cfg         *config.Config
	broadcaster events.Broadcaster
}

func NewSystemHandler(cfg *config.Config, broadcaster events.Broadcaster) *SystemHandler {
	return &SystemHandler{
		cfg:         cfg,
		broadcaster: broadcaster,
	}
}

// GetCapabilities reports which optional subsystems are configured
func (h *SystemHandler) GetCapabilities(ctx context.Context) *systemres.CapabilitiesResponse {
	return &systemres.CapabilitiesResponse{
		Object:             "system.capabilities",
		Version:            config.Version,
		ChatConfigured:     h.cfg.CompletionConfigured(),
		AutonomyEnabled:    h.cfg.AutonomyEnabled,
		RealtimeEnabled:    h.cfg.RealtimeEnabled,
		CredentialsEnabled: h.cfg.CredentialSecret != "",
		WebhookConfigured:  h.cfg.WebhookSecret != "",
	}
}

// Redeploy validates the webhook signature and announces the redeploy to
// realtime subscribers. The signature is the hex SHA-256 of the shared secret.
func (h *SystemHandler) Redeploy(
	ctx context.Context,
	signature string,
) (*systemres.RedeployResponse, error) {
	if h.cfg.WebhookSecret == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeConfiguration,
			"redeploy webhook is not configured", nil, "")
	}

	expected := idgen.HashKey256(h.cfg.WebhookSecret)
	if subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) != 1 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeUnauthorized,
			"invalid webhook signature", nil, "")
	}

	h.broadcaster.Broadcast(events.SystemRedeploy, map[string]any{
		"requested_at": time.Now().Unix(),
	})

	return &systemres.RedeployResponse{
		Object:   "system.redeploy",
		Accepted: true,
	}, nil
}
