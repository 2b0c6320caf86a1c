package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
	"growhub/app/utils/webhook"
)

// WebhookHandler receives signed identity events from the provider
type WebhookHandler struct {
	sync     port.IdentitySyncUsecase
	verifier *webhook.Verifier
	logger   *slog.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(sync port.IdentitySyncUsecase, verifier *webhook.Verifier, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		sync:     sync,
		verifier: verifier,
		logger:   logger.With(slog.String("component", "webhook_handler")),
	}
}

// HandleIdentityEvent handles a signed webhook delivery
// @Summary Receive identity event
// @Description Verify and process one signed identity-provider event
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/webhooks/identity [post]
func (h *WebhookHandler) HandleIdentityEvent(c echo.Context) error {
	req := c.Request()

	msgID := req.Header.Get(webhook.HeaderID)
	timestamp := req.Header.Get(webhook.HeaderTimestamp)
	signature := req.Header.Get(webhook.HeaderSignature)

	if msgID == "" || timestamp == "" || signature == "" {
		return respondError(c, h.logger, apperrors.ErrMissingWebhookHeaders)
	}

	// Signature covers the raw body exactly as sent, so read it before any
	// JSON handling.
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.logger.Error("failed to read webhook body", "error", err)
		return respondError(c, h.logger, apperrors.New(apperrors.ErrCodeBadRequest, "failed to read request body"))
	}

	if err := h.verifier.Verify(msgID, timestamp, signature, body); err != nil {
		h.logger.Warn("webhook signature rejected",
			slog.String("message_id", msgID),
			slog.String("error", err.Error()))
		return respondError(c, h.logger, apperrors.ErrInvalidSignature)
	}

	event, err := domain.ParseWebhookEvent(body)
	if err != nil {
		return respondError(c, h.logger, apperrors.Wrap(apperrors.ErrCodeMalformedEvent, "malformed event payload", err))
	}

	h.logger.Info("webhook received",
		slog.String("message_id", msgID),
		slog.String("event_type", string(event.Type)))

	if err := h.sync.ProcessEvent(req.Context(), msgID, event); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Webhook received"})
}
