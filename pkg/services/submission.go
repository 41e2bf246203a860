package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"contact-relay/pkg/clients/googlechat"
	"contact-relay/pkg/logging"
	"contact-relay/pkg/metrics"
	"contact-relay/pkg/utils"
	"contact-relay/pkg/validation"
)

// HandlerResult is the status and body returned to the form platform
type HandlerResult struct {
	StatusCode int
	Body       string
}

// FormHandler processes the captured fields of one named form
type FormHandler interface {
	Handle(ctx context.Context, data map[string]any) HandlerResult
}

type contactSubmissionHandler struct {
	builder    *CardBuilder
	chatClient googlechat.Client
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

// NewContactSubmissionHandler creates the handler for the "contact" form
func NewContactSubmissionHandler(
	builder *CardBuilder,
	chatClient googlechat.Client,
	m *metrics.Metrics,
) FormHandler {
	return &contactSubmissionHandler{
		builder:    builder,
		chatClient: chatClient,
		metrics:    m,
		logger:     logging.NewComponentLogger("contact-handler"),
	}
}

// Handle validates the submission, builds the chat card and sends it.
// It returns 422 for invalid input, 500 when the notification could not be
// delivered and 200 otherwise. Panics are turned into a 500.
func (h *contactSubmissionHandler) Handle(ctx context.Context, data map[string]any) (result HandlerResult) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().Str("panic", fmt.Sprint(r)).Msg("Contact handler panicked")
			result = deliveryFailed()
		}
	}()

	h.logger.Debug().Msg("Processing contact form")

	validData, err := validation.ValidateContactForm(data)
	if err != nil {
		var verr *validation.ValidationError
		if !errors.As(err, &verr) {
			panic(err)
		}
		h.logger.Warn().Err(err).Msg("Validation failed")
		return HandlerResult{
			StatusCode: http.StatusUnprocessableEntity,
			Body: jsonBody(map[string]any{
				"error":   "Validation Failed",
				"details": verr.Issues,
			}),
		}
	}

	submitter := utils.Fingerprint(validData.Email)

	payload := h.builder.Build(validData)

	if err := h.chatClient.SendMessage(ctx, payload); err != nil {
		h.metrics.ObserveDelivery(metrics.DeliveryFailure)
		h.logger.Error().Err(err).Str(logging.SUBMITTER, submitter).Msg("Error notifying Google Chat")
		return deliveryFailed()
	}
	h.metrics.ObserveDelivery(metrics.DeliverySuccess)

	h.logger.Info().Str(logging.SUBMITTER, submitter).Msg("Successfully notified Google Chat")

	return HandlerResult{
		StatusCode: http.StatusOK,
		Body:       jsonBody(map[string]string{"message": "Contact processed successfully"}),
	}
}

func deliveryFailed() HandlerResult {
	return HandlerResult{
		StatusCode: http.StatusInternalServerError,
		Body:       jsonBody(map[string]string{"error": "Failed to communicate with notification services"}),
	}
}

func jsonBody(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return `{"error":"Internal Server Error"}`
	}
	return string(data)
}
