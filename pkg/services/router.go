package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"contact-relay/pkg/logging"
	"contact-relay/pkg/metrics"
	"contact-relay/pkg/models"
)

const unknownForm = "unknown"

// Router dispatches platform submission events to the handler registered
// for the event's form name
type Router struct {
	handlers map[string]FormHandler
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewRouter creates a router over a fixed form name -> handler table
func NewRouter(handlers map[string]FormHandler, m *metrics.Metrics) *Router {
	table := make(map[string]FormHandler, len(handlers))
	for name, h := range handlers {
		table[name] = h
	}
	return &Router{
		handlers: table,
		metrics:  m,
		logger:   logging.NewComponentLogger("router"),
	}
}

// Route parses a submission event body and delegates it.
// Missing or malformed bodies give 400, unknown forms 404, and a panic in
// the handler 500. Otherwise the handler's status is returned unchanged.
func (r *Router) Route(ctx context.Context, body []byte) HandlerResult {
	if len(bytes.TrimSpace(body)) == 0 {
		return HandlerResult{StatusCode: http.StatusBadRequest, Body: "Missing request body"}
	}

	r.logger.Debug().Int("bytes", len(body)).Msg("Received submission event")

	var event models.SubmissionEvent
	if err := json.Unmarshal(body, &event); err != nil || event.Payload == nil {
		if err == nil {
			err = fmt.Errorf("event has no payload")
		}
		r.logger.Error().Err(err).Msg("Error parsing submission event")
		return HandlerResult{StatusCode: http.StatusBadRequest, Body: "Invalid JSON format"}
	}

	payload := event.Payload
	formName := payload.FormName
	if formName == "" {
		formName = unknownForm
	}

	handler, ok := r.handlers[formName]
	if !ok {
		r.logger.Warn().Str(logging.FORM, formName).Msg("No handler found for form")
		r.metrics.ObserveSubmission(formName, http.StatusNotFound)
		return HandlerResult{
			StatusCode: http.StatusNotFound,
			Body:       fmt.Sprintf("No handler defined for form %q", formName),
		}
	}

	r.logger.Info().Str(logging.FORM, formName).Int(logging.NUMBER, payload.Number).Msg("Routing submission")

	result := r.dispatch(ctx, handler, formName, payload.Data)
	if result.Body == "" {
		result.Body = jsonBody(map[string]string{"message": "Success"})
	}

	r.metrics.ObserveSubmission(formName, result.StatusCode)
	return result
}

func (r *Router) dispatch(ctx context.Context, handler FormHandler, formName string, data map[string]any) (result HandlerResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().Str(logging.FORM, formName).Str("panic", fmt.Sprint(rec)).Msg("Server error")
			result = HandlerResult{StatusCode: http.StatusInternalServerError, Body: "Internal Server Error"}
		}
	}()

	if data == nil {
		data = map[string]any{}
	}
	return handler.Handle(ctx, data)
}
