package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"contact-relay/pkg/logging"
	"contact-relay/pkg/services"
)

// limit on submission event bodies
const maxEventBytes = 1 << 20

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	router *services.Router
	logger zerolog.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(router *services.Router) *Handlers {
	return &Handlers{
		router: router,
		logger: logging.NewComponentLogger("api"),
	}
}

// RegisterRoutes wires the handlers into engine
func RegisterRoutes(engine *gin.Engine, h *Handlers, metrics http.Handler) {
	engine.POST("/.netlify/functions/submission-created", h.HandleSubmissionEvent)
	engine.POST("/webhook/submission-created", h.HandleSubmissionEvent)
	engine.GET("/health", h.HealthCheck)
	if metrics != nil {
		engine.GET("/metrics", gin.WrapH(metrics))
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleSubmissionEvent processes submission-created events from the form platform
func (h *Handlers) HandleSubmissionEvent(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxEventBytes+1))
	if err != nil {
		h.logger.Error().Err(err).Msg("Error reading request body")
		c.String(http.StatusBadRequest, "Error reading request")
		return
	}
	if len(body) > maxEventBytes {
		c.String(http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}

	result := h.router.Route(c.Request.Context(), body)

	contentType := "text/plain; charset=utf-8"
	if json.Valid([]byte(result.Body)) {
		contentType = "application/json; charset=utf-8"
	}
	c.Data(result.StatusCode, contentType, []byte(result.Body))
}
