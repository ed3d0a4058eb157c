package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopwise/shopping-assistant/internal/core/domain"
	"github.com/shopwise/shopping-assistant/internal/core/ports"
)

// AssistantHandler serves the shopping assistant endpoints.
type AssistantHandler struct {
	assistant ports.AssistantService
	logger    zerolog.Logger
	// development unlocks the diagnostic detail field on failures.
	development bool
}

func NewAssistantHandler(assistant ports.AssistantService, logger zerolog.Logger, development bool) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, logger: logger, development: development}
}

// Assist answers a free-text shopping query.
//
// @Summary      Shopping assistant
// @Tags         shopping
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assistRequest  true  "Query"
// @Success      200   {object}  assistResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  assistErrorResponse
// @Router       /api/shopping/assist [post]
func (h *AssistantHandler) Assist(c echo.Context) error {
	return h.assist(c, false)
}

// AssistEnhanced answers a query and flags the response as personalized.
//
// @Summary      Shopping assistant (personalized)
// @Tags         shopping
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assistRequest  true  "Query"
// @Success      200   {object}  assistResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  assistErrorResponse
// @Router       /api/shopping/assist/enhanced [post]
func (h *AssistantHandler) AssistEnhanced(c echo.Context) error {
	return h.assist(c, true)
}

func (h *AssistantHandler) assist(c echo.Context, personalized bool) error {
	var req assistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	_, username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	h.logger.Info().Str("username", username).Msg("shopping query received")

	answer, err := h.assistant.GenerateResponse(c.Request().Context(), query)
	if err != nil {
		h.logger.Error().Err(err).Str("username", username).Msg("shopping query failed")

		resp := assistErrorResponse{
			Error:   "failed to process shopping request",
			Message: underlyingMessage(err),
		}
		if h.development {
			resp.Details = err.Error()
		}
		return c.JSON(http.StatusInternalServerError, resp)
	}

	return c.JSON(http.StatusOK, assistResponse{Response: answer, Personalized: personalized})
}

// underlyingMessage strips the ErrAllBackendsFailed wrapper so clients see the
// last backend's failure, matching what the gateway recorded. The gateway
// wraps both the sentinel and the cause, so unwrapping yields a slice.
func underlyingMessage(err error) string {
	u, ok := err.(interface{ Unwrap() []error })
	if !ok || !errors.Is(err, domain.ErrAllBackendsFailed) {
		return err.Error()
	}
	wrapped := u.Unwrap()
	last := wrapped[len(wrapped)-1]
	if errors.Is(last, domain.ErrAllBackendsFailed) {
		return err.Error()
	}
	return last.Error()
}
