package httpserver

import (
	"errors"
	"net/http"

	"coffee-subscription/internal/domain"
	"coffee-subscription/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type errorItem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type errorResponse struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Errors     []errorItem `json:"errors"`
}

func writeError(c *gin.Context, logger zerolog.Logger, status int, code, message string, extra ...errorItem) {
	if status >= http.StatusInternalServerError {
		logger.Error().Str("path", c.Request.URL.Path).Msg(message)
	}
	items := append([]errorItem{{Code: code, Message: message}}, extra...)
	c.AbortWithStatusJSON(status, errorResponse{StatusCode: status, Message: message, Errors: items})
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, logger zerolog.Logger, err error) {
	_ = c.Error(err)

	var fields []errorItem
	for _, f := range validation.Fields(err) {
		fields = append(fields, errorItem{Code: "InvalidField", Message: f.Message, Field: f.Field})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(c, logger, http.StatusNotFound, "ResourceNotFound", err.Error())
	case errors.Is(err, domain.ErrUnknownProduct),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrUnsupportedAction),
		errors.Is(err, domain.ErrEmptyAnswer),
		errors.Is(err, domain.ErrInvalidOption),
		errors.Is(err, domain.ErrInvalidContact),
		errors.Is(err, domain.ErrUnknownStep):
		writeError(c, logger, http.StatusBadRequest, "InvalidInput", err.Error(), fields...)
	case errors.Is(err, domain.ErrStepUnreachable),
		errors.Is(err, domain.ErrStepBlocked),
		errors.Is(err, domain.ErrContactRequired),
		errors.Is(err, domain.ErrSurveyComplete),
		errors.Is(err, domain.ErrSurveyNotStarted):
		writeError(c, logger, http.StatusConflict, "InvalidOperation", err.Error())
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		writeError(c, logger, http.StatusInternalServerError, "General", "internal error")
	}
}

func badRequest(c *gin.Context, logger zerolog.Logger, err error) {
	_ = c.Error(err)
	var fields []errorItem
	for _, f := range validation.Fields(err) {
		fields = append(fields, errorItem{Code: "InvalidField", Message: f.Message, Field: f.Field})
	}
	writeError(c, logger, http.StatusBadRequest, "InvalidJsonInput", "request body is not valid", fields...)
}
