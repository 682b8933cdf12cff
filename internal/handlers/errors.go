package handlers

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/sjperalta/mortgagekit-api/internal/calculator"
	"github.com/sjperalta/mortgagekit-api/internal/models"
	"github.com/sjperalta/mortgagekit-api/internal/services"
	"github.com/sjperalta/mortgagekit-api/pkg/logger"
)

// Error codes returned in the "error" field
const (
	ErrorCodeValidation  = "validation_error"
	ErrorCodeCalculation = "calculation_error"
	ErrorCodeInternal    = "internal_error"
)

// ValidationErrorResponse is the 400 body
type ValidationErrorResponse struct {
	Error   string            `json:"error" example:"validation_error"`
	Details map[string]string `json:"details"`
}

// MessageErrorResponse is the 422 and 500 body
type MessageErrorResponse struct {
	Error   string `json:"error" example:"calculation_error"`
	Message string `json:"message"`
}

const internalErrorMessage = "an unexpected error occurred"

// respondError maps an error to its HTTP status and body
func respondError(c *gin.Context, err error) {
	var (
		validationErr *models.ValidationError
		bindErr       *BindError
		calcErr       *calculator.CalculationError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: ErrorCodeValidation, Details: validationErr.Details})
	case errors.As(err, &bindErr):
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: ErrorCodeValidation, Details: map[string]string{"body": bindErr.Error()}})
	case errors.Is(err, services.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: ErrorCodeValidation, Details: map[string]string{"format": "must be one of csv, xlsx, pdf"}})
	case errors.As(err, &calcErr):
		_ = c.Error(err)
		c.JSON(http.StatusUnprocessableEntity, MessageErrorResponse{Error: ErrorCodeCalculation, Message: calcErr.Error()})
	default:
		_ = c.Error(err)
		logger.Error("Unhandled error", "path", c.Request.URL.Path, "error", err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		} else {
			sentry.CaptureException(err)
		}
		c.JSON(http.StatusInternalServerError, MessageErrorResponse{Error: ErrorCodeInternal, Message: internalErrorMessage})
	}
}
