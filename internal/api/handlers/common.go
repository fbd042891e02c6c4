package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/coach"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/llm"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/store"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
	"github.com/IqraS-gif/ai-career-coach-backend/pkg/utils"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the request validator registered on the echo
// instance.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// requestID returns the ID stamped by the validation middleware, minting
// one for requests that bypassed it.
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

// errorJSON writes the standard error body.
func errorJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: requestID(c),
		Timestamp: time.Now(),
	})
}

// generationError maps engine failures onto HTTP responses: credential
// exhaustion and unusable output are upstream faults (502), anything else
// is internal.
func generationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, llm.ErrAllCredentialsFailed):
		return errorJSON(c, http.StatusBadGateway, "ai_unavailable", "AI service is currently unavailable. Please try again later.")
	case errors.Is(err, coach.ErrNoUsableOutput):
		return errorJSON(c, http.StatusBadGateway, "ai_invalid_output", "AI service returned an unusable response. Please try again.")
	default:
		return errorJSON(c, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

// errRequestRejected signals that bindAndValidate already wrote the 400
// response. The committed response makes echo's error handler a no-op.
var errRequestRejected = errors.New("request rejected")

// bindAndValidate binds the JSON body into req and runs validation. On
// failure the 400 response is written here and errRequestRejected returned.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		_ = errorJSON(c, http.StatusBadRequest, "invalid_request", "Request body could not be parsed")
		return errRequestRejected
	}
	if err := c.Validate(req); err != nil {
		_ = errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error())
		return errRequestRejected
	}
	return nil
}

// storeError maps persistence failures onto HTTP responses.
func storeError(c echo.Context, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return errorJSON(c, http.StatusNotFound, "not_found", "No document found for this user")
	}
	return errorJSON(c, http.StatusInternalServerError, "storage_error", err.Error())
}
