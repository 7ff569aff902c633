package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

// StatusClientClosedRequest is written when the caller disconnects before the
// model replies.
const StatusClientClosedRequest = 499

const (
	CodeInvalidRequest   = "invalid_request"
	CodeFileTooLarge     = "file_too_large"
	CodeExtractionFailed = "extraction_failed"
	CodeUpstreamFailure  = "upstream_failure"
	CodeUpstreamTimeout  = "upstream_timeout"
	CodeNotFound         = "not_found"
	CodeRequestCanceled  = "request_canceled"
	CodeInternalError    = "internal_error"
)

// requestError is a client error detected while reading a request.
type requestError struct {
	status  int
	code    string
	message string
}

func (e *requestError) Error() string {
	return e.message
}

func badRequest(code, message string) error {
	return &requestError{status: fiber.StatusBadRequest, code: code, message: message}
}

func respondError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondServiceError maps the service error taxonomy onto status codes. The
// underlying provider or parser error is logged, never returned.
func respondServiceError(c *fiber.Ctx, err error) error {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return respondError(c, reqErr.status, reqErr.code, reqErr.message)
	}

	switch {
	case errors.Is(err, context.Canceled):
		return respondError(c, StatusClientClosedRequest, CodeRequestCanceled, "Request canceled by client")
	case errors.Is(err, services.ErrExtractionFailed):
		return respondError(c, fiber.StatusUnprocessableEntity, CodeExtractionFailed,
			"No text could be extracted from the uploaded document")
	case errors.Is(err, context.DeadlineExceeded):
		return respondError(c, fiber.StatusGatewayTimeout, CodeUpstreamTimeout,
			"The language model did not respond in time")
	case errors.Is(err, services.ErrUpstreamFailure):
		return respondError(c, fiber.StatusBadGateway, CodeUpstreamFailure,
			"The language model request failed")
	}

	log.Printf("❌ Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return respondError(c, fiber.StatusInternalServerError, CodeInternalError, "Internal server error")
}

// ErrorHandler is the fiber app ErrorHandler for errors returned by handlers
// and middleware.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return respondError(c, fe.Code, CodeNotFound, "Route not found")
		case fiber.StatusRequestEntityTooLarge:
			return respondError(c, fe.Code, CodeFileTooLarge, "Request body too large")
		}
		if fe.Code < fiber.StatusInternalServerError {
			return respondError(c, fe.Code, CodeInvalidRequest, fe.Message)
		}
	}
	return respondServiceError(c, err)
}
