package handlerUtil

import (
	"ImageAnalyzer/internal/api/analysis"
	"ImageAnalyzer/pkg/log"
	"ImageAnalyzer/pkg/response"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"net/http"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle logs err and converts it to the response returned to the caller.
// Every analysis failure collapses to the same generic 500 response.
func (h *ErrorHandler) Handle(requestID string, err error, operation string) analysis.Response {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"operation":  operation,
		"stage":      analysis.KindOf(err).String(),
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		fields["code"] = respErr.Code
	}

	var traceID string
	if errors.Is(err, analysis.ErrSegmentMismatch) {
		traceID = log.ErrorWithTraceID(h.logger, fields, "Translated labels could not be aligned")
	} else {
		traceID = log.ErrorWithTraceID(h.logger, fields, "Image analysis failed")
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"trace_id":   traceID,
	}).Debugf("Error chain: %+v", err)

	return analysis.Response{
		StatusCode: response.CodeOf(analysis.ErrInternalServerError, http.StatusInternalServerError),
		Body:       analysis.InternalServerErrorBody,
	}
}

func (h *ErrorHandler) HandleSuccess(body string) analysis.Response {
	return analysis.Response{
		StatusCode: http.StatusOK,
		Body:       body,
	}
}

// Reply writes resp as a plain text HTTP response.
func (h *ErrorHandler) Reply(c *fiber.Ctx, resp analysis.Response) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(resp.StatusCode).SendString(resp.Body)
}

// ReplyJSON writes resp as a cloud-function style JSON payload. The HTTP
// status is always 200 because the invocation itself completed.
func (h *ErrorHandler) ReplyJSON(c *fiber.Ctx, resp analysis.Response) error {
	return c.Status(fiber.StatusOK).JSON(resp)
}
