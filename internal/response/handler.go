package response

import (
	"github.com/gofiber/fiber/v2"
)

// Ack is the acknowledgement body for operations without a payload.
type Ack struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	OK    bool         `json:"ok"`
	Error *ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func JSON(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func OK(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Ack{OK: true})
}

func Error(c *fiber.Ctx, statusCode int, errorCode string, message string, details interface{}) error {
	return c.Status(statusCode).JSON(ErrorResponse{
		Error: &ErrorDetail{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}

func BadRequest(c *fiber.Ctx, message string, details interface{}) error {
	return Error(c, fiber.StatusBadRequest, "BAD_REQUEST", message, details)
}

func NotFound(c *fiber.Ctx, resource string) error {
	return Error(c, fiber.StatusNotFound, "NOT_FOUND", resource+" not found", nil)
}

// ValidationError reports a missing or invalid field as a client error.
func ValidationError(c *fiber.Ctx, message string, fields map[string]string) error {
	var details interface{}
	if len(fields) > 0 {
		details = fields
	}
	return Error(c, fiber.StatusBadRequest, "VALIDATION_ERROR", message, details)
}

func InternalError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", message, nil)
}

// ErrorHandler renders errors that escape handlers (including fiber's
// own 404/405) in the same envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	errorCode := "INTERNAL_ERROR"
	message := "Internal server error"

	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
		message = fe.Message
		switch code {
		case fiber.StatusNotFound:
			errorCode = "NOT_FOUND"
		case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge, fiber.StatusUnprocessableEntity:
			errorCode = "BAD_REQUEST"
		case fiber.StatusMethodNotAllowed:
			errorCode = "METHOD_NOT_ALLOWED"
		}
	}

	return Error(c, code, errorCode, message, nil)
}
