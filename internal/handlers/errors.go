package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/virtual-panel/internal/middleware"
	"alfredoptarigan/virtual-panel/internal/models"
)

const (
	genericErrorDetail  = "Something went wrong"
	fileTooLargeMessage = "File too large"
)

// ErrorHandler renders anything that escapes a handler as a failure
// envelope. Raw detail is only exposed in development.
func ErrorHandler(development bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			if code < fiber.StatusInternalServerError {
				message = fiberErr.Message
			}
		}

		// Bodies over the server limit are rejected before routing; report
		// them like the upload handler's own size check.
		if code == fiber.StatusRequestEntityTooLarge {
			code, message = fiber.StatusBadRequest, fileTooLargeMessage
		}

		if code >= fiber.StatusInternalServerError {
			log.Printf("❌ [%s] Server Error: %v", middleware.GetRequestID(c), err)
		}

		return c.Status(code).JSON(failure(message, err, development))
	}
}

func failure(message string, err error, development bool) models.ErrorResponse {
	resp := models.ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = genericErrorDetail
		if development {
			resp.Error = err.Error()
		}
	}
	return resp
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(failure(message, nil, false))
}
