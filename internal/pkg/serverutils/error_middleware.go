package serverutils

import (
	"fmt"

	"cs-chatbot-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// ErrorBody builds the error payload used across the HTTP surface.
func ErrorBody(message, details string) dto.ErrorResponse {
	return dto.ErrorResponse{
		Error:   message,
		Details: details,
	}
}

// ErrorHandlerMiddleware converts panics into a 500 error payload so a
// fault during orchestration never crashes the process.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = ctx.Status(fiber.StatusInternalServerError).JSON(
					ErrorBody("An error occurred processing your message", fmt.Sprintf("%v", r)),
				)
			}
		}()
		return ctx.Next()
	}
}
