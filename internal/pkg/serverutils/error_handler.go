package serverutils

import (
	"errors"

	"returnhub-be/internal/pkg/apperror"
	"returnhub-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service errors to HTTP responses:
// validation and invalid transitions become 400, lookup misses 404,
// anything unrecognized is logged and returned as an opaque 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validation *apperror.ValidationError
		if errors.As(err, &validation) {
			if len(validation.Fields) > 0 {
				return ctx.Status(fiber.StatusBadRequest).
					JSON(ErrorResponseWithDetails(validation.Message, validation.Fields))
			}
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(validation.Message))
		}

		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(notFound.Error()))
		}

		var invalidTransition *apperror.InvalidTransitionError
		if errors.As(err, &invalidTransition) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(invalidTransition.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
	}
}
