package middleware

import (
	"errors"
	"fmt"

	"github.com/Behyna/ujumbesms/internal/constants"
	"github.com/Behyna/ujumbesms/internal/service"
	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Gateway *GatewayFailure `json:"gateway,omitempty"`
}

// GatewayFailure echoes a rejected gateway response to the caller.
type GatewayFailure struct {
	Status string `json:"status"`
	Body   string `json:"body"`
}

func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    fmt.Sprintf("HTTP_%d", fiberErr.Code),
				Message: fiberErr.Message,
			})
		}

		logger.Error("Unhandled error", zap.Error(err), zap.String("path", c.Path()))

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Code:    constants.ErrCodeInternalError,
			Message: constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	errorCode := err.Code

	status := constants.GetHTTPStatus(errorCode)
	if status == fiber.StatusInternalServerError && errorCode != constants.ErrCodeInvalidGatewayConfig &&
		errorCode != constants.ErrCodeDatabase {
		errorCode = constants.ErrCodeInternalError
	}

	response := ErrorResponse{
		Code:    errorCode,
		Message: constants.GetErrorMessage(errorCode),
	}
	if errorCode == constants.ErrCodeValidationFailed {
		response.Message = err.Error()
	}
	if apiErr, ok := ujumbesms.AsAPIError(err); ok {
		response.Gateway = &GatewayFailure{Status: apiErr.Status, Body: apiErr.Body}
	}

	return c.Status(status).JSON(response)
}
