package constants

import "net/http"

const (
	ErrCodeGatewayUnavailable   = "GATEWAY_UNAVAILABLE"
	ErrCodeGatewayRejected      = "GATEWAY_REJECTED"
	ErrCodeGatewayBadResponse   = "GATEWAY_BAD_RESPONSE"
	ErrCodeInvalidGatewayConfig = "INVALID_GATEWAY_CONFIG"
	ErrCodeDatabase             = "DATABASE_ERROR"
	ErrCodeQueue                = "QUEUE_ERROR"
	ErrCodeInvalidCommand       = "INVALID_COMMAND"
	ErrCodeInvalidRequestBody   = "INVALID_REQUEST_BODY"
	ErrCodeValidationFailed     = "VALIDATION_FAILED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

const (
	ErrMsgGatewayUnavailable   = "sms gateway is unavailable"
	ErrMsgGatewayRejected      = "sms gateway rejected the request"
	ErrMsgGatewayBadResponse   = "sms gateway returned an unexpected response"
	ErrMsgInvalidGatewayConfig = "sms gateway credentials are misconfigured"
	ErrMsgDatabase             = "database error"
	ErrMsgQueue                = "failed to queue messages"
	ErrMsgInvalidCommand       = "at least one message bag is required"
	ErrMsgInvalidRequestBody   = "failed to parse request body"
	ErrMsgValidationFailed     = "request validation failed"
	ErrMsgInternalError        = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeGatewayUnavailable:   ErrMsgGatewayUnavailable,
	ErrCodeGatewayRejected:      ErrMsgGatewayRejected,
	ErrCodeGatewayBadResponse:   ErrMsgGatewayBadResponse,
	ErrCodeInvalidGatewayConfig: ErrMsgInvalidGatewayConfig,
	ErrCodeDatabase:             ErrMsgDatabase,
	ErrCodeQueue:                ErrMsgQueue,
	ErrCodeInvalidCommand:       ErrMsgInvalidCommand,
	ErrCodeInvalidRequestBody:   ErrMsgInvalidRequestBody,
	ErrCodeValidationFailed:     ErrMsgValidationFailed,
	ErrCodeInternalError:        ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeInvalidCommand:
		return http.StatusBadRequest
	case ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case ErrCodeGatewayRejected, ErrCodeGatewayBadResponse:
		return http.StatusBadGateway
	case ErrCodeGatewayUnavailable, ErrCodeQueue:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
