package service

import (
	"errors"

	"github.com/Behyna/ujumbesms/internal/constants"
	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
)

var ErrEmptyCommand = errors.New("EMPTY_SEND_COMMAND")

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	if e.Cause == nil {
		return e.Code
	}
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}

// gatewayError maps a client error onto a service error code.
func gatewayError(err error) error {
	switch {
	case errors.Is(err, ujumbesms.ErrInvalidConfig):
		return NewServiceError(constants.ErrCodeInvalidGatewayConfig, err)
	case errors.Is(err, ujumbesms.ErrSerialization):
		return NewServiceError(constants.ErrCodeGatewayBadResponse, err)
	case ujumbesms.IsTemporary(err):
		return NewServiceError(constants.ErrCodeGatewayUnavailable, err)
	case errors.Is(err, ujumbesms.ErrAPI):
		return NewServiceError(constants.ErrCodeGatewayRejected, err)
	default:
		return NewServiceError(constants.ErrCodeInternalError, err)
	}
}
