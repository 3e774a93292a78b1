package metrics

import (
	"errors"

	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
)

// Outcome classifies a gateway call result for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ujumbesms.ErrNetwork):
		return OutcomeNetworkError
	case errors.Is(err, ujumbesms.ErrAPI):
		return OutcomeAPIError
	case errors.Is(err, ujumbesms.ErrSerialization):
		return OutcomeDecodeError
	case errors.Is(err, ujumbesms.ErrInvalidConfig):
		return OutcomeInvalidConfig
	default:
		return "unknown"
	}
}
