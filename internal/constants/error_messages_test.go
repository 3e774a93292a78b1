package constants_test

import (
	"net/http"
	"testing"

	"github.com/Behyna/ujumbesms/internal/constants"
	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	testCases := []struct {
		code   string
		status int
	}{
		{constants.ErrCodeInvalidRequestBody, http.StatusBadRequest},
		{constants.ErrCodeValidationFailed, http.StatusUnprocessableEntity},
		{constants.ErrCodeGatewayRejected, http.StatusBadGateway},
		{constants.ErrCodeGatewayUnavailable, http.StatusServiceUnavailable},
		{constants.ErrCodeInvalidGatewayConfig, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.status, constants.GetHTTPStatus(tc.code))
		})
	}
}

func TestGetErrorMessage(t *testing.T) {
	assert.Equal(t, constants.ErrMsgGatewayRejected, constants.GetErrorMessage(constants.ErrCodeGatewayRejected))
	assert.Equal(t, constants.ErrMsgInternalError, constants.GetErrorMessage("UNKNOWN"))
}
