package ujumbesms_test

import (
	"testing"

	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoint_Path(t *testing.T) {
	testCases := []struct {
		endpoint ujumbesms.Endpoint
		path     string
		name     string
	}{
		{ujumbesms.EndpointMessaging, "/api/messaging", "messaging"},
		{ujumbesms.EndpointBalance, "/api/balance", "balance"},
		{ujumbesms.EndpointMessages, "/api/messages", "messages"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.path, tc.endpoint.Path())
			assert.Equal(t, tc.name, tc.endpoint.String())

			parsed, err := ujumbesms.ParseEndpoint(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.endpoint, parsed)
		})
	}
}

func TestParseEndpoint_Unknown(t *testing.T) {
	_, err := ujumbesms.ParseEndpoint("/api/unknown")
	assert.Error(t, err)
}
