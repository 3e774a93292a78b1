package ujumbesms_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestMessageRequest_AddMessageBag(t *testing.T) {
	request := ujumbesms.NewMessageRequest()
	assert.Equal(t, 0, request.Len())

	for i := 0; i < 5; i++ {
		request.AddMessageBag(fmt.Sprintf("25471234567%d", i), fmt.Sprintf("message %d", i), "UjumbeSMS")
	}
	// duplicates are kept
	request.AddMessageBag("254712345670", "message 0", "UjumbeSMS")

	bags := request.Bags()
	require.Len(t, bags, 6)
	assert.Equal(t, 6, request.Len())
	for i := 0; i < 5; i++ {
		assert.Equal(t, fmt.Sprintf("25471234567%d", i), bags[i].Numbers)
		assert.Equal(t, fmt.Sprintf("message %d", i), bags[i].Message)
	}
	assert.Equal(t, bags[0], bags[5])
}

func TestMessageRequest_WireShape(t *testing.T) {
	request := ujumbesms.NewMessageRequest()
	request.AddMessageBag("254712345678", "First", "UjumbeSMS")
	request.AddMessageBag("254712345679,254712345680", "Second", "UjumbeSMS")

	body, err := json.Marshal(request)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"data": [
			{"message_bag": {"numbers": "254712345678", "message": "First", "sender": "UjumbeSMS"}},
			{"message_bag": {"numbers": "254712345679,254712345680", "message": "Second", "sender": "UjumbeSMS"}}
		]
	}`, string(body))
}

func TestMessageRequest_ZeroValueWireShape(t *testing.T) {
	data, err := json.Marshal(ujumbesms.MessageRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(data))

	data, err = json.Marshal(ujumbesms.NewMessageRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(data))
}

func TestStatusInfo_TypeKey(t *testing.T) {
	var status ujumbesms.StatusInfo
	require.NoError(t, json.Unmarshal([]byte(`{"code":"1008","type":"success","description":"ok"}`), &status))
	assert.Equal(t, "success", status.Type)

	body, err := json.Marshal(status)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"type":"success"`)
}

func TestMessagingApiResponse_MetaAbsent(t *testing.T) {
	var resp ujumbesms.MessagingApiResponse
	require.NoError(t, json.Unmarshal([]byte(`{"status":{"code":"1001","type":"error","description":"x"}}`), &resp))
	assert.Nil(t, resp.Meta)

	var zeroed ujumbesms.MessagingApiResponse
	require.NoError(t, json.Unmarshal([]byte(`{"status":{"code":"1008"},"meta":{}}`), &zeroed))
	require.NotNil(t, zeroed.Meta)
	assert.Equal(t, 0, zeroed.Meta.Recipients)
}

func TestMessageHistoryApiResponse_RoundTrip(t *testing.T) {
	original := ujumbesms.MessageHistoryApiResponse{
		Status: ujumbesms.StatusInfo{Code: "1008", Type: "success", Description: "Messages"},
		Meta: &ujumbesms.MessageHistoryMeta{
			User:     "test@email.com",
			DateTime: ujumbesms.DateTime{Date: "20150815 18:19:47", TimezoneType: 3, Timezone: "Africa/Nairobi"},
		},
		Items: &ujumbesms.MessageItems{
			Total:       2,
			PerPage:     15,
			CurrentPage: 1,
			LastPage:    1,
			NextPageURL: strPtr("https://ujumbesms.co.ke/api/messages?page=2"),
			PrevPageURL: nil,
			From:        intPtr(1),
			To:          intPtr(2),
			Data: []ujumbesms.MessageSent{
				{
					ID: 1, RequestID: 10, Number: "254720215635", Message: "hello", SenderID: "UjumbeSMS",
					TransactionID: "tx-1", MessageCount: 1, Status: "DeliveredToTerminal", Flag: "0",
					CreatedAt: "2025-05-03 12:00:00", UpdatedAt: "2025-05-03 12:00:05",
					ScheduledDate: strPtr("2025-05-03 11:59:00"),
				},
				{
					ID: 2, RequestID: 10, Number: "254712345678", Message: "hello", SenderID: "UjumbeSMS",
					TransactionID: "tx-2", MessageCount: 2, Status: "SenderName Blacklisted", Flag: "1",
					CreatedAt: "2025-05-03 12:00:00", UpdatedAt: "2025-05-03 12:00:05",
				},
			},
		},
	}

	body, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded ujumbesms.MessageHistoryApiResponse
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, original, decoded)
}
