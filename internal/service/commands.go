package service

import "github.com/Behyna/ujumbesms/pkg/ujumbesms"

type SendMessageCommand struct {
	Messages []MessageBag `json:"messages"`
}

type MessageBag struct {
	Numbers string `json:"numbers"`
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

func (c SendMessageCommand) ToRequest() ujumbesms.MessageRequest {
	request := ujumbesms.NewMessageRequest()
	for _, bag := range c.Messages {
		request.AddMessageBag(bag.Numbers, bag.Message, bag.Sender)
	}
	return request
}

type HistoryQuery struct {
	Status string
	Number string
}

const (
	HistoryStatusDelivered = "delivered"
	HistoryStatusFailed    = "failed"
	HistoryStatusPending   = "pending"
)

type SyncResult struct {
	Total     int   `json:"total"`
	Delivered int   `json:"delivered"`
	Failed    int   `json:"failed"`
	Pending   int   `json:"pending"`
	Written   int64 `json:"written"`
}

const (
	DefaultArchiveLimit = 50
	MaxArchiveLimit     = 200
)

type ArchiveQuery struct {
	Number string
	Limit  int
	Offset int
}

type ArchiveStats struct {
	Delivered int64 `json:"delivered"`
	Failed    int64 `json:"failed"`
	Pending   int64 `json:"pending"`
}
