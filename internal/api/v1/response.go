package v1

import (
	"time"

	"github.com/Behyna/ujumbesms/internal/model"
	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
)

const StatusQueued = "QUEUED"

type QueueMessagesResponse struct {
	Status string `json:"status"`
	Bags   int    `json:"bags"`
}

type HistoryResponse struct {
	Messages []ujumbesms.MessageSent `json:"messages"`
	Total    int                     `json:"total"`
}

type ArchiveResponse struct {
	Messages []ArchivedMessageResponse `json:"messages"`
	Total    int                       `json:"total"`
}

type ArchivedMessageResponse struct {
	ID          int64     `json:"id"`
	Number      string    `json:"number"`
	Message     string    `json:"message"`
	SenderID    string    `json:"sender_id"`
	Status      string    `json:"status"`
	StatusClass string    `json:"status_class"`
	CreatedAt   string    `json:"created_at"`
	ArchivedAt  time.Time `json:"archived_at"`
}

func NewArchiveResponse(messages []model.SentMessage) ArchiveResponse {
	resp := ArchiveResponse{Messages: make([]ArchivedMessageResponse, 0, len(messages)), Total: len(messages)}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, ArchivedMessageResponse{
			ID:          m.ID,
			Number:      m.Number,
			Message:     m.Message,
			SenderID:    m.SenderID,
			Status:      m.Status,
			StatusClass: string(m.StatusClass),
			CreatedAt:   m.GatewayCreate,
			ArchivedAt:  m.ArchivedAt,
		})
	}
	return resp
}
