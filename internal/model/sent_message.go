package model

import (
	"time"

	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
)

type StatusClass string

const (
	StatusClassDelivered StatusClass = "DELIVERED"
	StatusClassFailed    StatusClass = "FAILED"
	StatusClassPending   StatusClass = "PENDING"
)

// SentMessage is an archived gateway history record. ID is the gateway's own id.
type SentMessage struct {
	ID            int64       `gorm:"primaryKey;autoIncrement:false;column:id"`
	RequestID     int64       `gorm:"column:request_id;index"`
	Number        string      `gorm:"column:number;index"`
	Message       string      `gorm:"column:message"`
	SenderID      string      `gorm:"column:sender_id"`
	TransactionID string      `gorm:"column:transaction_id"`
	MessageCount  int         `gorm:"column:message_count"`
	Status        string      `gorm:"column:status"`
	StatusClass   StatusClass `gorm:"column:status_class;index"`
	Flag          string      `gorm:"column:flag"`
	GatewayCreate string      `gorm:"column:gateway_created_at"`
	GatewayUpdate string      `gorm:"column:gateway_updated_at"`
	ScheduledDate *string     `gorm:"column:scheduled_date"`
	ArchivedAt    time.Time   `gorm:"column:archived_at;autoCreateTime"`
	UpdatedAt     time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (SentMessage) TableName() string {
	return "sent_messages"
}

func ClassifyStatus(status string) StatusClass {
	switch {
	case status == ujumbesms.StatusDeliveredToTerminal:
		return StatusClassDelivered
	case ujumbesms.IsFailedStatus(status):
		return StatusClassFailed
	default:
		return StatusClassPending
	}
}

func FromGateway(m ujumbesms.MessageSent) SentMessage {
	return SentMessage{
		ID:            m.ID,
		RequestID:     m.RequestID,
		Number:        m.Number,
		Message:       m.Message,
		SenderID:      m.SenderID,
		TransactionID: m.TransactionID,
		MessageCount:  m.MessageCount,
		Status:        m.Status,
		StatusClass:   ClassifyStatus(m.Status),
		Flag:          m.Flag,
		GatewayCreate: m.CreatedAt,
		GatewayUpdate: m.UpdatedAt,
		ScheduledDate: m.ScheduledDate,
	}
}
