package ujumbesms

import "encoding/json"

type MessageBag struct {
	Numbers string `json:"numbers"`
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

type MessageBagContainer struct {
	MessageBag MessageBag `json:"message_bag"`
}

// MessageRequest is the body of a messaging call. Bags are sent in insertion order.
type MessageRequest struct {
	Data []MessageBagContainer `json:"data"`
}

func NewMessageRequest() MessageRequest {
	return MessageRequest{Data: []MessageBagContainer{}}
}

// AddMessageBag appends a bag. Recipient and message limits are enforced by the gateway only.
func (r *MessageRequest) AddMessageBag(numbers, message, sender string) {
	r.Data = append(r.Data, MessageBagContainer{
		MessageBag: MessageBag{Numbers: numbers, Message: message, Sender: sender},
	})
}

func (r MessageRequest) Bags() []MessageBag {
	bags := make([]MessageBag, 0, len(r.Data))
	for _, c := range r.Data {
		bags = append(bags, c.MessageBag)
	}
	return bags
}

// MarshalJSON always emits the data array, also for a zero-value request.
func (r MessageRequest) MarshalJSON() ([]byte, error) {
	type wire MessageRequest
	if r.Data == nil {
		r.Data = []MessageBagContainer{}
	}
	return json.Marshal(wire(r))
}

func (r MessageRequest) Len() int {
	return len(r.Data)
}

type DateTime struct {
	Date         string `json:"date"`
	TimezoneType int    `json:"timezone_type"`
	Timezone     string `json:"timezone"`
}

type StatusInfo struct {
	Code        string `json:"code"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type MessagingMeta struct {
	Recipients       int      `json:"recipients"`
	CreditsDeducted  int      `json:"credits_deducted"`
	AvailableCredits string   `json:"available_credits"`
	UserEmail        string   `json:"user_email"`
	DateTime         DateTime `json:"date_time"`
}

type MessagingApiResponse struct {
	Status StatusInfo     `json:"status"`
	Meta   *MessagingMeta `json:"meta,omitempty"`
}

type BalanceMeta struct {
	User     string   `json:"user"`
	Credits  int64    `json:"credits"`
	Rate     float64  `json:"rate"`
	DateTime DateTime `json:"date_time"`
}

type BalanceApiResponse struct {
	Status StatusInfo   `json:"status"`
	Meta   *BalanceMeta `json:"meta,omitempty"`
}

type MessageHistoryMeta struct {
	User     string   `json:"user"`
	DateTime DateTime `json:"date_time"`
}

// MessageItems is the paginated envelope of the history endpoint.
type MessageItems struct {
	Total       int           `json:"total"`
	PerPage     int           `json:"per_page"`
	CurrentPage int           `json:"current_page"`
	LastPage    int           `json:"last_page"`
	NextPageURL *string       `json:"next_page_url"`
	PrevPageURL *string       `json:"prev_page_url"`
	From        *int          `json:"from"`
	To          *int          `json:"to"`
	Data        []MessageSent `json:"data"`
}

type MessageSent struct {
	ID            int64   `json:"id"`
	RequestID     int64   `json:"request_id"`
	Number        string  `json:"number"`
	Message       string  `json:"message"`
	SenderID      string  `json:"sender_id"`
	TransactionID string  `json:"transaction_id"`
	MessageCount  int     `json:"message_count"`
	Status        string  `json:"status"`
	Flag          string  `json:"flag"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	ScheduledDate *string `json:"scheduled_date"`
}

type MessageHistoryApiResponse struct {
	Status StatusInfo          `json:"status"`
	Meta   *MessageHistoryMeta `json:"meta,omitempty"`
	Items  *MessageItems       `json:"items,omitempty"`
}
