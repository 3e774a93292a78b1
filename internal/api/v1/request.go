package v1

import "github.com/Behyna/ujumbesms/internal/service"

type SendMessagesRequest struct {
	Messages []MessageBagRequest `json:"messages" validate:"required,min=1,dive"`
}

type MessageBagRequest struct {
	Numbers string `json:"numbers" validate:"required,msisdns"`
	Message string `json:"message" validate:"required"`
	Sender  string `json:"sender" validate:"required,max=11"`
}

func (r SendMessagesRequest) ToCommand() service.SendMessageCommand {
	cmd := service.SendMessageCommand{Messages: make([]service.MessageBag, 0, len(r.Messages))}
	for _, bag := range r.Messages {
		cmd.Messages = append(cmd.Messages, service.MessageBag{
			Numbers: bag.Numbers,
			Message: bag.Message,
			Sender:  bag.Sender,
		})
	}
	return cmd
}
