package service

import (
	"context"

	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
)

var _ Gateway = (*ujumbesms.Client)(nil)

// Gateway is the part of *ujumbesms.Client the services use.
type Gateway interface {
	SendMessages(ctx context.Context, request ujumbesms.MessageRequest) (ujumbesms.MessagingApiResponse, error)
	Balance(ctx context.Context) (ujumbesms.BalanceApiResponse, error)
	MessagesHistory(ctx context.Context) (ujumbesms.MessageHistoryApiResponse, error)
}
