package service

import (
	"context"
	"time"

	"github.com/Behyna/ujumbesms/internal/metrics"
	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	"go.uber.org/zap"
)

type AccountService interface {
	Balance(ctx context.Context) (ujumbesms.BalanceApiResponse, error)
}

type Account struct {
	gateway Gateway
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewAccountService(gateway Gateway, m *metrics.Metrics, logger *zap.Logger) AccountService {
	return &Account{gateway: gateway, metrics: m, logger: logger}
}

func (a *Account) Balance(ctx context.Context) (ujumbesms.BalanceApiResponse, error) {
	start := time.Now()
	response, err := a.gateway.Balance(ctx)
	a.metrics.RecordGatewayCall(ujumbesms.EndpointBalance.String(), metrics.Outcome(err), time.Since(start))

	if err != nil {
		a.logger.Error("Balance inquiry failed", zap.Error(err))
		return ujumbesms.BalanceApiResponse{}, gatewayError(err)
	}

	if response.Meta != nil {
		a.metrics.SetAvailableCredits(float64(response.Meta.Credits))
		a.logger.Info("Balance inquiry",
			zap.String("user", response.Meta.User),
			zap.Int64("credits", response.Meta.Credits),
			zap.Float64("rate", response.Meta.Rate))
	}

	return response, nil
}
