package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Behyna/ujumbesms/internal/constants"
	"github.com/Behyna/ujumbesms/internal/metrics"
	"github.com/Behyna/ujumbesms/internal/model"
	"github.com/Behyna/ujumbesms/internal/repository"
	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type HistoryService interface {
	Fetch(ctx context.Context, query HistoryQuery) ([]ujumbesms.MessageSent, error)
	Sync(ctx context.Context) (SyncResult, error)
	Archived(ctx context.Context, query ArchiveQuery) ([]model.SentMessage, error)
	Stats(ctx context.Context) (ArchiveStats, error)
}

type History struct {
	gateway Gateway
	repo    repository.SentMessageRepository
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewHistoryService(gateway Gateway, repo repository.SentMessageRepository, m *metrics.Metrics,
	logger *zap.Logger) HistoryService {
	return &History{gateway: gateway, repo: repo, metrics: m, logger: logger}
}

func (h *History) fetch(ctx context.Context) (ujumbesms.MessageHistoryApiResponse, error) {
	start := time.Now()
	response, err := h.gateway.MessagesHistory(ctx)
	h.metrics.RecordGatewayCall(ujumbesms.EndpointMessages.String(), metrics.Outcome(err), time.Since(start))

	if err != nil {
		h.logger.Error("Message history fetch failed", zap.Error(err))
		return ujumbesms.MessageHistoryApiResponse{}, gatewayError(err)
	}

	return response, nil
}

// Fetch returns the current history page projected by status and number.
func (h *History) Fetch(ctx context.Context, query HistoryQuery) ([]ujumbesms.MessageSent, error) {
	var selected []*ujumbesms.MessageSent

	switch query.Status {
	case "", HistoryStatusDelivered, HistoryStatusFailed, HistoryStatusPending:
	default:
		return nil, NewServiceError(constants.ErrCodeValidationFailed,
			fmt.Errorf("unknown status filter %q", query.Status))
	}

	response, err := h.fetch(ctx)
	if err != nil {
		return nil, err
	}

	switch query.Status {
	case HistoryStatusDelivered:
		selected = response.Delivered()
	case HistoryStatusFailed:
		selected = response.Failed()
	case HistoryStatusPending:
		selected = response.Pending()
	default:
		if query.Number != "" {
			selected = response.ByNumber(query.Number)
			break
		}
		msgs := response.Messages()
		for i := range msgs {
			selected = append(selected, &msgs[i])
		}
	}

	result := make([]ujumbesms.MessageSent, 0, len(selected))
	for _, m := range selected {
		if query.Number != "" && m.Number != query.Number {
			continue
		}
		result = append(result, *m)
	}

	return result, nil
}

// Sync archives the current history page, updating records whose delivery status moved on.
func (h *History) Sync(ctx context.Context) (SyncResult, error) {
	response, err := h.fetch(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	msgs := response.Messages()
	rows := make([]model.SentMessage, 0, len(msgs))
	for _, m := range msgs {
		rows = append(rows, model.FromGateway(m))
	}

	written, err := h.repo.UpsertMany(ctx, rows)
	if err != nil {
		h.logger.Error("Failed to archive message history", zap.Error(err), zap.Int("records", len(rows)))
		return SyncResult{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	result := SyncResult{
		Total:     len(msgs),
		Delivered: len(response.Delivered()),
		Failed:    len(response.Failed()),
		Pending:   len(response.Pending()),
		Written:   written,
	}

	h.metrics.RecordArchived(string(model.StatusClassDelivered), result.Delivered)
	h.metrics.RecordArchived(string(model.StatusClassFailed), result.Failed)
	h.metrics.RecordArchived(string(model.StatusClassPending), result.Pending)

	h.logger.Info("Message history synced",
		zap.Int("total", result.Total),
		zap.Int("delivered", result.Delivered),
		zap.Int("failed", result.Failed),
		zap.Int("pending", result.Pending),
		zap.Int64("written", result.Written))

	return result, nil
}

// Archived pages through the stored records of one number, newest first.
func (h *History) Archived(ctx context.Context, query ArchiveQuery) ([]model.SentMessage, error) {
	if query.Number == "" {
		return nil, NewServiceError(constants.ErrCodeValidationFailed, errors.New("number is required"))
	}
	if query.Offset < 0 {
		return nil, NewServiceError(constants.ErrCodeValidationFailed, errors.New("offset must not be negative"))
	}

	limit := query.Limit
	switch {
	case limit <= 0:
		limit = DefaultArchiveLimit
	case limit > MaxArchiveLimit:
		limit = MaxArchiveLimit
	}

	messages, err := h.repo.GetByNumber(ctx, query.Number, limit, query.Offset)
	if err != nil {
		h.logger.Error("Failed to read archived messages", zap.Error(err), zap.String("number", query.Number))
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}

	return messages, nil
}

// Stats counts archived records per status class. The counts run concurrently.
func (h *History) Stats(ctx context.Context) (ArchiveStats, error) {
	var stats ArchiveStats

	counts := map[model.StatusClass]*int64{
		model.StatusClassDelivered: &stats.Delivered,
		model.StatusClassFailed:    &stats.Failed,
		model.StatusClassPending:   &stats.Pending,
	}

	g, gctx := errgroup.WithContext(ctx)
	for class, dst := range counts {
		g.Go(func() error {
			n, err := h.repo.CountByStatusClass(gctx, class)
			if err != nil {
				h.logger.Error("Failed to count archived messages", zap.Error(err), zap.String("class", string(class)))
				return err
			}
			*dst = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ArchiveStats{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	return stats, nil
}
