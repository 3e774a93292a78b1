package repository

import (
	"context"
	"database/sql/driver"
	"errors"

	"github.com/Behyna/ujumbesms/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDatabaseUnavailable = errors.New("DATABASE_UNAVAILABLE")

const upsertBatchSize = 200

type SentMessageRepository interface {
	UpsertMany(ctx context.Context, messages []model.SentMessage) (int64, error)
	GetByNumber(ctx context.Context, number string, limit, offset int) ([]model.SentMessage, error)
	CountByStatusClass(ctx context.Context, class model.StatusClass) (int64, error)
}

type SentMessage struct {
	db *gorm.DB
}

func NewSentMessageRepository(db *gorm.DB) SentMessageRepository {
	return &SentMessage{db: db}
}

// UpsertMany inserts new records and refreshes the mutable delivery fields of known ones.
func (s *SentMessage) UpsertMany(ctx context.Context, messages []model.SentMessage) (int64, error) {
	if len(messages) == 0 {
		return 0, nil
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "status_class", "flag", "gateway_updated_at", "scheduled_date", "updated_at",
			}),
		}).
		CreateInBatches(messages, upsertBatchSize)

	if result.Error != nil {
		return 0, mapError(result.Error)
	}

	return result.RowsAffected, nil
}

func (s *SentMessage) GetByNumber(ctx context.Context, number string, limit, offset int) ([]model.SentMessage, error) {
	var messages []model.SentMessage

	err := s.db.WithContext(ctx).
		Where("number = ?", number).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, mapError(err)
	}

	return messages, nil
}

func (s *SentMessage) CountByStatusClass(ctx context.Context, class model.StatusClass) (int64, error) {
	var count int64

	err := s.db.WithContext(ctx).
		Model(&model.SentMessage{}).
		Where("status_class = ?", class).
		Count(&count).Error
	if err != nil {
		return 0, mapError(err)
	}

	return count, nil
}

// mapError marks lost connections so callers can tell them from query errors.
func mapError(err error) error {
	if errors.Is(err, mysql.ErrInvalidConn) || errors.Is(err, driver.ErrBadConn) {
		return errors.Join(ErrDatabaseUnavailable, err)
	}
	return err
}
