package statistics

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sigkihan-server/entities"
)

type (
	StatisticsRepository interface {
		GetConsumedHistory(ctx context.Context, refrigeratorID string, from, to time.Time) ([]*entities.FoodHistory, error)
	}

	statisticsRepository struct {
		db *gorm.DB
	}
)

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) GetConsumedHistory(ctx context.Context, refrigeratorID string, from, to time.Time) ([]*entities.FoodHistory, error) {
	var history []*entities.FoodHistory
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("refrigerator_id = ? AND action = ? AND created_at >= ? AND created_at < ?",
			refrigeratorID, "consumed", from, to).
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}
