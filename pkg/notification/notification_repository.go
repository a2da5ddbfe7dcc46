package notification

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sigkihan-server/entities"
)

type (
	NotificationRepository interface {
		ListFoodsExpiringOn(ctx context.Context, date time.Time) ([]*entities.FridgeFood, error)
		ListFoodsExpiringOnForRefrigerator(ctx context.Context, refrigeratorID string, date time.Time) ([]*entities.FridgeFood, error)
		CreateNotifications(ctx context.Context, notifications []*entities.Notification) (int64, error)
		ListUnread(ctx context.Context, userID, refrigeratorID, dDay string, since *time.Time) ([]*entities.Notification, error)
		MarkAllRead(ctx context.Context, userID, refrigeratorID, dDay string) (int64, error)
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) ListFoodsExpiringOn(ctx context.Context, date time.Time) ([]*entities.FridgeFood, error) {
	var foods []*entities.FridgeFood
	if err := r.db.WithContext(ctx).
		Preload("DefaultFood").
		Preload("Refrigerator.AccessList").
		Where("expiration_date = ?", date.Format("2006-01-02")).
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *notificationRepository) ListFoodsExpiringOnForRefrigerator(ctx context.Context, refrigeratorID string, date time.Time) ([]*entities.FridgeFood, error) {
	var foods []*entities.FridgeFood
	if err := r.db.WithContext(ctx).
		Preload("DefaultFood").
		Preload("Refrigerator.AccessList").
		Where("refrigerator_id = ? AND expiration_date = ?", refrigeratorID, date.Format("2006-01-02")).
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// CreateNotifications inserts in bulk and silently skips rows that collide
// with the dedup index, so a scan can run more than once per day.
func (r *notificationRepository) CreateNotifications(ctx context.Context, notifications []*entities.Notification) (int64, error) {
	if len(notifications) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(notifications)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *notificationRepository) ListUnread(ctx context.Context, userID, refrigeratorID, dDay string, since *time.Time) ([]*entities.Notification, error) {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND refrigerator_id = ? AND d_day = ? AND is_read = ?", userID, refrigeratorID, dDay, false).
		Order("created_at DESC")
	if since != nil {
		tx = tx.Where("notify_date >= ?", since.Format("2006-01-02"))
	}

	var notifications []*entities.Notification
	if err := tx.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID, refrigeratorID, dDay string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("user_id = ? AND refrigerator_id = ? AND d_day = ? AND is_read = ?", userID, refrigeratorID, dDay, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
