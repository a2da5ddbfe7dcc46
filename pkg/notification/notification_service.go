package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sigkihan-server/domain"
	"sigkihan-server/entities"
)

type (
	// AccessChecker reports the caller's role in a refrigerator, failing with
	// the not-found / no-access sentinels.
	AccessChecker interface {
		RoleOf(ctx context.Context, userID, refrigeratorID string) (string, error)
	}

	NotificationService interface {
		Scan(ctx context.Context, now time.Time) (int64, error)
		ScanRefrigerator(ctx context.Context, userID, refrigeratorID string, now time.Time) (int64, error)
		GetNotifications(ctx context.Context, userID, refrigeratorID string) ([]domain.NotificationResponse, error)
		GetPopupNotifications(ctx context.Context, userID, refrigeratorID string) ([]domain.NotificationResponse, error)
		MarkAsRead(ctx context.Context, userID, refrigeratorID string, req domain.MarkAsReadRequest) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
		access                 AccessChecker
	}
)

func NewNotificationService(notificationRepository NotificationRepository, access AccessChecker) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		access:                 access,
	}
}

// Scan fans out expiration notifications for every refrigerator: one D-3 row
// per accessor for foods expiring in three days, one D-0 row per accessor for
// foods expiring today. Rows already created for the same day are skipped by
// the dedup index, so running Scan twice is harmless.
func (s *notificationService) Scan(ctx context.Context, now time.Time) (int64, error) {
	today := truncateToDate(now)

	var created int64
	for _, marker := range []struct {
		dDay   string
		target time.Time
	}{
		{domain.DDay3, today.AddDate(0, 0, 3)},
		{domain.DDay0, today},
	} {
		foods, err := s.notificationRepository.ListFoodsExpiringOn(ctx, marker.target)
		if err != nil {
			return created, err
		}

		n, err := s.notificationRepository.CreateNotifications(ctx, buildNotifications(foods, marker.dDay, today))
		if err != nil {
			return created, err
		}
		created += n
	}

	return created, nil
}

// ScanRefrigerator runs the same fan-out for a single refrigerator, on demand.
func (s *notificationService) ScanRefrigerator(ctx context.Context, userID, refrigeratorID string, now time.Time) (int64, error) {
	if _, err := s.access.RoleOf(ctx, userID, refrigeratorID); err != nil {
		return 0, err
	}

	today := truncateToDate(now)

	var created int64
	for _, marker := range []struct {
		dDay   string
		target time.Time
	}{
		{domain.DDay3, today.AddDate(0, 0, 3)},
		{domain.DDay0, today},
	} {
		foods, err := s.notificationRepository.ListFoodsExpiringOnForRefrigerator(ctx, refrigeratorID, marker.target)
		if err != nil {
			return created, err
		}

		n, err := s.notificationRepository.CreateNotifications(ctx, buildNotifications(foods, marker.dDay, today))
		if err != nil {
			return created, err
		}
		created += n
	}

	return created, nil
}

// GetNotifications lists unread D-3 reminders from the last seven days.
func (s *notificationService) GetNotifications(ctx context.Context, userID, refrigeratorID string) ([]domain.NotificationResponse, error) {
	if _, err := s.access.RoleOf(ctx, userID, refrigeratorID); err != nil {
		return nil, err
	}

	since := truncateToDate(time.Now()).AddDate(0, 0, -7)
	notifications, err := s.notificationRepository.ListUnread(ctx, userID, refrigeratorID, domain.DDay3, &since)
	if err != nil {
		return nil, err
	}
	return notificationResponses(notifications), nil
}

// GetPopupNotifications lists unread D-0 alerts, meant for a one-shot popup.
func (s *notificationService) GetPopupNotifications(ctx context.Context, userID, refrigeratorID string) ([]domain.NotificationResponse, error) {
	if _, err := s.access.RoleOf(ctx, userID, refrigeratorID); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepository.ListUnread(ctx, userID, refrigeratorID, domain.DDay0, nil)
	if err != nil {
		return nil, err
	}
	return notificationResponses(notifications), nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, refrigeratorID string, req domain.MarkAsReadRequest) error {
	if _, err := s.access.RoleOf(ctx, userID, refrigeratorID); err != nil {
		return err
	}

	affected, err := s.notificationRepository.MarkAllRead(ctx, userID, refrigeratorID, req.DDay)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNoUnreadNotifications
	}
	return nil
}

// buildNotifications creates one row per accessor of each food. D-3 prefers
// the catalog reminder comment; D-0 always names the food.
func buildNotifications(foods []*entities.FridgeFood, dDay string, notifyDate time.Time) []*entities.Notification {
	var notifications []*entities.Notification
	for _, food := range foods {
		if food.Refrigerator == nil {
			continue
		}

		message := notificationMessage(food, dDay)
		for _, access := range food.Refrigerator.AccessList {
			foodID := food.ID
			notifications = append(notifications, &entities.Notification{
				ID:             uuid.New(),
				UserID:         access.UserID,
				RefrigeratorID: food.RefrigeratorID,
				FridgeFoodID:   &foodID,
				Message:        message,
				DDay:           dDay,
				NotifyDate:     notifyDate,
				CreatedAt:      time.Now(),
			})
		}
	}
	return notifications
}

func notificationMessage(food *entities.FridgeFood, dDay string) string {
	if dDay == domain.DDay3 {
		if food.DefaultFood != nil && food.DefaultFood.Comment != "" {
			return food.DefaultFood.Comment
		}
		return fmt.Sprintf("%s의 소비기한이 3일 남았어요!", food.DisplayName())
	}
	return fmt.Sprintf("%s의 소비기한이 오늘까지예요!", food.DisplayName())
}

func notificationResponses(notifications []*entities.Notification) []domain.NotificationResponse {
	responses := make([]domain.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, domain.NotificationResponse{
			ID:        notification.ID.String(),
			Message:   notification.Message,
			DDay:      notification.DDay,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt,
		})
	}
	return responses
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
