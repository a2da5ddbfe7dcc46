package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetNotifications    = "notifications retrieved successfully"
	MessageSuccessMarkAsRead          = "notifications marked as read"
	MessageSuccessCreateNotifications = "notifications created for all users"

	MessageFailedGetNotifications    = "failed to retrieve notifications"
	MessageFailedMarkAsRead          = "failed to mark notifications as read"
	MessageFailedCreateNotifications = "failed to create notifications"

	ErrNoUnreadNotifications = errors.New("no unread notifications found")
	ErrMessageRequired       = errors.New("message is required")
)

const (
	DDay3 = "D-3"
	DDay0 = "D-0"
)

type (
	NotificationResponse struct {
		ID        string    `json:"id"`
		Message   string    `json:"message"`
		DDay      string    `json:"d_day"`
		IsRead    bool      `json:"is_read"`
		CreatedAt time.Time `json:"created_at"`
	}

	MarkAsReadRequest struct {
		DDay string `json:"d_day" validate:"required,oneof=D-3 D-0"`
	}
)
