package entities

import (
	"time"

	"github.com/google/uuid"
)

// Notification rows are deduplicated per user, food, day marker and calendar
// day so that re-running a scan for the same day inserts nothing new.
type Notification struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID  `gorm:"uniqueIndex:idx_notification_dedup" json:"user_id"`
	RefrigeratorID uuid.UUID  `gorm:"index" json:"refrigerator_id"`
	FridgeFoodID   *uuid.UUID `gorm:"uniqueIndex:idx_notification_dedup" json:"fridge_food_id,omitempty"`
	Message        string     `gorm:"type:text" json:"message"`
	DDay           string     `gorm:"uniqueIndex:idx_notification_dedup" json:"d_day"` // "D-3", "D-0"
	NotifyDate     time.Time  `gorm:"type:date;uniqueIndex:idx_notification_dedup" json:"notify_date"`
	IsRead         bool       `gorm:"default:false" json:"is_read"`
	CreatedAt      time.Time  `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
