package entities

import (
	"time"

	"github.com/google/uuid"
)

type Refrigerator struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`

	AccessList []*RefrigeratorAccess `gorm:"foreignKey:RefrigeratorID;constraint:OnDelete:CASCADE"`
	Foods      []*FridgeFood         `gorm:"foreignKey:RefrigeratorID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type RefrigeratorAccess struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `gorm:"uniqueIndex:idx_user_refrigerator" json:"user_id"`
	RefrigeratorID uuid.UUID `gorm:"uniqueIndex:idx_user_refrigerator" json:"refrigerator_id"`
	Role           string    `json:"role"` // "owner", "member"
	CreatedAt      time.Time `gorm:"type:timestamp" json:"created_at"`

	User         *User         `gorm:"foreignKey:UserID"`
	Refrigerator *Refrigerator `gorm:"foreignKey:RefrigeratorID"`
}

type RefrigeratorInvitation struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RefrigeratorID uuid.UUID `json:"refrigerator_id"`
	InviterID      uuid.UUID `json:"inviter_id"`
	InviteeEmail   string    `gorm:"index" json:"invitee_email"`
	Code           string    `gorm:"uniqueIndex" json:"code"`
	Status         string    `json:"status"` // "pending", "accepted", "declined"

	Inviter      *User         `gorm:"foreignKey:InviterID"`
	Refrigerator *Refrigerator `gorm:"foreignKey:RefrigeratorID"`
	Timestamp
}
