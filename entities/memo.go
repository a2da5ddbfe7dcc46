package entities

import (
	"github.com/google/uuid"
)

type Memo struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RefrigeratorID uuid.UUID `gorm:"index" json:"refrigerator_id"`
	UserID         uuid.UUID `json:"user_id"`
	Content        string    `gorm:"type:text" json:"content"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
