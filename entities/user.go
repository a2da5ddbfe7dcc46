package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string     `json:"name"`
	Email       string     `gorm:"uniqueIndex" json:"email"`
	Password    string     `json:"-"`
	KakaoID     *string    `gorm:"uniqueIndex" json:"kakao_id,omitempty"`
	ImageID     *uuid.UUID `json:"image_id,omitempty"`
	IsSocial    bool       `json:"is_social"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`

	Image *ProfileImage `gorm:"foreignKey:ImageID"`
	Timestamp
}

type ProfileImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string    `gorm:"uniqueIndex" json:"name"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
}
