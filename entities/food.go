package entities

import (
	"time"

	"github.com/google/uuid"
)

type DefaultFood struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `gorm:"uniqueIndex" json:"name"`
	ImageURL string    `json:"image_url"`
	Comment  string    `gorm:"type:text" json:"comment,omitempty"` // D-3 reminder template

	Timestamp
}

type FridgeFood struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RefrigeratorID uuid.UUID  `json:"refrigerator_id"`
	DefaultFoodID  *uuid.UUID `json:"default_food_id,omitempty"`
	Name           string     `json:"name,omitempty"` // required when DefaultFoodID is nil
	StorageType    string     `json:"storage_type"`   // "refrigerated", "frozen", "room_temp"
	PurchaseDate   time.Time  `gorm:"type:date" json:"purchase_date"`
	ExpirationDate time.Time  `gorm:"type:date;index" json:"expiration_date"`
	Quantity       int        `json:"quantity"`

	Refrigerator *Refrigerator `gorm:"foreignKey:RefrigeratorID"`
	DefaultFood  *DefaultFood  `gorm:"foreignKey:DefaultFoodID"`
	Timestamp
}

// DisplayName prefers the user-defined name over the catalog name.
func (f *FridgeFood) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	if f.DefaultFood != nil {
		return f.DefaultFood.Name
	}
	return ""
}

type FoodHistory struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FridgeFoodID   *uuid.UUID `json:"fridge_food_id,omitempty"` // kept nullable so history survives deletion
	FoodName       string     `json:"food_name"`
	UserID         uuid.UUID  `json:"user_id"`
	RefrigeratorID uuid.UUID  `gorm:"index" json:"refrigerator_id"`
	Action         string     `json:"action"` // "consumed", "discarded"
	Quantity       int        `json:"quantity"`
	CreatedAt      time.Time  `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
