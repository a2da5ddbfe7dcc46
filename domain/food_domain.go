package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetDefaultFoods = "default foods retrieved successfully"
	MessageSuccessAddFood         = "food added successfully"
	MessageSuccessGetFoods        = "foods retrieved successfully"
	MessageSuccessUpdateFood      = "food updated successfully"
	MessageSuccessDeleteFood      = "food deleted successfully"
	MessageSuccessRecordHistory   = "history recorded successfully"
	MessageSuccessExpirationQuery = "expiration info retrieved successfully"
	MessageSuccessRecipeSuggest   = "recipe suggested successfully"

	MessageFailedGetDefaultFoods = "failed to retrieve default foods"
	MessageFailedAddFood         = "failed to add food"
	MessageFailedGetFoods        = "failed to retrieve foods"
	MessageFailedUpdateFood      = "failed to update food"
	MessageFailedDeleteFood      = "failed to delete food"
	MessageFailedRecordHistory   = "failed to record history"
	MessageFailedExpirationQuery = "failed to retrieve expiration info"
	MessageFailedRecipeSuggest   = "failed to suggest recipe"

	ErrFoodNotFound        = errors.New("food not found in the specified refrigerator")
	ErrDefaultFoodNotFound = errors.New("default food not found")
	ErrMissingFoodFields   = errors.New("purchase date, expiration date, and quantity are required")
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
	ErrNotEnoughQuantity   = errors.New("not enough quantity to perform this action")
	ErrInvalidAction       = errors.New("action must be consumed or discarded")
	ErrInvalidDate         = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrCatalogFoodRename   = errors.New("catalog foods cannot be renamed")
	ErrOracleUnavailable   = errors.New("inference service unavailable")
)

const (
	ActionConsumed  = "consumed"
	ActionDiscarded = "discarded"

	StorageRefrigerated = "refrigerated"
	StorageFrozen       = "frozen"
	StorageRoomTemp     = "room_temp"
)

type (
	DefaultFoodResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		ImageURL string `json:"image"`
	}

	AddFoodRequest struct {
		DefaultFoodID  string `json:"default_food_id" validate:"omitempty,uuid"`
		Name           string `json:"name" validate:"omitempty,max=100"`
		StorageType    string `json:"storage_type" validate:"required,oneof=refrigerated frozen room_temp"`
		PurchaseDate   string `json:"purchase_date" validate:"required"`
		ExpirationDate string `json:"expiration_date" validate:"required"`
		Quantity       int    `json:"quantity" validate:"required,min=1"`
	}

	UpdateFoodRequest struct {
		Name           string `json:"name" validate:"omitempty,max=100"`
		StorageType    string `json:"storage_type" validate:"omitempty,oneof=refrigerated frozen room_temp"`
		PurchaseDate   string `json:"purchase_date" validate:"omitempty"`
		ExpirationDate string `json:"expiration_date" validate:"omitempty"`
		Quantity       int    `json:"quantity" validate:"omitempty,min=1"`
	}

	FoodResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		DefaultFoodID  string    `json:"default_food_id,omitempty"`
		ImageURL       string    `json:"image_url,omitempty"`
		StorageType    string    `json:"storage_type"`
		PurchaseDate   string    `json:"purchase_date"`
		ExpirationDate string    `json:"expiration_date"`
		Quantity       int       `json:"quantity"`
		CreatedAt      time.Time `json:"created_at"`
	}

	RecordHistoryRequest struct {
		Action   string `json:"action" validate:"required,oneof=consumed discarded"`
		Quantity int    `json:"quantity" validate:"required,min=1"`
	}

	RecordHistoryResponse struct {
		Message           string `json:"message"`
		RemainingQuantity int    `json:"remaining_quantity"`
	}

	ExpirationQueryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	ExpirationQueryResponse struct {
		FoodName   string `json:"food_name"`
		Expiration string `json:"expiration"`
	}

	RecipeSuggestResponse struct {
		Recipe string `json:"recipe"`
	}
)
