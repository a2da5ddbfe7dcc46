package food

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sigkihan-server/domain"
	"sigkihan-server/entities"
)

type (
	FoodRepository interface {
		SearchDefaultFoods(ctx context.Context, query string) ([]*entities.DefaultFood, error)
		GetDefaultFoodByID(ctx context.Context, id string) (*entities.DefaultFood, error)

		CreateFridgeFood(ctx context.Context, food *entities.FridgeFood) error
		GetFridgeFoods(ctx context.Context, refrigeratorID string) ([]*entities.FridgeFood, error)
		GetFridgeFoodByID(ctx context.Context, refrigeratorID, foodID string) (*entities.FridgeFood, error)
		UpdateFridgeFood(ctx context.Context, food *entities.FridgeFood) error
		DeleteFridgeFoodWithHistory(ctx context.Context, food *entities.FridgeFood, history *entities.FoodHistory) error
		ConsumeFridgeFood(ctx context.Context, foodID string, history *entities.FoodHistory) (int, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) SearchDefaultFoods(ctx context.Context, query string) ([]*entities.DefaultFood, error) {
	var foods []*entities.DefaultFood
	tx := r.db.WithContext(ctx).Order("name ASC")
	if query != "" {
		tx = tx.Where("name ILIKE ?", "%"+query+"%")
	}
	if err := tx.Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetDefaultFoodByID(ctx context.Context, id string) (*entities.DefaultFood, error) {
	var food entities.DefaultFood
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) CreateFridgeFood(ctx context.Context, food *entities.FridgeFood) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFridgeFoods(ctx context.Context, refrigeratorID string) ([]*entities.FridgeFood, error) {
	var foods []*entities.FridgeFood
	if err := r.db.WithContext(ctx).
		Preload("DefaultFood").
		Where("refrigerator_id = ?", refrigeratorID).
		Order("expiration_date ASC").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetFridgeFoodByID(ctx context.Context, refrigeratorID, foodID string) (*entities.FridgeFood, error) {
	var food entities.FridgeFood
	if err := r.db.WithContext(ctx).
		Preload("DefaultFood").
		Where("id = ? AND refrigerator_id = ?", foodID, refrigeratorID).
		First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) UpdateFridgeFood(ctx context.Context, food *entities.FridgeFood) error {
	return r.db.WithContext(ctx).Save(food).Error
}

// DeleteFridgeFoodWithHistory writes the ledger entry before the food row is
// removed, in one transaction, so the ledger never misses a destruction.
func (r *foodRepository) DeleteFridgeFoodWithHistory(ctx context.Context, food *entities.FridgeFood, history *entities.FoodHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if history != nil {
			if err := tx.Create(history).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", food.ID).Delete(&entities.FridgeFood{}).Error
	})
}

// ConsumeFridgeFood applies one ledger action to the food under a row lock:
// the history row is written first, then the quantity is decremented, and the
// food is deleted when it reaches zero. Returns the remaining quantity.
func (r *foodRepository) ConsumeFridgeFood(ctx context.Context, foodID string, history *entities.FoodHistory) (int, error) {
	var remaining int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var food entities.FridgeFood
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", foodID).
			First(&food).Error; err != nil {
			return err
		}

		if history.Quantity > food.Quantity {
			return domain.ErrNotEnoughQuantity
		}

		if err := tx.Create(history).Error; err != nil {
			return err
		}

		remaining = food.Quantity - history.Quantity
		if remaining == 0 {
			return tx.Where("id = ?", food.ID).Delete(&entities.FridgeFood{}).Error
		}
		return tx.Model(&entities.FridgeFood{}).
			Where("id = ?", food.ID).
			Update("quantity", remaining).Error
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}
