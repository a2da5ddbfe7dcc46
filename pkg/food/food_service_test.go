package food

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigkihan-server/domain"
	"sigkihan-server/entities"
)

type mockFoodRepository struct {
	searchDefaultFoods          func(ctx context.Context, query string) ([]*entities.DefaultFood, error)
	getDefaultFoodByID          func(ctx context.Context, id string) (*entities.DefaultFood, error)
	createFridgeFood            func(ctx context.Context, food *entities.FridgeFood) error
	getFridgeFoods              func(ctx context.Context, refrigeratorID string) ([]*entities.FridgeFood, error)
	getFridgeFoodByID           func(ctx context.Context, refrigeratorID, foodID string) (*entities.FridgeFood, error)
	updateFridgeFood            func(ctx context.Context, food *entities.FridgeFood) error
	deleteFridgeFoodWithHistory func(ctx context.Context, food *entities.FridgeFood, history *entities.FoodHistory) error
	consumeFridgeFood           func(ctx context.Context, foodID string, history *entities.FoodHistory) (int, error)
}

func (m *mockFoodRepository) SearchDefaultFoods(ctx context.Context, query string) ([]*entities.DefaultFood, error) {
	return m.searchDefaultFoods(ctx, query)
}

func (m *mockFoodRepository) GetDefaultFoodByID(ctx context.Context, id string) (*entities.DefaultFood, error) {
	return m.getDefaultFoodByID(ctx, id)
}

func (m *mockFoodRepository) CreateFridgeFood(ctx context.Context, food *entities.FridgeFood) error {
	return m.createFridgeFood(ctx, food)
}

func (m *mockFoodRepository) GetFridgeFoods(ctx context.Context, refrigeratorID string) ([]*entities.FridgeFood, error) {
	return m.getFridgeFoods(ctx, refrigeratorID)
}

func (m *mockFoodRepository) GetFridgeFoodByID(ctx context.Context, refrigeratorID, foodID string) (*entities.FridgeFood, error) {
	return m.getFridgeFoodByID(ctx, refrigeratorID, foodID)
}

func (m *mockFoodRepository) UpdateFridgeFood(ctx context.Context, food *entities.FridgeFood) error {
	return m.updateFridgeFood(ctx, food)
}

func (m *mockFoodRepository) DeleteFridgeFoodWithHistory(ctx context.Context, food *entities.FridgeFood, history *entities.FoodHistory) error {
	return m.deleteFridgeFoodWithHistory(ctx, food, history)
}

func (m *mockFoodRepository) ConsumeFridgeFood(ctx context.Context, foodID string, history *entities.FoodHistory) (int, error) {
	return m.consumeFridgeFood(ctx, foodID, history)
}

type mockAccessChecker struct {
	role string
	err  error
}

func (m *mockAccessChecker) RoleOf(ctx context.Context, userID, refrigeratorID string) (string, error) {
	if m.err != nil {
		return domain.RoleNone, m.err
	}
	return m.role, nil
}

type mockOracle struct {
	answer string
	err    error
}

func (m *mockOracle) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return m.answer, m.err
}

func memberAccess() *mockAccessChecker {
	return &mockAccessChecker{role: domain.RoleMember}
}

func TestAddFoodRequiresNameWithoutCatalogEntry(t *testing.T) {
	service := NewFoodService(&mockFoodRepository{}, memberAccess(), &mockOracle{})

	_, err := service.AddFood(context.Background(), uuid.NewString(), uuid.NewString(), domain.AddFoodRequest{
		StorageType:    domain.StorageRefrigerated,
		PurchaseDate:   "2025-01-01",
		ExpirationDate: "2025-01-10",
		Quantity:       2,
	})
	if !errors.Is(err, domain.ErrMissingFoodFields) {
		t.Fatalf("expected ErrMissingFoodFields, got %v", err)
	}
}

func TestAddFoodRejectsBadDate(t *testing.T) {
	service := NewFoodService(&mockFoodRepository{}, memberAccess(), &mockOracle{})

	_, err := service.AddFood(context.Background(), uuid.NewString(), uuid.NewString(), domain.AddFoodRequest{
		Name:           "수제잼",
		StorageType:    domain.StorageRefrigerated,
		PurchaseDate:   "01/01/2025",
		ExpirationDate: "2025-01-10",
		Quantity:       1,
	})
	if !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestAddFoodUnknownCatalogEntry(t *testing.T) {
	repo := &mockFoodRepository{
		getDefaultFoodByID: func(ctx context.Context, id string) (*entities.DefaultFood, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := NewFoodService(repo, memberAccess(), &mockOracle{})

	_, err := service.AddFood(context.Background(), uuid.NewString(), uuid.NewString(), domain.AddFoodRequest{
		DefaultFoodID:  uuid.NewString(),
		StorageType:    domain.StorageFrozen,
		PurchaseDate:   "2025-01-01",
		ExpirationDate: "2025-01-10",
		Quantity:       1,
	})
	if !errors.Is(err, domain.ErrDefaultFoodNotFound) {
		t.Fatalf("expected ErrDefaultFoodNotFound, got %v", err)
	}
}

func TestRecordHistoryReturnsRemainingQuantity(t *testing.T) {
	fridgeID := uuid.New()
	foodID := uuid.New()
	userID := uuid.New()

	repo := &mockFoodRepository{
		getFridgeFoodByID: func(ctx context.Context, refrigeratorID, id string) (*entities.FridgeFood, error) {
			return &entities.FridgeFood{ID: foodID, RefrigeratorID: fridgeID, Name: "수제잼", Quantity: 5}, nil
		},
		consumeFridgeFood: func(ctx context.Context, id string, history *entities.FoodHistory) (int, error) {
			if history.Action != domain.ActionConsumed {
				t.Errorf("expected consumed action, got %s", history.Action)
			}
			if history.FoodName != "수제잼" {
				t.Errorf("expected ledger food name 수제잼, got %s", history.FoodName)
			}
			return 5 - history.Quantity, nil
		},
	}
	service := NewFoodService(repo, memberAccess(), &mockOracle{})

	res, err := service.RecordHistory(context.Background(), userID.String(), fridgeID.String(), foodID.String(), domain.RecordHistoryRequest{
		Action:   domain.ActionConsumed,
		Quantity: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RemainingQuantity != 2 {
		t.Errorf("expected remaining quantity 2, got %d", res.RemainingQuantity)
	}
}

func TestRecordHistoryOverConsume(t *testing.T) {
	fridgeID := uuid.New()
	foodID := uuid.New()

	repo := &mockFoodRepository{
		getFridgeFoodByID: func(ctx context.Context, refrigeratorID, id string) (*entities.FridgeFood, error) {
			return &entities.FridgeFood{ID: foodID, RefrigeratorID: fridgeID, Name: "우유", Quantity: 1}, nil
		},
		consumeFridgeFood: func(ctx context.Context, id string, history *entities.FoodHistory) (int, error) {
			return 0, domain.ErrNotEnoughQuantity
		},
	}
	service := NewFoodService(repo, memberAccess(), &mockOracle{})

	_, err := service.RecordHistory(context.Background(), uuid.NewString(), fridgeID.String(), foodID.String(), domain.RecordHistoryRequest{
		Action:   domain.ActionDiscarded,
		Quantity: 2,
	})
	if !errors.Is(err, domain.ErrNotEnoughQuantity) {
		t.Fatalf("expected ErrNotEnoughQuantity, got %v", err)
	}
}

func TestRecordHistoryNoAccess(t *testing.T) {
	service := NewFoodService(&mockFoodRepository{}, &mockAccessChecker{err: domain.ErrNoRefrigeratorAccess}, &mockOracle{})

	_, err := service.RecordHistory(context.Background(), uuid.NewString(), uuid.NewString(), uuid.NewString(), domain.RecordHistoryRequest{
		Action:   domain.ActionConsumed,
		Quantity: 1,
	})
	if !errors.Is(err, domain.ErrNoRefrigeratorAccess) {
		t.Fatalf("expected ErrNoRefrigeratorAccess, got %v", err)
	}
}

func TestUpdateFoodCatalogRenameRejected(t *testing.T) {
	fridgeID := uuid.New()
	foodID := uuid.New()
	catalogID := uuid.New()

	repo := &mockFoodRepository{
		getFridgeFoodByID: func(ctx context.Context, refrigeratorID, id string) (*entities.FridgeFood, error) {
			return &entities.FridgeFood{ID: foodID, RefrigeratorID: fridgeID, DefaultFoodID: &catalogID}, nil
		},
	}
	service := NewFoodService(repo, memberAccess(), &mockOracle{})

	_, err := service.UpdateFood(context.Background(), uuid.NewString(), fridgeID.String(), foodID.String(), domain.UpdateFoodRequest{Name: "내맘대로"})
	if !errors.Is(err, domain.ErrCatalogFoodRename) {
		t.Fatalf("expected ErrCatalogFoodRename, got %v", err)
	}
}

func TestDeleteFoodRecordsDiscardLedger(t *testing.T) {
	fridgeID := uuid.New()
	foodID := uuid.New()

	var recorded *entities.FoodHistory
	repo := &mockFoodRepository{
		getFridgeFoodByID: func(ctx context.Context, refrigeratorID, id string) (*entities.FridgeFood, error) {
			return &entities.FridgeFood{ID: foodID, RefrigeratorID: fridgeID, Name: "두부", Quantity: 4}, nil
		},
		deleteFridgeFoodWithHistory: func(ctx context.Context, food *entities.FridgeFood, history *entities.FoodHistory) error {
			recorded = history
			return nil
		},
	}
	service := NewFoodService(repo, memberAccess(), &mockOracle{})

	if err := service.DeleteFood(context.Background(), uuid.NewString(), fridgeID.String(), foodID.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recorded == nil {
		t.Fatal("expected a ledger entry to be written with the delete")
	}
	if recorded.Action != domain.ActionDiscarded || recorded.Quantity != 4 {
		t.Errorf("expected discarded x4, got %s x%d", recorded.Action, recorded.Quantity)
	}
}

func TestQueryExpirationUpstreamFailure(t *testing.T) {
	service := NewFoodService(&mockFoodRepository{}, memberAccess(), &mockOracle{err: errors.New("timeout")})

	_, err := service.QueryExpiration(context.Background(), domain.ExpirationQueryRequest{Name: "우유"})
	if !errors.Is(err, domain.ErrOracleUnavailable) {
		t.Fatalf("expected ErrOracleUnavailable, got %v", err)
	}
}

func TestSuggestRecipeUsesFridgeContents(t *testing.T) {
	fridgeID := uuid.New()

	repo := &mockFoodRepository{
		getFridgeFoods: func(ctx context.Context, refrigeratorID string) ([]*entities.FridgeFood, error) {
			return []*entities.FridgeFood{
				{ID: uuid.New(), Name: "두부"},
				{ID: uuid.New(), DefaultFood: &entities.DefaultFood{Name: "김치류"}},
			}, nil
		},
	}
	service := NewFoodService(repo, memberAccess(), &mockOracle{answer: "김치찌개"})

	res, err := service.SuggestRecipe(context.Background(), uuid.NewString(), fridgeID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Recipe != "김치찌개" {
		t.Errorf("unexpected recipe: %s", res.Recipe)
	}
}
