package statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"sigkihan-server/domain"
	"sigkihan-server/entities"
)

type mockStatisticsRepository struct {
	getConsumedHistory func(ctx context.Context, refrigeratorID string, from, to time.Time) ([]*entities.FoodHistory, error)
}

func (m *mockStatisticsRepository) GetConsumedHistory(ctx context.Context, refrigeratorID string, from, to time.Time) ([]*entities.FoodHistory, error) {
	return m.getConsumedHistory(ctx, refrigeratorID, from, to)
}

type mockAccessChecker struct {
	err error
}

func (m *mockAccessChecker) RoleOf(ctx context.Context, userID, refrigeratorID string) (string, error) {
	if m.err != nil {
		return domain.RoleNone, m.err
	}
	return domain.RoleMember, nil
}

func entry(user uuid.UUID, userName, foodName string, quantity int) *entities.FoodHistory {
	return &entities.FoodHistory{
		ID:       uuid.New(),
		UserID:   user,
		User:     &entities.User{ID: user, Name: userName},
		FoodName: foodName,
		Action:   "consumed",
		Quantity: quantity,
	}
}

func TestTopConsumedFoodsOrdering(t *testing.T) {
	userID := uuid.New()
	repo := &mockStatisticsRepository{
		getConsumedHistory: func(ctx context.Context, refrigeratorID string, from, to time.Time) ([]*entities.FoodHistory, error) {
			return []*entities.FoodHistory{
				entry(userID, "철수", "사과", 5),
				entry(userID, "철수", "사과", 3),
				entry(userID, "철수", "바나나", 5),
				entry(userID, "철수", "가지", 5),
			}, nil
		},
	}

	service := NewStatisticsService(repo, &mockAccessChecker{})

	foods, err := service.TopConsumedFoods(context.Background(), userID.String(), uuid.NewString(), 2025, time.March)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(foods) != 3 {
		t.Fatalf("expected 3 foods, got %d", len(foods))
	}
	if foods[0].FoodName != "사과" || foods[0].TotalQuantity != 8 {
		t.Errorf("expected 사과 x8 first, got %s x%d", foods[0].FoodName, foods[0].TotalQuantity)
	}
	// quantity tie resolved by name ascending
	if foods[1].FoodName != "가지" || foods[2].FoodName != "바나나" {
		t.Errorf("expected 가지 then 바나나 on tie, got %s then %s", foods[1].FoodName, foods[2].FoodName)
	}
}

func TestTopConsumedFoodsCapsAtFive(t *testing.T) {
	userID := uuid.New()
	names := []string{"가", "나", "다", "라", "마", "바", "사"}
	repo := &mockStatisticsRepository{
		getConsumedHistory: func(ctx context.Context, refrigeratorID string, from, to time.Time) ([]*entities.FoodHistory, error) {
			var history []*entities.FoodHistory
			for i, name := range names {
				history = append(history, entry(userID, "철수", name, i+1))
			}
			return history, nil
		},
	}

	service := NewStatisticsService(repo, &mockAccessChecker{})

	foods, err := service.TopConsumedFoods(context.Background(), userID.String(), uuid.NewString(), 2025, time.March)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(foods) != 5 {
		t.Fatalf("expected top 5, got %d", len(foods))
	}
	if foods[0].FoodName != "사" || foods[0].TotalQuantity != 7 {
		t.Errorf("expected 사 x7 first, got %s x%d", foods[0].FoodName, foods[0].TotalQuantity)
	}
}

func TestConsumptionRankingOrdersByTotal(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	repo := &mockStatisticsRepository{
		getConsumedHistory: func(ctx context.Context, refrigeratorID string, from, to time.Time) ([]*entities.FoodHistory, error) {
			return []*entities.FoodHistory{
				entry(userA, "철수", "사과", 3),
				entry(userB, "영희", "우유", 4),
				entry(userA, "철수", "우유", 5),
			}, nil
		},
	}

	service := NewStatisticsService(repo, &mockAccessChecker{})

	ranking, err := service.ConsumptionRanking(context.Background(), userA.String(), uuid.NewString(), 2025, time.March)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranking) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ranking))
	}
	if ranking[0].UserName != "철수" || ranking[0].TotalQuantity != 8 {
		t.Errorf("expected 철수 x8 first, got %s x%d", ranking[0].UserName, ranking[0].TotalQuantity)
	}
	if ranking[1].UserName != "영희" || ranking[1].TotalQuantity != 4 {
		t.Errorf("expected 영희 x4 second, got %s x%d", ranking[1].UserName, ranking[1].TotalQuantity)
	}
}

func TestStatisticsRequireAccess(t *testing.T) {
	service := NewStatisticsService(&mockStatisticsRepository{}, &mockAccessChecker{err: domain.ErrNoRefrigeratorAccess})

	if _, err := service.TopConsumedFoods(context.Background(), uuid.NewString(), uuid.NewString(), 2025, time.March); !errors.Is(err, domain.ErrNoRefrigeratorAccess) {
		t.Fatalf("expected ErrNoRefrigeratorAccess, got %v", err)
	}
	if _, err := service.ConsumptionRanking(context.Background(), uuid.NewString(), uuid.NewString(), 2025, time.March); !errors.Is(err, domain.ErrNoRefrigeratorAccess) {
		t.Fatalf("expected ErrNoRefrigeratorAccess, got %v", err)
	}
}

func TestConsumptionRankingDeterministicOnFullTie(t *testing.T) {
	// two members sharing a display name and a total
	userA := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	userB := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	repo := &mockStatisticsRepository{
		getConsumedHistory: func(ctx context.Context, refrigeratorID string, from, to time.Time) ([]*entities.FoodHistory, error) {
			return []*entities.FoodHistory{
				entry(userB, "철수", "우유", 3),
				entry(userA, "철수", "사과", 3),
			}, nil
		},
	}

	service := NewStatisticsService(repo, &mockAccessChecker{})

	ranking, err := service.ConsumptionRanking(context.Background(), userA.String(), uuid.NewString(), 2025, time.March)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranking) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ranking))
	}
	if ranking[0].UserID != userA.String() || ranking[1].UserID != userB.String() {
		t.Errorf("expected id order %s, %s, got %s, %s", userA, userB, ranking[0].UserID, ranking[1].UserID)
	}
}
