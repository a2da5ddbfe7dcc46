package food

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigkihan-server/domain"
	"sigkihan-server/entities"
	"sigkihan-server/pkg/oracle"
)

const dateLayout = "2006-01-02"

type (
	// AccessChecker reports the caller's role in a refrigerator, failing with
	// the not-found / no-access sentinels.
	AccessChecker interface {
		RoleOf(ctx context.Context, userID, refrigeratorID string) (string, error)
	}

	FoodService interface {
		SearchDefaultFoods(ctx context.Context, query string) ([]domain.DefaultFoodResponse, error)
		AddFood(ctx context.Context, userID, refrigeratorID string, req domain.AddFoodRequest) (domain.FoodResponse, error)
		GetFoods(ctx context.Context, userID, refrigeratorID string) ([]domain.FoodResponse, error)
		UpdateFood(ctx context.Context, userID, refrigeratorID, foodID string, req domain.UpdateFoodRequest) (domain.FoodResponse, error)
		DeleteFood(ctx context.Context, userID, refrigeratorID, foodID string) error
		RecordHistory(ctx context.Context, userID, refrigeratorID, foodID string, req domain.RecordHistoryRequest) (domain.RecordHistoryResponse, error)
		QueryExpiration(ctx context.Context, req domain.ExpirationQueryRequest) (domain.ExpirationQueryResponse, error)
		SuggestRecipe(ctx context.Context, userID, refrigeratorID string) (domain.RecipeSuggestResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		access         AccessChecker
		oracle         oracle.TextOracle
	}
)

func NewFoodService(foodRepository FoodRepository, access AccessChecker, textOracle oracle.TextOracle) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		access:         access,
		oracle:         textOracle,
	}
}

func (s *foodService) SearchDefaultFoods(ctx context.Context, query string) ([]domain.DefaultFoodResponse, error) {
	foods, err := s.foodRepository.SearchDefaultFoods(ctx, query)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.DefaultFoodResponse, 0, len(foods))
	for _, food := range foods {
		responses = append(responses, domain.DefaultFoodResponse{
			ID:       food.ID.String(),
			Name:     food.Name,
			ImageURL: food.ImageURL,
		})
	}
	return responses, nil
}

func (s *foodService) AddFood(ctx context.Context, userID, refrigeratorID string, req domain.AddFoodRequest) (domain.FoodResponse, error) {
	if _, err := s.access.RoleOf(ctx, userID, refrigeratorID); err != nil {
		return domain.FoodResponse{}, err
	}

	fridgeID, err := uuid.Parse(refrigeratorID)
	if err != nil {
		return domain.FoodResponse{}, domain.ErrParseUUID
	}

	purchaseDate, err := time.Parse(dateLayout, req.PurchaseDate)
	if err != nil {
		return domain.FoodResponse{}, domain.ErrInvalidDate
	}
	expirationDate, err := time.Parse(dateLayout, req.ExpirationDate)
	if err != nil {
		return domain.FoodResponse{}, domain.ErrInvalidDate
	}

	food := &entities.FridgeFood{
		ID:             uuid.New(),
		RefrigeratorID: fridgeID,
		StorageType:    req.StorageType,
		PurchaseDate:   purchaseDate,
		ExpirationDate: expirationDate,
		Quantity:       req.Quantity,
	}

	if req.DefaultFoodID != "" {
		defaultFood, err := s.foodRepository.GetDefaultFoodByID(ctx, req.DefaultFoodID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.FoodResponse{}, domain.ErrDefaultFoodNotFound
			}
			return domain.FoodResponse{}, err
		}
		food.DefaultFoodID = &defaultFood.ID
		food.DefaultFood = defaultFood
	} else {
		if req.Name == "" {
			return domain.FoodResponse{}, domain.ErrMissingFoodFields
		}
		food.Name = req.Name
	}

	if err := s.foodRepository.CreateFridgeFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return foodResponse(food), nil
}

func (s *foodService) GetFoods(ctx context.Context, userID, refrigeratorID string) ([]domain.FoodResponse, error) {
	if _, err := s.access.RoleOf(ctx, userID, refrigeratorID); err != nil {
		return nil, err
	}

	foods, err := s.foodRepository.GetFridgeFoods(ctx, refrigeratorID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.FoodResponse, 0, len(foods))
	for _, food := range foods {
		responses = append(responses, foodResponse(food))
	}
	return responses, nil
}

func (s *foodService) UpdateFood(ctx context.Context, userID, refrigeratorID, foodID string, req domain.UpdateFoodRequest) (domain.FoodResponse, error) {
	food, err := s.getAccessibleFood(ctx, userID, refrigeratorID, foodID)
	if err != nil {
		return domain.FoodResponse{}, err
	}

	if req.Name != "" {
		if food.DefaultFoodID != nil {
			return domain.FoodResponse{}, domain.ErrCatalogFoodRename
		}
		food.Name = req.Name
	}
	if req.StorageType != "" {
		food.StorageType = req.StorageType
	}
	if req.PurchaseDate != "" {
		purchaseDate, err := time.Parse(dateLayout, req.PurchaseDate)
		if err != nil {
			return domain.FoodResponse{}, domain.ErrInvalidDate
		}
		food.PurchaseDate = purchaseDate
	}
	if req.ExpirationDate != "" {
		expirationDate, err := time.Parse(dateLayout, req.ExpirationDate)
		if err != nil {
			return domain.FoodResponse{}, domain.ErrInvalidDate
		}
		food.ExpirationDate = expirationDate
	}
	if req.Quantity > 0 {
		food.Quantity = req.Quantity
	}

	if err := s.foodRepository.UpdateFridgeFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return foodResponse(food), nil
}

// DeleteFood removes the food and records its remaining quantity as discarded
// so the ledger stays complete.
func (s *foodService) DeleteFood(ctx context.Context, userID, refrigeratorID, foodID string) error {
	food, err := s.getAccessibleFood(ctx, userID, refrigeratorID, foodID)
	if err != nil {
		return err
	}

	history, err := s.buildHistory(userID, food, domain.ActionDiscarded, food.Quantity)
	if err != nil {
		return err
	}

	return s.foodRepository.DeleteFridgeFoodWithHistory(ctx, food, history)
}

func (s *foodService) RecordHistory(ctx context.Context, userID, refrigeratorID, foodID string, req domain.RecordHistoryRequest) (domain.RecordHistoryResponse, error) {
	if req.Action != domain.ActionConsumed && req.Action != domain.ActionDiscarded {
		return domain.RecordHistoryResponse{}, domain.ErrInvalidAction
	}
	if req.Quantity < 1 {
		return domain.RecordHistoryResponse{}, domain.ErrInvalidQuantity
	}

	food, err := s.getAccessibleFood(ctx, userID, refrigeratorID, foodID)
	if err != nil {
		return domain.RecordHistoryResponse{}, err
	}

	history, err := s.buildHistory(userID, food, req.Action, req.Quantity)
	if err != nil {
		return domain.RecordHistoryResponse{}, err
	}

	remaining, err := s.foodRepository.ConsumeFridgeFood(ctx, food.ID.String(), history)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecordHistoryResponse{}, domain.ErrFoodNotFound
		}
		return domain.RecordHistoryResponse{}, err
	}

	return domain.RecordHistoryResponse{
		Message:           fmt.Sprintf("%s %s", food.DisplayName(), req.Action),
		RemainingQuantity: remaining,
	}, nil
}

func (s *foodService) QueryExpiration(ctx context.Context, req domain.ExpirationQueryRequest) (domain.ExpirationQueryResponse, error) {
	const systemPrompt = "당신은 식품 보관 전문가입니다. 식품의 일반적인 소비기한과 보관 방법을 두세 문장으로 간결하게 알려주세요."

	answer, err := s.oracle.Complete(ctx, systemPrompt, fmt.Sprintf("%s의 소비기한을 알려주세요.", req.Name))
	if err != nil {
		return domain.ExpirationQueryResponse{}, fmt.Errorf("%w: %v", domain.ErrOracleUnavailable, err)
	}

	return domain.ExpirationQueryResponse{
		FoodName:   req.Name,
		Expiration: answer,
	}, nil
}

func (s *foodService) SuggestRecipe(ctx context.Context, userID, refrigeratorID string) (domain.RecipeSuggestResponse, error) {
	if _, err := s.access.RoleOf(ctx, userID, refrigeratorID); err != nil {
		return domain.RecipeSuggestResponse{}, err
	}

	foods, err := s.foodRepository.GetFridgeFoods(ctx, refrigeratorID)
	if err != nil {
		return domain.RecipeSuggestResponse{}, err
	}

	names := make([]string, 0, len(foods))
	for _, food := range foods {
		names = append(names, food.DisplayName())
	}

	const systemPrompt = "당신은 요리 전문가입니다. 주어진 재료로 만들 수 있는 요리 하나를 이름, 재료, 간단한 조리 순서로 추천해주세요."
	userPrompt := "재료가 없습니다. 기본 재료로 만들 수 있는 요리를 추천해주세요."
	if len(names) > 0 {
		userPrompt = fmt.Sprintf("냉장고에 있는 재료: %s", strings.Join(names, ", "))
	}

	recipe, err := s.oracle.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return domain.RecipeSuggestResponse{}, fmt.Errorf("%w: %v", domain.ErrOracleUnavailable, err)
	}

	return domain.RecipeSuggestResponse{Recipe: recipe}, nil
}

func (s *foodService) getAccessibleFood(ctx context.Context, userID, refrigeratorID, foodID string) (*entities.FridgeFood, error) {
	if _, err := s.access.RoleOf(ctx, userID, refrigeratorID); err != nil {
		return nil, err
	}

	food, err := s.foodRepository.GetFridgeFoodByID(ctx, refrigeratorID, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

func (s *foodService) buildHistory(userID string, food *entities.FridgeFood, action string, quantity int) (*entities.FoodHistory, error) {
	actorID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	foodID := food.ID
	return &entities.FoodHistory{
		ID:             uuid.New(),
		FridgeFoodID:   &foodID,
		FoodName:       food.DisplayName(),
		UserID:         actorID,
		RefrigeratorID: food.RefrigeratorID,
		Action:         action,
		Quantity:       quantity,
		CreatedAt:      time.Now(),
	}, nil
}

func foodResponse(food *entities.FridgeFood) domain.FoodResponse {
	res := domain.FoodResponse{
		ID:             food.ID.String(),
		Name:           food.DisplayName(),
		StorageType:    food.StorageType,
		PurchaseDate:   food.PurchaseDate.Format(dateLayout),
		ExpirationDate: food.ExpirationDate.Format(dateLayout),
		Quantity:       food.Quantity,
		CreatedAt:      food.CreatedAt,
	}
	if food.DefaultFoodID != nil {
		res.DefaultFoodID = food.DefaultFoodID.String()
	}
	if food.DefaultFood != nil {
		res.ImageURL = food.DefaultFood.ImageURL
	}
	return res
}
