package statistics

import (
	"context"
	"sort"
	"time"

	"sigkihan-server/domain"
)

type (
	// AccessChecker reports the caller's role in a refrigerator, failing with
	// the not-found / no-access sentinels.
	AccessChecker interface {
		RoleOf(ctx context.Context, userID, refrigeratorID string) (string, error)
	}

	StatisticsService interface {
		TopConsumedFoods(ctx context.Context, userID, refrigeratorID string, year int, month time.Month) ([]domain.TopConsumedFood, error)
		ConsumptionRanking(ctx context.Context, userID, refrigeratorID string, year int, month time.Month) ([]domain.ConsumptionRank, error)
	}

	statisticsService struct {
		statisticsRepository StatisticsRepository
		access               AccessChecker
	}
)

func NewStatisticsService(statisticsRepository StatisticsRepository, access AccessChecker) StatisticsService {
	return &statisticsService{
		statisticsRepository: statisticsRepository,
		access:               access,
	}
}

// TopConsumedFoods sums the month's consumed quantities per food name and
// returns the top five, quantity descending with name ascending as the
// tie-break.
func (s *statisticsService) TopConsumedFoods(ctx context.Context, userID, refrigeratorID string, year int, month time.Month) ([]domain.TopConsumedFood, error) {
	if _, err := s.access.RoleOf(ctx, userID, refrigeratorID); err != nil {
		return nil, err
	}

	from, to := monthRange(year, month)
	history, err := s.statisticsRepository.GetConsumedHistory(ctx, refrigeratorID, from, to)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	for _, entry := range history {
		totals[entry.FoodName] += entry.Quantity
	}

	foods := make([]domain.TopConsumedFood, 0, len(totals))
	for name, total := range totals {
		foods = append(foods, domain.TopConsumedFood{FoodName: name, TotalQuantity: total})
	}

	sort.Slice(foods, func(i, j int) bool {
		if foods[i].TotalQuantity != foods[j].TotalQuantity {
			return foods[i].TotalQuantity > foods[j].TotalQuantity
		}
		return foods[i].FoodName < foods[j].FoodName
	})

	if len(foods) > 5 {
		foods = foods[:5]
	}
	return foods, nil
}

// ConsumptionRanking sums the month's consumed quantities per member,
// quantity descending with name then id as the tie-break.
func (s *statisticsService) ConsumptionRanking(ctx context.Context, userID, refrigeratorID string, year int, month time.Month) ([]domain.ConsumptionRank, error) {
	if _, err := s.access.RoleOf(ctx, userID, refrigeratorID); err != nil {
		return nil, err
	}

	from, to := monthRange(year, month)
	history, err := s.statisticsRepository.GetConsumedHistory(ctx, refrigeratorID, from, to)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*domain.ConsumptionRank)
	for _, entry := range history {
		id := entry.UserID.String()
		rank, ok := totals[id]
		if !ok {
			rank = &domain.ConsumptionRank{UserID: id}
			if entry.User != nil {
				rank.UserName = entry.User.Name
			}
			totals[id] = rank
		}
		rank.TotalQuantity += entry.Quantity
	}

	ranking := make([]domain.ConsumptionRank, 0, len(totals))
	for _, rank := range totals {
		ranking = append(ranking, *rank)
	}

	// Display names are not unique, so the id is the final tie-break.
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].TotalQuantity != ranking[j].TotalQuantity {
			return ranking[i].TotalQuantity > ranking[j].TotalQuantity
		}
		if ranking[i].UserName != ranking[j].UserName {
			return ranking[i].UserName < ranking[j].UserName
		}
		return ranking[i].UserID < ranking[j].UserID
	})

	return ranking, nil
}

func monthRange(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return from, from.AddDate(0, 1, 0)
}
