package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"sigkihan-server/domain"
	"sigkihan-server/internal/api/presenters"
	"sigkihan-server/pkg/statistics"
)

type (
	StatisticsHandler interface {
		TopConsumedFoods(c *fiber.Ctx) error
		ConsumptionRanking(c *fiber.Ctx) error
	}

	statisticsHandler struct {
		statisticsService statistics.StatisticsService
	}
)

func NewStatisticsHandler(statisticsService statistics.StatisticsService) StatisticsHandler {
	return &statisticsHandler{statisticsService: statisticsService}
}

func (h *statisticsHandler) TopConsumedFoods(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")
	year, month := parseMonth(c)

	res, err := h.statisticsService.TopConsumedFoods(c.Context(), userID, refrigeratorID, year, month)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedTopConsumed, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessTopConsumed)
}

func (h *statisticsHandler) ConsumptionRanking(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	refrigeratorID := c.Params("id")
	year, month := parseMonth(c)

	res, err := h.statisticsService.ConsumptionRanking(c.Context(), userID, refrigeratorID, year, month)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedRanking, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRanking)
}

// parseMonth reads year/month query parameters, defaulting to the current
// month.
func parseMonth(c *fiber.Ctx) (int, time.Month) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if y, err := strconv.Atoi(c.Query("year")); err == nil && y > 0 {
		year = y
	}
	if m, err := strconv.Atoi(c.Query("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}
	return year, month
}
