package domain

var (
	MessageSuccessTopConsumed = "top consumed foods retrieved successfully"
	MessageSuccessRanking     = "consumption ranking retrieved successfully"

	MessageFailedTopConsumed = "failed to retrieve top consumed foods"
	MessageFailedRanking     = "failed to retrieve consumption ranking"
)

type (
	TopConsumedFood struct {
		FoodName      string `json:"food_name"`
		TotalQuantity int    `json:"total_quantity"`
	}

	ConsumptionRank struct {
		UserID        string `json:"user_id"`
		UserName      string `json:"user_name"`
		TotalQuantity int    `json:"total_quantity"`
	}
)
