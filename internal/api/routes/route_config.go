package routes

import (
	"github.com/gofiber/fiber/v2"

	"sigkihan-server/internal/api/handlers"
	"sigkihan-server/internal/middleware"
	"sigkihan-server/pkg/jwt"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	RefrigeratorHandler handlers.RefrigeratorHandler
	FoodHandler         handlers.FoodHandler
	NotificationHandler handlers.NotificationHandler
	StatisticsHandler   handlers.StatisticsHandler
	MemoHandler         handlers.MemoHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Users()
	c.Refrigerators()
	c.Foods()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/kakao", c.UserHandler.KakaoLogin)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users", c.Middleware.AuthMiddleware(c.JWTService))
	{
		users.Get("/me", c.UserHandler.Me)
		users.Patch("/me", c.UserHandler.UpdateMe)
		users.Post("/me/image", c.UserHandler.UploadProfileImage)
	}
}

func (c *Config) Refrigerators() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/api/v1/invitations", auth, c.RefrigeratorHandler.GetInvitations)

	fridges := c.App.Group("/api/v1/refrigerators", auth)
	{
		fridges.Post("", c.RefrigeratorHandler.CreateRefrigerator)
		fridges.Get("", c.RefrigeratorHandler.GetRefrigerators)

		// Invitation resolution goes by code, not refrigerator id, so it is
		// registered before the :id routes.
		fridges.Post("/invitations/:code", c.RefrigeratorHandler.ResolveInvitation)

		fridges.Get("/:id", c.RefrigeratorHandler.GetRefrigerator)
		fridges.Patch("/:id", c.RefrigeratorHandler.UpdateRefrigerator)
		fridges.Delete("/:id", c.RefrigeratorHandler.DeleteRefrigerator)

		fridges.Post("/:id/invitations", c.RefrigeratorHandler.CreateInvitation)
		fridges.Delete("/:id/members/self", c.RefrigeratorHandler.LeaveRefrigerator)
		fridges.Delete("/:id/members/:member_id", c.RefrigeratorHandler.RemoveMember)

		fridges.Get("/:id/foods", c.FoodHandler.GetFoods)
		fridges.Post("/:id/foods", c.FoodHandler.AddFood)
		fridges.Patch("/:id/foods/:food_id", c.FoodHandler.UpdateFood)
		fridges.Delete("/:id/foods/:food_id", c.FoodHandler.DeleteFood)
		fridges.Post("/:id/foods/:food_id/history", c.FoodHandler.RecordHistory)

		fridges.Get("/:id/notifications", c.NotificationHandler.GetNotifications)
		fridges.Get("/:id/notifications/popup", c.NotificationHandler.GetPopupNotifications)
		fridges.Post("/:id/notifications/mark-as-read", c.NotificationHandler.MarkAsRead)
		fridges.Post("/:id/notifications/create", c.NotificationHandler.CreateNotifications)

		fridges.Get("/:id/statistics/monthly-top-consumed-foods", c.StatisticsHandler.TopConsumedFoods)
		fridges.Get("/:id/statistics/monthly-consumption-ranking", c.StatisticsHandler.ConsumptionRanking)

		fridges.Get("/:id/memos", c.MemoHandler.GetMemos)
		fridges.Post("/:id/memos", c.MemoHandler.CreateMemo)
		fridges.Patch("/:id/memos/:memo_id", c.MemoHandler.UpdateMemo)
		fridges.Delete("/:id/memos/:memo_id", c.MemoHandler.DeleteMemo)

		fridges.Post("/:id/recipes/suggest", c.FoodHandler.SuggestRecipe)
	}
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods", c.Middleware.AuthMiddleware(c.JWTService))
	{
		foods.Get("/default", c.FoodHandler.SearchDefaultFoods)
		foods.Post("/expiration-query", c.FoodHandler.QueryExpiration)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
