package config

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"sigkihan-server/internal/api/handlers"
	"sigkihan-server/internal/api/routes"
	"sigkihan-server/internal/middleware"
	"sigkihan-server/internal/utils"
	"sigkihan-server/internal/utils/mailing"
	"sigkihan-server/internal/utils/storage"
	"sigkihan-server/pkg/auth"
	"sigkihan-server/pkg/food"
	"sigkihan-server/pkg/jwt"
	"sigkihan-server/pkg/memo"
	"sigkihan-server/pkg/notification"
	"sigkihan-server/pkg/oracle"
	"sigkihan-server/pkg/push"
	"sigkihan-server/pkg/refrigerator"
	"sigkihan-server/pkg/statistics"
	"sigkihan-server/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, *notification.Scheduler, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Seoul",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()
	kakaoProvider := auth.NewKakaoProvider(auth.KakaoConfig{
		ClientID:     utils.GetConfig("KAKAO_CLIENT_ID"),
		ClientSecret: utils.GetConfig("KAKAO_CLIENT_SECRET"),
		RedirectURI:  utils.GetConfig("KAKAO_REDIRECT_URI"),
	})
	textOracle := oracle.NewOpenAIOracle(oracle.OpenAIConfig{
		APIKey: utils.GetConfig("OPENAI_API_KEY"),
		Model:  utils.GetConfig("OPENAI_MODEL"),
	})

	publisher := push.Publisher(push.NewNoopPublisher())
	if natsURL := utils.GetConfig("NATS_URL"); natsURL != "" {
		p, err := push.NewNATSPublisher(natsURL)
		if err != nil {
			log.Errorf("could not connect to NATS at %s: %v", natsURL, err)
		} else {
			publisher = p
		}
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	refrigeratorRepository := refrigerator.NewRefrigeratorRepository(db)
	foodRepository := food.NewFoodRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	statisticsRepository := statistics.NewStatisticsRepository(db)
	memoRepository := memo.NewMemoRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, kakaoProvider, s3)
	refrigeratorService := refrigerator.NewRefrigeratorService(refrigeratorRepository, userRepository, mailer, publisher)
	foodService := food.NewFoodService(foodRepository, refrigeratorService, textOracle)
	notificationService := notification.NewNotificationService(notificationRepository, refrigeratorService)
	statisticsService := statistics.NewStatisticsService(statisticsRepository, refrigeratorService)
	memoService := memo.NewMemoService(memoRepository, refrigeratorService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	refrigeratorHandler := handlers.NewRefrigeratorHandler(refrigeratorService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService)
	memoHandler := handlers.NewMemoHandler(memoService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		RefrigeratorHandler: refrigeratorHandler,
		FoodHandler:         foodHandler,
		NotificationHandler: notificationHandler,
		StatisticsHandler:   statisticsHandler,
		MemoHandler:         memoHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()

	notifyHour := 9
	if h, err := strconv.Atoi(utils.GetConfig("NOTIFY_HOUR")); err == nil {
		notifyHour = h
	}
	scheduler := notification.NewScheduler(notificationService, notifyHour)

	return app, scheduler, nil
}
