package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careermate/careermate-api/internal/config"
	"github.com/careermate/careermate-api/internal/domain/fiber/handler"
	"github.com/careermate/careermate-api/internal/logger"
	"github.com/careermate/careermate-api/internal/middleware"
	"github.com/careermate/careermate-api/internal/model"
	"github.com/careermate/careermate-api/internal/repository"
	"github.com/careermate/careermate-api/internal/service"
	"github.com/careermate/careermate-api/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		fmt.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	log, err := logger.New(appConfig.Env, appConfig.Debug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: 10 * 1024 * 1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := connectDB(log)

	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	gemini, err := service.NewGeminiService(ctx, log)
	if err != nil {
		log.Fatal("gemini gateway init failed", zap.Error(err))
	}

	aiConfig := config.LoadAIConfig()
	var textGen usecase.TextGenerator = gemini
	if aiConfig.Provider == "openrouter" {
		openRouter, err := service.NewOpenRouterService(log)
		if err != nil {
			log.Fatal("openrouter gateway init failed", zap.Error(err))
		}
		textGen = openRouter
	}

	assessmentUC := usecase.NewAssessmentUsecase(textGen, log, aiConfig.ForceFallback)
	authUC := usecase.NewAuthUsecase(userRepo, config.LoadAuthConfig(), log)
	jobUC := usecase.NewJobUsecase(jobRepo, userRepo, gemini, log)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, userRepo, log)

	handler.NewAuthHandler(authUC).RegisterRoutes(app)
	handler.NewAIHandler(assessmentUC).RegisterRoutes(app)
	handler.NewJobHandler(jobUC).RegisterRoutes(app)
	handler.NewApplicationHandler(applicationUC).RegisterRoutes(app)

	log.Info("server starting", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func connectDB(log *zap.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
		dbConfig.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("could not connect to database", zap.Error(err))
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatal("could not get database instance", zap.Error(err))
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	// pgvector must exist before the jobs table migrates its embedding column.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Warn("could not ensure pgvector extension", zap.Error(err))
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Warn("could not ensure uuid-ossp extension", zap.Error(err))
	}

	if err := db.AutoMigrate(&model.User{}, &model.Job{}, &model.Application{}); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	return db
}
