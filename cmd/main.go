package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gmorandi/parlaquiz/config"
	"github.com/gmorandi/parlaquiz/database"
	"github.com/gmorandi/parlaquiz/internal/bot"
	"github.com/gmorandi/parlaquiz/internal/catalog"
	"github.com/gmorandi/parlaquiz/internal/controller"
	"github.com/gmorandi/parlaquiz/internal/logger"
	"github.com/gmorandi/parlaquiz/internal/model"
	"github.com/gmorandi/parlaquiz/internal/repository"
	"github.com/gmorandi/parlaquiz/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Italian Placement Quiz API
// @version 1.0
// @description Backend for a Telegram-driven Italian language placement test.
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewSessionRepository,
			repository.NewProgressRepository,
			repository.NewAnswerRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewScoringService,
			service.NewQuestionService,
			service.NewQuizService,
		),

		fx.Provide(
			controller.NewQuestionController,
			controller.NewAnswerController,
			bot.NewBot,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedQuestionCatalog),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	questionCtrl *controller.QuestionController,
	answerCtrl *controller.AnswerController,
	quizBot *bot.Bot,
) {
	api := router.Group("/api/v1")
	{
		api.GET("/questions", questionCtrl.GetQuestions)
		api.GET("/questions/:id", questionCtrl.GetQuestionByID)

		api.POST("/answers", answerCtrl.SubmitAnswer)
		api.POST("/answers/stats", answerCtrl.GetStats)
		api.GET("/users/:user_id/history", answerCtrl.GetUserHistory)
	}

	if quizBot.Enabled() {
		router.POST("/webhooks/telegram", quizBot.WebhookHandler())
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Placement quiz API starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Question{},
		&model.Option{},
		&model.Session{},
		&model.Progress{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedQuestionCatalog replaces the catalog with the contents of the
// questions file. An unreadable file degrades to whatever is already in
// the database (possibly nothing) instead of failing startup.
func SeedQuestionCatalog(cfg *config.Config, questionRepo repository.QuestionRepository) error {
	questions, err := catalog.Load(cfg.QuestionsFile)
	if err != nil {
		log.Error().Err(err).Str("file", cfg.QuestionsFile).Msg("Failed to load question catalog, quiz flows will degrade")
		return nil
	}

	if err := questionRepo.ReplaceAll(questions); err != nil {
		log.Error().Err(err).Msg("Failed to seed question catalog")
		return err
	}

	log.Info().Int("questions", len(questions)).Msg("Question catalog seeded")
	return nil
}
