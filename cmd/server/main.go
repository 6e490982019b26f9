package main

import (
	"log"

	"github.com/elham715/Exam-System/internal/config"
	"github.com/elham715/Exam-System/internal/database"
	"github.com/elham715/Exam-System/internal/handlers"
	"github.com/elham715/Exam-System/internal/middleware"
	"github.com/elham715/Exam-System/internal/services"
	"github.com/elham715/Exam-System/internal/ws"

	_ "github.com/elham715/Exam-System/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Exam System API
// @version         1.0
// @description     API for composing, delivering and grading timed multiple-choice exams
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	bankService := services.NewQuestionBankService(db)
	examService := services.NewExamService(db)
	gradingService := services.NewGradingService()
	attemptService := services.NewAttemptService(db, gradingService, hub)
	resultsService := services.NewResultsService(db)

	authHandler := handlers.NewAuthHandler(authService)
	questionSetHandler := handlers.NewQuestionSetHandler(bankService)
	questionHandler := handlers.NewQuestionHandler(bankService, cfg.UploadDir)
	chapterHandler := handlers.NewChapterHandler(bankService)
	examHandler := handlers.NewExamHandler(examService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)
	resultsHandler := handlers.NewResultsHandler(resultsService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.AccessGate(authService, middleware.AdminPrefixes))

	r.Static("/uploads", cfg.UploadDir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/attempt/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		admin := api.Group("/admin")
		{
			admin.GET("/question-sets", questionSetHandler.ListQuestionSets)
			admin.POST("/question-sets", questionSetHandler.CreateQuestionSet)
			admin.GET("/question-sets/:id", questionSetHandler.GetQuestionSet)
			admin.DELETE("/question-sets/:id", questionSetHandler.DeleteQuestionSet)
			admin.POST("/question-sets/:id/questions", questionHandler.CreateQuestion)
			admin.DELETE("/questions/:id", questionHandler.DeleteQuestion)

			admin.GET("/chapters", chapterHandler.ListChapters)
			admin.POST("/chapters", chapterHandler.CreateChapter)
			admin.GET("/chapters/:id/topics", chapterHandler.ListTopics)
			admin.POST("/chapters/:id/topics", chapterHandler.CreateTopic)
			admin.PUT("/topics/:id", chapterHandler.UpdateTopic)

			admin.GET("/exams", examHandler.ListExams)
			admin.POST("/exams", examHandler.ComposeExam)
			admin.GET("/exams/:id", examHandler.GetExam)
			admin.DELETE("/exams/:id", examHandler.DeleteExam)

			admin.POST("/upload", questionHandler.UploadImage)
		}

		exams := api.Group("/exams")
		{
			exams.GET("/:id/take", attemptHandler.TakeExam)
			exams.POST("/:id/start", attemptHandler.StartAttempt)
		}

		attempts := api.Group("/attempts")
		{
			attempts.POST("/:id/submit", attemptHandler.SubmitAttempt)
			attempts.GET("/:id/results", resultsHandler.GetResults)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
