package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cofre/internal/config"
	"cofre/internal/database"
	"cofre/internal/events"
	"cofre/internal/handlers"
	"cofre/internal/logger"
	"cofre/internal/middleware"
	"cofre/internal/services"
	"cofre/internal/validator"

	_ "cofre/internal/docs" // Import swagger docs
)

// @title           Cofre API
// @version         1.0
// @description     Cofre is a personal finance application: expenses with installments, recurring entries, incomes, goals and monthly reports.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey PipelineKey
// @in header
// @name X-API-Key
// @description Shared key of the scheduler.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	publisher, err := events.Connect(appConfig.AMQPURL, appConfig.AMQPExchange, appConfig.AMQPRoutingKey)
	if err != nil {
		return fmt.Errorf("failed to connect event publisher: %w", err)
	}
	defer publisher.Close()

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db,
		services.WithAdminEmails(appConfig.AdminEmails...),
		services.WithResetTokenTTL(appConfig.ResetTokenTTL),
	)
	auditService := services.NewAuditService(db)
	expenseService := services.NewExpenseService(db, publisher)
	incomeService := services.NewIncomeService(db)
	recurrenceService := services.NewRecurrenceService(db, publisher)
	dashboardService := services.NewDashboardService(db)
	forecastService := services.NewForecastService(db)
	goalService := services.NewGoalService(db)
	reflectionService := services.NewReflectionService(db)
	monthlyIncomeService := services.NewMonthlyIncomeService(db)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService, appConfig.ExposeResetToken)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	incomeHandler := handlers.NewIncomeHandler(incomeService, auditService)
	recurrenceHandler := handlers.NewRecurrenceHandler(recurrenceService, auditService, appConfig.WorkerConcurrency)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, forecastService)
	goalHandler := handlers.NewGoalHandler(goalService)
	planningHandler := handlers.NewPlanningHandler(reflectionService, monthlyIncomeService)
	adminHandler := handlers.NewAdminHandler(adminService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/session", authHandler.Session)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	// Scheduler routes
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(appConfig.PipelineAPIKey))
	pipeline.POST("/recurrence/advance", recurrenceHandler.AdvanceAll)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(), middleware.RequireActive(userService))

	protected.GET("/profile", authHandler.GetProfile)
	protected.POST("/auth/logout", authHandler.Logout)

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/installments", expenseHandler.GetInstallments)
	expenses.GET("/future", expenseHandler.GetFutureExpenses)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	incomes := protected.Group("/incomes")
	incomes.POST("", incomeHandler.CreateIncome)
	incomes.GET("", incomeHandler.GetIncomes)
	incomes.GET("/summary", incomeHandler.GetIncomeSummary)
	incomes.GET("/:id", incomeHandler.GetIncome)
	incomes.PUT("/:id", incomeHandler.UpdateIncome)
	incomes.DELETE("/:id", incomeHandler.DeleteIncome)

	recurring := protected.Group("/recurring")
	recurring.GET("", recurrenceHandler.ListRecurring)
	recurring.POST("/advance", recurrenceHandler.Advance)
	recurring.POST("/:id/stop", recurrenceHandler.StopRecurring)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/health", dashboardHandler.GetHealth)
	dashboard.GET("/indicators", dashboardHandler.GetIndicators)
	dashboard.GET("/annual", dashboardHandler.GetAnnual)
	dashboard.GET("/forecast", dashboardHandler.GetForecast)

	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	reflections := protected.Group("/reflections")
	reflections.PUT("", planningHandler.SaveReflection)
	reflections.GET("", planningHandler.GetReflections)
	reflections.GET("/:period", planningHandler.GetReflection)
	reflections.DELETE("/id/:id", planningHandler.DeleteReflection)

	monthlyIncome := protected.Group("/monthly-income")
	monthlyIncome.PUT("", planningHandler.SaveMonthlyIncome)
	monthlyIncome.GET("", planningHandler.GetMonthlyIncome)
	monthlyIncome.GET("/year", planningHandler.GetMonthlyIncomes)

	// Admin routes
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin(userService))
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/toggle-active", adminHandler.ToggleActive)
	admin.PATCH("/users/:id/role", adminHandler.SetRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/dashboard", adminHandler.GetDashboard)

	log.Infof("Starting Cofre backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
