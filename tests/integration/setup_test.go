package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cofre/internal/config"
	"cofre/internal/database"
	"cofre/internal/events"
	"cofre/internal/handlers"
	"cofre/internal/logger"
	"cofre/internal/middleware"
	"cofre/internal/services"
	"cofre/internal/validator"
)

const (
	adminEmail  = "admin@test.com"
	pipelineKey = "integration-pipeline-key"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Events *events.Recorder
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	config.Set(&config.Config{JWTSecret: "integration-secret", JWTExpirationDur: time.Hour})
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	manager, err := database.NewManager(&database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := manager.RunMigrations(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { _ = manager.Close() })

	return manager.DB()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	recorder := &events.Recorder{}

	// Services
	userService := services.NewUserService(db, services.WithAdminEmails(adminEmail))
	auditService := services.NewAuditService(db)
	expenseService := services.NewExpenseService(db, recorder)
	incomeService := services.NewIncomeService(db)
	recurrenceService := services.NewRecurrenceService(db, recorder)
	dashboardService := services.NewDashboardService(db)
	forecastService := services.NewForecastService(db)
	goalService := services.NewGoalService(db)
	reflectionService := services.NewReflectionService(db)
	monthlyIncomeService := services.NewMonthlyIncomeService(db)
	adminService := services.NewAdminService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService, true)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	incomeHandler := handlers.NewIncomeHandler(incomeService, auditService)
	recurrenceHandler := handlers.NewRecurrenceHandler(recurrenceService, auditService, 2)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, forecastService)
	goalHandler := handlers.NewGoalHandler(goalService)
	planningHandler := handlers.NewPlanningHandler(reflectionService, monthlyIncomeService)
	adminHandler := handlers.NewAdminHandler(adminService, auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/session", authHandler.Session)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(pipelineKey))
	pipeline.POST("/recurrence/advance", recurrenceHandler.AdvanceAll)

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

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin(userService))
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/toggle-active", adminHandler.ToggleActive)
	admin.PATCH("/users/:id/role", adminHandler.SetRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/dashboard", adminHandler.GetDashboard)

	return &testApp{DB: db, Router: router, Events: recorder}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// pipelineRequest makes a request authenticated with the scheduler key.
func (app *testApp) pipelineRequest(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("X-API-Key", pipelineKey)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// mustStatus fails the test when rec does not carry the expected status.
func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

// errorCode extracts error.code from an error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"name":"Test User","email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// createExpense posts an expense and returns every stored row.
func (app *testApp) createExpense(t *testing.T, token, body string) []interface{} {
	t.Helper()
	rec := app.request("POST", "/api/v1/expenses", body, token)
	mustStatus(t, rec, http.StatusCreated)
	return parseJSON(t, rec)["expenses"].([]interface{})
}
