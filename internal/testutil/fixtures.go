package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"cofre/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Day returns midnight UTC of the given calendar day.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestUser creates an active user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestAdmin creates an active user holding the admin role.
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := CreateTestUser(t, db)
	if err := db.Model(user).Update("role", models.RoleAdmin).Error; err != nil {
		t.Fatalf("failed to promote test user: %v", err)
	}
	user.Role = models.RoleAdmin
	return user
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     "Test User",
		Role:     models.RoleUser,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense inserts a root expense on date with the given amount (in cents).
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, date time.Time, amount int64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Entry: models.Entry{
			UserID:      userID,
			Date:        date,
			Description: fmt.Sprintf("Test Expense %d", nextID()),
			Amount:      amount,
			Category:    "Food",
		},
		PaymentMethod: "Pix",
		Essential:     true,
		Emotion:       "Calm",
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestRecurringExpense inserts a recurring root expense.
func CreateTestRecurringExpense(t *testing.T, db *gorm.DB, userID string, date time.Time, amount int64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Entry: models.Entry{
			UserID:      userID,
			Date:        date,
			Description: fmt.Sprintf("Subscription %d", nextID()),
			Amount:      amount,
			Category:    "Services",
			Recurring:   true,
		},
		PaymentMethod: "Cartão de crédito",
		Emotion:       "Calm",
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create recurring test expense: %v", err)
	}
	return expense
}

// CreateTestIncome inserts a root income.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID string, date time.Time, amount int64, recurring bool) *models.Income {
	t.Helper()

	income := &models.Income{
		Entry: models.Entry{
			UserID:      userID,
			Date:        date,
			Description: fmt.Sprintf("Test Income %d", nextID()),
			Amount:      amount,
			Category:    "Salary",
			Recurring:   recurring,
		},
		IncomeType: "fixed",
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestGoal creates a savings goal.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string, target, achieved int64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:         userID,
		Name:           fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:   target,
		AchievedAmount: achieved,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
