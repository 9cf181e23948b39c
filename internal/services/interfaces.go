package services

import (
	"context"
	"time"

	"cofre/internal/dates"
	"cofre/internal/ledger"
	"cofre/internal/models"
	"cofre/internal/pagination"
	"cofre/internal/report"
)

// UserServicer defines the contract for account and credential management.
type UserServicer interface {
	CreateUser(ctx context.Context, name, email, password string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(ctx context.Context, email, password string) (*models.User, error)
	StoreRefreshTokenHash(ctx context.Context, userID, tokenHash string) error
	GetRefreshTokenHash(ctx context.Context, userID string) (string, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// ExpenseDraft carries the fields of a new expense before it is split or stored.
type ExpenseDraft struct {
	Date          time.Time
	Description   string
	Amount        int64
	Category      string
	Subcategory   string
	PaymentMethod string
	Essential     bool
	Emotion       string
	Note          string
	Recurring     bool
}

// ExpenseUpdate lists the expense fields a caller may change. Nil fields are left as is.
type ExpenseUpdate struct {
	Date          *time.Time
	Description   *string
	Amount        *int64
	Category      *string
	Subcategory   *string
	PaymentMethod *string
	Essential     *bool
	Emotion       *string
	Note          *string
	Recurring     *bool
}

// ExpenseServicer defines the contract for the expense ledger, including
// installment groups.
type ExpenseServicer interface {
	CreateInstallmentGroup(ctx context.Context, userID string, draft ExpenseDraft, count int) ([]models.Expense, error)
	ListExpenses(ctx context.Context, userID string, filter ledger.Filter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	ListInstallments(ctx context.Context, userID string) ([]models.Expense, error)
	ListFutureExpenses(ctx context.Context, userID string, period *dates.Period) ([]models.Expense, error)
	GetExpense(ctx context.Context, userID, id string) (*models.Expense, error)
	UpdateExpense(ctx context.Context, userID, id string, upd ExpenseUpdate) (*models.Expense, error)
	DeleteExpense(ctx context.Context, userID, id string) (int64, error)
}

// IncomeDraft carries the fields of a new income.
type IncomeDraft struct {
	Date        time.Time
	Description string
	Amount      int64
	Category    string
	Subcategory string
	IncomeType  string
	Note        string
	Recurring   bool
}

// IncomeUpdate lists the income fields a caller may change. Nil fields are left as is.
type IncomeUpdate struct {
	Date        *time.Time
	Description *string
	Amount      *int64
	Category    *string
	Subcategory *string
	IncomeType  *string
	Note        *string
	Recurring   *bool
}

// IncomeServicer defines the contract for the income ledger.
type IncomeServicer interface {
	CreateIncome(ctx context.Context, userID string, draft IncomeDraft) (*models.Income, error)
	ListIncomes(ctx context.Context, userID string, filter ledger.Filter, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
	GetIncome(ctx context.Context, userID, id string) (*models.Income, error)
	UpdateIncome(ctx context.Context, userID, id string, upd IncomeUpdate) (*models.Income, error)
	DeleteIncome(ctx context.Context, userID, id string) (int64, error)
	SummarizeIncomes(ctx context.Context, userID string, period dates.Period) (*report.IncomeSummary, error)
}

// LedgerKind names one of the two ledgers.
type LedgerKind string

const (
	KindExpense LedgerKind = "expense"
	KindIncome  LedgerKind = "income"
)

// AdvanceResult reports one owner's recurrence run.
type AdvanceResult struct {
	UserID  string       `json:"user_id"`
	Period  dates.Period `json:"period"`
	Created int          `json:"created"`
	Skipped int          `json:"skipped"`
	Failed  int          `json:"failed"`
}

// BatchResult aggregates a run across owners.
type BatchResult struct {
	Period       dates.Period `json:"period"`
	Owners       int          `json:"owners"`
	Created      int          `json:"created"`
	Skipped      int          `json:"skipped"`
	Failed       int          `json:"failed"`
	FailedOwners []string     `json:"failed_owners"`
}

// RecurringEntries lists the recurring roots of both ledgers.
type RecurringEntries struct {
	Expenses []models.Expense `json:"expenses"`
	Incomes  []models.Income  `json:"incomes"`
}

// RecurrenceServicer defines the contract for materializing recurring entries.
type RecurrenceServicer interface {
	Advance(ctx context.Context, userID string, ref *dates.Period) (*AdvanceResult, error)
	AdvanceAll(ctx context.Context, ref *dates.Period, concurrency int) (*BatchResult, error)
	ListRecurring(ctx context.Context, userID string) (*RecurringEntries, error)
	StopRecurring(ctx context.Context, userID string, kind LedgerKind, id string) error
}

// DashboardServicer defines the contract for monthly and yearly reporting.
type DashboardServicer interface {
	SummarizePeriod(ctx context.Context, userID string, period dates.Period) (*report.Summary, error)
	Health(ctx context.Context, userID string, period dates.Period) (*report.Health, error)
	Indicators(ctx context.Context, userID string, period dates.Period) (*report.Indicators, error)
	Annual(ctx context.Context, userID string, year int) (*report.AnnualOverview, error)
}

// ForecastItem is a persisted future entry or a projection of a recurring root.
type ForecastItem struct {
	Kind        LedgerKind `json:"kind"`
	SourceID    string     `json:"source_id"`
	Description string     `json:"description"`
	Category    string     `json:"category,omitempty"`
	Amount      int64      `json:"amount"`
	Date        time.Time  `json:"date"`
	Projected   bool       `json:"projected"`
}

// Forecast lists upcoming entries within a window.
type Forecast struct {
	From         time.Time      `json:"from"`
	To           time.Time      `json:"to"`
	Items        []ForecastItem `json:"items"`
	ExpenseTotal int64          `json:"expense_total"`
	IncomeTotal  int64          `json:"income_total"`
	Balance      int64          `json:"balance"`
}

// ForecastServicer defines the contract for future projections.
type ForecastServicer interface {
	Upcoming(ctx context.Context, userID string, months int) (*Forecast, error)
}

// GoalInput carries the fields of a new goal.
type GoalInput struct {
	Name           string
	TargetAmount   int64
	AchievedAmount int64
	Deadline       string
	Motivation     string
}

// GoalUpdate lists the goal fields a caller may change.
type GoalUpdate struct {
	Name           *string
	TargetAmount   *int64
	AchievedAmount *int64
	Deadline       *string
	Motivation     *string
}

// GoalServicer defines the contract for savings goals.
type GoalServicer interface {
	CreateGoal(ctx context.Context, userID string, in GoalInput) (*models.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]models.Goal, error)
	GetGoal(ctx context.Context, userID, id string) (*models.Goal, error)
	UpdateGoal(ctx context.Context, userID, id string, upd GoalUpdate) (*models.Goal, error)
	DeleteGoal(ctx context.Context, userID, id string) error
}

// ReflectionInput carries a monthly reflection. A zero score means the default.
type ReflectionInput struct {
	Period         dates.Period
	MoneyFeeling   string
	WhatWorked     string
	WhatToAdjust   string
	EmotionalScore int
}

// ReflectionServicer defines the contract for monthly reflections.
type ReflectionServicer interface {
	UpsertReflection(ctx context.Context, userID string, in ReflectionInput) (*models.MonthlyReflection, error)
	ListReflections(ctx context.Context, userID string) ([]models.MonthlyReflection, error)
	GetReflection(ctx context.Context, userID string, period dates.Period) (*models.MonthlyReflection, error)
	DeleteReflection(ctx context.Context, userID, id string) error
}

// MonthlyIncomeServicer defines the contract for declared monthly income.
type MonthlyIncomeServicer interface {
	UpsertMonthlyIncome(ctx context.Context, userID string, period dates.Period, amount int64, description string) (*models.MonthlyIncome, error)
	GetMonthlyIncome(ctx context.Context, userID string, period dates.Period) (*models.MonthlyIncome, error)
	ListMonthlyIncomes(ctx context.Context, userID string, year int) ([]models.MonthlyIncome, error)
}

// UserStats summarizes the user base.
type UserStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Admins   int64 `json:"admins"`
	NewToday int64 `json:"new_today"`
}

// UserListing is one page of users plus global stats.
type UserListing struct {
	Users pagination.PageResponse[models.User] `json:"users"`
	Stats UserStats                            `json:"stats"`
}

// SignupBucket counts registrations in one month.
type SignupBucket struct {
	Period dates.Period `json:"period"`
	Count  int64        `json:"count"`
}

// AdminDashboard is the administrative overview.
type AdminDashboard struct {
	Stats          UserStats      `json:"stats"`
	ActivationRate float64        `json:"activation_rate"`
	Signups        []SignupBucket `json:"signups"`
}

// AdminServicer defines the contract for user administration.
type AdminServicer interface {
	ListUsers(ctx context.Context, page pagination.PageRequest) (*UserListing, error)
	ToggleActive(ctx context.Context, actorID, userID string) (*models.User, error)
	SetRole(ctx context.Context, actorID, userID string, role models.Role) (*models.User, error)
	DeleteUser(ctx context.Context, actorID, userID string) error
	Dashboard(ctx context.Context) (*AdminDashboard, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
