package models

// Goal is a savings target. Progress is computed when the goal is loaded.
type Goal struct {
	Base
	UserID         string  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string  `gorm:"size:255;not null" json:"name"`
	TargetAmount   int64   `gorm:"type:bigint;not null" json:"target_amount"`
	AchievedAmount int64   `gorm:"type:bigint;not null;default:0" json:"achieved_amount"`
	Deadline       string  `gorm:"size:50" json:"deadline,omitempty"`
	Motivation     string  `json:"motivation,omitempty"`
	Progress       float64 `gorm:"-" json:"progress"`
}

// MonthlyReflection is the user's note about one month. One per user and month.
type MonthlyReflection struct {
	Base
	UserID         string `gorm:"type:uuid;not null;uniqueIndex:uq_reflection_period" json:"user_id"`
	Year           int    `gorm:"not null;uniqueIndex:uq_reflection_period" json:"year"`
	Month          int    `gorm:"not null;uniqueIndex:uq_reflection_period" json:"month"`
	MoneyFeeling   string `json:"money_feeling"`
	WhatWorked     string `json:"what_worked"`
	WhatToAdjust   string `json:"what_to_adjust"`
	EmotionalScore int    `gorm:"not null;default:5" json:"emotional_score"`
}

// MonthlyIncome is the declared income for a month. One per user and month.
type MonthlyIncome struct {
	Base
	UserID      string `gorm:"type:uuid;not null;uniqueIndex:uq_monthly_income_period" json:"user_id"`
	Year        int    `gorm:"not null;uniqueIndex:uq_monthly_income_period" json:"year"`
	Month       int    `gorm:"not null;uniqueIndex:uq_monthly_income_period" json:"month"`
	Amount      int64  `gorm:"type:bigint;not null" json:"amount"`
	Description string `json:"description,omitempty"`
}
