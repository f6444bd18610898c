package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is one position in the user's practice portfolio.
type Holding struct {
	HoldingID string          `json:"id"`
	UserID    string          `json:"userId"`
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Shares    decimal.Decimal `json:"shares"`
	Value     decimal.Decimal `json:"value"`
	DayChange decimal.Decimal `json:"dayChange"`
}

// Portfolio summarises a user's holdings.
type Portfolio struct {
	TotalValue       decimal.Decimal `json:"totalValue"`
	DayChange        decimal.Decimal `json:"dayChange"`
	DayChangePercent decimal.Decimal `json:"dayChangePercent"`
	Holdings         []Holding       `json:"holdings"`
}

// Achievement is a badge earned in the learning track.
type Achievement struct {
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	EarnedAt time.Time `json:"earnedAt"`
}

// LearningProgress is the user's position in the lesson track.
type LearningProgress struct {
	UserID           string        `json:"userId"`
	Level            int           `json:"level"`
	Experience       int           `json:"experience"`
	ExperienceToNext int           `json:"experienceToNext"`
	Streak           int           `json:"streak"`
	NextLesson       string        `json:"nextLesson"`
	Achievements     []Achievement `json:"achievements"`
}

// InsightType classifies an insight card.
type InsightType string

const (
	InsightTip         InsightType = "tip"
	InsightAlert       InsightType = "alert"
	InsightOpportunity InsightType = "opportunity"
)

// InsightPriority ranks insight cards.
type InsightPriority string

const (
	PriorityLow    InsightPriority = "low"
	PriorityMedium InsightPriority = "medium"
	PriorityHigh   InsightPriority = "high"
)

// Insight is a short piece of guidance shown on the dashboard.
type Insight struct {
	InsightID   string          `json:"id"`
	UserID      string          `json:"userId"`
	Type        InsightType     `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ActionText  *string         `json:"actionText,omitempty"`
	Priority    InsightPriority `json:"priority"`
	Category    string          `json:"category"`
	// DedupeKey identifies generated insights so regeneration replaces instead of appending.
	DedupeKey string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuickStats are the headline numbers on the dashboard.
type QuickStats struct {
	MonthlySpending decimal.Decimal `json:"monthlySpending"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	NetAmount       decimal.Decimal `json:"netAmount"`
	SavingsRate     decimal.Decimal `json:"savingsRate"`
	BudgetUsage     decimal.Decimal `json:"budgetUsage"`
	PortfolioValue  decimal.Decimal `json:"portfolioValue"`
	Level           int             `json:"level"`
}

// Dashboard is the read model served to the authenticated home page. Each
// section carries its own provenance so a partial outage stays visible.
type Dashboard struct {
	Portfolio        Result[Portfolio]
	Transactions     Result[[]Transaction]
	Budgets          Result[[]Budget]
	LearningProgress Result[LearningProgress]
	Insights         Result[[]Insight]
	QuickStats       QuickStats
}
