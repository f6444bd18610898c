package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Holding is a row of the holdings table.
type Holding struct {
	HoldingID string          `db:"holding_id"`
	UserID    string          `db:"user_id"`
	Symbol    string          `db:"symbol"`
	Name      string          `db:"name"`
	Shares    decimal.Decimal `db:"shares"`
	Value     decimal.Decimal `db:"value"`
	DayChange decimal.Decimal `db:"day_change"`
}

// Achievement is one element of learning_progress.achievements (JSONB).
type Achievement struct {
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	EarnedAt time.Time `json:"earnedAt"`
}

// LearningProgress is a row of the learning_progress table.
type LearningProgress struct {
	UserID           string        `db:"user_id"`
	Level            int           `db:"level"`
	Experience       int           `db:"experience"`
	ExperienceToNext int           `db:"experience_to_next"`
	Streak           int           `db:"streak"`
	NextLesson       string        `db:"next_lesson"`
	Achievements     []Achievement `db:"achievements"`
}

// Insight is a row of the ai_insights table.
type Insight struct {
	InsightID   string         `db:"insight_id"`
	UserID      string         `db:"user_id"`
	Type        string         `db:"type"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	ActionText  sql.NullString `db:"action_text"`
	Priority    string         `db:"priority"`
	Category    string         `db:"category"`
	DedupeKey   sql.NullString `db:"dedupe_key"`
	CreatedAt   time.Time      `db:"created_at"`
}
