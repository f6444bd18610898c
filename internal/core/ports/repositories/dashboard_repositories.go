package repositories

import (
	"context"

	"github.com/svarno/svarno_backend/internal/core/domain"
)

// HoldingReader reads the practice portfolio.
type HoldingReader interface {
	ListHoldingsByUser(ctx context.Context, userID string) ([]domain.Holding, error)
}

// LearningProgressReader reads the lesson track position.
type LearningProgressReader interface {
	// FindLearningProgress returns apperrors.ErrNotFound when the user has no progress row.
	FindLearningProgress(ctx context.Context, userID string) (*domain.LearningProgress, error)
}

// InsightRepository reads and writes insight cards.
type InsightRepository interface {
	ListInsightsByUser(ctx context.Context, userID string) ([]domain.Insight, error)
	// UpsertInsight replaces any insight with the same (userID, DedupeKey).
	UpsertInsight(ctx context.Context, insight domain.Insight) error
	// DeleteInsightByKey removes a generated insight that no longer applies.
	DeleteInsightByKey(ctx context.Context, userID, dedupeKey string) error
}

// DashboardRepositoryFacade combines the read models behind the dashboard
type DashboardRepositoryFacade interface {
	HoldingReader
	LearningProgressReader
	InsightRepository
}
