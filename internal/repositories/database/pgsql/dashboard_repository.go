package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/svarno/svarno_backend/internal/apperrors"
	"github.com/svarno/svarno_backend/internal/core/domain"
	portsrepo "github.com/svarno/svarno_backend/internal/core/ports/repositories"
	"github.com/svarno/svarno_backend/internal/models"
	"github.com/svarno/svarno_backend/internal/utils/mapping"
)

type PgxDashboardRepository struct {
	BaseRepository
}

func newPgxDashboardRepository(pool *pgxpool.Pool) *PgxDashboardRepository {
	return &PgxDashboardRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DashboardRepositoryFacade = (*PgxDashboardRepository)(nil)

func (r *PgxDashboardRepository) ListHoldingsByUser(ctx context.Context, userID string) ([]domain.Holding, error) {
	query := `
		SELECT holding_id, user_id, symbol, name, shares, value, day_change
		FROM holdings
		WHERE user_id = $1
		ORDER BY value DESC, symbol;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings for user %s: %w", userID, err)
	}
	defer rows.Close()

	holdings := []domain.Holding{}
	for rows.Next() {
		var m models.Holding
		if err := rows.Scan(&m.HoldingID, &m.UserID, &m.Symbol, &m.Name, &m.Shares, &m.Value, &m.DayChange); err != nil {
			return nil, fmt.Errorf("failed to scan holding row: %w", err)
		}
		holdings = append(holdings, mapping.ToDomainHolding(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding rows: %w", err)
	}
	return holdings, nil
}

func (r *PgxDashboardRepository) FindLearningProgress(ctx context.Context, userID string) (*domain.LearningProgress, error) {
	query := `
		SELECT user_id, level, experience, experience_to_next, streak, next_lesson, achievements
		FROM learning_progress
		WHERE user_id = $1;`
	var m models.LearningProgress
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.Level,
		&m.Experience,
		&m.ExperienceToNext,
		&m.Streak,
		&m.NextLesson,
		&m.Achievements,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find learning progress for user %s: %w", userID, err)
	}
	lp := mapping.ToDomainLearningProgress(m)
	return &lp, nil
}

func (r *PgxDashboardRepository) ListInsightsByUser(ctx context.Context, userID string) ([]domain.Insight, error) {
	query := `
		SELECT insight_id, user_id, type, title, description, action_text, priority, category, dedupe_key, created_at
		FROM ai_insights
		WHERE user_id = $1
		ORDER BY CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query insights for user %s: %w", userID, err)
	}
	defer rows.Close()

	insights := []domain.Insight{}
	for rows.Next() {
		var m models.Insight
		if err := rows.Scan(&m.InsightID, &m.UserID, &m.Type, &m.Title, &m.Description,
			&m.ActionText, &m.Priority, &m.Category, &m.DedupeKey, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan insight row: %w", err)
		}
		insights = append(insights, mapping.ToDomainInsight(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating insight rows: %w", err)
	}
	return insights, nil
}

func (r *PgxDashboardRepository) UpsertInsight(ctx context.Context, insight domain.Insight) error {
	m := mapping.ToModelInsight(insight)
	query := `
		INSERT INTO ai_insights (insight_id, user_id, type, title, description, action_text, priority, category, dedupe_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, dedupe_key) DO UPDATE SET
			type = EXCLUDED.type,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			action_text = EXCLUDED.action_text,
			priority = EXCLUDED.priority,
			category = EXCLUDED.category,
			created_at = EXCLUDED.created_at;`
	_, err := r.Pool.Exec(ctx, query,
		m.InsightID,
		m.UserID,
		m.Type,
		m.Title,
		m.Description,
		m.ActionText,
		m.Priority,
		m.Category,
		m.DedupeKey,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert insight %s: %w", m.DedupeKey.String, err)
	}
	return nil
}

func (r *PgxDashboardRepository) DeleteInsightByKey(ctx context.Context, userID, dedupeKey string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM ai_insights WHERE user_id = $1 AND dedupe_key = $2;`, userID, dedupeKey); err != nil {
		return fmt.Errorf("failed to delete insight %s: %w", dedupeKey, err)
	}
	return nil
}
