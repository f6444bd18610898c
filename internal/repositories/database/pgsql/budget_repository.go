package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/svarno/svarno_backend/internal/apperrors"
	"github.com/svarno/svarno_backend/internal/core/domain"
	portsrepo "github.com/svarno/svarno_backend/internal/core/ports/repositories"
	"github.com/svarno/svarno_backend/internal/models"
	"github.com/svarno/svarno_backend/internal/utils/mapping"
)

const budgetColumns = `budget_id, user_id, category, limit_amount, spent, color,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) *PgxBudgetRepository {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.UserID,
		&m.Category,
		&m.LimitAmount,
		&m.Spent,
		&m.Color,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxBudgetRepository) ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 ORDER BY category;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for user %s: %w", userID, err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, mapping.ToDomainBudget(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}
	return budgets, nil
}

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	_, err := r.Pool.Exec(ctx, query,
		m.BudgetID,
		m.UserID,
		m.Category,
		m.LimitAmount,
		m.Spent,
		m.Color,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: a budget for category %q already exists", apperrors.ErrDuplicate, m.Category)
		}
		return fmt.Errorf("failed to save budget %s: %w", m.BudgetID, err)
	}
	return nil
}

func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, userID, budgetID string, patch domain.BudgetPatch, updatedAt time.Time) (*domain.Budget, error) {
	query := `
		UPDATE budgets SET
			limit_amount    = COALESCE($3, limit_amount),
			spent           = COALESCE($4, spent),
			color           = COALESCE($5, color),
			last_updated_at = $6,
			last_updated_by = $2
		WHERE budget_id = $1 AND user_id = $2
		RETURNING ` + budgetColumns + `;`

	m, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID, userID, patch.Limit, patch.Spent, patch.Color, updatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("budget %s: %w", budgetID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update budget %s: %w", budgetID, err)
	}
	b := mapping.ToDomainBudget(m)
	return &b, nil
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1 AND user_id = $2;`, budgetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("budget %s: %w", budgetID, apperrors.ErrNotFound)
	}
	return nil
}
