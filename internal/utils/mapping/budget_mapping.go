package mapping

import (
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		UserID:      d.UserID,
		Category:    d.Category,
		LimitAmount: d.Limit,
		Spent:       d.Spent,
		Color:       d.Color,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a model Budget to a domain Budget
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:    m.BudgetID,
		UserID:      m.UserID,
		Category:    m.Category,
		Limit:       m.LimitAmount,
		Spent:       m.Spent,
		Color:       m.Color,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
