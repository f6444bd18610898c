package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/core/ledger"
)

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	Category string           `json:"category" binding:"required"`
	Limit    decimal.Decimal  `json:"limit" binding:"required,gt=0"`
	Spent    *decimal.Decimal `json:"spent"` // Optional, defaults to 0
	Color    string           `json:"color" binding:"omitempty,hexcolor"`
}

// DefaultBudgetColor is used when the client does not pick one.
const DefaultBudgetColor = "#3B82F6"

// ToDomain builds an unsaved budget owned by userID.
func (r CreateBudgetRequest) ToDomain(userID string, now time.Time) domain.Budget {
	spent := decimal.Zero
	if r.Spent != nil {
		spent = *r.Spent
	}
	color := r.Color
	if color == "" {
		color = DefaultBudgetColor
	}
	return domain.Budget{
		UserID:      userID,
		Category:    strings.TrimSpace(r.Category),
		Limit:       r.Limit,
		Spent:       spent,
		Color:       color,
		AuditFields: domain.NewAuditFields(userID, now),
	}
}

// UpdateBudgetRequest defines the data allowed for updating a budget.
type UpdateBudgetRequest struct {
	Limit *decimal.Decimal `json:"limit"`
	Spent *decimal.Decimal `json:"spent"`
	Color *string          `json:"color" binding:"omitempty,hexcolor"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateBudgetRequest) ToPatch() domain.BudgetPatch {
	return domain.BudgetPatch{Limit: r.Limit, Spent: r.Spent, Color: r.Color}
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID     string              `json:"id"`
	Category     string              `json:"category"`
	Limit        decimal.Decimal     `json:"limit"`
	Spent        decimal.Decimal     `json:"spent"`
	Color        string              `json:"color"`
	UsagePercent decimal.Decimal     `json:"usagePercent"`
	Status       domain.BudgetStatus `json:"status"`
	OverBy       decimal.Decimal     `json:"overBy"`
	LedgerSpent  decimal.Decimal     `json:"ledgerSpent"`
}

// ToBudgetResponse converts a budget report to BudgetResponse DTO
func ToBudgetResponse(r ledger.BudgetReport) BudgetResponse {
	return BudgetResponse{
		BudgetID:     r.Budget.BudgetID,
		Category:     r.Budget.Category,
		Limit:        r.Budget.Limit,
		Spent:        r.Budget.Spent,
		Color:        r.Budget.Color,
		UsagePercent: r.UsagePercent,
		Status:       r.Status,
		OverBy:       r.OverBy,
		LedgerSpent:  r.LedgerSpent,
	}
}

// ToBudgetResponses converts budget reports to DTOs
func ToBudgetResponses(reports []ledger.BudgetReport) []BudgetResponse {
	res := make([]BudgetResponse, len(reports))
	for i, r := range reports {
		res[i] = ToBudgetResponse(r)
	}
	return res
}

// ListBudgetsResponse wraps the tracked budgets and their provenance.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Provenance
}

// BudgetOverviewResponse is the overall budget bar plus each budget.
type BudgetOverviewResponse struct {
	Overall ledger.OverallUsage `json:"overall"`
	Budgets []BudgetResponse    `json:"budgets"`
	Provenance
}

// ToBudgetOverviewResponse converts an overview result into its DTO.
func ToBudgetOverviewResponse(r domain.Result[ledger.BudgetOverview]) BudgetOverviewResponse {
	return BudgetOverviewResponse{
		Overall:    r.Data.Overall,
		Budgets:    ToBudgetResponses(r.Data.Budgets),
		Provenance: ToProvenance(r),
	}
}
