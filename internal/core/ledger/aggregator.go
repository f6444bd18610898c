// Package ledger derives read-time aggregates from a user's transactions and budgets.
// Nothing here is persisted; every value is recomputed from the inputs.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/svarno/svarno_backend/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// SummaryStats are the headline totals of a ledger.
type SummaryStats struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetAmount        decimal.Decimal `json:"netAmount"`
	SavingsRate      decimal.Decimal `json:"savingsRate"`
	TransactionCount int             `json:"transactionCount"`
}

// CategoryTotal is the summed expense amount of one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthlyTotals is the income and expense pair of one calendar month.
type MonthlyTotals struct {
	Year     int             `json:"year"`
	Month    time.Month      `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// Aggregator computes rollups over the entries owned by one session.
type Aggregator struct {
	session domain.Session
	entries []domain.Transaction
}

// NewAggregator keeps only the entries the session owns.
func NewAggregator(session domain.Session, entries []domain.Transaction) *Aggregator {
	owned := make([]domain.Transaction, 0, len(entries))
	for _, e := range entries {
		if session.Owns(e.UserID) {
			owned = append(owned, e)
		}
	}
	return &Aggregator{session: session, entries: owned}
}

// Entries returns the entries the aggregator works on.
func (a *Aggregator) Entries() []domain.Transaction {
	return a.entries
}

// Summary totals income and expenses. SavingsRate is 0 when there is no income.
func (a *Aggregator) Summary() SummaryStats {
	return Summarize(a.entries)
}

// Summarize computes SummaryStats over entries without an ownership filter.
func Summarize(entries []domain.Transaction) SummaryStats {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case domain.TransactionIncome:
			income = income.Add(e.Amount)
		case domain.TransactionExpense:
			expenses = expenses.Add(e.Amount)
		}
	}

	net := income.Sub(expenses)
	return SummaryStats{
		TotalIncome:      income,
		TotalExpenses:    expenses,
		NetAmount:        net,
		SavingsRate:      SavingsRate(income, expenses),
		TransactionCount: len(entries),
	}
}

// SavingsRate is (income - expenses) / income * 100, rounded to two places.
func SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income).Mul(hundred).Round(2)
}

// CategoryTotals groups categorised expenses and sorts them by amount,
// largest first. Ties keep first-seen order.
func (a *Aggregator) CategoryTotals() []CategoryTotal {
	index := map[string]int{}
	totals := []CategoryTotal{}
	for _, e := range a.entries {
		if e.Type != domain.TransactionExpense || !e.HasCategory() {
			continue
		}
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(e.Amount)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})
	return totals
}

// TopExpenseCategory returns the largest category total, if any expense exists.
func (a *Aggregator) TopExpenseCategory() (CategoryTotal, bool) {
	totals := a.CategoryTotals()
	if len(totals) == 0 {
		return CategoryTotal{}, false
	}
	return totals[0], true
}

// MonthlySpending sums |amount| of expense and sell entries dated in the given month.
func (a *Aggregator) MonthlySpending(year int, month time.Month) decimal.Decimal {
	total := decimal.Zero
	for _, e := range a.entries {
		if !e.Type.CountsAsSpending() || !inMonth(e.Date, year, month) {
			continue
		}
		total = total.Add(e.Amount.Abs())
	}
	return total
}

// MonthlyTotals returns income and expense totals for the given month.
func (a *Aggregator) MonthlyTotals(year int, month time.Month) MonthlyTotals {
	out := MonthlyTotals{Year: year, Month: month, Income: decimal.Zero, Expenses: decimal.Zero}
	for _, e := range a.entries {
		if !inMonth(e.Date, year, month) {
			continue
		}
		switch e.Type {
		case domain.TransactionIncome:
			out.Income = out.Income.Add(e.Amount)
		case domain.TransactionExpense:
			out.Expenses = out.Expenses.Add(e.Amount)
		}
	}
	return out
}

// SpentByCategory sums expense amounts per category within the given month.
func (a *Aggregator) SpentByCategory(year int, month time.Month) map[string]decimal.Decimal {
	spent := map[string]decimal.Decimal{}
	for _, e := range a.entries {
		if e.Type != domain.TransactionExpense || !e.HasCategory() || !inMonth(e.Date, year, month) {
			continue
		}
		spent[e.Category] = spent[e.Category].Add(e.Amount)
	}
	return spent
}

func inMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// MonthView is everything the monthly report needs for one calendar month.
type MonthView struct {
	MonthlyTotals
	Spending     decimal.Decimal      `json:"spending"`
	Transactions []domain.Transaction `json:"transactions"`
}

// Month collects the entries and totals of the given month.
func (a *Aggregator) Month(year int, month time.Month) MonthView {
	return MonthView{
		MonthlyTotals: a.MonthlyTotals(year, month),
		Spending:      a.MonthlySpending(year, month),
		Transactions:  InMonth(a.entries, year, month),
	}
}
