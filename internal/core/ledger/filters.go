package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/svarno/svarno_backend/internal/core/domain"
)

// DefaultRecentDays is the trailing window used when none is given.
const DefaultRecentDays = 7

// SortField selects the ordering key of Query.
type SortField string

const (
	SortByDate        SortField = "date"
	SortByAmount      SortField = "amount"
	SortByDescription SortField = "description"
)

// SortOrder is ascending or descending.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// QueryOptions narrows and orders a ledger listing.
type QueryOptions struct {
	Search string                  // matched against description and category, case-insensitive
	Type   *domain.TransactionType // nil keeps all types
	SortBy SortField
	Order  SortOrder
}

// ByType keeps entries of the given type.
func ByType(entries []domain.Transaction, t domain.TransactionType) []domain.Transaction {
	return filter(entries, func(e domain.Transaction) bool { return e.Type == t })
}

// ByCategory keeps entries labelled with category.
func ByCategory(entries []domain.Transaction, category string) []domain.Transaction {
	return filter(entries, func(e domain.Transaction) bool { return e.Category == category })
}

// Recent keeps entries dated within the last days days of now. Non-positive
// days falls back to DefaultRecentDays.
func Recent(entries []domain.Transaction, days int, now time.Time) []domain.Transaction {
	if days <= 0 {
		days = DefaultRecentDays
	}
	cutoff := now.AddDate(0, 0, -days)
	return filter(entries, func(e domain.Transaction) bool { return !e.Date.Before(cutoff) })
}

// InMonth keeps entries dated in the given calendar month.
func InMonth(entries []domain.Transaction, year int, month time.Month) []domain.Transaction {
	return filter(entries, func(e domain.Transaction) bool { return inMonth(e.Date, year, month) })
}

// SortByDateDesc orders entries newest first, in place.
func SortByDateDesc(entries []domain.Transaction) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}

// Query applies search, type filter and ordering. The input is not modified.
func Query(entries []domain.Transaction, opts QueryOptions) []domain.Transaction {
	needle := strings.ToLower(strings.TrimSpace(opts.Search))
	out := filter(entries, func(e domain.Transaction) bool {
		if opts.Type != nil && e.Type != *opts.Type {
			return false
		}
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(e.Description), needle) ||
			strings.Contains(strings.ToLower(e.Category), needle)
	})

	desc := opts.Order != OrderAsc
	var less func(i, j int) bool
	switch opts.SortBy {
	case SortByAmount:
		less = func(i, j int) bool { return out[i].Amount.LessThan(out[j].Amount) }
	case SortByDescription:
		less = func(i, j int) bool {
			return strings.ToLower(out[i].Description) < strings.ToLower(out[j].Description)
		}
	default:
		less = func(i, j int) bool { return out[i].Date.Before(out[j].Date) }
	}
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(j, i)
		}
		return less(i, j)
	})
	return out
}

func filter(entries []domain.Transaction, keep func(domain.Transaction) bool) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
