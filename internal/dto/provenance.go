package dto

import "github.com/svarno/svarno_backend/internal/core/domain"

// Provenance tells the client whether data is live or a fallback, so degraded
// reads can be shown with a banner instead of silently.
type Provenance struct {
	Source   domain.DataSource `json:"source"`
	Degraded bool              `json:"degraded"`
	Warning  string            `json:"warning,omitempty"`
}

// ToProvenance extracts the provenance of a result.
func ToProvenance[T any](r domain.Result[T]) Provenance {
	p := Provenance{Source: r.Source, Degraded: r.IsDegraded()}
	if p.Degraded {
		switch r.Source {
		case domain.SourceStale:
			p.Warning = "Showing last saved data; live data is temporarily unavailable."
		default:
			p.Warning = "Showing sample data; live data is temporarily unavailable."
		}
	}
	return p
}
