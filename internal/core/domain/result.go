package domain

// DataSource tells the caller where the data in a Result came from.
type DataSource string

const (
	SourceLive        DataSource = "live"
	SourceStale       DataSource = "stale"       // last-known-good snapshot
	SourcePlaceholder DataSource = "placeholder" // fixed sample data
)

// Result wraps read data together with its provenance. A degraded result
// still carries usable data; Err explains why the live read failed.
type Result[T any] struct {
	Data   T
	Source DataSource
	Err    error
}

// Live wraps data fetched from the authoritative store.
func Live[T any](data T) Result[T] {
	return Result[T]{Data: data, Source: SourceLive}
}

// Degraded wraps fallback data and the error that forced the fallback.
func Degraded[T any](data T, source DataSource, err error) Result[T] {
	return Result[T]{Data: data, Source: source, Err: err}
}

// IsDegraded reports whether the data did not come from a live read.
func (r Result[T]) IsDegraded() bool {
	return r.Source != SourceLive
}

// MapResult converts the data of r while keeping its provenance.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	return Result[U]{Data: fn(r.Data), Source: r.Source, Err: r.Err}
}
