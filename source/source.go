// Package source defines the domain models and interfaces for catch-up media extraction.
package source

import "context"

// Source resolves one shape of catalog URL.
type Source interface {
	// Name returns the human readable extractor name.
	Name() string

	// ID returns the unique identifier of the source.
	ID() string

	// Extract resolves url into a single record or a playlist of records.
	Extract(ctx context.Context, url string) (*Result, error)
}
