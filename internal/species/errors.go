// internal/species/errors.go
package species

import "fmt"

// NoMatchError means fuzzy search produced no candidate at or above the
// cutoff for the given input.
type NoMatchError struct {
	Input string
}

func (e *NoMatchError) Error() string { return fmt.Sprintf("species: no match for %q", e.Input) }

// CacheRefreshError wraps any failure to rebuild or read the organism cache.
// Callers never get silently stale data instead of this error.
type CacheRefreshError struct {
	Err error
}

func (e *CacheRefreshError) Error() string { return fmt.Sprintf("species: cache refresh: %v", e.Err) }
func (e *CacheRefreshError) Unwrap() error { return e.Err }
