package domain

import "fmt"

// InputValidationError reports a request that failed validation before any
// computation ran. Field names the offending input so the caller can fix it.
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// ReferenceDataError reports missing reference data that cannot be defaulted:
// a capital market assumption absent for an asset class carrying nonzero
// weight. Missing correlation pairs are NOT errors; they default to 0.
type ReferenceDataError struct {
	AssetClass AssetClass
	Missing    string
}

func (e *ReferenceDataError) Error() string {
	return fmt.Sprintf("missing %s for asset class %q", e.Missing, e.AssetClass)
}
