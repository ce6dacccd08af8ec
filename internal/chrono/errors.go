package chrono

import "errors"

var (
	// ErrInvalidEnumValue is returned when a value is outside its closed domain.
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrInvalidProfile is returned by Profile.Validate for malformed input.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrMissingTableEntry is returned when a knowledge table has no row for a key.
	// Only reachable when validation was skipped.
	ErrMissingTableEntry = errors.New("missing table entry")
)
