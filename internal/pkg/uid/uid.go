package uid

// StringID generates string identifiers (UUIDs, correlation IDs).
type StringID interface {
	// Generate returns a new string identifier.
	Generate() string
}

// NumberID generates numeric identifiers (database primary keys).
type NumberID interface {
	// Generate returns a new numeric identifier.
	Generate() int64
}
