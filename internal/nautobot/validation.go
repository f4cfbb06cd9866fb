package nautobot

import "fmt"

// Result size caps, matching the upstream tool contracts
const (
	DefaultListLimit   = 100
	MaxListLimit       = 1000
	DefaultSearchLimit = 50
	MaxSearchLimit     = 500

	// MaxQueryLength is the maximum allowed search query length
	MaxQueryLength = 500
)

// NormalizeLimit clamps a requested limit into [1, max], applying the
// default when unset.
func NormalizeLimit(limit, defaultVal, maxVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > maxVal {
		return maxVal
	}
	return limit
}

// ValidateOffset rejects negative pagination offsets.
func ValidateOffset(offset int) error {
	if offset < 0 {
		return fmt.Errorf("offset must be non-negative, got %d", offset)
	}
	return nil
}

// ValidateSearchQuery validates a free-text search query.
func ValidateSearchQuery(query string) error {
	if query == "" {
		return fmt.Errorf("search query is required")
	}
	if len(query) > MaxQueryLength {
		return fmt.Errorf("search query exceeds maximum length of %d characters", MaxQueryLength)
	}
	return nil
}

// ValidateID validates a Nautobot object identifier.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("ip_id is required")
	}
	return nil
}
