package domain

import "github.com/google/uuid"

// NewID returns a fresh identifier, unique with high probability across the
// lifetime of the repository. No central authority coordinates identity
// issuance, so a random token is sufficient; identifiers are opaque strings
// and never parsed.
func NewID() string {
	return uuid.NewString()
}
