package domain

// Identity carries the caller identity supplied by upstream request headers.
// Both values are opaque strings and are trusted as-is; no verification
// happens in this service.
type Identity struct {
	UserID string
	Role   string
}

// Roles returns the caller's roles in the shape the policy oracle expects.
func (i Identity) Roles() []string {
	return []string{i.Role}
}
