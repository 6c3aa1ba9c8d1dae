package entity

// Session describes one connected storefront page.
type Session struct {
	ID       string `json:"id"`
	DeviceID string `json:"device_id"`
	UserID   string `json:"user_id"` // Empty when no identity was presented.
	Guest    bool   `json:"guest"`

	// AdminClaim is the role carried by the verified identity; nil when the identity says nothing.
	AdminClaim *bool `json:"admin_claim,omitempty"`
	// StoredAdmin is the role remembered for this device from an earlier session.
	StoredAdmin bool `json:"stored_admin"`
}

// Authenticated reports whether the session belongs to a signed-in, non-guest user.
func (s *Session) Authenticated() bool {
	return s.UserID != "" && !s.Guest
}

// IsAdmin resolves the admin role. The identity claim takes precedence; the
// stored flag only counts for a signed-in user.
func (s *Session) IsAdmin() bool {
	if s.AdminClaim != nil {
		return *s.AdminClaim
	}

	return s.StoredAdmin && s.Authenticated()
}
