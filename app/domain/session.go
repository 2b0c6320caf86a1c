package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProviderSession is the subset of the identity provider's session this
// service cares about, resolved from the caller's session cookie
type ProviderSession struct {
	SessionID  string         `json:"session_id"`
	IdentityID string         `json:"identity_id"`
	Email      string         `json:"email"`
	Role       MembershipRole `json:"role"`
	Active     bool           `json:"active"`
	ExpiresAt  time.Time      `json:"expires_at"`
}

// IsAdmin reports whether the session belongs to an organization admin
func (s *ProviderSession) IsAdmin() bool {
	return s.Active && s.Role == RoleAdmin
}

// ProviderMember is one organization member as reported by the identity
// provider's admin API
type ProviderMember struct {
	ProviderID string         `json:"provider_id"`
	Email      string         `json:"email"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Role       MembershipRole `json:"role"`
	Onboarded  bool           `json:"onboarded"`
}

// ActivityEntry is one row of the admin activity listing, merging the
// provider's membership view with the local user mirror
type ActivityEntry struct {
	UserID        uuid.UUID      `json:"user_id"`
	ProviderID    string         `json:"provider_id"`
	Email         string         `json:"email"`
	Name          string         `json:"name"`
	Role          MembershipRole `json:"role"`
	Onboarded     bool           `json:"onboarded"`
	MirrorLinked  bool           `json:"mirror_linked"`
	LastUpdatedAt time.Time      `json:"last_updated_at"`
}
