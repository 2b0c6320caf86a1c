package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Organization is the local mirror of an identity-provider organization.
// Domain is derived from the creator's email domain and kept for legacy
// lookups: new users whose email domain matches are auto-joined.
type Organization struct {
	ID         uuid.UUID `json:"id"`
	ProviderID string    `json:"provider_id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Domain     string    `json:"domain"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewOrganizationFromProvider builds a local Organization row from
// identity-provider data
func NewOrganizationFromProvider(providerID, name, slug, domain string) (*Organization, error) {
	if providerID == "" {
		return nil, fmt.Errorf("provider id is required")
	}
	if name == "" {
		return nil, fmt.Errorf("organization name is required")
	}
	if slug == "" {
		slug = Slugify(name)
	}
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid organization slug: %q", slug)
	}
	if domain == "" {
		return nil, fmt.Errorf("organization domain is required")
	}

	now := time.Now().UTC()

	return &Organization{
		ID:         uuid.New(),
		ProviderID: providerID,
		Name:       name,
		Slug:       slug,
		Domain:     strings.ToLower(domain),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Slugify converts a display name into a URL-safe slug
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = regexp.MustCompile(`[^a-z0-9]+`).ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// MembershipRole is the role a user holds inside an organization. Memberships
// themselves live in the identity provider; only the role enum is shared.
type MembershipRole string

const (
	RoleMember MembershipRole = "member"
	RoleAdmin  MembershipRole = "admin"
)

// IsValid reports whether the role is a known membership role
func (r MembershipRole) IsValid() bool {
	return r == RoleMember || r == RoleAdmin
}

// Membership relates a provider user to a provider organization. It is never
// persisted locally; the local mirror only records the user's single
// organization reference.
type Membership struct {
	UserProviderID         string         `json:"user_provider_id"`
	OrganizationProviderID string         `json:"organization_provider_id"`
	Role                   MembershipRole `json:"role"`
}
