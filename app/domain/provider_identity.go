package domain

import "strings"

// Identity-provider public metadata keys. The provider treats metadata as an
// opaque JSON object; these keys are the contract this service maintains on
// every identity it touches.
const (
	MetadataOrganizationID     = "organization_id"
	MetadataOrganizationRole   = "organization_role"
	MetadataOnboardingComplete = "onboarding_complete"
	MetadataOrganizationDomain = "organization_domain"
)

// ProviderIdentity is the subset of an identity-provider identity this
// service reads and writes
type ProviderIdentity struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Metadata  map[string]interface{}
}

// OrganizationProviderID returns the provider id of the organization the
// identity belongs to, or "" when the identity has no membership
func (i *ProviderIdentity) OrganizationProviderID() string {
	v, _ := i.Metadata[MetadataOrganizationID].(string)
	return v
}

// Role returns the identity's organization role, defaulting to member when
// the metadata carries no recognizable role
func (i *ProviderIdentity) Role() MembershipRole {
	v, _ := i.Metadata[MetadataOrganizationRole].(string)
	if MembershipRole(v) == RoleAdmin {
		return RoleAdmin
	}
	return RoleMember
}

// OnboardingComplete reports whether the identity finished onboarding
func (i *ProviderIdentity) OnboardingComplete() bool {
	v, _ := i.Metadata[MetadataOnboardingComplete].(bool)
	return v
}

// MembershipMetadata builds the metadata patch that records an organization
// membership on an identity
func MembershipMetadata(orgProviderID string, role MembershipRole) map[string]interface{} {
	return map[string]interface{}{
		MetadataOrganizationID:   orgProviderID,
		MetadataOrganizationRole: string(role),
	}
}

// OnboardingMetadata builds the metadata patch that marks onboarding done
func OnboardingMetadata() map[string]interface{} {
	return map[string]interface{}{
		MetadataOnboardingComplete: true,
	}
}

// ToMember converts the identity to the member view used by activity listings
func (i *ProviderIdentity) ToMember() ProviderMember {
	return ProviderMember{
		ProviderID: i.ID,
		Email:      strings.ToLower(i.Email),
		FirstName:  i.FirstName,
		LastName:   i.LastName,
		Role:       i.Role(),
		Onboarded:  i.OnboardingComplete(),
	}
}
