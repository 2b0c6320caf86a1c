package port

//go:generate mockgen -source=provider_port.go -destination=../mocks/mock_provider_port.go

import (
	"context"

	"growhub/app/domain"
)

// ProviderGateway is the write-back and query surface against the identity
// provider. Write-backs mutate provider state; failures propagate to the
// caller and are never compensated locally; recovery relies on the
// provider's webhook redelivery.
type ProviderGateway interface {
	// AddMembership records the user's membership in the organization with
	// the given role on the provider side
	AddMembership(ctx context.Context, userProviderID, orgProviderID string, role domain.MembershipRole) error

	// SetOnboardingComplete flags the user's onboarding as finished
	SetOnboardingComplete(ctx context.Context, userProviderID string) error

	// WhoAmI resolves the caller's session from a Cookie header
	WhoAmI(ctx context.Context, cookieHeader string) (*domain.ProviderSession, error)

	// ListOrganizationMembers lists the provider-side members of an
	// organization
	ListOrganizationMembers(ctx context.Context, orgProviderID string) ([]domain.ProviderMember, error)
}

// IdentityClient is the raw identity-provider API surface the gateway builds
// on. Implementations translate provider wire types into domain types and
// nothing more; membership semantics live in the gateway.
type IdentityClient interface {
	// GetIdentity fetches a single identity by provider id
	GetIdentity(ctx context.Context, identityID string) (*domain.ProviderIdentity, error)

	// PatchMetadata merges the patch into the identity's public metadata,
	// preserving keys the patch does not name
	PatchMetadata(ctx context.Context, identityID string, patch map[string]interface{}) (*domain.ProviderIdentity, error)

	// Session resolves the session behind a Cookie header
	Session(ctx context.Context, cookieHeader string) (*domain.ProviderSession, error)

	// ListIdentities returns one page of identities. A short page marks the
	// end of the listing.
	ListIdentities(ctx context.Context, page, perPage int64) ([]*domain.ProviderIdentity, error)
}
