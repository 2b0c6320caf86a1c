// Package gateway holds anti-corruption layers between the domain and
// external services.
package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"growhub/app/domain"
	"growhub/app/port"
)

// identities fetched per admin API page when listing members
const memberPageSize = 250

// ProviderGateway implements port.ProviderGateway over the raw identity
// client. Membership semantics live here: the provider itself only sees
// opaque metadata patches.
type ProviderGateway struct {
	identities port.IdentityClient
	logger     *slog.Logger
}

// NewProviderGateway creates a new ProviderGateway instance
func NewProviderGateway(identities port.IdentityClient, logger *slog.Logger) port.ProviderGateway {
	return &ProviderGateway{
		identities: identities,
		logger:     logger.With("component", "provider_gateway"),
	}
}

// AddMembership records the user's membership in the organization on the
// provider side
func (g *ProviderGateway) AddMembership(ctx context.Context, userProviderID, orgProviderID string, role domain.MembershipRole) error {
	g.logger.Info("adding provider membership",
		"user_provider_id", userProviderID,
		"org_provider_id", orgProviderID,
		"role", role)

	_, err := g.identities.PatchMetadata(ctx, userProviderID, domain.MembershipMetadata(orgProviderID, role))
	if err != nil {
		return fmt.Errorf("failed to add membership for %s: %w", userProviderID, err)
	}

	return nil
}

// SetOnboardingComplete flags the user's onboarding as finished
func (g *ProviderGateway) SetOnboardingComplete(ctx context.Context, userProviderID string) error {
	g.logger.Info("marking onboarding complete",
		"user_provider_id", userProviderID)

	_, err := g.identities.PatchMetadata(ctx, userProviderID, domain.OnboardingMetadata())
	if err != nil {
		return fmt.Errorf("failed to mark onboarding complete for %s: %w", userProviderID, err)
	}

	return nil
}

// WhoAmI resolves the caller's session from a Cookie header
func (g *ProviderGateway) WhoAmI(ctx context.Context, cookieHeader string) (*domain.ProviderSession, error) {
	session, err := g.identities.Session(ctx, cookieHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	return session, nil
}

// ListOrganizationMembers lists the provider-side members of an organization.
// The provider has no membership query of its own, so this pages through all
// identities and filters on the membership metadata this service maintains.
func (g *ProviderGateway) ListOrganizationMembers(ctx context.Context, orgProviderID string) ([]domain.ProviderMember, error) {
	members := make([]domain.ProviderMember, 0)

	for page := int64(1); ; page++ {
		identities, err := g.identities.ListIdentities(ctx, page, memberPageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list identities page %d: %w", page, err)
		}

		for _, identity := range identities {
			if identity.OrganizationProviderID() == orgProviderID {
				members = append(members, identity.ToMember())
			}
		}

		if int64(len(identities)) < memberPageSize {
			break
		}
	}

	g.logger.Info("listed organization members",
		"org_provider_id", orgProviderID,
		"count", len(members))

	return members, nil
}
