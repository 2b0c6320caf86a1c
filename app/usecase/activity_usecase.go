package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
)

// mirrorLookupConcurrency bounds parallel mirror lookups per listing call
const mirrorLookupConcurrency = 8

// ActivityUseCase merges the identity provider's membership view with the
// local user mirror for the admin activity listing
type ActivityUseCase struct {
	users    port.UserRepository
	orgs     port.OrganizationRepository
	provider port.ProviderGateway
	logger   *slog.Logger
}

// NewActivityUseCase creates a new ActivityUseCase instance
func NewActivityUseCase(
	users port.UserRepository,
	orgs port.OrganizationRepository,
	provider port.ProviderGateway,
	logger *slog.Logger,
) *ActivityUseCase {
	return &ActivityUseCase{
		users:    users,
		orgs:     orgs,
		provider: provider,
		logger:   logger.With(slog.String("component", "activity_usecase")),
	}
}

// ListOrganizationActivity lists the organization's members as the provider
// reports them, annotated with whether and when the local mirror saw each one.
// Members the mirror never saw still appear, with MirrorLinked false.
func (uc *ActivityUseCase) ListOrganizationActivity(ctx context.Context, orgProviderID string) ([]domain.ActivityEntry, error) {
	if _, err := uc.orgs.GetByProviderID(ctx, orgProviderID); err != nil {
		return nil, err
	}

	members, err := uc.provider.ListOrganizationMembers(ctx, orgProviderID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ActivityEntry, len(members))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(mirrorLookupConcurrency)

	var mu sync.Mutex
	missing := 0

	for i, member := range members {
		g.Go(func() error {
			entry := domain.ActivityEntry{
				ProviderID: member.ProviderID,
				Email:      member.Email,
				Name:       memberName(member),
				Role:       member.Role,
				Onboarded:  member.Onboarded,
			}

			user, err := uc.users.GetByProviderID(gctx, member.ProviderID)
			switch {
			case err == nil:
				entry.UserID = user.ID
				entry.MirrorLinked = true
				entry.LastUpdatedAt = user.UpdatedAt
			case errors.Is(err, apperrors.ErrUserNotFound):
				mu.Lock()
				missing++
				mu.Unlock()
			default:
				return err
			}

			entries[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if missing > 0 {
		uc.logger.Warn("provider reports members the mirror has not seen",
			slog.String("organization_provider_id", orgProviderID),
			slog.Int("missing", missing))
	}

	return entries, nil
}

func memberName(m domain.ProviderMember) string {
	name := m.FirstName
	if m.LastName != "" {
		if name != "" {
			name += " "
		}
		name += m.LastName
	}
	if name == "" {
		return m.Email
	}
	return name
}
