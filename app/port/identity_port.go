package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"

	"github.com/google/uuid"

	"growhub/app/domain"
)

// IdentitySyncUsecase applies verified identity-provider webhook events to
// the local mirror and performs provider write-backs
type IdentitySyncUsecase interface {
	ProcessEvent(ctx context.Context, messageID string, event *domain.WebhookEvent) error
}

// UserRepository defines user mirror data access.
// Creation paths are upserts keyed on the provider id so redelivered webhook
// events are idempotent.
type UserRepository interface {
	UpsertFromProvider(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, providerID, firstName, lastName, imageURL string) error
	SetOrganization(ctx context.Context, providerID string, orgID uuid.UUID) error
	UpdatePreferences(ctx context.Context, providerID string, prefs domain.UserPreferences) error
	GetByProviderID(ctx context.Context, providerID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// OrganizationRepository defines organization mirror data access
type OrganizationRepository interface {
	UpsertFromProvider(ctx context.Context, org *domain.Organization) (*domain.Organization, error)
	GetByProviderID(ctx context.Context, providerID string) (*domain.Organization, error)
	GetByDomain(ctx context.Context, domainName string) (*domain.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Organization, error)
}

// EventDedupe absorbs at-least-once webhook redelivery. Begin claims a
// message id and reports whether this delivery is the first; Release frees
// the claim after a failed processing attempt so the provider's retry can
// run the event again.
type EventDedupe interface {
	Begin(ctx context.Context, messageID string) (fresh bool, err error)
	Release(ctx context.Context, messageID string) error
}
