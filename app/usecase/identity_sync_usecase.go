package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
)

// IdentitySyncUseCase applies verified identity-provider webhook events to the
// local mirror and performs provider write-backs. Local writes are upserts and
// the dedupe claim is released after a failed attempt, so the provider's
// at-least-once redelivery repairs partial failures instead of duplicating
// rows.
type IdentitySyncUseCase struct {
	users    port.UserRepository
	orgs     port.OrganizationRepository
	provider port.ProviderGateway
	dedupe   port.EventDedupe
	logger   *slog.Logger
}

// NewIdentitySyncUseCase creates a new IdentitySyncUseCase instance
func NewIdentitySyncUseCase(
	users port.UserRepository,
	orgs port.OrganizationRepository,
	provider port.ProviderGateway,
	dedupe port.EventDedupe,
	logger *slog.Logger,
) *IdentitySyncUseCase {
	return &IdentitySyncUseCase{
		users:    users,
		orgs:     orgs,
		provider: provider,
		dedupe:   dedupe,
		logger:   logger.With("component", "identity_sync_usecase"),
	}
}

// ProcessEvent dispatches one verified webhook delivery. Duplicate deliveries
// within the dedupe window are acknowledged without side effects. A dedupe
// store failure degrades to processing without deduplication: every write
// below is idempotent, so replays are safe, while dropping events is not.
func (uc *IdentitySyncUseCase) ProcessEvent(ctx context.Context, messageID string, event *domain.WebhookEvent) error {
	dedupeActive := true
	fresh, err := uc.dedupe.Begin(ctx, messageID)
	if err != nil {
		uc.logger.Warn("dedupe store unavailable, processing without dedupe",
			"message_id", messageID,
			"error", err)
		dedupeActive = false
		fresh = true
	}

	if !fresh {
		uc.logger.Info("skipping duplicate webhook delivery",
			"message_id", messageID,
			"event_type", event.Type)
		return nil
	}

	err = uc.dispatch(ctx, event)
	if err != nil && dedupeActive {
		if relErr := uc.dedupe.Release(ctx, messageID); relErr != nil {
			uc.logger.Error("failed to release dedupe claim",
				"message_id", messageID,
				"error", relErr)
		}
	}

	return err
}

func (uc *IdentitySyncUseCase) dispatch(ctx context.Context, event *domain.WebhookEvent) error {
	switch event.Type {
	case domain.EventUserCreated:
		return uc.handleUserCreated(ctx, event.Data)
	case domain.EventUserUpdated:
		return uc.handleUserUpdated(ctx, event.Data)
	case domain.EventOrganizationCreated:
		return uc.handleOrganizationCreated(ctx, event.Data)
	case domain.EventMembershipCreated:
		return uc.handleMembershipCreated(ctx, event.Data)
	default:
		uc.logger.Info("ignoring unrecognized event type",
			"event_type", event.Type)
		return nil
	}
}

// handleUserCreated mirrors the new user and, when a target organization can
// be resolved, links the user on both sides. The mirror row is written first
// and never rolled back: a failed write-back leaves an unlinked user that the
// provider's redelivery will link on the next attempt.
func (uc *IdentitySyncUseCase) handleUserCreated(ctx context.Context, data json.RawMessage) error {
	var payload domain.UserEventData
	if err := json.Unmarshal(data, &payload); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeMalformedEvent, "malformed user.created payload", err)
	}

	user, err := domain.NewUserFromProvider(
		payload.ID,
		payload.PrimaryEmail(),
		payload.FirstName,
		payload.LastName,
		payload.ImageURL,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeMalformedEvent, "invalid user.created payload", err)
	}

	stored, err := uc.users.UpsertFromProvider(ctx, user)
	if err != nil {
		return err
	}

	uc.logger.Info("user mirrored",
		"provider_id", stored.ProviderID,
		"email", stored.Email)

	org, err := uc.resolveTargetOrganization(ctx, &payload)
	if err != nil {
		return err
	}
	if org == nil {
		return nil
	}

	if err := uc.provider.AddMembership(ctx, payload.ID, org.ProviderID, domain.RoleMember); err != nil {
		return err
	}

	if err := uc.users.SetOrganization(ctx, payload.ID, org.ID); err != nil {
		return err
	}

	if err := uc.provider.SetOnboardingComplete(ctx, payload.ID); err != nil {
		return err
	}

	uc.logger.Info("user linked to organization",
		"provider_id", payload.ID,
		"org_provider_id", org.ProviderID)

	return nil
}

// resolveTargetOrganization picks the organization a new user should join.
// An explicit hostname in the event metadata wins; otherwise the user's email
// domain is matched against mirrored organization domains. No match means the
// user stays unlinked, which is not an error.
func (uc *IdentitySyncUseCase) resolveTargetOrganization(ctx context.Context, payload *domain.UserEventData) (*domain.Organization, error) {
	domainName := payload.OrganizationDomainOverride()
	if domainName == "" {
		email := payload.PrimaryEmail()
		if email == "" {
			return nil, nil
		}
		var err error
		domainName, err = domain.EmailDomain(email)
		if err != nil {
			return nil, nil
		}
	}

	org, err := uc.orgs.GetByDomain(ctx, domainName)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return org, nil
}

// handleUserUpdated refreshes the mirrored profile. A miss falls back to an
// upsert so an out-of-order or dropped user.created delivery does not wedge
// profile updates forever.
func (uc *IdentitySyncUseCase) handleUserUpdated(ctx context.Context, data json.RawMessage) error {
	var payload domain.UserEventData
	if err := json.Unmarshal(data, &payload); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeMalformedEvent, "malformed user.updated payload", err)
	}
	if payload.ID == "" {
		return apperrors.New(apperrors.ErrCodeMalformedEvent, "user.updated payload has no user id")
	}

	err := uc.users.UpdateProfile(ctx, payload.ID, payload.FirstName, payload.LastName, payload.ImageURL)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	uc.logger.Warn("user.updated for unknown user, mirroring from event",
		"provider_id", payload.ID)

	user, err := domain.NewUserFromProvider(
		payload.ID,
		payload.PrimaryEmail(),
		payload.FirstName,
		payload.LastName,
		payload.ImageURL,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeMalformedEvent, "invalid user.updated payload", err)
	}

	_, err = uc.users.UpsertFromProvider(ctx, user)
	return err
}

// handleOrganizationCreated mirrors the organization with its domain derived
// from the creator's email, then links the creator and marks their onboarding
// complete on the provider side.
func (uc *IdentitySyncUseCase) handleOrganizationCreated(ctx context.Context, data json.RawMessage) error {
	var payload domain.OrganizationEventData
	if err := json.Unmarshal(data, &payload); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeMalformedEvent, "malformed organization.created payload", err)
	}
	if payload.CreatedBy == "" {
		return fmt.Errorf("organization.created event %s has no creator", payload.ID)
	}

	creator, err := uc.users.GetByProviderID(ctx, payload.CreatedBy)
	if err != nil {
		return fmt.Errorf("organization creator lookup failed: %w", err)
	}

	domainName, err := domain.EmailDomain(creator.Email)
	if err != nil {
		return apperrors.NewValidationError(
			fmt.Sprintf("creator %s has no usable email domain", payload.CreatedBy))
	}

	org, err := domain.NewOrganizationFromProvider(payload.ID, payload.Name, payload.Slug, domainName)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeMalformedEvent, "invalid organization.created payload", err)
	}

	stored, err := uc.orgs.UpsertFromProvider(ctx, org)
	if err != nil {
		return err
	}

	uc.logger.Info("organization mirrored",
		"provider_id", stored.ProviderID,
		"slug", stored.Slug,
		"domain", stored.Domain)

	if err := uc.users.SetOrganization(ctx, payload.CreatedBy, stored.ID); err != nil {
		return err
	}

	if err := uc.provider.SetOnboardingComplete(ctx, payload.CreatedBy); err != nil {
		return err
	}

	return nil
}

// handleMembershipCreated sets the local organization reference for a
// membership the provider already holds. Either side missing from the mirror
// is a silent no-op; the regular creation events will converge the state.
func (uc *IdentitySyncUseCase) handleMembershipCreated(ctx context.Context, data json.RawMessage) error {
	var payload domain.MembershipEventData
	if err := json.Unmarshal(data, &payload); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeMalformedEvent, "malformed organizationMembership.created payload", err)
	}

	user, err := uc.users.GetByProviderID(ctx, payload.PublicUserData.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			uc.logger.Info("membership for unknown user, skipping",
				"user_provider_id", payload.PublicUserData.UserID)
			return nil
		}
		return err
	}

	org, err := uc.orgs.GetByProviderID(ctx, payload.Organization.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			uc.logger.Info("membership for unknown organization, skipping",
				"org_provider_id", payload.Organization.ID)
			return nil
		}
		return err
	}

	return uc.users.SetOrganization(ctx, user.ProviderID, org.ID)
}
