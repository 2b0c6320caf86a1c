package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"growhub/app/domain"
	"growhub/app/mocks"
	apperrors "growhub/app/utils/errors"
	"growhub/app/utils/logger"
)

type syncMocks struct {
	users    *mocks.MockUserRepository
	orgs     *mocks.MockOrganizationRepository
	provider *mocks.MockProviderGateway
	dedupe   *mocks.MockEventDedupe
}

func newTestIdentitySync(t *testing.T) (*IdentitySyncUseCase, *syncMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := &syncMocks{
		users:    mocks.NewMockUserRepository(ctrl),
		orgs:     mocks.NewMockOrganizationRepository(ctrl),
		provider: mocks.NewMockProviderGateway(ctrl),
		dedupe:   mocks.NewMockEventDedupe(ctrl),
	}

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	uc := NewIdentitySyncUseCase(m.users, m.orgs, m.provider, m.dedupe, testLogger)

	return uc, m
}

func userCreatedEvent(t *testing.T, id, email string, metadata map[string]interface{}) *domain.WebhookEvent {
	t.Helper()

	payload := map[string]interface{}{
		"id": id,
		"email_addresses": []map[string]string{
			{"id": "em_1", "email_address": email},
		},
		"primary_email_address_id": "em_1",
		"first_name":               "Jane",
		"last_name":                "Doe",
		"image_url":                "https://img.example/jane.png",
	}
	if metadata != nil {
		payload["public_metadata"] = metadata
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	return &domain.WebhookEvent{Type: domain.EventUserCreated, Data: data}
}

func mirroredUser(providerID, email string) *domain.User {
	return &domain.User{
		ID:          uuid.New(),
		ProviderID:  providerID,
		Email:       email,
		Preferences: domain.DefaultPreferences(),
	}
}

func mirroredOrganization(providerID, domainName string) *domain.Organization {
	return &domain.Organization{
		ID:         uuid.New(),
		ProviderID: providerID,
		Name:       "Green Leaf Farms",
		Slug:       "green-leaf-farms",
		Domain:     domainName,
	}
}

func TestProcessEvent_DuplicateDelivery(t *testing.T) {
	uc, m := newTestIdentitySync(t)

	event := userCreatedEvent(t, "user_1", "jane@greenleaf.example", nil)

	m.dedupe.EXPECT().Begin(gomock.Any(), "msg_dup").Return(false, nil)

	err := uc.ProcessEvent(context.Background(), "msg_dup", event)

	assert.NoError(t, err, "duplicate delivery is acknowledged without side effects")
}

func TestProcessEvent_UnrecognizedType(t *testing.T) {
	uc, m := newTestIdentitySync(t)

	event := &domain.WebhookEvent{Type: "session.revoked", Data: json.RawMessage(`{}`)}

	m.dedupe.EXPECT().Begin(gomock.Any(), "msg_unknown").Return(true, nil)

	err := uc.ProcessEvent(context.Background(), "msg_unknown", event)

	assert.NoError(t, err, "unrecognized types are ignored, not failed")
}

func TestProcessEvent_DedupeUnavailable(t *testing.T) {
	uc, m := newTestIdentitySync(t)

	event := userCreatedEvent(t, "user_1", "jane@nowhere.example", nil)

	m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(false, assert.AnError)
	m.users.EXPECT().UpsertFromProvider(gomock.Any(), gomock.Any()).
		Return(mirroredUser("user_1", "jane@nowhere.example"), nil)
	m.orgs.EXPECT().GetByDomain(gomock.Any(), "nowhere.example").
		Return(nil, apperrors.ErrOrganizationNotFound)

	err := uc.ProcessEvent(context.Background(), "msg_1", event)

	assert.NoError(t, err, "dedupe outage must not drop events")
}

func TestProcessEvent_ReleasesClaimOnFailure(t *testing.T) {
	uc, m := newTestIdentitySync(t)

	event := userCreatedEvent(t, "user_1", "jane@greenleaf.example", nil)

	m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(true, nil)
	m.users.EXPECT().UpsertFromProvider(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewDatabaseError(assert.AnError))
	m.dedupe.EXPECT().Release(gomock.Any(), "msg_1").Return(nil)

	err := uc.ProcessEvent(context.Background(), "msg_1", event)

	assert.Error(t, err, "failed processing must propagate so the provider retries")
}

func TestHandleUserCreated_EmailDomainMatch(t *testing.T) {
	uc, m := newTestIdentitySync(t)

	org := mirroredOrganization("org_1", "greenleaf.example")
	event := userCreatedEvent(t, "user_1", "jane@greenleaf.example", nil)

	m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(true, nil)
	m.users.EXPECT().UpsertFromProvider(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, "user_1", user.ProviderID)
			assert.Equal(t, "jane@greenleaf.example", user.Email)
			return user, nil
		})
	m.orgs.EXPECT().GetByDomain(gomock.Any(), "greenleaf.example").Return(org, nil)
	m.provider.EXPECT().AddMembership(gomock.Any(), "user_1", "org_1", domain.RoleMember).Return(nil).Times(1)
	m.users.EXPECT().SetOrganization(gomock.Any(), "user_1", org.ID).Return(nil)
	m.provider.EXPECT().SetOnboardingComplete(gomock.Any(), "user_1").Return(nil)

	err := uc.ProcessEvent(context.Background(), "msg_1", event)

	assert.NoError(t, err)
}

func TestHandleUserCreated_NoMatchingOrganization(t *testing.T) {
	uc, m := newTestIdentitySync(t)

	event := userCreatedEvent(t, "user_1", "jane@solo.example", nil)

	m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(true, nil)
	m.users.EXPECT().UpsertFromProvider(gomock.Any(), gomock.Any()).
		Return(mirroredUser("user_1", "jane@solo.example"), nil)
	m.orgs.EXPECT().GetByDomain(gomock.Any(), "solo.example").
		Return(nil, apperrors.ErrOrganizationNotFound)

	err := uc.ProcessEvent(context.Background(), "msg_1", event)

	assert.NoError(t, err, "unmatched email domain leaves the user unlinked")
}

func TestHandleUserCreated_MetadataOverrideWins(t *testing.T) {
	uc, m := newTestIdentitySync(t)

	org := mirroredOrganization("org_2", "override.example")
	event := userCreatedEvent(t, "user_1", "jane@personal.example", map[string]interface{}{
		"organization_domain": "Override.Example ",
	})

	m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(true, nil)
	m.users.EXPECT().UpsertFromProvider(gomock.Any(), gomock.Any()).
		Return(mirroredUser("user_1", "jane@personal.example"), nil)
	m.orgs.EXPECT().GetByDomain(gomock.Any(), "override.example").Return(org, nil)
	m.provider.EXPECT().AddMembership(gomock.Any(), "user_1", "org_2", domain.RoleMember).Return(nil)
	m.users.EXPECT().SetOrganization(gomock.Any(), "user_1", org.ID).Return(nil)
	m.provider.EXPECT().SetOnboardingComplete(gomock.Any(), "user_1").Return(nil)

	err := uc.ProcessEvent(context.Background(), "msg_1", event)

	assert.NoError(t, err)
}

func TestHandleUserCreated_WriteBackFailureKeepsMirrorRow(t *testing.T) {
	uc, m := newTestIdentitySync(t)

	org := mirroredOrganization("org_1", "greenleaf.example")
	event := userCreatedEvent(t, "user_1", "jane@greenleaf.example", nil)

	m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(true, nil)
	m.users.EXPECT().UpsertFromProvider(gomock.Any(), gomock.Any()).
		Return(mirroredUser("user_1", "jane@greenleaf.example"), nil)
	m.orgs.EXPECT().GetByDomain(gomock.Any(), "greenleaf.example").Return(org, nil)
	m.provider.EXPECT().AddMembership(gomock.Any(), "user_1", "org_1", domain.RoleMember).
		Return(apperrors.NewProviderError(assert.AnError))
	m.dedupe.EXPECT().Release(gomock.Any(), "msg_1").Return(nil)

	err := uc.ProcessEvent(context.Background(), "msg_1", event)

	assert.Error(t, err)
	// No SetOrganization or SetOnboardingComplete expectations: the chain
	// stops at the failed write-back and redelivery retries the whole event.
}

func TestHandleUserCreated_MalformedPayload(t *testing.T) {
	uc, m := newTestIdentitySync(t)

	event := &domain.WebhookEvent{Type: domain.EventUserCreated, Data: json.RawMessage(`{"id":`)}

	m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(true, nil)
	m.dedupe.EXPECT().Release(gomock.Any(), "msg_1").Return(nil)

	err := uc.ProcessEvent(context.Background(), "msg_1", event)

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeMalformedEvent, appErr.Code)
}

func TestHandleUserUpdated(t *testing.T) {
	t.Run("profile update for known user", func(t *testing.T) {
		uc, m := newTestIdentitySync(t)

		event := &domain.WebhookEvent{
			Type: domain.EventUserUpdated,
			Data: json.RawMessage(`{"id":"user_1","first_name":"Janet","last_name":"Doe","image_url":"https://img.example/new.png"}`),
		}

		m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(true, nil)
		m.users.EXPECT().UpdateProfile(gomock.Any(), "user_1", "Janet", "Doe", "https://img.example/new.png").Return(nil)

		err := uc.ProcessEvent(context.Background(), "msg_1", event)

		assert.NoError(t, err)
	})

	t.Run("unknown user falls back to upsert", func(t *testing.T) {
		uc, m := newTestIdentitySync(t)

		event := &domain.WebhookEvent{
			Type: domain.EventUserUpdated,
			Data: json.RawMessage(`{"id":"user_9","first_name":"New","last_name":"Comer"}`),
		}

		m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(true, nil)
		m.users.EXPECT().UpdateProfile(gomock.Any(), "user_9", "New", "Comer", "").
			Return(apperrors.ErrUserNotFound)
		m.users.EXPECT().UpsertFromProvider(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.Equal(t, "user_9", user.ProviderID)
				return user, nil
			})

		err := uc.ProcessEvent(context.Background(), "msg_1", event)

		assert.NoError(t, err)
	})
}

func TestHandleOrganizationCreated(t *testing.T) {
	orgEvent := func(createdBy string) *domain.WebhookEvent {
		data, _ := json.Marshal(map[string]string{
			"id":         "org_1",
			"name":       "Green Leaf Farms",
			"slug":       "green-leaf-farms",
			"created_by": createdBy,
		})
		return &domain.WebhookEvent{Type: domain.EventOrganizationCreated, Data: data}
	}

	t.Run("domain derived from creator email", func(t *testing.T) {
		uc, m := newTestIdentitySync(t)

		creator := mirroredUser("user_1", "alice@example.com")

		m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(true, nil)
		m.users.EXPECT().GetByProviderID(gomock.Any(), "user_1").Return(creator, nil)
		m.orgs.EXPECT().UpsertFromProvider(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, org *domain.Organization) (*domain.Organization, error) {
				assert.Equal(t, "org_1", org.ProviderID)
				assert.Equal(t, "example.com", org.Domain)
				return org, nil
			})
		m.users.EXPECT().SetOrganization(gomock.Any(), "user_1", gomock.Any()).Return(nil)
		m.provider.EXPECT().SetOnboardingComplete(gomock.Any(), "user_1").Return(nil)

		err := uc.ProcessEvent(context.Background(), "msg_1", orgEvent("user_1"))

		assert.NoError(t, err)
	})

	t.Run("missing creator is an error", func(t *testing.T) {
		uc, m := newTestIdentitySync(t)

		m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(true, nil)
		m.dedupe.EXPECT().Release(gomock.Any(), "msg_1").Return(nil)

		err := uc.ProcessEvent(context.Background(), "msg_1", orgEvent(""))

		assert.Error(t, err)
	})

	t.Run("creator email without domain is rejected", func(t *testing.T) {
		uc, m := newTestIdentitySync(t)

		creator := mirroredUser("user_1", "")

		m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(true, nil)
		m.users.EXPECT().GetByProviderID(gomock.Any(), "user_1").Return(creator, nil)
		m.dedupe.EXPECT().Release(gomock.Any(), "msg_1").Return(nil)

		err := uc.ProcessEvent(context.Background(), "msg_1", orgEvent("user_1"))

		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeValidationFailed, appErr.Code)
	})
}

func TestHandleMembershipCreated(t *testing.T) {
	membershipEvent := &domain.WebhookEvent{
		Type: domain.EventMembershipCreated,
		Data: json.RawMessage(`{"organization":{"id":"org_1"},"public_user_data":{"user_id":"user_1"},"role":"member"}`),
	}

	t.Run("links known user to known organization", func(t *testing.T) {
		uc, m := newTestIdentitySync(t)

		user := mirroredUser("user_1", "jane@greenleaf.example")
		org := mirroredOrganization("org_1", "greenleaf.example")

		m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(true, nil)
		m.users.EXPECT().GetByProviderID(gomock.Any(), "user_1").Return(user, nil)
		m.orgs.EXPECT().GetByProviderID(gomock.Any(), "org_1").Return(org, nil)
		m.users.EXPECT().SetOrganization(gomock.Any(), "user_1", org.ID).Return(nil)

		err := uc.ProcessEvent(context.Background(), "msg_1", membershipEvent)

		assert.NoError(t, err)
	})

	t.Run("unknown user is a silent no-op", func(t *testing.T) {
		uc, m := newTestIdentitySync(t)

		m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(true, nil)
		m.users.EXPECT().GetByProviderID(gomock.Any(), "user_1").
			Return(nil, apperrors.ErrUserNotFound)

		err := uc.ProcessEvent(context.Background(), "msg_1", membershipEvent)

		assert.NoError(t, err)
	})

	t.Run("unknown organization is a silent no-op", func(t *testing.T) {
		uc, m := newTestIdentitySync(t)

		user := mirroredUser("user_1", "jane@greenleaf.example")

		m.dedupe.EXPECT().Begin(gomock.Any(), "msg_1").Return(true, nil)
		m.users.EXPECT().GetByProviderID(gomock.Any(), "user_1").Return(user, nil)
		m.orgs.EXPECT().GetByProviderID(gomock.Any(), "org_1").
			Return(nil, apperrors.ErrOrganizationNotFound)

		err := uc.ProcessEvent(context.Background(), "msg_1", membershipEvent)

		assert.NoError(t, err)
	})
}
