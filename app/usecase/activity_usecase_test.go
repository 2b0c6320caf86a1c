package usecase

import (
	"context"
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

func newTestActivityUseCase(t *testing.T) (*ActivityUseCase, *syncMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := &syncMocks{
		users:    mocks.NewMockUserRepository(ctrl),
		orgs:     mocks.NewMockOrganizationRepository(ctrl),
		provider: mocks.NewMockProviderGateway(ctrl),
	}

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewActivityUseCase(m.users, m.orgs, m.provider, testLogger), m
}

func TestListOrganizationActivity(t *testing.T) {
	t.Run("merges provider members with the mirror", func(t *testing.T) {
		uc, m := newTestActivityUseCase(t)

		org := mirroredOrganization("org_1", "greenleaf.example")
		linked := mirroredUser("user_1", "jane@greenleaf.example")

		members := []domain.ProviderMember{
			{ProviderID: "user_1", Email: "jane@greenleaf.example", FirstName: "Jane", LastName: "Doe", Role: domain.RoleAdmin, Onboarded: true},
			{ProviderID: "user_2", Email: "new@greenleaf.example", Role: domain.RoleMember},
		}

		m.orgs.EXPECT().GetByProviderID(gomock.Any(), "org_1").Return(org, nil)
		m.provider.EXPECT().ListOrganizationMembers(gomock.Any(), "org_1").Return(members, nil)
		m.users.EXPECT().GetByProviderID(gomock.Any(), "user_1").Return(linked, nil)
		m.users.EXPECT().GetByProviderID(gomock.Any(), "user_2").Return(nil, apperrors.ErrUserNotFound)

		entries, err := uc.ListOrganizationActivity(context.Background(), "org_1")

		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "Jane Doe", entries[0].Name)
		assert.True(t, entries[0].MirrorLinked)
		assert.Equal(t, linked.ID, entries[0].UserID)

		assert.False(t, entries[1].MirrorLinked)
		assert.Equal(t, uuid.Nil, entries[1].UserID)
		assert.Equal(t, "new@greenleaf.example", entries[1].Name, "email stands in when the provider has no name")
	})

	t.Run("unknown organization fails", func(t *testing.T) {
		uc, m := newTestActivityUseCase(t)

		m.orgs.EXPECT().GetByProviderID(gomock.Any(), "org_9").
			Return(nil, apperrors.ErrOrganizationNotFound)

		_, err := uc.ListOrganizationActivity(context.Background(), "org_9")

		assert.ErrorIs(t, err, apperrors.ErrOrganizationNotFound)
	})

	t.Run("mirror outage propagates", func(t *testing.T) {
		uc, m := newTestActivityUseCase(t)

		org := mirroredOrganization("org_1", "greenleaf.example")
		members := []domain.ProviderMember{{ProviderID: "user_1", Email: "jane@greenleaf.example"}}

		m.orgs.EXPECT().GetByProviderID(gomock.Any(), "org_1").Return(org, nil)
		m.provider.EXPECT().ListOrganizationMembers(gomock.Any(), "org_1").Return(members, nil)
		m.users.EXPECT().GetByProviderID(gomock.Any(), "user_1").
			Return(nil, apperrors.NewDatabaseError(assert.AnError))

		_, err := uc.ListOrganizationActivity(context.Background(), "org_1")

		assert.Error(t, err)
	})
}
