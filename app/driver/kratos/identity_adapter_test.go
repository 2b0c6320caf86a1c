package kratos

import (
	"testing"

	kratosclient "github.com/ory/kratos-client-go"
	"github.com/stretchr/testify/assert"

	"growhub/app/domain"
)

func TestIdentityToDomain(t *testing.T) {
	tests := []struct {
		name     string
		identity *kratosclient.Identity
		want     *domain.ProviderIdentity
	}{
		{
			name: "full identity with name and metadata",
			identity: &kratosclient.Identity{
				Id: "identity-123",
				Traits: map[string]interface{}{
					"email": "grower@greenleaf.example",
					"name": map[string]interface{}{
						"first": "Jane",
						"last":  "Doe",
					},
				},
				MetadataPublic: map[string]interface{}{
					domain.MetadataOrganizationID:   "org_2xyz789",
					domain.MetadataOrganizationRole: "admin",
				},
			},
			want: &domain.ProviderIdentity{
				ID:        "identity-123",
				Email:     "grower@greenleaf.example",
				FirstName: "Jane",
				LastName:  "Doe",
				Metadata: map[string]interface{}{
					domain.MetadataOrganizationID:   "org_2xyz789",
					domain.MetadataOrganizationRole: "admin",
				},
			},
		},
		{
			name: "identity without traits",
			identity: &kratosclient.Identity{
				Id: "identity-456",
			},
			want: &domain.ProviderIdentity{
				ID:       "identity-456",
				Metadata: map[string]interface{}{},
			},
		},
		{
			name: "traits with unexpected shape are skipped",
			identity: &kratosclient.Identity{
				Id:     "identity-789",
				Traits: "not-a-map",
			},
			want: &domain.ProviderIdentity{
				ID:       "identity-789",
				Metadata: map[string]interface{}{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := identityToDomain(tt.identity)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetadataToMap(t *testing.T) {
	t.Run("nil metadata yields empty map", func(t *testing.T) {
		got := metadataToMap(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("map metadata is copied", func(t *testing.T) {
		original := map[string]interface{}{"onboarding_complete": true}
		got := metadataToMap(original)

		assert.Equal(t, original, got)

		got["onboarding_complete"] = false
		assert.Equal(t, true, original["onboarding_complete"])
	})
}
