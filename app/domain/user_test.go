package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserFromProvider(t *testing.T) {
	tests := []struct {
		name       string
		providerID string
		email      string
		firstName  string
		lastName   string
		expectErr  bool
	}{
		{
			name:       "valid user",
			providerID: "user_2abc",
			email:      "alice@example.com",
			firstName:  "Alice",
			lastName:   "Nguyen",
			expectErr:  false,
		},
		{
			name:       "empty email is allowed",
			providerID: "user_2abc",
			email:      "",
			expectErr:  false,
		},
		{
			name:       "missing provider id",
			providerID: "",
			email:      "alice@example.com",
			expectErr:  true,
		},
		{
			name:       "invalid email format",
			providerID: "user_2abc",
			email:      "not-an-email",
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUserFromProvider(tt.providerID, tt.email, tt.firstName, tt.lastName, "")

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.providerID, user.ProviderID)
			assert.Equal(t, tt.email, user.Email)
			assert.Nil(t, user.OrganizationID)
			assert.Equal(t, MeasurementMetric, user.Preferences.Measurement)
			assert.True(t, user.Preferences.Notifications.Email)
		})
	}
}

func TestUser_FullName(t *testing.T) {
	user := &User{FirstName: "Alice", LastName: "Nguyen", Email: "alice@example.com"}
	assert.Equal(t, "Alice Nguyen", user.FullName())

	user = &User{Email: "alice@example.com"}
	assert.Equal(t, "alice@example.com", user.FullName())
}

func TestEmailDomain(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		want      string
		expectErr bool
	}{
		{name: "simple address", email: "alice@example.com", want: "example.com"},
		{name: "uppercase domain is lowered", email: "bob@Example.COM", want: "example.com"},
		{name: "quoted local part with at sign", email: `"a@b"@example.com`, want: "example.com"},
		{name: "no at sign", email: "alice.example.com", expectErr: true},
		{name: "trailing at sign", email: "alice@", expectErr: true},
		{name: "empty", email: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EmailDomain(tt.email)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
