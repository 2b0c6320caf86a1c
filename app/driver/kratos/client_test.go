package kratos

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growhub/app/config"
	"growhub/app/utils/logger"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name      string
		config    *config.Config
		wantError bool
	}{
		{
			name: "valid kratos configuration",
			config: &config.Config{
				ProviderPublicURL: "http://kratos-public:4433",
				ProviderAdminURL:  "http://kratos-admin:4434",
			},
			wantError: false,
		},
		{
			name: "empty public URL",
			config: &config.Config{
				ProviderPublicURL: "",
				ProviderAdminURL:  "http://kratos-admin:4434",
			},
			wantError: true,
		},
		{
			name: "empty admin URL",
			config: &config.Config{
				ProviderPublicURL: "http://kratos-public:4433",
				ProviderAdminURL:  "",
			},
			wantError: true,
		},
		{
			name: "invalid public URL",
			config: &config.Config{
				ProviderPublicURL: "invalid-url",
				ProviderAdminURL:  "http://kratos-admin:4434",
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := logger.NewWithWriter("info", &buf)
			require.NoError(t, err)

			client, err := NewClient(tt.config, logger)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, client)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, client)
				assert.NotNil(t, client.PublicAPI())
				assert.NotNil(t, client.AdminAPI())
			}
		})
	}
}
