package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	kratosclient "github.com/ory/kratos-client-go"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
)

// IdentityAdapter implements port.IdentityClient over the Kratos admin and
// public APIs
type IdentityAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewIdentityAdapter creates a new adapter
func NewIdentityAdapter(client *Client, logger *slog.Logger) port.IdentityClient {
	return &IdentityAdapter{
		client: client,
		logger: logger.With("component", "kratos_identity_adapter"),
	}
}

// GetIdentity fetches a single identity by provider id
func (a *IdentityAdapter) GetIdentity(ctx context.Context, identityID string) (*domain.ProviderIdentity, error) {
	identity, httpResp, err := a.client.AdminAPI().IdentityAPI.
		GetIdentity(ctx, identityID).
		Execute()
	if err != nil {
		if getHTTPStatus(httpResp) == http.StatusNotFound {
			return nil, fmt.Errorf("identity %s: %w", identityID, apperrors.ErrUserNotFound)
		}
		a.logger.Error("kratos get identity failed",
			"identity_id", identityID,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, apperrors.NewProviderError(err)
	}

	return identityToDomain(identity), nil
}

// PatchMetadata merges the patch into the identity's public metadata. Kratos
// replaces the whole identity on update, so the current identity is read
// first and sent back with only the metadata keys from the patch changed.
func (a *IdentityAdapter) PatchMetadata(ctx context.Context, identityID string, patch map[string]interface{}) (*domain.ProviderIdentity, error) {
	identity, httpResp, err := a.client.AdminAPI().IdentityAPI.
		GetIdentity(ctx, identityID).
		Execute()
	if err != nil {
		if getHTTPStatus(httpResp) == http.StatusNotFound {
			return nil, fmt.Errorf("identity %s: %w", identityID, apperrors.ErrUserNotFound)
		}
		return nil, apperrors.NewProviderError(err)
	}

	metadata := metadataToMap(identity.MetadataPublic)
	for k, v := range patch {
		metadata[k] = v
	}

	traits, _ := identity.Traits.(map[string]interface{})
	if traits == nil {
		traits = map[string]interface{}{}
	}

	state := "active"
	if identity.State != nil {
		state = *identity.State
	}

	body := kratosclient.UpdateIdentityBody{
		SchemaId:       identity.SchemaId,
		State:          state,
		Traits:         traits,
		MetadataPublic: metadata,
	}

	updated, httpResp, err := a.client.AdminAPI().IdentityAPI.
		UpdateIdentity(ctx, identityID).
		UpdateIdentityBody(body).
		Execute()
	if err != nil {
		a.logger.Error("kratos identity metadata update failed",
			"identity_id", identityID,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, apperrors.NewProviderError(err)
	}

	a.logger.Info("identity metadata updated",
		"identity_id", identityID)

	return identityToDomain(updated), nil
}

// Session resolves the session behind a Cookie header
func (a *IdentityAdapter) Session(ctx context.Context, cookieHeader string) (*domain.ProviderSession, error) {
	session, httpResp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		Cookie(cookieHeader).
		Execute()
	if err != nil {
		status := getHTTPStatus(httpResp)
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return nil, fmt.Errorf("session rejected: %w", apperrors.ErrUnauthorized)
		}
		a.logger.Error("kratos session resolution failed",
			"error", err,
			"http_status", status)
		return nil, apperrors.NewProviderError(err)
	}

	if session.Identity == nil {
		return nil, fmt.Errorf("session %s has no identity: %w", session.Id, apperrors.ErrUnauthorized)
	}

	identity := identityToDomain(session.Identity)

	active := session.Active != nil && *session.Active
	var expiresAt time.Time
	if session.ExpiresAt != nil {
		expiresAt = *session.ExpiresAt
	}

	return &domain.ProviderSession{
		SessionID:  session.Id,
		IdentityID: identity.ID,
		Email:      identity.Email,
		Role:       identity.Role(),
		Active:     active,
		ExpiresAt:  expiresAt,
	}, nil
}

// ListIdentities returns one page of identities
func (a *IdentityAdapter) ListIdentities(ctx context.Context, page, perPage int64) ([]*domain.ProviderIdentity, error) {
	identities, httpResp, err := a.client.AdminAPI().IdentityAPI.
		ListIdentities(ctx).
		Page(page).
		PerPage(perPage).
		Execute()
	if err != nil {
		a.logger.Error("kratos list identities failed",
			"page", page,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, apperrors.NewProviderError(err)
	}

	result := make([]*domain.ProviderIdentity, 0, len(identities))
	for i := range identities {
		result = append(result, identityToDomain(&identities[i]))
	}

	return result, nil
}

// identityToDomain maps a Kratos identity to the domain view. Traits follow
// the default identity schema: a top-level email plus a name object with
// first and last fields.
func identityToDomain(identity *kratosclient.Identity) *domain.ProviderIdentity {
	out := &domain.ProviderIdentity{
		ID:       identity.Id,
		Metadata: metadataToMap(identity.MetadataPublic),
	}

	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return out
	}

	out.Email, _ = traits["email"].(string)
	if name, ok := traits["name"].(map[string]interface{}); ok {
		out.FirstName, _ = name["first"].(string)
		out.LastName, _ = name["last"].(string)
	}

	return out
}

func metadataToMap(metadata interface{}) map[string]interface{} {
	if m, ok := metadata.(map[string]interface{}); ok {
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	}
	return map[string]interface{}{}
}

func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
