package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EventType discriminates identity-provider webhook payloads
type EventType string

const (
	EventUserCreated         EventType = "user.created"
	EventUserUpdated         EventType = "user.updated"
	EventOrganizationCreated EventType = "organization.created"
	EventMembershipCreated   EventType = "organizationMembership.created"
)

// WebhookEvent is the envelope of an identity-provider webhook delivery.
// Data stays raw until the dispatcher knows the concrete type.
type WebhookEvent struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ParseWebhookEvent decodes a verified webhook body into its envelope
func ParseWebhookEvent(body []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("malformed webhook payload: %w", err)
	}
	if event.Type == "" {
		return nil, fmt.Errorf("webhook payload has no type")
	}
	return &event, nil
}

// EmailAddress is one entry of a user event's email address list
type EmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// UserEventData is the payload of user.created and user.updated events
type UserEventData struct {
	ID                    string                 `json:"id"`
	EmailAddresses        []EmailAddress         `json:"email_addresses"`
	PrimaryEmailAddressID string                 `json:"primary_email_address_id"`
	FirstName             string                 `json:"first_name"`
	LastName              string                 `json:"last_name"`
	ImageURL              string                 `json:"image_url"`
	PublicMetadata        map[string]interface{} `json:"public_metadata"`
}

// PrimaryEmail resolves the user's primary email address, falling back to the
// first listed address. Absent addresses yield an empty string.
func (d *UserEventData) PrimaryEmail() string {
	for _, addr := range d.EmailAddresses {
		if addr.ID == d.PrimaryEmailAddressID {
			return addr.EmailAddress
		}
	}
	if len(d.EmailAddresses) > 0 {
		return d.EmailAddresses[0].EmailAddress
	}
	return ""
}

// OrganizationDomainOverride returns the explicit target-organization hostname
// carried in the event's public metadata, when present. It takes precedence
// over email-domain matching.
func (d *UserEventData) OrganizationDomainOverride() string {
	if d.PublicMetadata == nil {
		return ""
	}
	if v, ok := d.PublicMetadata["organization_domain"].(string); ok {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return ""
}

// OrganizationEventData is the payload of organization.created events
type OrganizationEventData struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedBy string `json:"created_by"`
}

// MembershipEventData is the payload of organizationMembership.created events
type MembershipEventData struct {
	Organization struct {
		ID string `json:"id"`
	} `json:"organization"`
	PublicUserData struct {
		UserID string `json:"user_id"`
	} `json:"public_user_data"`
	Role string `json:"role"`
}
