package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MeasurementSystem selects the unit system used across the UI
type MeasurementSystem string

const (
	MeasurementMetric   MeasurementSystem = "metric"
	MeasurementImperial MeasurementSystem = "imperial"
)

// UserPreferences holds user-specific preferences mirrored as a JSONB blob
type UserPreferences struct {
	Measurement   MeasurementSystem      `json:"measurement"`
	Notifications NotificationSettings   `json:"notifications"`
	Display       DisplaySettings        `json:"display"`
	Custom        map[string]interface{} `json:"custom,omitempty"`
}

// NotificationSettings holds notification preferences
type NotificationSettings struct {
	Email         bool `json:"email"`
	Push          bool `json:"push"`
	TaskReminders bool `json:"task_reminders"`
}

// DisplaySettings holds display preferences
type DisplaySettings struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// DefaultPreferences returns the preference blob assigned to new users
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Measurement: MeasurementMetric,
		Notifications: NotificationSettings{
			Email:         true,
			Push:          false,
			TaskReminders: true,
		},
		Display: DisplaySettings{
			Theme:    "auto",
			Language: "en",
		},
	}
}

// User is the local mirror of an identity-provider user.
// OrganizationID is nil until the user is linked to an organization, either
// at creation time (email-domain match) or by a later membership event.
type User struct {
	ID             uuid.UUID       `json:"id"`
	ProviderID     string          `json:"provider_id"`
	Email          string          `json:"email"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	ImageURL       string          `json:"image_url"`
	OrganizationID *uuid.UUID      `json:"organization_id,omitempty"`
	Preferences    UserPreferences `json:"preferences"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewUserFromProvider builds a local User row from identity-provider data.
// Name and image fields default to empty strings when the provider omits them.
func NewUserFromProvider(providerID, email, firstName, lastName, imageURL string) (*User, error) {
	if providerID == "" {
		return nil, fmt.Errorf("provider id is required")
	}

	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("invalid email format: %w", err)
		}
	}

	now := time.Now().UTC()

	return &User{
		ID:          uuid.New(),
		ProviderID:  providerID,
		Email:       email,
		FirstName:   firstName,
		LastName:    lastName,
		ImageURL:    imageURL,
		Preferences: DefaultPreferences(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// FullName returns the display name for the user
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// HasOrganization reports whether the user is linked to an organization
func (u *User) HasOrganization() bool {
	return u.OrganizationID != nil
}

// EmailDomain extracts the domain part of an email address. The webhook flow
// uses it to match new users against an organization's legacy domain field.
func EmailDomain(email string) (string, error) {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return "", fmt.Errorf("email %q has no domain part", email)
	}
	return strings.ToLower(email[at+1:]), nil
}
