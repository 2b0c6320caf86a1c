package usecase

import (
	"context"
	"log/slog"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
)

// ProfileUseCase implements the caller-facing profile operations
type ProfileUseCase struct {
	users  port.UserRepository
	logger *slog.Logger
}

// NewProfileUseCase creates a new ProfileUseCase instance
func NewProfileUseCase(users port.UserRepository, logger *slog.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		users:  users,
		logger: logger.With(slog.String("component", "profile_usecase")),
	}
}

// GetProfile returns the mirrored user for the authenticated caller
func (uc *ProfileUseCase) GetProfile(ctx context.Context, providerID string) (*domain.User, error) {
	return uc.users.GetByProviderID(ctx, providerID)
}

// UpdatePreferences replaces the caller's preference blob
func (uc *ProfileUseCase) UpdatePreferences(ctx context.Context, providerID string, prefs domain.UserPreferences) (*domain.User, error) {
	switch prefs.Measurement {
	case domain.MeasurementMetric, domain.MeasurementImperial:
	default:
		return nil, apperrors.NewValidationError("invalid measurement system")
	}

	if err := uc.users.UpdatePreferences(ctx, providerID, prefs); err != nil {
		return nil, err
	}

	return uc.users.GetByProviderID(ctx, providerID)
}
