package handlers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"growhub/app/domain"
	"growhub/app/rest/middleware"
	apperrors "growhub/app/utils/errors"
)

// callerUser returns the mirrored user the auth middleware resolved
func callerUser(c echo.Context) (*domain.User, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// callerOrganizationID returns the caller's organization scope. Routes behind
// RequireOrganization always resolve one.
func callerOrganizationID(c echo.Context) (uuid.UUID, error) {
	user, err := callerUser(c)
	if err != nil {
		return uuid.Nil, err
	}
	if !user.HasOrganization() {
		return uuid.Nil, apperrors.ErrForbidden.WithDetails("no organization membership")
	}
	return *user.OrganizationID, nil
}

// pathUUID parses a path parameter as a UUID
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.Newf(apperrors.ErrCodeInvalidInput, "invalid %s", name)
	}
	return id, nil
}
