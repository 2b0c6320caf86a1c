package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Environment is an organization-scoped indoor grow space with its
// target climate setpoints
type Environment struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	LightHoursOn   int       `json:"light_hours_on"`
	TempMinC       float64   `json:"temp_min_c"`
	TempMaxC       float64   `json:"temp_max_c"`
	HumidityMinPct float64   `json:"humidity_min_pct"`
	HumidityMaxPct float64   `json:"humidity_max_pct"`
	CO2PPM         int       `json:"co2_ppm"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewEnvironment creates an environment with validation
func NewEnvironment(orgID uuid.UUID, name string) (*Environment, error) {
	if orgID == uuid.Nil {
		return nil, fmt.Errorf("organization id is required")
	}
	if name == "" {
		return nil, fmt.Errorf("environment name is required")
	}

	now := time.Now().UTC()

	return &Environment{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           name,
		LightHoursOn:   18,
		TempMinC:       20,
		TempMaxC:       28,
		HumidityMinPct: 40,
		HumidityMaxPct: 60,
		CO2PPM:         400,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Validate checks setpoint invariants before persisting
func (e *Environment) Validate() error {
	if e.LightHoursOn < 0 || e.LightHoursOn > 24 {
		return fmt.Errorf("light schedule must be 0-24 hours, got %d", e.LightHoursOn)
	}
	if e.TempMinC > e.TempMaxC {
		return fmt.Errorf("temperature range inverted: %.1f > %.1f", e.TempMinC, e.TempMaxC)
	}
	if e.HumidityMinPct < 0 || e.HumidityMaxPct > 100 || e.HumidityMinPct > e.HumidityMaxPct {
		return fmt.Errorf("invalid humidity range: %.1f-%.1f", e.HumidityMinPct, e.HumidityMaxPct)
	}
	if e.CO2PPM < 0 {
		return fmt.Errorf("invalid CO2 setpoint: %d", e.CO2PPM)
	}
	return nil
}
