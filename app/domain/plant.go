package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PlantHealth is the observed health status of a plant
type PlantHealth string

const (
	HealthHealthy    PlantHealth = "healthy"
	HealthStressed   PlantHealth = "stressed"
	HealthPestIssue  PlantHealth = "pest_issue"
	HealthNutrient   PlantHealth = "nutrient_deficiency"
	HealthDead       PlantHealth = "dead"
)

// IsValid reports whether the health status is a known value
func (h PlantHealth) IsValid() bool {
	switch h {
	case HealthHealthy, HealthStressed, HealthPestIssue, HealthNutrient, HealthDead:
		return true
	}
	return false
}

// Plant is a single tracked plant inside a grow
type Plant struct {
	ID          uuid.UUID   `json:"id"`
	GrowID      uuid.UUID   `json:"grow_id"`
	StrainID    *uuid.UUID  `json:"strain_id,omitempty"`
	Tag         string      `json:"tag"`
	Health      PlantHealth `json:"health"`
	PlantedAt   time.Time   `json:"planted_at"`
	HarvestedAt *time.Time  `json:"harvested_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// NewPlant creates a plant attached to a grow
func NewPlant(growID uuid.UUID, tag string) (*Plant, error) {
	if growID == uuid.Nil {
		return nil, fmt.Errorf("grow id is required")
	}
	if tag == "" {
		return nil, fmt.Errorf("plant tag is required")
	}

	now := time.Now().UTC()

	return &Plant{
		ID:        uuid.New(),
		GrowID:    growID,
		Tag:       tag,
		Health:    HealthHealthy,
		PlantedAt: now,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Harvest records the harvest time. Harvesting twice is an error.
func (p *Plant) Harvest() error {
	if p.HarvestedAt != nil {
		return fmt.Errorf("plant %s already harvested", p.Tag)
	}
	if p.Health == HealthDead {
		return fmt.Errorf("plant %s is dead and cannot be harvested", p.Tag)
	}
	now := time.Now().UTC()
	p.HarvestedAt = &now
	p.UpdatedAt = now
	return nil
}
