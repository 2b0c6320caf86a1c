package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GeneticType classifies a strain's genetics
type GeneticType string

const (
	GeneticIndica GeneticType = "indica"
	GeneticSativa GeneticType = "sativa"
	GeneticHybrid GeneticType = "hybrid"
)

// IsValid reports whether the genetic type is a known value
func (g GeneticType) IsValid() bool {
	switch g {
	case GeneticIndica, GeneticSativa, GeneticHybrid:
		return true
	}
	return false
}

// Strain is an organization-scoped cultivar definition
type Strain struct {
	ID             uuid.UUID   `json:"id"`
	OrganizationID uuid.UUID   `json:"organization_id"`
	Name           string      `json:"name"`
	Genetics       GeneticType `json:"genetics"`
	THCPercentMin  float64     `json:"thc_percent_min"`
	THCPercentMax  float64     `json:"thc_percent_max"`
	CBDPercentMin  float64     `json:"cbd_percent_min"`
	CBDPercentMax  float64     `json:"cbd_percent_max"`
	FloweringDays  int         `json:"flowering_days"`
	Notes          string      `json:"notes"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// NewStrain creates a strain with validation
func NewStrain(orgID uuid.UUID, name string, genetics GeneticType) (*Strain, error) {
	if orgID == uuid.Nil {
		return nil, fmt.Errorf("organization id is required")
	}
	if name == "" {
		return nil, fmt.Errorf("strain name is required")
	}
	if !genetics.IsValid() {
		return nil, fmt.Errorf("invalid genetic type: %q", genetics)
	}

	now := time.Now().UTC()

	return &Strain{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           name,
		Genetics:       genetics,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Validate checks range invariants before persisting
func (s *Strain) Validate() error {
	if s.THCPercentMin < 0 || s.THCPercentMax > 100 || s.THCPercentMin > s.THCPercentMax {
		return fmt.Errorf("invalid THC range: %.1f-%.1f", s.THCPercentMin, s.THCPercentMax)
	}
	if s.CBDPercentMin < 0 || s.CBDPercentMax > 100 || s.CBDPercentMin > s.CBDPercentMax {
		return fmt.Errorf("invalid CBD range: %.1f-%.1f", s.CBDPercentMin, s.CBDPercentMax)
	}
	if s.FloweringDays < 0 || s.FloweringDays > 365 {
		return fmt.Errorf("invalid flowering days: %d", s.FloweringDays)
	}
	return nil
}
