package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GrowStage is the lifecycle stage of a grow
type GrowStage string

const (
	StageSeedling   GrowStage = "seedling"
	StageVegetative GrowStage = "vegetative"
	StageFlowering  GrowStage = "flowering"
	StageDrying     GrowStage = "drying"
	StageCuring     GrowStage = "curing"
	StageComplete   GrowStage = "complete"
)

// stageOrder defines the forward-only lifecycle
var stageOrder = []GrowStage{
	StageSeedling,
	StageVegetative,
	StageFlowering,
	StageDrying,
	StageCuring,
	StageComplete,
}

// IsValid reports whether the stage is a known value
func (s GrowStage) IsValid() bool {
	for _, stage := range stageOrder {
		if s == stage {
			return true
		}
	}
	return false
}

// Next returns the stage following s, or an error when the grow is complete
func (s GrowStage) Next() (GrowStage, error) {
	for i, stage := range stageOrder {
		if s == stage {
			if i == len(stageOrder)-1 {
				return "", fmt.Errorf("grow is already complete")
			}
			return stageOrder[i+1], nil
		}
	}
	return "", fmt.Errorf("unknown grow stage: %q", s)
}

// Grow is an organization-scoped cultivation cycle
type Grow struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	EnvironmentID  *uuid.UUID `json:"environment_id,omitempty"`
	Name           string     `json:"name"`
	Stage          GrowStage  `json:"stage"`
	StartedAt      time.Time  `json:"started_at"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewGrow creates a grow in the seedling stage
func NewGrow(orgID uuid.UUID, name string) (*Grow, error) {
	if orgID == uuid.Nil {
		return nil, fmt.Errorf("organization id is required")
	}
	if name == "" {
		return nil, fmt.Errorf("grow name is required")
	}

	now := time.Now().UTC()

	return &Grow{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           name,
		Stage:          StageSeedling,
		StartedAt:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Advance moves the grow to its next lifecycle stage
func (g *Grow) Advance() error {
	next, err := g.Stage.Next()
	if err != nil {
		return err
	}
	g.Stage = next
	g.UpdatedAt = time.Now().UTC()
	return nil
}

// IsActive reports whether the grow still has living plants to manage
func (g *Grow) IsActive() bool {
	return g.Stage != StageComplete
}
