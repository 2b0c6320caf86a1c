package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGrow_Advance(t *testing.T) {
	grow, err := NewGrow(uuid.New(), "Tent A - Spring")
	assert.NoError(t, err)
	assert.Equal(t, StageSeedling, grow.Stage)

	expected := []GrowStage{
		StageVegetative,
		StageFlowering,
		StageDrying,
		StageCuring,
		StageComplete,
	}

	for _, want := range expected {
		assert.NoError(t, grow.Advance())
		assert.Equal(t, want, grow.Stage)
	}

	// Advancing past complete must fail
	err = grow.Advance()
	assert.Error(t, err)
	assert.Equal(t, StageComplete, grow.Stage)
}

func TestGrowStage_Next_Unknown(t *testing.T) {
	_, err := GrowStage("germinating").Next()
	assert.Error(t, err)
}

func TestGrow_IsActive(t *testing.T) {
	grow, _ := NewGrow(uuid.New(), "Tent A")
	assert.True(t, grow.IsActive())

	grow.Stage = StageComplete
	assert.False(t, grow.IsActive())
}

func TestPlant_Harvest(t *testing.T) {
	plant, err := NewPlant(uuid.New(), "A-01")
	assert.NoError(t, err)

	assert.NoError(t, plant.Harvest())
	assert.NotNil(t, plant.HarvestedAt)

	// Second harvest must fail
	assert.Error(t, plant.Harvest())
}

func TestPlant_Harvest_Dead(t *testing.T) {
	plant, _ := NewPlant(uuid.New(), "A-02")
	plant.Health = HealthDead
	assert.Error(t, plant.Harvest())
}

func TestTask_Complete(t *testing.T) {
	task, err := NewTask(uuid.New(), "Flush nutrients")
	assert.NoError(t, err)

	assert.NoError(t, task.Complete())
	assert.Equal(t, TaskDone, task.Status)
	assert.NotNil(t, task.CompletedAt)

	assert.Error(t, task.Complete())
}
