package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
)

// testConfig is a two-road crossing under a fixed 8s signal. The huge
// spawn period keeps the spawner quiet so the tests stay deterministic.
func testConfig() config.Config {
	return config.Config{
		Control:  config.Control{Step: config.ControlStep{Total: 100000}, Seed: 1},
		Spawn:    config.Spawn{Period: 1e9, Probability: 1},
		Signal:   config.Signal{Policy: "fixed", Period: 8},
		Junction: config.Junction{Center: [2]float64{400, 300}, Size: [2]float64{100, 100}},
		Roads: []config.RoadSpec{
			{ID: 1, Start: [2]float64{0, 300}, End: [2]float64{800, 300}, Lanes: 2, Width: 40},
			{ID: 2, Start: [2]float64{400, 0}, End: [2]float64{400, 600}, Lanes: 2, Width: 40},
		},
	}
}

func TestRunCompletes(t *testing.T) {
	cfg := testConfig()
	cfg.Control.Step.Total = 120
	cfg.Spawn.Period = .5
	ctx := NewContext("test", cfg)
	ctx.Run()
	assert.True(t, ctx.Clock().Done())
	assert.NotEmpty(t, ctx.CarManager().Cars())
}

func TestStepAndPause(t *testing.T) {
	ctx := NewContext("test", testConfig())
	ctx.Init()

	for i := 0; i < 10; i++ {
		ctx.Step()
	}
	assert.EqualValues(t, 10, ctx.Clock().InternalStep)

	ctx.Pause()
	ctx.Step()
	assert.EqualValues(t, 10, ctx.Clock().InternalStep)
	assert.True(t, ctx.Paused())

	ctx.Resume()
	ctx.Step()
	assert.EqualValues(t, 11, ctx.Clock().InternalStep)
}

func TestFixedSignalPhases(t *testing.T) {
	ctx := NewContext("test", testConfig())
	ctx.Init()
	jm := ctx.JunctionManager()

	stepTo := func(step int) {
		for int(ctx.Clock().InternalStep) < step {
			ctx.Step()
		}
	}

	// road 2 runs north-south, road 1 east-west; the cycle is
	// NS 0-3s, all red 3-4s, EW 4-7s, all red 7-8s
	stepTo(60) // ~1s
	assert.True(t, jm.IsGreen(2))
	assert.False(t, jm.IsGreen(1))

	stepTo(210) // ~3.5s
	assert.False(t, jm.IsGreen(1))
	assert.False(t, jm.IsGreen(2))

	stepTo(300) // ~5s
	assert.True(t, jm.IsGreen(1))
	assert.False(t, jm.IsGreen(2))

	stepTo(450) // ~7.5s
	assert.False(t, jm.IsGreen(1))
	assert.False(t, jm.IsGreen(2))

	stepTo(540) // ~9s, next cycle
	assert.True(t, jm.IsGreen(2))
}

func TestResetRestoresInitialState(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn.Placements = []config.Placement{
		{RoadID: 1, LaneIndex: 0, Progress: .2, Speed: 0},
	}
	ctx := NewContext("test", cfg)
	ctx.Init()

	for i := 0; i < 300; i++ {
		ctx.Step()
	}
	ctx.Reset()

	assert.EqualValues(t, 0, ctx.Clock().InternalStep)
	require.Len(t, ctx.CarManager().Cars(), 1)

	ctx.Step()
	cars := ctx.CarManager().Cars()
	require.Len(t, cars, 1)
	assert.Equal(t, "1-C1", cars[0].ID())
	// the signal restarts its cycle as well
	assert.True(t, ctx.JunctionManager().IsGreen(2))
}

func TestStatistics(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn.Placements = []config.Placement{
		{RoadID: 1, LaneIndex: 0, Progress: .1, Speed: 0},
		{RoadID: 1, LaneIndex: 1, Progress: .1, Speed: 0},
		{RoadID: 2, LaneIndex: 0, Progress: .1, Speed: 0},
	}
	ctx := NewContext("test", cfg)
	ctx.Init()
	ctx.Step()

	stats := ctx.Statistics()
	assert.EqualValues(t, 2, stats.CarsByRoad[1])
	assert.EqualValues(t, 1, stats.CarsByRoad[2])
	assert.EqualValues(t, 0, stats.Completed)

	// run the east-west car over the far edge
	for i := 0; i < 60*12; i++ {
		ctx.Step()
	}
	assert.Greater(t, ctx.Statistics().Completed, int64(0))
}
