package lane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity/road"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
)

func buildWorld() (*road.RoadManager, *LaneManager) {
	specs := []config.RoadSpec{
		{ID: 1, Start: [2]float64{0, 300}, End: [2]float64{800, 300}, Lanes: 2, Width: 40,
			Turns: []config.Turn{{Lane: 0, Road: 2, LaneIndex: 0}}},
		{ID: 2, Start: [2]float64{400, 0}, End: [2]float64{400, 600}, Lanes: 2, Width: 40},
	}
	junction := config.Junction{Center: [2]float64{400, 300}, Size: [2]float64{100, 100}}
	rm := road.NewManager(nil)
	rm.Init(specs, junction)
	lm := NewManager(nil)
	lm.Init(specs, rm)
	return rm, lm
}

func TestLaneGeometry(t *testing.T) {
	rm, _ := buildWorld()
	r := rm.Get(1)
	require.Equal(t, int32(2), r.LaneCount())

	l0, err := r.GetLane(0)
	require.NoError(t, err)
	l1, err := r.GetLane(1)
	require.NoError(t, err)

	// symmetric offsets for 2 lanes of total width 40
	assert.InDelta(t, -10.0, l0.Offset(), 1e-9)
	assert.InDelta(t, 10.0, l1.Offset(), 1e-9)

	// EW road: normal points along +Y
	p := l0.GetPositionByS(0.5)
	assert.InDelta(t, 400.0, p.X, 1e-9)
	assert.InDelta(t, 290.0, p.Y, 1e-9)
}

func TestTurnWiring(t *testing.T) {
	rm, _ := buildWorld()
	r1 := rm.Get(1)
	r2 := rm.Get(2)

	turning, err := r1.GetLane(0)
	require.NoError(t, err)
	straight, err := r1.GetLane(1)
	require.NoError(t, err)
	target, err := r2.GetLane(0)
	require.NoError(t, err)

	assert.Equal(t, target, turning.Destination())
	assert.Equal(t, straight, straight.Destination())
}

func TestCarBufferAndReset(t *testing.T) {
	_, lm := buildWorld()
	l := lm.Get(1)

	node := &entity.CarNode{S: 0.2, Value: nil}
	l.AddCar(node)
	// buffered until Prepare
	assert.Equal(t, int32(0), l.CarCount())
	lm.Prepare()
	assert.Equal(t, int32(1), l.CarCount())
	assert.Equal(t, node, l.FirstCar())
	assert.Equal(t, node, l.LastCar())

	// IDs restart after Reset
	id1 := l.NextCarID()
	assert.Equal(t, "1-C1", id1)
	lm.Reset()
	assert.Equal(t, int32(0), l.CarCount())
	assert.Equal(t, "1-C1", l.NextCarID())
}
