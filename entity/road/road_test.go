package road

import (
	"math"
	"testing"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/stretchr/testify/assert"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
)

func TestComputeStopProgress(t *testing.T) {
	box := entity.Rect{MinX: 30, MinY: -10, MaxX: 60, MaxY: 10}

	// horizontal segment entering the box at t = 0.3
	p := ComputeStopProgress(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 0}, box)
	assert.InDelta(t, 0.3, p, 1e-9)

	// segment whose extension crosses the box but which stays outside of it
	p = ComputeStopProgress(geometry.Point{X: 0, Y: 50}, geometry.Point{X: 100, Y: 50}, box)
	assert.Equal(t, 1.0, p)

	// vertical segment, dx == 0
	vbox := entity.Rect{MinX: -5, MinY: 40, MaxX: 5, MaxY: 60}
	p = ComputeStopProgress(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 0, Y: 100}, vbox)
	assert.InDelta(t, 0.4, p, 1e-9)

	// vertical segment that never reaches the box
	p = ComputeStopProgress(geometry.Point{X: 50, Y: 0}, geometry.Point{X: 50, Y: 100}, vbox)
	assert.Equal(t, 1.0, p)

	// segment ending before the box
	p = ComputeStopProgress(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 20, Y: 0}, box)
	assert.Equal(t, 1.0, p)

	// segment traversing the whole box reports the near border
	p = ComputeStopProgress(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 90, Y: 0}, box)
	assert.InDelta(t, 30.0/90, p, 1e-9)
}

func TestRoadGeometry(t *testing.T) {
	m := NewManager(nil)
	m.Init([]config.RoadSpec{
		{ID: 1, Start: [2]float64{0, 300}, End: [2]float64{800, 300}, Lanes: 2, Width: 40},
		{ID: 2, Start: [2]float64{400, 0}, End: [2]float64{400, 600}, Lanes: 3, Width: 60},
	}, config.Junction{Center: [2]float64{400, 300}, Size: [2]float64{100, 100}})

	ew := m.Get(1)
	assert.Equal(t, entity.AxisEW, ew.Axis())
	assert.Equal(t, 800.0, ew.Length())
	assert.InDelta(t, 1.0, ew.Direction().X, 1e-9)
	assert.InDelta(t, 0.0, ew.Direction().Y, 1e-9)
	assert.InDelta(t, 0.0, ew.Angle(), 1e-9)
	// entering the box at x=350 out of 800
	assert.InDelta(t, 350.0/800, ew.StopProgress(), 1e-9)

	ns := m.Get(2)
	assert.Equal(t, entity.AxisNS, ns.Axis())
	assert.InDelta(t, math.Pi/2, ns.Angle(), 1e-9)
	assert.InDelta(t, 250.0/600, ns.StopProgress(), 1e-9)

	_, err := m.GetOrError(99)
	assert.Error(t, err)

	_, err = ew.GetLane(5)
	assert.Error(t, err)
}
