package trafficlight

import (
	"fmt"
	"testing"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/stretchr/testify/assert"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
)

// stubRoad carries just enough state for the controllers.
type stubRoad struct {
	id   int32
	axis entity.Axis
	cars int32
}

func (r *stubRoad) String() string                          { return fmt.Sprintf("stub %d", r.id) }
func (r *stubRoad) ID() int32                               { return r.id }
func (r *stubRoad) Start() geometry.Point                   { return geometry.Point{} }
func (r *stubRoad) End() geometry.Point                     { return geometry.Point{} }
func (r *stubRoad) Direction() geometry.Point               { return geometry.Point{} }
func (r *stubRoad) Normal() geometry.Point                  { return geometry.Point{} }
func (r *stubRoad) Angle() float64                          { return 0 }
func (r *stubRoad) Axis() entity.Axis                       { return r.axis }
func (r *stubRoad) Length() float64                         { return 0 }
func (r *stubRoad) Width() float64                          { return 0 }
func (r *stubRoad) LaneCount() int32                        { return 0 }
func (r *stubRoad) Lanes() []entity.ILane                   { return nil }
func (r *stubRoad) GetLane(int32) (entity.ILane, error)     { return nil, nil }
func (r *stubRoad) StopProgress() float64                   { return 1 }
func (r *stubRoad) CarCount() int32                         { return r.cars }
func (r *stubRoad) AddLaneWhenInit(entity.ILane)            {}

func TestFixedCyclePhases(t *testing.T) {
	ns := &stubRoad{id: 1, axis: entity.AxisNS}
	ew := &stubRoad{id: 2, axis: entity.AxisEW}
	l := NewFixedCycleTrafficLight([]entity.IRoad{ns, ew},
		&config.Signal{Period: 8, Cycle: []int32{0, 3, 4, 7}})

	// t = 0: NS holds the green
	assert.True(t, l.IsGreen(1))
	assert.False(t, l.IsGreen(2))

	// t = 3: first clearance interval
	l.Update(3)
	l.Prepare()
	assert.False(t, l.IsGreen(1))
	assert.False(t, l.IsGreen(2))

	// t = 4: EW holds the green
	l.Update(1)
	l.Prepare()
	assert.False(t, l.IsGreen(1))
	assert.True(t, l.IsGreen(2))

	// t = 7: second clearance interval
	l.Update(3)
	l.Prepare()
	assert.False(t, l.IsGreen(1))
	assert.False(t, l.IsGreen(2))

	// t = 8: wraps back to NS
	l.Update(1)
	l.Prepare()
	assert.True(t, l.IsGreen(1))

	// unsignaled roads are always green
	assert.True(t, l.IsGreen(99))
}

func TestFixedCycleRejectsBadBoundaries(t *testing.T) {
	ns := &stubRoad{id: 1, axis: entity.AxisNS}
	ew := &stubRoad{id: 2, axis: entity.AxisEW}
	roads := []entity.IRoad{ns, ew}

	assert.Panics(t, func() {
		NewFixedCycleTrafficLight(roads, &config.Signal{Period: 8, Cycle: []int32{0, 3, 4}})
	})
	assert.Panics(t, func() {
		NewFixedCycleTrafficLight(roads, &config.Signal{Period: 8, Cycle: []int32{0, 3, 4, 9}})
	})
	// misordered boundaries would yield a nonsense phase table
	assert.Panics(t, func() {
		NewFixedCycleTrafficLight(roads, &config.Signal{Period: 8, Cycle: []int32{0, 4, 3, 7}})
	})
}

func TestRoundRobinRotation(t *testing.T) {
	r1 := &stubRoad{id: 1, axis: entity.AxisNS}
	r2 := &stubRoad{id: 2, axis: entity.AxisEW}
	l := NewRoundRobinTrafficLight([]entity.IRoad{r1, r2},
		&config.Signal{Period: 8, AllRed: 1})

	// each slot is period/2 - allRed = 3s of green
	assert.True(t, l.IsGreen(1))
	assert.False(t, l.IsGreen(2))

	l.Update(3)
	l.Prepare()
	assert.False(t, l.IsGreen(1))
	assert.False(t, l.IsGreen(2))

	l.Update(1)
	l.Prepare()
	assert.False(t, l.IsGreen(1))
	assert.True(t, l.IsGreen(2))

	// full rotation comes back to the first road
	l.Update(4)
	l.Prepare()
	assert.True(t, l.IsGreen(1))
}

func TestControllerReset(t *testing.T) {
	ns := &stubRoad{id: 1, axis: entity.AxisNS}
	ew := &stubRoad{id: 2, axis: entity.AxisEW}

	fc := NewFixedCycleTrafficLight([]entity.IRoad{ns, ew},
		&config.Signal{Period: 8, Cycle: []int32{0, 3, 4, 7}})
	fc.Update(5)
	fc.Prepare()
	assert.True(t, fc.IsGreen(2))
	fc.Reset()
	assert.True(t, fc.IsGreen(1))

	rr := NewRoundRobinTrafficLight([]entity.IRoad{ns, ew},
		&config.Signal{Period: 8, AllRed: 1})
	rr.Update(4)
	rr.Prepare()
	assert.True(t, rr.IsGreen(2))
	rr.Reset()
	assert.True(t, rr.IsGreen(1))
}

func TestVolumePrefersFullerAxis(t *testing.T) {
	ns := &stubRoad{id: 1, axis: entity.AxisNS}
	ew := &stubRoad{id: 2, axis: entity.AxisEW, cars: 3}
	l := NewVolumeTrafficLight([]entity.IRoad{ns, ew},
		&config.Signal{Period: 8, MinHold: 5, AllRed: 1})

	// starts on NS
	assert.True(t, l.IsGreen(1))

	// after the hold the fuller EW axis wins, via a clearance interval
	l.Update(5)
	l.Prepare()
	assert.False(t, l.IsGreen(1))
	assert.False(t, l.IsGreen(2))

	l.Update(1)
	l.Prepare()
	assert.False(t, l.IsGreen(1))
	assert.True(t, l.IsGreen(2))

	// demand gone on NS, EW keeps holding
	l.Update(5)
	l.Prepare()
	assert.True(t, l.IsGreen(2))
}
