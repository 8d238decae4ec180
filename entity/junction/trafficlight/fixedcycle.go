// Package trafficlight provides the signal phase controllers. A controller
// only has to answer IsGreen(roadID); the simulation core never sees the
// policy behind the answer, so the implementations here are interchangeable.
package trafficlight

import (
	"math"

	"github.com/samber/lo"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
)

// fcSnapshot is the phase state the dynamics pass reads. It is written at
// Prepare from the runtime so queries stay stable within a tick.
type fcSnapshot struct {
	green  entity.Axis
	allRed bool
}

// fixedCycleTrafficLight cycles {NS green, all red, EW green, all red} on a
// fixed period. The two all-red intervals are clearance time so a phase
// never goes green before crossing traffic has drained the box.
type fixedCycleTrafficLight struct {
	axes       map[int32]entity.Axis // road ID -> axis
	boundaries [4]float64            // phase starts inside the period
	period     float64

	t        float64 // runtime, seconds since the run started
	snapshot fcSnapshot
}

// NewFixedCycleTrafficLight builds the fixed controller from the signal
// config. cfg.Cycle gives the four phase boundaries in seconds; when absent
// the period is split 3:1:3:1 (0/3/4/7 for the default 8s period).
func NewFixedCycleTrafficLight(roads []entity.IRoad, cfg *config.Signal) *fixedCycleTrafficLight {
	l := &fixedCycleTrafficLight{
		axes:   roadAxes(roads),
		period: cfg.Period,
	}
	switch len(cfg.Cycle) {
	case 0:
		p := cfg.Period
		l.boundaries = [4]float64{0, 3 * p / 8, p / 2, 7 * p / 8}
	case 4:
		for i, b := range cfg.Cycle {
			l.boundaries[i] = float64(b)
		}
	default:
		log.Panicf("fixed cycle needs exactly 4 boundaries, got %d", len(cfg.Cycle))
	}
	if l.boundaries[3] >= l.period {
		log.Panicf("fixed cycle boundaries %v exceed period %f", l.boundaries, l.period)
	}
	for i := 0; i < 3; i++ {
		if l.boundaries[i] > l.boundaries[i+1] {
			log.Panicf("fixed cycle boundaries %v are out of order", l.boundaries)
		}
	}
	l.Prepare()
	return l
}

// Prepare derives the active phase from the runtime clock.
func (l *fixedCycleTrafficLight) Prepare() {
	tm := math.Mod(l.t, l.period)
	b := l.boundaries
	switch {
	case tm >= b[0] && tm < b[1]:
		l.snapshot = fcSnapshot{green: entity.AxisNS}
	case tm < b[2]:
		l.snapshot = fcSnapshot{allRed: true}
	case tm < b[3]:
		l.snapshot = fcSnapshot{green: entity.AxisEW}
	default:
		l.snapshot = fcSnapshot{allRed: true}
	}
}

// Update advances the phase clock.
func (l *fixedCycleTrafficLight) Update(dt float64) {
	l.t += dt
}

// Reset rewinds the phase clock to the start of the cycle.
func (l *fixedCycleTrafficLight) Reset() {
	l.t = 0
	l.Prepare()
}

// IsGreen reports whether the road's axis holds the green. Roads unknown to
// the controller are unsignaled and always green.
func (l *fixedCycleTrafficLight) IsGreen(roadID int32) bool {
	if l.snapshot.allRed {
		return false
	}
	axis, ok := l.axes[roadID]
	if !ok {
		return true
	}
	return axis == l.snapshot.green
}

// roadAxes indexes the controlled roads by ID.
func roadAxes(roads []entity.IRoad) map[int32]entity.Axis {
	return lo.SliceToMap(roads, func(r entity.IRoad) (int32, entity.Axis) {
		return r.ID(), r.Axis()
	})
}
