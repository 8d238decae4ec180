package trafficlight

import (
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
)

const defaultMinHoldTime = 5

// volumeTrafficLight is the demand-driven controller. At the end of every
// green interval it counts the cars per axis and hands the green to the
// fuller one, inserting an all-red clearance interval whenever the green
// actually moves. Holding the same axis skips the clearance.
type volumeTrafficLight struct {
	roads   []entity.IRoad
	axes    map[int32]entity.Axis
	minHold float64
	allRed  float64

	green     entity.Axis
	nextGreen entity.Axis
	inAllRed  bool
	remaining float64

	snapshot fcSnapshot
}

// NewVolumeTrafficLight builds the demand-driven controller. cfg.MinHold
// bounds how fast the green may move, cfg.AllRed is the clearance time.
func NewVolumeTrafficLight(roads []entity.IRoad, cfg *config.Signal) *volumeTrafficLight {
	minHold := cfg.MinHold
	if minHold <= 0 {
		minHold = defaultMinHoldTime
	}
	allRed := cfg.AllRed
	if allRed <= 0 {
		allRed = defaultAllRedTime
	}
	l := &volumeTrafficLight{
		roads:     roads,
		axes:      roadAxes(roads),
		minHold:   minHold,
		allRed:    allRed,
		green:     entity.AxisNS,
		remaining: minHold,
	}
	l.Prepare()
	return l
}

// Prepare snapshots the phase for the coming tick.
func (l *volumeTrafficLight) Prepare() {
	l.snapshot = fcSnapshot{green: l.green, allRed: l.inAllRed}
}

// Update re-evaluates the demand when the current interval runs out.
func (l *volumeTrafficLight) Update(dt float64) {
	l.remaining -= dt
	if l.remaining > 0 {
		return
	}
	if l.inAllRed {
		l.green = l.nextGreen
		l.inAllRed = false
		l.remaining += l.minHold
		return
	}
	want := l.busiestAxis()
	if want == l.green {
		l.remaining += l.minHold
		return
	}
	l.nextGreen = want
	l.inAllRed = true
	l.remaining += l.allRed
}

// Reset hands the green back to the north-south axis.
func (l *volumeTrafficLight) Reset() {
	l.green = entity.AxisNS
	l.inAllRed = false
	l.remaining = l.minHold
	l.Prepare()
}

// IsGreen reports whether the road's axis holds the green. Roads unknown to
// the controller are unsignaled and always green.
func (l *volumeTrafficLight) IsGreen(roadID int32) bool {
	if l.snapshot.allRed {
		return false
	}
	axis, ok := l.axes[roadID]
	if !ok {
		return true
	}
	return axis == l.snapshot.green
}

// busiestAxis returns the axis carrying more cars, keeping the current green
// on a tie.
func (l *volumeTrafficLight) busiestAxis() entity.Axis {
	counts := map[entity.Axis]int32{}
	for _, r := range l.roads {
		counts[r.Axis()] += r.CarCount()
	}
	if counts[l.green.Other()] > counts[l.green] {
		return l.green.Other()
	}
	return l.green
}
