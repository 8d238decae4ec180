package trafficlight

import (
	"github.com/samber/lo"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
)

const defaultAllRedTime = 1

// roundRobinTrafficLight gives each road the green alone, in config order,
// with an all-red clearance interval between neighbors. Fair but oblivious
// to demand.
type roundRobinTrafficLight struct {
	order     []int32 // road IDs in rotation order
	greenTime float64
	allRed    float64

	index     int     // road currently holding (or about to get) the green
	inAllRed  bool    // clearance interval before order[index] goes green
	remaining float64 // runtime countdown of the current interval

	snapshot int32 // road ID holding the green, -1 during clearance
}

// NewRoundRobinTrafficLight splits cfg.Period evenly over the roads; the
// clearance time is taken out of each slot.
func NewRoundRobinTrafficLight(roads []entity.IRoad, cfg *config.Signal) *roundRobinTrafficLight {
	if len(roads) == 0 {
		log.Panicf("round robin needs at least one road")
	}
	allRed := cfg.AllRed
	if allRed <= 0 {
		allRed = defaultAllRedTime
	}
	greenTime := cfg.Period/float64(len(roads)) - allRed
	if greenTime <= 0 {
		log.Panicf("round robin: period %f too short for %d roads with %fs clearance",
			cfg.Period, len(roads), allRed)
	}
	l := &roundRobinTrafficLight{
		order: lo.Map(roads, func(r entity.IRoad, _ int) int32 {
			return r.ID()
		}),
		greenTime: greenTime,
		allRed:    allRed,
		remaining: greenTime,
	}
	l.Prepare()
	return l
}

// Prepare snapshots the road holding the green.
func (l *roundRobinTrafficLight) Prepare() {
	if l.inAllRed {
		l.snapshot = -1
	} else {
		l.snapshot = l.order[l.index]
	}
}

// Update advances the rotation.
func (l *roundRobinTrafficLight) Update(dt float64) {
	l.remaining -= dt
	for l.remaining <= 0 {
		if l.inAllRed {
			l.inAllRed = false
			l.remaining += l.greenTime
		} else {
			l.index = (l.index + 1) % len(l.order)
			l.inAllRed = true
			l.remaining += l.allRed
		}
	}
}

// Reset restarts the rotation from the first road.
func (l *roundRobinTrafficLight) Reset() {
	l.index = 0
	l.inAllRed = false
	l.remaining = l.greenTime
	l.Prepare()
}

// IsGreen reports whether roadID holds the green right now.
func (l *roundRobinTrafficLight) IsGreen(roadID int32) bool {
	return l.snapshot == roadID
}
