package car

import (
	"fmt"
	"math"

	"git.fiblab.net/general/common/v2/mathutil"
	"github.com/samber/lo"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
)

const (
	// turnEntryOffset is how far past the destination stop line a turning
	// car lands, as a progress fraction.
	turnEntryOffset = .01
	// maxTurnEntry caps the landing progress so a turn never places a car
	// at or beyond the road end.
	maxTurnEntry = .99
	// cleanupProgress is the progress beyond which a car has fully left the
	// screen and is removed. The slack past 1 keeps the car visible while
	// its sprite crosses the border.
	cleanupProgress = 1.1
)

// plan is one car's sensing result, computed against the start-of-tick
// state before anybody moves.
type plan struct {
	car *Car

	startS float64 // progress at the start of the tick
	newV   float64 // pixel speed after integration
	dS     float64 // progress delta after integration
}

// CarManager owns every car in the simulation and drives their dynamics.
//
// Update runs single-threaded in strict phases so the result never depends
// on iteration order: all cars sense the same start-of-tick snapshot, then
// all integrate, then the discrete rules (red-light containment, turning,
// anti-overlap, cleanup) run over the integrated state.
type CarManager struct {
	ctx entity.ITaskContext

	data map[string]*Car

	controller *controller
	spawner    *spawner

	countByRoad map[int32]int32 // snapshot taken at Prepare
	completed   int64           // cars that crossed and left the screen
}

// NewManager creates an empty car manager.
func NewManager(ctx entity.ITaskContext) *CarManager {
	return &CarManager{
		ctx:         ctx,
		data:        make(map[string]*Car),
		countByRoad: make(map[int32]int32),
	}
}

func (m *CarManager) Init(ctx entity.ITaskContext) {
	m.ctx = ctx
	m.controller = &controller{
		model:     ctx.RuntimeConfig().Model(),
		generator: ctx.Rand(),
	}
	m.spawner = newSpawner(m)
	m.spawner.seed(ctx.RuntimeConfig().Spawn().Placements)
	log.Debugf("car manager initialized with %d seeded cars", len(m.data))
}

// Get looks up a car by ID and panics if it does not exist.
func (m *CarManager) Get(id string) entity.ICar {
	if c, ok := m.data[id]; ok {
		return c
	}
	log.Panicf("no car with id %s", id)
	return nil
}

// GetOrError looks up a car by ID and returns an error if it does not exist.
func (m *CarManager) GetOrError(id string) (entity.ICar, error) {
	if c, ok := m.data[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("no car with id %s", id)
}

// Cars returns all cars in no particular order.
func (m *CarManager) Cars() []entity.ICar {
	return lo.MapToSlice(m.data, func(_ string, c *Car) entity.ICar { return c })
}

// CountByRoad returns the per-road car counts snapshotted at the last
// Prepare, so the adaptive signal policies read a stable value through the
// whole tick.
func (m *CarManager) CountByRoad() map[int32]int32 {
	return m.countByRoad
}

// Completed returns how many cars have fully crossed and left the screen
// since the start (or the last Reset).
func (m *CarManager) Completed() int64 {
	return m.completed
}

// addCar builds a car, registers it and queues the lane insertion. The car
// becomes visible to the dynamics after the next lane Prepare.
func (m *CarManager) addCar(lane entity.ILane, progress, pixelSpeed, desiredSpeed float64) *Car {
	id := lane.NextCarID()
	c := newCar(m.ctx, id, lane, progress, pixelSpeed, desiredSpeed, int32(m.ctx.Rand().Intn(numCarColors)))
	m.data[id] = c
	lane.AddCar(c.node)
	return c
}

// Prepare snapshots the per-road counts. It must run after the lane
// managers applied their buffered inserts.
func (m *CarManager) Prepare() {
	counts := make(map[int32]int32, len(m.countByRoad))
	for _, c := range m.data {
		counts[c.lane.ParentRoad().ID()]++
	}
	m.countByRoad = counts
}

// Update advances every car by dt seconds.
func (m *CarManager) Update(dt float64) {
	m.spawner.update(dt)

	plans := m.sense(dt)
	// integrate
	for i := range plans {
		p := &plans[i]
		p.car.node.S += p.dS
		p.car.speed = p.newV / p.car.lane.ParentRoad().Length()
	}
	m.containAtRedLights(plans)
	m.turn(plans)
	m.clampOverlaps()
	m.cleanup()
}

// sense walks every lane front to back and computes each car's acceleration
// from the sorted start-of-tick state.
func (m *CarManager) sense(dt float64) []plan {
	model := m.ctx.RuntimeConfig().Model()
	jm := m.ctx.JunctionManager()
	plans := make([]plan, 0, len(m.data))
	for _, lane := range m.ctx.LaneManager().Lanes() {
		road := lane.ParentRoad()
		roadLength := road.Length()
		stop := road.StopProgress()
		green := jm.IsGreen(road.ID())
		for node := lane.LastCar(); node != nil; node = node.Prev() {
			c := node.Value.(*Car)
			v := c.V()
			gap := mathutil.INF
			dv := .0
			if leader := node.Next(); leader != nil {
				gap1 := (leader.S - node.S) * roadLength
				gap = gap1
				dv = v - leader.V()
				if second := leader.Next(); second != nil && gap1 < model.AnticipationRange {
					// blend the next gap in so the car reacts one vehicle
					// ahead when the platoon is tight
					gap = gap1 + model.AnticipationFactor*(second.S-leader.S)*roadLength
					dv = (v - second.V()) / 2
				}
			}
			if !green && node.S <= stop {
				// the stop line acts as a standstill obstacle; it narrows
				// the gap but never feeds the closing-rate term, so the
				// approach stays smoother than tailing a real stopped car
				gap = math.Min(gap, (stop-node.S)*roadLength)
			}
			acc := m.controller.followImpl(v, c.desiredSpeed, dv, gap)
			newV, d := computeVAndDistance(v, acc, dt)
			plans = append(plans, plan{car: c, startS: node.S, newV: newV, dS: d / roadLength})
		}
	}
	return plans
}

// containAtRedLights snaps any car that crossed a red stop line within this
// tick back onto the line with zero speed. Cars that already started past
// the line are committed to the junction and keep going.
func (m *CarManager) containAtRedLights(plans []plan) {
	jm := m.ctx.JunctionManager()
	for i := range plans {
		p := &plans[i]
		c := p.car
		road := c.lane.ParentRoad()
		stop := road.StopProgress()
		if !jm.IsGreen(road.ID()) && p.startS <= stop && c.node.S > stop {
			c.node.S = stop
			c.speed = 0
		}
	}
}

// turn moves every eligible car onto its lane's destination in one shot.
// Eligible means the car reached the stop line, has a destination on
// another road, has not turned before, and either the light is green or
// the car was already inside the junction when the tick started.
func (m *CarManager) turn(plans []plan) {
	jm := m.ctx.JunctionManager()
	for i := range plans {
		p := &plans[i]
		c := p.car
		road := c.lane.ParentRoad()
		stop := road.StopProgress()
		dest := c.lane.Destination()
		if c.hasTurned || dest == c.lane || c.node.S < stop {
			continue
		}
		if !jm.IsGreen(road.ID()) && p.startS <= stop {
			continue
		}
		// list surgery is immediate, not buffered, so the turn is atomic:
		// the car is never in two lanes and never in none
		node := c.node
		node.Parent().Remove(node)
		c.hasTurned = true
		landing := math.Min(dest.ParentRoad().StopProgress()+turnEntryOffset, maxTurnEntry)
		c.moveTo(dest, landing)
		dest.Cars().Merge([]*entity.CarNode{node})
		log.Debugf("%s turned onto %s", c.id, dest)
	}
}

// clampOverlaps enforces the minimum spacing within each lane. Walking
// front to back guarantees a clamped leader is final before its follower
// is checked, so one pass restores the invariant for the whole lane.
func (m *CarManager) clampOverlaps() {
	minGap := m.ctx.RuntimeConfig().Model().MinGap
	for _, lane := range m.ctx.LaneManager().Lanes() {
		roadLength := lane.ParentRoad().Length()
		for node := lane.LastCar(); node != nil; node = node.Prev() {
			leader := node.Next()
			if leader == nil {
				continue
			}
			if (leader.S-node.S)*roadLength < minGap {
				c := node.Value.(*Car)
				c.node.S = leader.S - minGap/roadLength
				c.speed = 0
			}
		}
	}
}

// cleanup removes cars that left the screen.
func (m *CarManager) cleanup() {
	for _, lane := range m.ctx.LaneManager().Lanes() {
		for node := lane.LastCar(); node != nil; {
			prev := node.Prev()
			if node.S > cleanupProgress {
				c := node.Value.(*Car)
				lane.Cars().Remove(node)
				delete(m.data, c.id)
				m.completed++
				log.Debugf("%s left the screen and was removed", c.id)
			}
			node = prev
		}
	}
}

// Reset removes all cars and restarts the spawner. Clearing the lane lists
// is the lane manager's job.
func (m *CarManager) Reset() {
	m.data = make(map[string]*Car)
	m.countByRoad = make(map[int32]int32)
	m.completed = 0
	m.spawner.reset()
	m.spawner.seed(m.ctx.RuntimeConfig().Spawn().Placements)
}
