package lane

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
)

// LaneManager owns all Lane entities and provides lookup by ID.
type LaneManager struct {
	ctx entity.ITaskContext

	data  map[int32]*Lane
	lanes []*Lane
}

// NewManager creates an empty lane manager.
func NewManager(ctx entity.ITaskContext) *LaneManager {
	return &LaneManager{
		ctx:   ctx,
		data:  make(map[int32]*Lane),
		lanes: make([]*Lane, 0),
	}
}

// Init builds the lanes of every road in index order and wires the turn
// targets afterwards. Lane IDs are assigned sequentially in creation order,
// so they are stable for a given config.
func (m *LaneManager) Init(specs []config.RoadSpec, roadManager entity.IRoadManager) {
	nextID := int32(1)
	for _, spec := range specs {
		road := roadManager.Get(spec.ID)
		for index := int32(0); index < spec.Lanes; index++ {
			l := newLane(m.ctx, nextID, road, index)
			nextID++
			m.lanes = append(m.lanes, l)
			road.AddLaneWhenInit(l)
		}
	}
	m.data = lo.SliceToMap(m.lanes, func(l *Lane) (int32, *Lane) {
		return l.id, l
	})
	// turn wiring needs every lane to exist first
	for _, spec := range specs {
		road := roadManager.Get(spec.ID)
		for _, turn := range spec.Turns {
			src, err := road.GetLane(turn.Lane)
			if err != nil {
				log.Panicf("turn wiring: %v", err)
			}
			destRoad, err := roadManager.GetOrError(turn.Road)
			if err != nil {
				log.Panicf("turn wiring: %v", err)
			}
			dest, err := destRoad.GetLane(turn.LaneIndex)
			if err != nil {
				log.Panicf("turn wiring: %v", err)
			}
			src.SetDestinationWhenInit(dest)
		}
	}
}

// Get looks up a lane by ID and panics if it does not exist.
func (m *LaneManager) Get(id int32) entity.ILane {
	if lane, ok := m.data[id]; !ok {
		log.Panicf("no id %d in lane data", id)
		return nil
	} else {
		return lane
	}
}

// GetOrError looks up a lane by ID and returns an error if it does not exist.
func (m *LaneManager) GetOrError(id int32) (entity.ILane, error) {
	if lane, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in lane data", id)
	} else {
		return lane, nil
	}
}

// Lanes returns all lanes in creation order.
func (m *LaneManager) Lanes() []entity.ILane {
	return lo.Map(m.lanes, func(l *Lane, _ int) entity.ILane { return l })
}

// Prepare applies buffered car moves on every lane. The tick itself is
// single-threaded, so a plain loop is enough.
func (m *LaneManager) Prepare() {
	for _, l := range m.lanes {
		l.Prepare()
	}
}

// Reset clears every lane and restarts the per-lane ID counters.
func (m *LaneManager) Reset() {
	for _, l := range m.lanes {
		l.Reset()
	}
}
