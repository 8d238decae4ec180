package road

import (
	"fmt"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
)

// RoadManager owns all Road entities and provides lookup by ID.
type RoadManager struct {
	ctx entity.ITaskContext

	data  map[int32]*Road
	roads []*Road
}

// NewManager creates an empty road manager.
func NewManager(ctx entity.ITaskContext) *RoadManager {
	return &RoadManager{
		ctx:   ctx,
		data:  make(map[int32]*Road),
		roads: make([]*Road, 0),
	}
}

// Init builds all roads from the config against the junction footprint.
func (m *RoadManager) Init(specs []config.RoadSpec, junction config.Junction) {
	box := entity.NewRect(junction.Center, junction.Size)
	m.roads = parallel.GoMap(specs, func(spec config.RoadSpec) *Road {
		return newRoad(m.ctx, spec, box)
	})
	m.data = lo.SliceToMap(m.roads, func(r *Road) (int32, *Road) {
		return r.id, r
	})
	if len(m.data) != len(m.roads) {
		log.Panicf("duplicate road IDs in config")
	}
}

// Get looks up a road by ID and panics if it does not exist.
func (m *RoadManager) Get(id int32) entity.IRoad {
	if road, ok := m.data[id]; !ok {
		log.Panicf("no id %d in road data", id)
		return nil
	} else {
		return road
	}
}

// GetOrError looks up a road by ID and returns an error if it does not exist.
func (m *RoadManager) GetOrError(id int32) (entity.IRoad, error) {
	if road, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in road data", id)
	} else {
		return road, nil
	}
}

// Roads returns all roads in config order.
func (m *RoadManager) Roads() []entity.IRoad {
	return lo.Map(m.roads, func(r *Road, _ int) entity.IRoad { return r })
}
