package junction

import (
	"fmt"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
)

// JunctionManager owns the junctions of the network. The default network has
// a single junction, the manager keeps the map so larger grids stay cheap to
// add.
type JunctionManager struct {
	ctx entity.ITaskContext

	data      map[int32]*Junction
	junctions []*Junction

	// roadToJunction resolves IsGreen queries without going through the
	// junction lookup on every car.
	roadToJunction map[int32]*Junction
}

// NewManager creates an empty junction manager.
func NewManager(ctx entity.ITaskContext) *JunctionManager {
	return &JunctionManager{
		ctx:            ctx,
		data:           make(map[int32]*Junction),
		junctions:      make([]*Junction, 0),
		roadToJunction: make(map[int32]*Junction),
	}
}

// Init builds the junction from the config.
func (m *JunctionManager) Init(ctx entity.ITaskContext) {
	m.ctx = ctx
	cfg := ctx.RuntimeConfig()
	j := newJunction(ctx, 1, cfg.All.Junction, cfg.Signal(), ctx.RoadManager())
	m.junctions = []*Junction{j}
	m.data = map[int32]*Junction{j.id: j}
	for _, r := range j.roads {
		m.roadToJunction[r.ID()] = j
	}
}

// Get looks up a junction by ID and panics if it does not exist.
func (m *JunctionManager) Get(id int32) entity.IJunction {
	if j, ok := m.data[id]; !ok {
		log.Panicf("no id %d in junction data", id)
		return nil
	} else {
		return j
	}
}

// GetOrError looks up a junction by ID and returns an error if it does not
// exist.
func (m *JunctionManager) GetOrError(id int32) (entity.IJunction, error) {
	if j, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in junction data", id)
	} else {
		return j, nil
	}
}

// IsGreen reports whether roadID may cross its junction. Roads that never
// reach a junction are always green.
func (m *JunctionManager) IsGreen(roadID int32) bool {
	j, ok := m.roadToJunction[roadID]
	if !ok {
		return true
	}
	return j.IsGreen(roadID)
}

// Prepare snapshots every junction's phase.
func (m *JunctionManager) Prepare() {
	for _, j := range m.junctions {
		j.Prepare()
	}
}

// Update advances every junction's phase controller.
func (m *JunctionManager) Update(dt float64) {
	for _, j := range m.junctions {
		j.Update(dt)
	}
}

// Reset rewinds every signal to its initial phase.
func (m *JunctionManager) Reset() {
	for _, j := range m.junctions {
		j.Reset()
	}
}
