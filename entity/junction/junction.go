package junction

import (
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
)

// Junction is the signal-controlled box the roads cross. It owns the phase
// controller; the simulation core only ever asks it whether a road is green.
type Junction struct {
	ctx entity.ITaskContext

	id         int32
	box        entity.Rect
	roads      []entity.IRoad
	controller entity.ISignalController
}

// newJunction creates the junction with all roads whose segment actually
// reaches the footprint; roads that never enter the box are unsignaled.
func newJunction(ctx entity.ITaskContext, id int32, cfg config.Junction, signal *config.Signal, roadManager entity.IRoadManager) *Junction {
	j := &Junction{
		ctx: ctx,
		id:  id,
		box: entity.NewRect(cfg.Center, cfg.Size),
	}
	for _, r := range roadManager.Roads() {
		if r.StopProgress() < 1 {
			j.roads = append(j.roads, r)
		}
	}
	if len(j.roads) > 0 {
		j.controller = newController(j.roads, signal)
	}
	return j
}

// ID returns the junction's identifier, -1 for a nil junction.
func (j *Junction) ID() int32 {
	if j == nil {
		return -1
	}
	return j.id
}

// Box returns the junction footprint.
func (j *Junction) Box() entity.Rect {
	return j.box
}

// Controller returns the phase controller, nil when the junction controls
// no road.
func (j *Junction) Controller() entity.ISignalController {
	return j.controller
}

// IsGreen reports whether roadID may cross. A junction without a controller
// is always green.
func (j *Junction) IsGreen(roadID int32) bool {
	if j.controller == nil {
		return true
	}
	return j.controller.IsGreen(roadID)
}

// Prepare snapshots the phase for the coming tick.
func (j *Junction) Prepare() {
	if j.controller != nil {
		j.controller.Prepare()
	}
}

// Update advances the phase controller.
func (j *Junction) Update(dt float64) {
	if j.controller != nil {
		j.controller.Update(dt)
	}
}

// Reset rewinds the phase controller to its initial phase.
func (j *Junction) Reset() {
	if j.controller != nil {
		j.controller.Reset()
	}
}
