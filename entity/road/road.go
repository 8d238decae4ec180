package road

import (
	"fmt"
	"math"

	"git.fiblab.net/general/common/v2/geometry"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
)

// Road is one approach of the network. All geometry is derived once at
// construction and immutable afterwards; only the lane contents change.
type Road struct {
	ctx entity.ITaskContext

	id        int32
	start     geometry.Point
	end       geometry.Point
	direction geometry.Point // unit vector start -> end
	normal    geometry.Point // unit perpendicular, lane offsets grow along it
	angle     float64        // heading in radians
	axis      entity.Axis
	length    float64 // pixels
	width     float64
	laneCount int32
	lanes     []entity.ILane // index 0 is the extreme side lane

	stopProgress float64
}

// newRoad derives the static geometry of one road from its spec and the
// junction footprint.
func newRoad(ctx entity.ITaskContext, spec config.RoadSpec, box entity.Rect) *Road {
	start := geometry.Point{X: spec.Start[0], Y: spec.Start[1]}
	end := geometry.Point{X: spec.End[0], Y: spec.End[1]}
	dx, dy := end.X-start.X, end.Y-start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		log.Panicf("road %d: start and end coincide", spec.ID)
	}
	if spec.Lanes <= 0 {
		log.Panicf("road %d: lane count must be positive", spec.ID)
	}
	axis := entity.AxisEW
	if math.Abs(dy) > math.Abs(dx) {
		axis = entity.AxisNS
	}
	return &Road{
		ctx:          ctx,
		id:           spec.ID,
		start:        start,
		end:          end,
		direction:    geometry.Point{X: dx / length, Y: dy / length},
		normal:       geometry.Point{X: -dy / length, Y: dx / length},
		angle:        math.Atan2(dy, dx),
		axis:         axis,
		length:       length,
		width:        spec.Width,
		laneCount:    spec.Lanes,
		stopProgress: ComputeStopProgress(start, end, box),
	}
}

// ComputeStopProgress intersects the segment start->end with the border of
// box and returns the parametric value of the hit closest to start, or 1 if
// the segment never enters the box. Axis-degenerate segments (zero dx or dy)
// simply skip the parallel border pair.
func ComputeStopProgress(start, end geometry.Point, box entity.Rect) float64 {
	dx, dy := end.X-start.X, end.Y-start.Y
	best := 1.0
	if dx != 0 {
		for _, x := range [2]float64{box.MinX, box.MaxX} {
			t := (x - start.X) / dx
			if t < 0 || t > 1 {
				continue
			}
			y := start.Y + t*dy
			if y >= box.MinY && y <= box.MaxY && t < best {
				best = t
			}
		}
	}
	if dy != 0 {
		for _, y := range [2]float64{box.MinY, box.MaxY} {
			t := (y - start.Y) / dy
			if t < 0 || t > 1 {
				continue
			}
			x := start.X + t*dx
			if x >= box.MinX && x <= box.MaxX && t < best {
				best = t
			}
		}
	}
	return best
}

// ID returns the road's identifier, -1 for a nil road.
func (r *Road) ID() int32 {
	if r == nil {
		return -1
	}
	return r.id
}

func (r *Road) String() string {
	return fmt.Sprintf("Road %d", r.id)
}

// Start returns the entry point of the road.
func (r *Road) Start() geometry.Point {
	return r.start
}

// End returns the exit point of the road.
func (r *Road) End() geometry.Point {
	return r.end
}

// Direction returns the unit vector from start to end.
func (r *Road) Direction() geometry.Point {
	return r.direction
}

// Normal returns the unit perpendicular of the direction.
func (r *Road) Normal() geometry.Point {
	return r.normal
}

// Angle returns the heading in radians.
func (r *Road) Angle() float64 {
	return r.angle
}

// Axis returns the phase axis (NS or EW) the road belongs to.
func (r *Road) Axis() entity.Axis {
	return r.axis
}

// Length returns the pixel length of the road segment.
func (r *Road) Length() float64 {
	return r.length
}

// Width returns the total paved width.
func (r *Road) Width() float64 {
	return r.width
}

// LaneCount returns the number of lanes.
func (r *Road) LaneCount() int32 {
	return r.laneCount
}

// Lanes returns the lanes ordered by index.
func (r *Road) Lanes() []entity.ILane {
	return r.lanes
}

// GetLane returns the lane with the given index inside the road.
func (r *Road) GetLane(index int32) (entity.ILane, error) {
	if index < 0 || index >= int32(len(r.lanes)) {
		return nil, fmt.Errorf("road %d has no lane index %d", r.id, index)
	}
	return r.lanes[index], nil
}

// StopProgress returns the fraction of the road at which it enters the
// junction box, 1 if it never does.
func (r *Road) StopProgress() float64 {
	return r.stopProgress
}

// CarCount returns the total number of cars over all lanes.
func (r *Road) CarCount() int32 {
	count := int32(0)
	for _, l := range r.lanes {
		count += l.CarCount()
	}
	return count
}

// AddLaneWhenInit attaches the next lane. Lanes must be added in index
// order during initialization.
func (r *Road) AddLaneWhenInit(l entity.ILane) {
	if int32(len(r.lanes)) >= r.laneCount {
		log.Panicf("road %d: too many lanes", r.id)
	}
	r.lanes = append(r.lanes, l)
}
