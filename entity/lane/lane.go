package lane

import (
	"fmt"

	"git.fiblab.net/general/common/v2/geometry"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
)

// Lane is one strip of a road. Its sorted car list is the authoritative
// container for the cars running on it; a car's lane reference is only a
// back-pointer for geometry lookups.
type Lane struct {
	ctx entity.ITaskContext

	id         int32
	index      int32        // position within the road, 0 is the extreme side
	offset     float64      // lateral offset from the road centerline
	parentRoad entity.IRoad

	// destination is the turn target of the lane. For a straight lane it is
	// the lane itself; for a turning lane it points to one lane on another
	// road.
	destination entity.ILane

	cars laneList[entity.ICar, struct{}]

	carCounter int32 // per-lane car ID counter
}

// newLane creates the lane at the given index of road. The lateral offset is
// symmetric around the road centerline.
func newLane(ctx entity.ITaskContext, id int32, road entity.IRoad, index int32) *Lane {
	l := &Lane{
		ctx:        ctx,
		id:         id,
		index:      index,
		offset:     (float64(index) - float64(road.LaneCount()-1)/2) * (road.Width() / float64(road.LaneCount())),
		parentRoad: road,
	}
	l.destination = l
	l.cars = newLaneList[entity.ICar, struct{}](fmt.Sprintf("lane %d cars", l.id))
	return l
}

// SetDestinationWhenInit wires the turn target of the lane. The target must
// live on a different road; a second hop is prevented per car by its
// one-shot turn flag, not here.
func (l *Lane) SetDestinationWhenInit(dest entity.ILane) {
	if dest.ParentRoad() == l.parentRoad {
		log.Panicf("lane %d: turn target %d is on the same road", l.id, dest.ID())
	}
	l.destination = dest
}

func (l *Lane) String() string {
	return fmt.Sprintf("Lane %d (road %d, index %d)", l.id, l.parentRoad.ID(), l.index)
}

// ID returns the lane's identifier, -1 for a nil lane.
func (l *Lane) ID() int32 {
	if l == nil {
		return -1
	}
	return l.id
}

// Index returns the lane's position within its road.
func (l *Lane) Index() int32 {
	return l.index
}

// Offset returns the lateral offset from the road centerline in pixels.
func (l *Lane) Offset() float64 {
	return l.offset
}

// ParentRoad returns the road the lane belongs to.
func (l *Lane) ParentRoad() entity.IRoad {
	return l.parentRoad
}

// Destination returns the turn target, the lane itself when it goes straight.
func (l *Lane) Destination() entity.ILane {
	return l.destination
}

// GetPositionByS converts road progress to this lane's screen position by
// blending along the road segment and shifting by the lateral offset.
func (l *Lane) GetPositionByS(s float64) geometry.Point {
	r := l.parentRoad
	p := geometry.Blend(r.Start(), r.End(), s)
	n := r.Normal()
	return geometry.Point{X: p.X + n.X*l.offset, Y: p.Y + n.Y*l.offset}
}

// FirstCar returns the rearmost car's node, nil when the lane is empty.
func (l *Lane) FirstCar() *entity.CarNode {
	return l.cars.list.First()
}

// LastCar returns the frontmost car's node, nil when the lane is empty.
func (l *Lane) LastCar() *entity.CarNode {
	return l.cars.list.Last()
}

// Cars returns the sorted car list.
func (l *Lane) Cars() *entity.CarList {
	return l.cars.list
}

// CarCount returns the number of cars currently in the list.
func (l *Lane) CarCount() int32 {
	return int32(l.cars.list.Len())
}

// AddCar schedules node for insertion, effective after the next Prepare.
func (l *Lane) AddCar(node *entity.CarNode) {
	l.cars.add(node)
}

// RemoveCar schedules node for removal, effective after the next Prepare.
func (l *Lane) RemoveCar(node *entity.CarNode) {
	l.cars.remove(node)
}

// NextCarID draws the next human-readable car ID of this lane.
func (l *Lane) NextCarID() string {
	l.carCounter++
	return fmt.Sprintf("%d-C%d", l.id, l.carCounter)
}

// Prepare applies the buffered car moves and restores sort order.
func (l *Lane) Prepare() {
	l.cars.prepare()
}

// Reset drops all cars and restarts the ID counter.
func (l *Lane) Reset() {
	l.cars.clear()
	l.carCounter = 0
}
