package car

import (
	"fmt"

	"git.fiblab.net/general/common/v2/geometry"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
)

// Car is pure kinematic state plus identity. All physics and mutation live
// in the manager; the car itself only answers queries.
//
// Position is stored as road progress (node.S) and speed normalized to the
// road length, so speed times road length is the physical pixel speed. The
// lane's list node is the authoritative container membership; the lane
// field is a back-reference for geometry lookups.
type Car struct {
	ctx entity.ITaskContext

	id           string
	colorIndex   int32
	desiredSpeed float64 // pixels per second

	lane      entity.ILane
	node      *entity.CarNode
	speed     float64 // normalized, physical speed / road length
	hasTurned bool
}

// newCar creates a car on lane at the given progress with the given pixel
// speed. The caller owns insertion into the lane list.
func newCar(ctx entity.ITaskContext, id string, lane entity.ILane, progress, pixelSpeed, desiredSpeed float64, colorIndex int32) *Car {
	c := &Car{
		ctx:          ctx,
		id:           id,
		colorIndex:   colorIndex,
		desiredSpeed: desiredSpeed,
		lane:         lane,
		speed:        pixelSpeed / lane.ParentRoad().Length(),
	}
	c.node = &entity.CarNode{S: progress, Value: c}
	return c
}

func (c *Car) String() string {
	return fmt.Sprintf("Car %s (lane %d, s %.3f)", c.id, c.lane.ID(), c.node.S)
}

// ID returns the car's human-readable identifier.
func (c *Car) ID() string {
	return c.id
}

// Lane returns the lane the car currently runs on.
func (c *Car) Lane() entity.ILane {
	return c.lane
}

// S returns the position along the road as a fraction of its length.
func (c *Car) S() float64 {
	return c.node.S
}

// V returns the current speed in pixels per second.
func (c *Car) V() float64 {
	return c.speed * c.lane.ParentRoad().Length()
}

// DesiredSpeed returns the target cruising speed in pixels per second.
func (c *Car) DesiredSpeed() float64 {
	return c.desiredSpeed
}

// HasTurned reports whether the car already took its one allowed turn.
func (c *Car) HasTurned() bool {
	return c.hasTurned
}

// ColorIndex returns the sprite variant for the render consumer.
func (c *Car) ColorIndex() int32 {
	return c.colorIndex
}

// XY returns the screen position including the lane offset.
func (c *Car) XY() geometry.Point {
	return c.lane.GetPositionByS(c.node.S)
}

// moveTo reassigns the car to dest at the given progress, preserving the
// physical speed across the road length change. List surgery is the
// caller's job.
func (c *Car) moveTo(dest entity.ILane, progress float64) {
	pixelV := c.V()
	c.lane = dest
	c.node.S = progress
	c.speed = pixelV / dest.ParentRoad().Length()
}
