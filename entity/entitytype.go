package entity

import (
	"git.fiblab.net/general/common/v2/geometry"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/container"
)

// Axis groups a road by its main direction, used by the signal controllers
// to assign roads to the two conflicting phases.
type Axis uint8

const (
	AxisNS Axis = iota // north-south
	AxisEW             // east-west
)

func (a Axis) String() string {
	if a == AxisNS {
		return "NS"
	}
	return "EW"
}

// Other returns the conflicting axis.
func (a Axis) Other() Axis {
	if a == AxisNS {
		return AxisEW
	}
	return AxisNS
}

// Rect is an axis-aligned rectangle in screen coordinates, the junction
// footprint the stop lines are computed against.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect builds a Rect from a center point and a (width, height) size.
func NewRect(center, size [2]float64) Rect {
	return Rect{
		MinX: center[0] - size[0]/2,
		MinY: center[1] - size[1]/2,
		MaxX: center[0] + size[0]/2,
		MaxY: center[1] + size[1]/2,
	}
}

// Contains reports whether p lies inside the rectangle (borders included).
func (r Rect) Contains(p geometry.Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// CarNode is one car's node in a lane list.
type CarNode = container.ListNode[ICar, struct{}]

// CarList is the sorted car list of one lane.
type CarList = container.List[ICar, struct{}]

// ICar is the dependency inversion of entity/car.Car.
type ICar interface {
	String() string

	ID() string        // human-readable car ID
	Lane() ILane       // the lane the car currently runs on
	S() float64        // position along the road as a fraction of its length
	V() float64        // current speed in pixels per second
	DesiredSpeed() float64
	HasTurned() bool    // whether the car already took its one allowed turn
	ColorIndex() int32  // sprite variant for the render consumer
	XY() geometry.Point // screen position including the lane offset
}

// ILane is the dependency inversion of entity/lane.Lane.
type ILane interface {
	String() string

	// init

	SetDestinationWhenInit(dest ILane) // wire the turn target

	// getter

	ID() int32
	Index() int32      // index within the road, 0 is the extreme side lane
	Offset() float64   // lateral offset from the road centerline in pixels
	ParentRoad() IRoad // the road the lane belongs to
	Destination() ILane // turn target, the lane itself when the lane goes straight

	GetPositionByS(s float64) geometry.Point // convert road progress to screen coordinates on this lane

	// car access

	FirstCar() *CarNode // rearmost car (smallest S)
	LastCar() *CarNode  // frontmost car (largest S)
	Cars() *CarList
	CarCount() int32

	// car list operations, effective after the next Prepare

	AddCar(node *CarNode)
	RemoveCar(node *CarNode)

	NextCarID() string // draw the next per-lane car ID

	Prepare() // apply buffered add/remove and restore sort order
	Reset()   // drop all cars and restart the ID counter
}

// IRoad is the dependency inversion of entity/road.Road.
type IRoad interface {
	String() string

	ID() int32
	Start() geometry.Point     // entry point
	End() geometry.Point       // exit point
	Direction() geometry.Point // unit vector from start to end
	Normal() geometry.Point    // unit perpendicular, used for lane offsets
	Angle() float64            // heading in radians
	Axis() Axis
	Length() float64 // pixel length of the segment
	Width() float64
	LaneCount() int32
	Lanes() []ILane
	GetLane(index int32) (ILane, error)
	StopProgress() float64 // fraction where the road enters the junction box, 1 if it never does
	CarCount() int32       // total cars over all lanes

	AddLaneWhenInit(l ILane)
}

// ISignalController decides which roads may cross the junction. The
// simulation core only ever asks IsGreen; the phase selection policy behind
// it is swappable.
type ISignalController interface {
	Prepare()
	Update(dt float64)
	IsGreen(roadID int32) bool
	Reset() // rewind to the initial phase
}

// IJunction is the dependency inversion of entity/junction.Junction.
type IJunction interface {
	ID() int32
	Box() Rect
	Controller() ISignalController
	IsGreen(roadID int32) bool

	Prepare()
	Update(dt float64)
	Reset()
}
