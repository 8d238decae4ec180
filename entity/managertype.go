package entity

import (
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
)

// Manager dependency inversions.

// IRoadManager is the dependency inversion of entity/road.Manager.
type IRoadManager interface {
	Init(specs []config.RoadSpec, junction config.Junction)

	// Get looks up a road by ID and panics if it does not exist.
	Get(id int32) IRoad
	// GetOrError looks up a road by ID and returns an error if it does not exist.
	GetOrError(id int32) (IRoad, error)

	Roads() []IRoad
}

// ILaneManager is the dependency inversion of entity/lane.Manager.
type ILaneManager interface {
	Init(specs []config.RoadSpec, roadManager IRoadManager)

	// Get looks up a lane by ID and panics if it does not exist.
	Get(id int32) ILane
	// GetOrError looks up a lane by ID and returns an error if it does not exist.
	GetOrError(id int32) (ILane, error)

	Lanes() []ILane

	Prepare() // apply buffered car moves on every lane
	Reset()   // clear every lane
}

// IJunctionManager is the dependency inversion of entity/junction.Manager.
type IJunctionManager interface {
	Init(ctx ITaskContext)

	// Get looks up a junction by ID and panics if it does not exist.
	Get(id int32) IJunction
	// GetOrError looks up a junction by ID and returns an error if it does not exist.
	GetOrError(id int32) (IJunction, error)

	// IsGreen reports whether the given road may cross its junction.
	IsGreen(roadID int32) bool

	Prepare()
	Update(dt float64)
	Reset() // rewind every signal to its initial phase
}

// ICarManager is the dependency inversion of entity/car.Manager.
type ICarManager interface {
	Init(ctx ITaskContext)

	// Get looks up a car by ID and panics if it does not exist.
	Get(id string) ICar
	// GetOrError looks up a car by ID and returns an error if it does not exist.
	GetOrError(id string) (ICar, error)

	Cars() []ICar
	CountByRoad() map[int32]int32
	Completed() int64 // cars that finished their transit since the last reset

	Prepare()          // snapshot update after lane lists settle
	Update(dt float64) // car dynamics, turning, clamping, spawning, cleanup
	Reset()            // remove all cars and restart spawn state
}
