package entity

import (
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/clock"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/randengine"
)

// ITaskContext is the view every entity has of the running task. It breaks
// the import cycle between the managers, which all need to reach each other
// through the task that owns them.
type ITaskContext interface {
	Clock() *clock.Clock
	RoadManager() IRoadManager
	LaneManager() ILaneManager
	JunctionManager() IJunctionManager
	CarManager() ICarManager
	RuntimeConfig() *config.RuntimeConfig
	Rand() *randengine.Engine
}
