package task

import (
	"sync/atomic"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/clock"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity/car"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity/junction"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity/lane"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity/road"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/randengine"
)

// Context holds all state of one simulation task. It replaces global
// variables: every manager reaches its peers through the context, which is
// also what makes two independent simulations in one process possible.
type Context struct {
	// task name, only used in logs
	job string

	closed atomic.Bool
	paused atomic.Bool

	clock *clock.Clock

	roadManager     entity.IRoadManager
	laneManager     entity.ILaneManager
	junctionManager entity.IJunctionManager
	carManager      entity.ICarManager

	runtimeConfig *config.RuntimeConfig
	generator     *randengine.Engine
}

// NewContext creates all simulation components from the config. Call Init
// (or Run, which does it) before stepping.
func NewContext(job string, c config.Config) *Context {
	ctx := &Context{job: job}
	ctx.runtimeConfig = config.NewRuntimeConfig(c)
	ctx.clock = clock.New(ctx.runtimeConfig.C.Step)
	ctx.generator = randengine.New(ctx.runtimeConfig.C.Seed)

	ctx.roadManager = road.NewManager(ctx)
	ctx.laneManager = lane.NewManager(ctx)
	ctx.junctionManager = junction.NewManager(ctx)
	ctx.carManager = car.NewManager(ctx)
	return ctx
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) RoadManager() entity.IRoadManager {
	return ctx.roadManager
}

func (ctx *Context) LaneManager() entity.ILaneManager {
	return ctx.laneManager
}

func (ctx *Context) JunctionManager() entity.IJunctionManager {
	return ctx.junctionManager
}

func (ctx *Context) CarManager() entity.ICarManager {
	return ctx.carManager
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

func (ctx *Context) Rand() *randengine.Engine {
	return ctx.generator
}

// Init builds the world in dependency order: roads first, lanes on the
// roads, the signal over the roads, cars last.
func (ctx *Context) Init() {
	ctx.clock.Init()

	cfg := &ctx.runtimeConfig.All
	log.Infof("Road: %d", len(cfg.Roads))
	log.Infof("Signal policy: %s", cfg.Signal.Policy)

	ctx.roadManager.Init(cfg.Roads, cfg.Junction)
	ctx.laneManager.Init(cfg.Roads, ctx.roadManager)
	ctx.junctionManager.Init(ctx)
	ctx.carManager.Init(ctx)
}

// Pause freezes the simulation; Step becomes a no-op until Resume.
func (ctx *Context) Pause() {
	ctx.paused.Store(true)
}

// Resume lifts a pause.
func (ctx *Context) Resume() {
	ctx.paused.Store(false)
}

// Paused reports whether the simulation is frozen.
func (ctx *Context) Paused() bool {
	return ctx.paused.Load()
}

// Reset rewinds the task to its initial state: time at the start step, all
// spawned cars gone, the initial placements back in place.
func (ctx *Context) Reset() {
	ctx.clock.Init()
	ctx.laneManager.Reset()
	ctx.junctionManager.Reset()
	ctx.carManager.Reset()
	log.Infof("task %s reset", ctx.job)
}

// Statistics is the in-memory summary of the run so far. Nothing is
// persisted; a frontend polls this between steps.
type Statistics struct {
	// CarsByRoad holds the per-road car counts of the last prepared step.
	CarsByRoad map[int32]int32
	// Completed counts cars that fully crossed and left the screen.
	Completed int64
}

// Statistics returns the current run summary.
func (ctx *Context) Statistics() Statistics {
	return Statistics{
		CarsByRoad: ctx.carManager.CountByRoad(),
		Completed:  ctx.carManager.Completed(),
	}
}

// Close asks a running Run loop to stop after the current step.
func (ctx *Context) Close() {
	ctx.closed.Store(true)
}
