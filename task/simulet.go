package task

import (
	"flag"
	"time"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 600, "number of steps between heartbeat log lines")
)

// prepare settles the world before anybody moves: buffered lane inserts
// become visible, the car counts are snapshotted and the signal picks the
// phase for this step. After prepare nothing changes until update.
func (ctx *Context) prepare() {
	if *heartBeatInterval > 0 && ctx.clock.InternalStep%int32(*heartBeatInterval) == 0 {
		log.Infof("STEP: %d (%s, %d cars)", ctx.clock.InternalStep, ctx.clock, len(ctx.carManager.Cars()))
	}

	ctx.laneManager.Prepare()
	ctx.carManager.Prepare()
	ctx.junctionManager.Prepare()
}

// update runs the dynamics of one step against the prepared state.
func (ctx *Context) update() {
	ctx.junctionManager.Update(ctx.clock.DT)
	ctx.carManager.Update(ctx.clock.DT)
}

// Step advances the simulation by exactly one step. Paused tasks do
// nothing, so an interactive frontend can keep calling Step at its frame
// rate and toggle Pause freely.
func (ctx *Context) Step() {
	if ctx.paused.Load() {
		return
	}
	ctx.prepare()
	ctx.update()
	ctx.clock.Tick()
}

// Run initializes the task and steps until the configured end of the run
// or until Close is called.
func (ctx *Context) Run() {
	ctx.Init()
	for !ctx.clock.Done() {
		if ctx.closed.Load() {
			break
		}
		if ctx.paused.Load() {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		ctx.Step()
	}
	log.Infof("task %s complete at %s", ctx.job, ctx.clock)
}
