package clock

import (
	"fmt"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
)

// Clock drives the fixed-step simulation time. The run covers the step
// interval [START_STEP, END_STEP) and each step advances T by DT seconds.
type Clock struct {
	DT         float64 // seconds per step
	START_STEP int32   // first step
	END_STEP   int32   // one past the last step

	T            float64 // current simulated time in seconds
	InternalStep int32   // current step
}

// New creates a clock from the step configuration.
func New(stepConfig config.ControlStep) *Clock {
	c := &Clock{
		DT:         stepConfig.Interval,
		START_STEP: stepConfig.Start,
		END_STEP:   stepConfig.Start + stepConfig.Total,
	}
	c.Init()
	return c
}

// Init rewinds the clock to the start of the run.
func (c *Clock) Init() {
	c.InternalStep = c.START_STEP
	c.T = float64(c.InternalStep) * c.DT
}

// Tick advances the clock by one step.
func (c *Clock) Tick() {
	c.InternalStep++
	c.T = float64(c.InternalStep) * c.DT
}

// Done reports whether the run interval is exhausted.
func (c *Clock) Done() bool {
	return c.InternalStep >= c.END_STEP
}

// String formats the current time as HH:MM:SS.
func (c *Clock) String() string {
	t := c.T
	h := int(t / 3600)
	t -= float64(h * 3600)
	m := int(t / 60)
	t -= float64(m * 60)
	s := int(t)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
