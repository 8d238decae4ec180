package car

import (
	"math"

	"github.com/samber/lo"

	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/randengine"
)

const (
	// zeroAThreshold is the magnitude below which an acceleration is left
	// unperturbed by noise.
	zeroAThreshold = .1
)

// controller computes longitudinal accelerations. It is shared by all cars;
// the model tunables are read from the runtime config every call so they can
// be adjusted live.
type controller struct {
	model     *config.Model
	generator *randengine.Engine
}

// followImpl is the Intelligent Driver Model. selfV and dv are pixel speeds,
// distance the effective pixel gap to the leader (or virtual obstacle).
//
// https://en.wikipedia.org/wiki/Intelligent_driver_model
func (c *controller) followImpl(selfV, targetV, dv, distance float64) float64 {
	m := c.model
	if distance <= m.MinGap {
		// emergency proximity, hard braking regardless of the formula; this
		// branch also guards s -> 0 blowing up the gap term
		return -m.ComfortableBraking
	}
	sStar := m.MinGap + selfV*m.Headway +
		selfV*math.Max(0, dv)/(2*math.Sqrt(m.MaxAcceleration*m.ComfortableBraking))
	acc := m.MaxAcceleration * (1 - math.Pow(selfV/targetV, m.IDMDelta) - math.Pow(sStar/distance, 2))
	acc = lo.Clamp(acc, -m.ComfortableBraking, m.MaxAcceleration)
	// bounded perturbation against perfectly synchronized platoons; small
	// accelerations stay untouched and the noise never flips the sign
	noiseAcc := m.NoiseFactor * m.MaxAcceleration * lo.Clamp(.5*c.generator.NormFloat64(), -1, 1)
	if math.Abs(acc) >= zeroAThreshold && math.Signbit(acc) == math.Signbit(acc+noiseAcc) {
		acc += noiseAcc
	}
	return acc
}

// computeVAndDistance integrates one step:
// v(t)=v(t-1)+a*dt, ds=v(t-1)*dt+a*dt*dt/2.
// Braking never runs the speed below zero; the travelled distance is cut at
// the standstill point.
func computeVAndDistance(v, a, dt float64) (float64, float64) {
	dv := a * dt
	if v+dv < 0 {
		// braking to a stop
		return 0, v * v / 2 / -a
	}
	return v + dv, (v + dv/2) * dt
}
