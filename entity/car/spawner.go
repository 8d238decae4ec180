package car

import (
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/randengine"
)

// numCarColors is the number of sprite variants the render consumer offers.
const numCarColors = 5

// spawner introduces new cars at the road entries. Every spawn round each
// road draws one Bernoulli trial; on success one car enters a random lane
// off-screen at half its desired speed, so it visibly accelerates into view
// instead of popping in.
type spawner struct {
	m *CarManager

	accumulated float64 // time since the last spawn round
}

func newSpawner(m *CarManager) *spawner {
	return &spawner{m: m}
}

// update runs spawn rounds on the configured cadence.
func (s *spawner) update(dt float64) {
	cfg := s.m.ctx.RuntimeConfig().Spawn()
	s.accumulated += dt
	for s.accumulated >= cfg.Period {
		s.accumulated -= cfg.Period
		s.spawnRound(cfg)
	}
}

func (s *spawner) spawnRound(cfg *config.Spawn) {
	model := s.m.ctx.RuntimeConfig().Model()
	gen := s.m.ctx.Rand()
	for _, road := range s.m.ctx.RoadManager().Roads() {
		if !gen.PTrue(cfg.Probability) {
			continue
		}
		lane, err := road.GetLane(s.pickLaneIndex(gen, cfg, road.LaneCount()))
		if err != nil {
			log.Errorf("spawn skipped: %v", err)
			continue
		}
		s.m.addCar(lane, cfg.EntryProgress, model.DesiredSpeed/2, model.DesiredSpeed)
	}
}

// pickLaneIndex draws a lane, weighted when the config carries one weight
// per lane and uniform otherwise.
func (s *spawner) pickLaneIndex(gen *randengine.Engine, cfg *config.Spawn, laneCount int32) int32 {
	if int32(len(cfg.Weights)) == laneCount {
		return gen.DiscreteDistribution(cfg.Weights)
	}
	return int32(gen.Intn(int(laneCount)))
}

// seed applies the initial placement list before the first tick. Invalid
// entries are logged and skipped one by one, they never abort the rest of
// the list.
func (s *spawner) seed(placements []config.Placement) {
	model := s.m.ctx.RuntimeConfig().Model()
	for _, p := range placements {
		road, err := s.m.ctx.RoadManager().GetOrError(p.RoadID)
		if err != nil {
			log.Errorf("placement rejected: %v", err)
			continue
		}
		lane, err := road.GetLane(p.LaneIndex)
		if err != nil {
			log.Errorf("placement rejected: %v", err)
			continue
		}
		s.m.addCar(lane, p.Progress, p.Speed, model.DesiredSpeed)
	}
}

// reset restarts the spawn cadence.
func (s *spawner) reset() {
	s.accumulated = 0
}
