package junction

import (
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/entity/junction/trafficlight"
	"github.com/eylon-gilad/Traffic-Light-and-Enjoy/utils/config"
)

// Signal policy names accepted in the config.
const (
	PolicyFixed      = "fixed"
	PolicyRoundRobin = "round_robin"
	PolicyVolume     = "volume"
)

// newController maps the configured policy name to a phase controller. An
// empty policy falls back to the fixed cycle.
func newController(roads []entity.IRoad, cfg *config.Signal) entity.ISignalController {
	switch cfg.Policy {
	case PolicyFixed, "":
		return trafficlight.NewFixedCycleTrafficLight(roads, cfg)
	case PolicyRoundRobin:
		return trafficlight.NewRoundRobinTrafficLight(roads, cfg)
	case PolicyVolume:
		return trafficlight.NewVolumeTrafficLight(roads, cfg)
	default:
		log.Panicf("unknown signal policy %q", cfg.Policy)
		return nil
	}
}
