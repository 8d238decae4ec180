package config

// ControlStep sets the simulated time range and resolution.
type ControlStep struct {
	Start    int32   `yaml:"start"`    // first step index
	Total    int32   `yaml:"total"`    // number of steps to run
	Interval float64 `yaml:"interval"` // seconds per step
}

// Control is the top-level run control block.
type Control struct {
	Step ControlStep `yaml:"step"`
	Seed uint64      `yaml:"seed"` // random seed, same seed gives the same run
}

// Model holds the car-following tunables. All distances are in pixels,
// speeds in pixels per second.
type Model struct {
	MinGap             float64 `yaml:"min_gap"`             // jam distance s0
	Headway            float64 `yaml:"headway"`             // desired time headway T
	MaxAcceleration    float64 `yaml:"max_acceleration"`    // a_max
	ComfortableBraking float64 `yaml:"comfortable_braking"` // b, positive
	DesiredSpeed       float64 `yaml:"desired_speed"`       // free-flow speed v0
	IDMDelta           float64 `yaml:"idm_delta"`           // free-flow exponent
	AnticipationFactor float64 `yaml:"anticipation_factor"` // weight of the second leader's gap
	AnticipationRange  float64 `yaml:"anticipation_range"`  // look-ahead distance for multi-car sensing
	NoiseFactor        float64 `yaml:"noise_factor"`        // acceleration noise amplitude relative to a_max
}

// Placement seeds one car on a lane before the run starts.
type Placement struct {
	RoadID    int32   `yaml:"road"`
	LaneIndex int32   `yaml:"lane"`
	Progress  float64 `yaml:"progress"`
	Speed     float64 `yaml:"speed"`
}

// Spawn configures the stochastic car generator.
type Spawn struct {
	Period        float64     `yaml:"period"`         // seconds between spawn rounds
	Probability   float64     `yaml:"probability"`    // chance of one car per road per round
	EntryProgress float64     `yaml:"entry_progress"` // progress at which new cars enter, negative means off-screen
	Weights       []float64   `yaml:"weights"`        // per-lane-index selection weights
	Placements    []Placement `yaml:"placements"`     // initial cars
}

// Signal configures the junction controller.
type Signal struct {
	Policy  string  `yaml:"policy"`             // fixed, round_robin or volume
	Period  float64 `yaml:"period"`             // cycle length in seconds
	Cycle   []int32 `yaml:"cycle,flow"`         // phase boundaries inside the period
	MinHold float64 `yaml:"min_hold,omitempty"` // minimum green time for adaptive policies
	AllRed  float64 `yaml:"all_red,omitempty"`  // clearance time for adaptive policies
}

// Turn routes the end of one lane onto another road.
type Turn struct {
	Lane      int32 `yaml:"lane"`       // source lane index
	Road      int32 `yaml:"road"`       // destination road ID
	LaneIndex int32 `yaml:"lane_index"` // destination lane index
}

// RoadSpec describes one approach road of the network.
type RoadSpec struct {
	ID    int32      `yaml:"id"`
	Start [2]float64 `yaml:"start,flow"` // entry point, screen coordinates
	End   [2]float64 `yaml:"end,flow"`   // exit point
	Lanes int32      `yaml:"lanes"`
	Width float64    `yaml:"width"` // total paved width
	Turns []Turn     `yaml:"turns,omitempty"`
}

// Junction describes the signal-controlled box all roads pass through.
type Junction struct {
	Center [2]float64 `yaml:"center,flow"`
	Size   [2]float64 `yaml:"size,flow"` // width, height
}

// Config is the root of the YAML configuration file.
type Config struct {
	Control  Control    `yaml:"control"`
	Model    Model      `yaml:"model"`
	Spawn    Spawn      `yaml:"spawn"`
	Signal   Signal     `yaml:"signal"`
	Junction Junction   `yaml:"junction"`
	Roads    []RoadSpec `yaml:"roads"`
}
