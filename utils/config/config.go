package config

// Defaults applied where the YAML leaves a field zero.
const (
	DefaultInterval           = 1.0 / 60
	DefaultMinGap             = 10
	DefaultHeadway            = 1.0
	DefaultMaxAcceleration    = 120
	DefaultComfortableBraking = 160
	DefaultDesiredSpeed       = 180
	DefaultIDMDelta           = 4
	DefaultAnticipationFactor = 0.5
	DefaultAnticipationRange  = 200
	DefaultSpawnPeriod        = 1.0
	DefaultSpawnProbability   = 0.5
	DefaultEntryProgress      = -0.05
	DefaultSignalPeriod       = 8
)

// RuntimeConfig is the validated configuration the simulation runs on.
type RuntimeConfig struct {
	All Config
	C   Control
}

// NewRuntimeConfig validates config and fills in defaults.
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	if config.Control.Step.Interval <= 0 {
		config.Control.Step.Interval = DefaultInterval
	}
	m := &config.Model
	if m.MinGap <= 0 {
		m.MinGap = DefaultMinGap
	}
	if m.Headway <= 0 {
		m.Headway = DefaultHeadway
	}
	if m.MaxAcceleration <= 0 {
		m.MaxAcceleration = DefaultMaxAcceleration
	}
	if m.ComfortableBraking <= 0 {
		m.ComfortableBraking = DefaultComfortableBraking
	}
	if m.DesiredSpeed <= 0 {
		m.DesiredSpeed = DefaultDesiredSpeed
	}
	if m.IDMDelta <= 0 {
		m.IDMDelta = DefaultIDMDelta
	}
	if m.AnticipationFactor <= 0 {
		m.AnticipationFactor = DefaultAnticipationFactor
	}
	if m.AnticipationRange <= 0 {
		m.AnticipationRange = DefaultAnticipationRange
	}
	s := &config.Spawn
	if s.Period <= 0 {
		s.Period = DefaultSpawnPeriod
	}
	if s.Probability <= 0 {
		s.Probability = DefaultSpawnProbability
	}
	if s.EntryProgress == 0 {
		s.EntryProgress = DefaultEntryProgress
	}
	if config.Signal.Period <= 0 {
		config.Signal.Period = DefaultSignalPeriod
	}

	rc.All = config
	rc.C = config.Control

	return rc
}

// Model returns the car-following tunables.
func (rc *RuntimeConfig) Model() *Model {
	return &rc.All.Model
}

// Spawn returns the car generator settings.
func (rc *RuntimeConfig) Spawn() *Spawn {
	return &rc.All.Spawn
}

// Signal returns the junction controller settings.
func (rc *RuntimeConfig) Signal() *Signal {
	return &rc.All.Signal
}
