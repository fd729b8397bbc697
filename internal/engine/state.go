// Package engine drives the tsunami simulation: the phase state
// machine, wave and water kinematics, entity behavior, damage
// resolution, particle lifecycle, and statistics.
package engine

import (
	"github.com/talgya/tsunami-sim/internal/people"
	"github.com/talgya/tsunami-sim/internal/world"
)

// Stats holds monotonic counters derived from entity-state
// transitions. Each counter is incremented exactly once at the moment
// the corresponding terminal flag flips, never recomputed by scanning.
type Stats struct {
	Casualties         int
	Survivors          int
	BuildingsDestroyed int
	VehiclesDestroyed  int
}

// EarthquakeState holds the time-varying quake fields.
type EarthquakeState struct {
	Active      bool
	Intensity   float64 // Shake intensity for the renderer
	PlateOffset float64 // Permanent seafloor displacement
}

// WaveState holds the scalar wave fields.
type WaveState struct {
	Position float64 // Crest x during propagation, front x during flooding
	Height   float64
	Speed    float64
	Energy   float64
	FrontX   float64 // Leading edge of inundating water
}

// Camera is read and written by the host's input layer only; the
// engine never touches it.
type Camera struct {
	X, Y float64
	Zoom float64
}

// ParticleKind tags short-lived visual-effect particles.
type ParticleKind uint8

const (
	ParticleSplash ParticleKind = iota
	ParticleSpray
	ParticleDust
)

// Particle is a short-lived effect entity, removed once Life runs out.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // Remaining ms
	MaxLife float64
	Size    float64
	Kind    ParticleKind
}

// State is the complete world snapshot for one run. It is exclusively
// owned by its Simulation, which mutates it in place within a single
// Update call.
type State struct {
	Phase     Phase
	Time      float64 // Simulated ms since Start
	PhaseTime float64 // Simulated ms within the current phase
	SpeedMult float64 // User-adjustable time multiplier
	Paused    bool
	Magnitude float64

	Quake EarthquakeState
	Wave  WaveState

	Towns       []world.Town
	Buildings   []*world.Building
	Vehicles    []*world.Vehicle
	People      []*people.Person
	WaterLevels []world.WaterLevel
	Debris      []world.Debris
	Particles   []Particle

	Fact   string // Current educational fact, empty when none
	Camera Camera
	Stats  Stats
}
