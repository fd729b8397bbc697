// Simulation ties the world, people, and per-phase systems together
// and exposes the single-stepper engine surface.
package engine

import (
	"math"

	"github.com/talgya/tsunami-sim/internal/entropy"
	"github.com/talgya/tsunami-sim/internal/facts"
	"github.com/talgya/tsunami-sim/internal/people"
	"github.com/talgya/tsunami-sim/internal/world"
)

// Supported magnitude range. Values outside are clamped so scale
// factors stay finite.
const (
	MinMagnitude = 5.0
	MaxMagnitude = 9.5
)

// Simulation owns one State and advances it tick by tick. It is not
// safe for concurrent use; the design assumes a single logical
// stepper.
type Simulation struct {
	Cfg   world.Config
	State *State

	terrain *world.Terrain
	src     *entropy.Source
	spawner *people.Spawner
	seed    int64
}

// New builds a fresh world at the given magnitude, in phase idle.
func New(cfg world.Config, magnitude float64, seed int64) *Simulation {
	s := &Simulation{Cfg: cfg, seed: seed}
	s.Reset(magnitude)
	return s
}

// Reset re-initializes the whole world at the given magnitude and
// returns to idle. The seed is reused, so a reset run replays the same
// world.
func (s *Simulation) Reset(magnitude float64) {
	magnitude = clamp(magnitude, MinMagnitude, MaxMagnitude)

	s.src = entropy.New(s.seed)
	s.terrain = world.NewTerrain(s.seed+1, s.Cfg.GroundLevel)
	s.spawner = people.NewSpawner(s.src)

	w := world.Generate(s.Cfg, s.terrain, s.src)
	ppl := s.spawner.SpawnWorld(w, s.Cfg.TownStart)

	s.State = &State{
		Phase:     PhaseIdle,
		SpeedMult: 1,
		Magnitude: magnitude,
		Wave: WaveState{
			Position: s.Cfg.EpicenterX,
		},
		Towns:       w.Towns,
		Buildings:   w.Buildings,
		Vehicles:    w.Vehicles,
		People:      ppl,
		WaterLevels: w.WaterLevels,
		Camera:      Camera{Zoom: 1},
	}
}

// Start regenerates the world at the current magnitude and
// force-enters the earthquake phase, assigning its fact immediately.
func (s *Simulation) Start() {
	mag := s.State.Magnitude
	speed := s.State.SpeedMult
	s.Reset(mag)
	s.State.SpeedMult = speed
	s.transitionTo(PhaseEarthquake)
}

// Update advances the simulation by elapsedMs of wall time, scaled by
// the speed multiplier. It is a no-op while paused or for non-positive
// elapsed time. At most one phase transition happens per call.
func (s *Simulation) Update(elapsedMs float64) {
	st := s.State
	if st.Paused || elapsedMs <= 0 {
		return
	}
	dt := elapsedMs * st.SpeedMult
	if dt <= 0 {
		return
	}

	st.Time += dt
	st.PhaseTime += dt

	if d := st.Phase.Duration(); !math.IsInf(d, 1) && st.PhaseTime >= d {
		s.transitionTo(st.Phase.next())
	}

	switch st.Phase {
	case PhaseEarthquake:
		s.updateEarthquake(dt)
	case PhaseWaveFormation:
		s.updateWaveFormation(dt)
	case PhaseWaveTravel:
		s.updateWaveTravel(dt)
	case PhaseWaveShoaling:
		s.updateWaveShoaling(dt)
	case PhaseWaveBreaking:
		s.updateWaveBreaking(dt)
	case PhaseInundation:
		s.updateInundation(dt)
	case PhaseRecession:
		s.updateRecession(dt)
	case PhaseAftermath:
		s.updateAftermath(dt)
	}

	// Particles and debris advance regardless of phase.
	s.updateParticles(dt)
	s.updateDebris(dt)
}

// transitionTo enters a phase: resets the phase clock, applies
// entry/exit effects, and looks up the new phase's fact.
func (s *Simulation) transitionTo(p Phase) {
	st := s.State

	// Exit effects.
	if st.Phase == PhaseEarthquake {
		st.Quake.Active = false
		st.Quake.Intensity = 0
	}

	st.Phase = p
	st.PhaseTime = 0

	switch p {
	case PhaseEarthquake:
		st.Quake.Active = true
	case PhaseInundation:
		st.Wave.FrontX = s.Cfg.TownStart
	case PhaseAftermath:
		// Anyone the water never reached has made it.
		for _, per := range st.People {
			if !per.Resolved() {
				per.Survived = true
				st.Stats.Survivors++
			}
		}
	}

	if f, ok := facts.Random(p.String(), s.src); ok {
		st.Fact = f
	} else {
		st.Fact = ""
	}
}

// progress returns phase completion in [0, 1], 0 for unbounded phases.
func (s *Simulation) progress() float64 {
	d := s.State.Phase.Duration()
	if math.IsInf(d, 1) || d <= 0 {
		return 0
	}
	return clamp(s.State.PhaseTime/d, 0, 1)
}

// magScale maps magnitude onto [0, 1.125] across the supported range.
func (s *Simulation) magScale() float64 {
	return clamp((s.State.Magnitude-5)/4, 0, (MaxMagnitude-5)/4)
}

// formedHeight is the wave height reached at the end of formation; the
// later phases scale from it in closed form.
func (s *Simulation) formedHeight() float64 {
	return 50 + s.magScale()*100
}

// waterLevelAt linearly interpolates the sampled surface at x.
func (s *Simulation) waterLevelAt(x float64) float64 {
	wl := s.State.WaterLevels
	if len(wl) == 0 {
		return s.Cfg.SeaLevel
	}
	if x <= wl[0].X {
		return wl[0].CurrentLevel
	}
	last := wl[len(wl)-1]
	if x >= last.X {
		return last.CurrentLevel
	}
	i := int((x - wl[0].X) / world.WaterSampleStep)
	if i+1 >= len(wl) {
		return last.CurrentLevel
	}
	t := (x - wl[i].X) / world.WaterSampleStep
	return lerp(wl[i].CurrentLevel, wl[i+1].CurrentLevel, t)
}
