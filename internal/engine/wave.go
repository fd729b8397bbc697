// Per-phase wave and water kinematics. The wave is a stylized
// kinematic approximation: every field is a closed-form function of
// phase progress, and the sampled surface follows the crest with
// Gaussian bumps that relax back to sea level.
package engine

import "math"

// Water relaxation rates, per reference frame.
const (
	relaxTravel    = 0.02
	relaxRecession = 0.05
	relaxAftermath = 0.01
)

func (s *Simulation) updateEarthquake(dt float64) {
	st := s.State
	p := s.progress()
	mag := s.magScale()

	st.Quake.Intensity = (0.5 + mag) * math.Sin(p*math.Pi)
	st.Quake.PlateOffset = easeOut(p) * 18 * (0.3 + mag)

	// Dust shaken off the building stock.
	s.spawnQuakeDust(dt)

	s.updatePeople(dt)
}

func (s *Simulation) updateWaveFormation(dt float64) {
	st := s.State
	p := s.progress()
	dtSec := dt / 1000

	st.Wave.Position = s.Cfg.EpicenterX
	st.Wave.Height = easeOut(p) * s.formedHeight()
	st.Wave.Energy = st.Magnitude * 1000
	st.Wave.Speed = 50

	hump := st.Wave.Height * math.Sin(p*math.Pi)
	for i := range st.WaterLevels {
		w := &st.WaterLevels[i]
		old := w.CurrentLevel
		d := math.Abs(w.X - s.Cfg.EpicenterX)
		if d < 300 {
			w.CurrentLevel = w.BaseLevel + (1-d/300)*hump
		} else {
			w.CurrentLevel = relaxToward(w.CurrentLevel, w.BaseLevel, relaxTravel, dt)
		}
		w.Velocity = (w.CurrentLevel - old) / dtSec
	}

	s.updatePeople(dt)
}

func (s *Simulation) updateWaveTravel(dt float64) {
	st := s.State
	p := s.progress()

	st.Wave.Position = lerp(s.Cfg.EpicenterX, s.Cfg.CoastStart, easeOut(p))
	st.Wave.Speed = 500 - 300*p
	st.Wave.Height = s.formedHeight()

	s.applyCrestBump(dt, 100, 20000)

	s.updatePeople(dt)
	s.updateVehicles(dt)
}

func (s *Simulation) updateWaveShoaling(dt float64) {
	st := s.State
	p := s.progress()

	st.Wave.Position = lerp(s.Cfg.CoastStart, s.Cfg.CoastEnd, easeOut(p))
	st.Wave.Speed = 200 * (1 - 0.8*p)
	st.Wave.Height = s.formedHeight() * (1 + 3*p)

	s.applyCrestBump(dt, 50, 30000)
	s.spawnCrestSpray(dt, 6)

	s.updatePeople(dt)
	s.forceEvacuations()
}

func (s *Simulation) updateWaveBreaking(dt float64) {
	st := s.State
	p := s.progress()

	st.Wave.Position = lerp(s.Cfg.CoastEnd, s.Cfg.TownStart, p)
	st.Wave.Speed = 40
	st.Wave.Height = s.formedHeight() * (3 + p)

	s.applyCrestBump(dt, 0, 10000)
	s.spawnCrestSpray(dt, 14)

	s.updatePeople(dt)
	s.forceEvacuations()
}

func (s *Simulation) updateInundation(dt float64) {
	st := s.State
	p := s.progress()
	dtSec := dt / 1000
	mag := s.magScale()

	front := lerp(s.Cfg.TownStart, s.Cfg.TownEnd, p)
	depthCap := (30 + mag*70) * (1 - 0.5*p)

	st.Wave.FrontX = front
	st.Wave.Position = front
	st.Wave.Height = depthCap
	st.Wave.Speed = (s.Cfg.TownEnd - s.Cfg.TownStart) / (st.Phase.Duration() / 1000)

	for i := range st.WaterLevels {
		w := &st.WaterLevels[i]
		old := w.CurrentLevel
		if w.X <= front {
			depth := math.Min(depthCap, (front-w.X)*0.3)
			w.CurrentLevel = w.BaseLevel + depth
		} else {
			w.CurrentLevel = relaxToward(w.CurrentLevel, w.BaseLevel, relaxTravel, dt)
		}
		w.Velocity = (w.CurrentLevel - old) / dtSec
	}

	s.spawnCrestSpray(dt, 10)
	s.updatePeople(dt)
	s.forceEvacuations()
	s.applyFloodDamage(front, depthCap, dt)
}

func (s *Simulation) updateRecession(dt float64) {
	st := s.State
	p := s.progress()
	dtSec := dt / 1000
	mag := s.magScale()

	front := lerp(s.Cfg.TownEnd, s.Cfg.CoastEnd, easeOut(p))
	depthCap := (30 + mag*70) * 0.5 * (1 - p)

	st.Wave.FrontX = front
	st.Wave.Position = front
	st.Wave.Height = depthCap
	st.Wave.Speed = -(s.Cfg.TownEnd - s.Cfg.CoastEnd) / (st.Phase.Duration() / 1000)

	for i := range st.WaterLevels {
		w := &st.WaterLevels[i]
		old := w.CurrentLevel
		if w.X > front {
			// The water has already left this sample.
			w.CurrentLevel = relaxToward(w.CurrentLevel, w.BaseLevel, relaxRecession, dt)
		} else {
			depth := math.Min(depthCap, (front-w.X)*0.3)
			// Outflow piles up briefly where the shelf drops off.
			residual := 8 * (1 - p) * gaussian(w.X, s.Cfg.CoastEnd, 20000)
			w.CurrentLevel = w.BaseLevel + depth + residual
		}
		w.Velocity = (w.CurrentLevel - old) / dtSec
	}

	s.updatePeople(dt)
	s.applyFloodDamage(front, depthCap, dt)
}

func (s *Simulation) updateAftermath(dt float64) {
	st := s.State
	dtSec := dt / 1000

	st.Wave.Height = 0
	st.Wave.Speed = 0

	for i := range st.WaterLevels {
		w := &st.WaterLevels[i]
		old := w.CurrentLevel
		w.CurrentLevel = relaxToward(w.CurrentLevel, w.BaseLevel, relaxAftermath, dt)
		w.Velocity = (w.CurrentLevel - old) / dtSec
	}
}

// applyCrestBump raises the surface around the crest with a Gaussian
// bump and relaxes everything outside it toward baseline.
func (s *Simulation) applyCrestBump(dt, offset, spread float64) {
	st := s.State
	dtSec := dt / 1000

	for i := range st.WaterLevels {
		w := &st.WaterLevels[i]
		old := w.CurrentLevel
		d := math.Abs(w.X - st.Wave.Position)
		infl := gaussian(d, offset, spread)
		if infl > 0.01 {
			w.CurrentLevel = w.BaseLevel + st.Wave.Height*infl
		} else {
			w.CurrentLevel = relaxToward(w.CurrentLevel, w.BaseLevel, relaxTravel, dt)
		}
		w.Velocity = (w.CurrentLevel - old) / dtSec
	}
}
