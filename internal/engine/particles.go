// Particle and debris physics. Particles are short-lived ballistic
// effects pruned on expiry (swap-remove); debris falls, bounces with
// energy loss, and persists for the rest of the run.
package engine

import "math"

const (
	particleGravity  = 400.0 // units/s², downward
	debrisBounce     = 0.3
	debrisGroundFric = 0.65
	debrisSettleSpd  = 5.0
	recessionDrag    = 30.0 // Seaward nudge while inside the outflow
)

// spawnQuakeDust shakes dust off buildings in proportion to quake
// intensity.
func (s *Simulation) spawnQuakeDust(dt float64) {
	st := s.State
	if len(st.Buildings) == 0 {
		return
	}
	n := s.expectedCount(6*st.Quake.Intensity, dt)
	for i := 0; i < n; i++ {
		b := st.Buildings[s.src.IntN(len(st.Buildings))]
		st.Particles = append(st.Particles, Particle{
			X:       b.X + s.src.Range(0, b.Width),
			Y:       b.Y + b.Height,
			VX:      s.src.Range(-10, 10),
			VY:      s.src.Range(5, 25),
			Life:    s.src.Range(500, 1200),
			MaxLife: 1200,
			Size:    s.src.Range(1, 3),
			Kind:    ParticleDust,
		})
	}
}

// spawnCrestSpray throws splash and spray off the wave crest or flood
// front at the given per-second rate.
func (s *Simulation) spawnCrestSpray(dt, rate float64) {
	st := s.State
	x := st.Wave.Position
	surface := s.waterLevelAt(x)

	n := s.expectedCount(rate, dt)
	for i := 0; i < n; i++ {
		kind := ParticleSpray
		if s.src.Chance(0.4) {
			kind = ParticleSplash
		}
		st.Particles = append(st.Particles, Particle{
			X:       x + s.src.Range(-25, 25),
			Y:       surface + s.src.Range(0, st.Wave.Height*0.3),
			VX:      s.src.Range(-20, 60),
			VY:      s.src.Range(40, 140),
			Life:    s.src.Range(400, 900),
			MaxLife: 900,
			Size:    s.src.Range(1, 4),
			Kind:    kind,
		})
	}
}

// expectedCount converts a per-second spawn rate into a whole count
// for this tick, resolving the fractional remainder with a Bernoulli
// draw.
func (s *Simulation) expectedCount(rate, dt float64) int {
	expected := rate * dt / 1000
	n := int(expected)
	if s.src.Chance(expected - float64(n)) {
		n++
	}
	return n
}

func (s *Simulation) updateParticles(dt float64) {
	st := s.State
	dtSec := dt / 1000

	for i := 0; i < len(st.Particles); {
		p := &st.Particles[i]
		p.Life -= dt
		if p.Life <= 0 {
			st.Particles[i] = st.Particles[len(st.Particles)-1]
			st.Particles = st.Particles[:len(st.Particles)-1]
			continue
		}
		p.X += p.VX * dtSec
		p.Y += p.VY * dtSec
		p.VY -= particleGravity * dtSec
		i++
	}
}

func (s *Simulation) updateDebris(dt float64) {
	st := s.State
	dtSec := dt / 1000

	for i := range st.Debris {
		d := &st.Debris[i]

		d.VY -= particleGravity * dtSec
		d.X += d.VX * dtSec
		d.Y += d.VY * dtSec
		d.Rotation += d.Spin * dtSec

		ground := s.terrain.GroundY(d.X)
		if d.Y <= ground {
			d.Y = ground
			if d.VY < 0 {
				d.VY = -d.VY * debrisBounce
				d.VX *= debrisGroundFric
				d.Spin *= debrisGroundFric
			}
			if math.Abs(d.VY) < debrisSettleSpd {
				d.VY = 0
			}
		}

		// Outflow drags loose debris back toward the sea.
		if st.Phase == PhaseRecession && d.X <= st.Wave.FrontX {
			d.VX -= recessionDrag * dtSec
		}
	}
}
