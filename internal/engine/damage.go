// Damage resolution for everything the flood front has passed:
// buildings erode with exposure, vehicles die outright, unresolved
// people behind the front become casualties.
package engine

import (
	"math"

	"github.com/talgya/tsunami-sim/internal/world"
)

// debrisPerBuilding is how many debris chunks a collapsing building
// sheds.
const debrisPerBuilding = 5

// applyFloodDamage processes one tick of exposure behind the water
// front at x=front with a depth cap of depthCap.
func (s *Simulation) applyFloodDamage(front, depthCap, dt float64) {
	st := s.State
	dtSec := dt / 1000
	severity := s.magScale() + 0.5

	for _, b := range st.Buildings {
		if b.Destroyed || b.X > front {
			continue
		}
		depth := math.Min(depthCap, (front-b.X)*0.3)
		if depth <= 0 {
			continue
		}
		b.Health -= depth * dtSec * severity
		if b.Health <= 0 {
			b.Health = 0
			b.Destroyed = true
			st.Stats.BuildingsDestroyed++
			s.spawnBuildingDebris(b)
		}
	}

	for _, v := range st.Vehicles {
		if !v.Destroyed && v.X <= front {
			v.Destroyed = true
			st.Stats.VehiclesDestroyed++
		}
	}

	for _, per := range st.People {
		if !per.Resolved() && per.X <= front {
			per.Caught = true
			st.Stats.Casualties++
		}
	}
}

// spawnBuildingDebris scatters debris chunks across the footprint of a
// collapsing building. Debris persists for the rest of the run.
func (s *Simulation) spawnBuildingDebris(b *world.Building) {
	for i := 0; i < debrisPerBuilding; i++ {
		mat := world.DebrisWood
		r := s.src.Float()
		switch {
		case r < 0.5:
			mat = world.DebrisWood
		case r < 0.85:
			mat = world.DebrisConcrete
		default:
			mat = world.DebrisMetal
		}
		if b.Class == world.BuildingCommercial && mat == world.DebrisWood {
			mat = world.DebrisConcrete
		}

		s.State.Debris = append(s.State.Debris, world.Debris{
			X:        b.X + s.src.Range(0, b.Width),
			Y:        b.Y + s.src.Range(0, b.Height),
			VX:       s.src.Range(-40, 60),
			VY:       s.src.Range(20, 80),
			Rotation: s.src.Range(0, 2*math.Pi),
			Spin:     s.src.Range(-3, 3),
			Size:     s.src.Range(3, 8),
			Material: mat,
		})
	}
}
