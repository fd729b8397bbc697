// Population spawning — samples a visible crowd from each settlement's
// raw population and assigns risk categories and flee speeds.
package people

import (
	"math"

	"github.com/talgya/tsunami-sim/internal/entropy"
	"github.com/talgya/tsunami-sim/internal/world"
)

// Per-class sampling factors. Cities are under-sampled relative to raw
// population so the crowd stays drawable.
const (
	sampleFactorCity    = 0.008
	sampleFactorTown    = 0.015
	sampleFactorVillage = 0.025

	atRiskBandWidth = 150 // Distance from the coast edge that can produce at-risk people
	atRiskChance    = 0.6
)

// Spawner creates people with unique ids for the simulation.
type Spawner struct {
	src    *entropy.Source
	nextID int
}

// NewSpawner creates a spawner drawing from the given source.
func NewSpawner(src *entropy.Source) *Spawner {
	return &Spawner{src: src, nextID: 1}
}

// SpawnWorld populates every settlement. The settlement nearest the
// coast additionally receives a handful of doomed people close to its
// seaward edge.
func (s *Spawner) SpawnWorld(w *world.World, coastEdge float64) []*Person {
	coastal := w.CoastalTown()
	var all []*Person
	for i := range w.Towns {
		t := &w.Towns[i]
		all = append(all, s.spawnTown(t, w.Terrain, coastEdge, t == coastal)...)
	}
	return all
}

func (s *Spawner) spawnTown(t *world.Town, terrain *world.Terrain, coastEdge float64, coastal bool) []*Person {
	var out []*Person

	var factor float64
	switch t.Class {
	case world.ClassCity:
		factor = sampleFactorCity
	case world.ClassTown:
		factor = sampleFactorTown
	default:
		factor = sampleFactorVillage
	}

	count := int(math.Floor(float64(t.Population) * factor))
	if count < 3 {
		count = 3
	}

	if coastal {
		// People who will not react to early warnings, placed near the
		// water where escape is usually impossible.
		doomed := s.src.Between(1, 6)
		for i := 0; i < doomed; i++ {
			x := t.X + s.src.Range(10, 80)
			out = append(out, s.newPerson(x, terrain.GroundY(x), s.src.Range(12, 28), RiskDoomed))
		}
	}

	for i := 0; i < count; i++ {
		x := s.src.Range(t.X, t.X+t.Width)
		risk := RiskNormal
		speed := s.normalSpeed()

		if x-coastEdge < atRiskBandWidth && s.src.Chance(atRiskChance) {
			risk = RiskAtRisk
			speed = s.src.Range(25, 50)
		}

		out = append(out, s.newPerson(x, terrain.GroundY(x), speed, risk))
	}

	return out
}

// SpawnEvacuees creates people released from an evacuating vehicle.
// They start fleeing immediately with a fresh fast/slow speed mixture.
func (s *Spawner) SpawnEvacuees(count int, x, y float64) []*Person {
	out := make([]*Person, 0, count)
	for i := 0; i < count; i++ {
		speed := s.src.Range(90, 140)
		if s.src.Chance(0.3) {
			speed = s.src.Range(40, 70)
		}
		p := s.newPerson(x, y, speed, RiskNormal)
		p.Fleeing = true
		out = append(out, p)
	}
	return out
}

// normalSpeed draws from the standard mixture: a quarter slow, a small
// sprinter tail, the rest average.
func (s *Spawner) normalSpeed() float64 {
	r := s.src.Float()
	switch {
	case r < 0.25:
		return s.src.Range(40, 70)
	case r < 0.40:
		return s.src.Range(130, 170)
	default:
		return s.src.Range(85, 130)
	}
}

func (s *Spawner) newPerson(x, y, speed float64, risk RiskCategory) *Person {
	id := s.nextID
	s.nextID++
	return &Person{
		ID:    id,
		X:     x,
		Y:     y,
		Speed: speed,
		Risk:  risk,
	}
}
