// Entity behavior — fleeing and evacuation decisions, movement
// integration, survivor resolution. Casualty resolution lives with the
// damage model, which knows where the water front is.
package engine

import (
	"github.com/talgya/tsunami-sim/internal/people"
	"github.com/talgya/tsunami-sim/internal/world"
)

// safeMargin is the distance from the inland edge past which a fleeing
// person counts as having escaped.
const safeMargin = 40

// Per-second flee trigger rates by phase. At-risk people react at
// roughly a third to half the normal rate; doomed people ignore every
// early trigger.
var fleeRates = map[Phase][3]float64{
	//                      normal, at-risk, doomed
	PhaseEarthquake:    {0.25, 0.10, 0},
	PhaseWaveFormation: {0.50, 0.20, 0},
	PhaseWaveTravel:    {1.20, 0.50, 0},
}

func (s *Simulation) updatePeople(dt float64) {
	st := s.State
	dtSec := dt / 1000
	progress := s.progress()

	for _, per := range st.People {
		if per.Resolved() {
			continue
		}

		if !per.Fleeing && s.shouldFlee(per, progress, dtSec) {
			per.Fleeing = true
		}

		if per.Fleeing {
			per.X += per.Speed * dtSec
			per.WalkPhase += per.Speed * 0.15 * dtSec
			if per.X >= s.Cfg.TownEnd-safeMargin {
				per.Survived = true
				st.Stats.Survivors++
			}
		}
	}
}

func (s *Simulation) shouldFlee(per *people.Person, progress, dtSec float64) bool {
	switch s.State.Phase {
	case PhaseEarthquake, PhaseWaveFormation, PhaseWaveTravel:
		rates := fleeRates[s.State.Phase]
		return s.src.Chance(rates[per.Risk] * dtSec)
	case PhaseWaveShoaling:
		switch per.Risk {
		case people.RiskNormal:
			return true
		case people.RiskAtRisk:
			return progress > 0.3 || s.src.Chance(0.8*dtSec)
		default:
			// Too late for most of them.
			return progress > 0.7
		}
	case PhaseWaveBreaking, PhaseInundation, PhaseRecession:
		return true
	default:
		return false
	}
}

// updateVehicles runs the evacuation trigger during the second half of
// the travel phase. Shoaling onward, forceEvacuations empties whatever
// is left.
func (s *Simulation) updateVehicles(dt float64) {
	if s.progress() <= 0.5 {
		return
	}
	dtSec := dt / 1000
	for _, v := range s.State.Vehicles {
		if v.Evacuated || v.Destroyed {
			continue
		}
		if s.src.Chance(0.6 * dtSec) {
			s.evacuate(v)
		}
	}
}

// forceEvacuations empties every remaining vehicle. The Evacuated flag
// guarantees at most one evacuation per vehicle.
func (s *Simulation) forceEvacuations() {
	for _, v := range s.State.Vehicles {
		if v.Evacuated || v.Destroyed {
			continue
		}
		s.evacuate(v)
	}
}

func (s *Simulation) evacuate(v *world.Vehicle) {
	v.Evacuated = true
	evacuees := s.spawner.SpawnEvacuees(v.Occupants, v.X, v.Y)
	s.State.People = append(s.State.People, evacuees...)
}
