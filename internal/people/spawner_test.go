package people

import (
	"testing"

	"github.com/talgya/tsunami-sim/internal/entropy"
	"github.com/talgya/tsunami-sim/internal/world"
)

func spawnTestWorld(seed int64) ([]*Person, *world.World, world.Config) {
	cfg := world.DefaultConfig()
	src := entropy.New(seed)
	terrain := world.NewTerrain(seed+1, cfg.GroundLevel)
	w := world.Generate(cfg, terrain, src)
	ppl := NewSpawner(src).SpawnWorld(w, cfg.TownStart)
	return ppl, w, cfg
}

func TestSpawnSpeedsMatchRiskCategory(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		ppl, _, _ := spawnTestWorld(seed)
		for _, p := range ppl {
			if p.Speed <= 0 {
				t.Fatalf("seed %d: person %d has non-positive speed", seed, p.ID)
			}
			switch p.Risk {
			case RiskDoomed:
				if p.Speed < 12 || p.Speed > 28 {
					t.Fatalf("seed %d: doomed speed %.1f outside [12, 28]", seed, p.Speed)
				}
			case RiskAtRisk:
				if p.Speed < 25 || p.Speed > 50 {
					t.Fatalf("seed %d: at-risk speed %.1f outside [25, 50]", seed, p.Speed)
				}
			default:
				if p.Speed < 40 || p.Speed > 170 {
					t.Fatalf("seed %d: normal speed %.1f outside mixture range", seed, p.Speed)
				}
			}
		}
	}
}

func TestDoomedSpawnOnlyInCoastalTown(t *testing.T) {
	ppl, w, _ := spawnTestWorld(6)
	coastal := w.CoastalTown()
	if coastal == nil {
		t.Fatal("no coastal town generated")
	}

	doomed := 0
	for _, p := range ppl {
		if p.Risk != RiskDoomed {
			continue
		}
		doomed++
		if p.X < coastal.X+10 || p.X > coastal.X+80 {
			t.Fatalf("doomed person %d at x=%.0f outside coastal edge band [%.0f, %.0f]",
				p.ID, p.X, coastal.X+10, coastal.X+80)
		}
	}
	if doomed < 1 || doomed > 6 {
		t.Fatalf("doomed people = %d, want 1–6", doomed)
	}
}

func TestEveryTownGetsAtLeastThreePeople(t *testing.T) {
	ppl, w, _ := spawnTestWorld(9)
	for _, town := range w.Towns {
		n := 0
		for _, p := range ppl {
			if p.X >= town.X-100 && p.X <= town.X+town.Width {
				n++
			}
		}
		if n < 3 {
			t.Fatalf("town %q has %d people, want ≥ 3", town.Name, n)
		}
	}
}

func TestSpawnIDsUnique(t *testing.T) {
	ppl, _, _ := spawnTestWorld(4)
	seen := map[int]bool{}
	for _, p := range ppl {
		if seen[p.ID] {
			t.Fatalf("duplicate person id %d", p.ID)
		}
		seen[p.ID] = true
		if p.Fleeing || p.Caught || p.Survived {
			t.Fatalf("person %d spawned with flags set", p.ID)
		}
	}
}

func TestSpawnEvacueesStartFleeing(t *testing.T) {
	s := NewSpawner(entropy.New(1))
	out := s.SpawnEvacuees(4, 2600, 320)

	if len(out) != 4 {
		t.Fatalf("evacuees = %d, want 4", len(out))
	}
	for _, p := range out {
		if !p.Fleeing {
			t.Fatalf("evacuee %d not fleeing at spawn", p.ID)
		}
		if p.Speed < 40 || p.Speed > 140 {
			t.Fatalf("evacuee %d speed %.1f outside mixture range", p.ID, p.Speed)
		}
		if p.X != 2600 {
			t.Fatalf("evacuee %d spawned away from the vehicle", p.ID)
		}
	}
}
