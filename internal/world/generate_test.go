package world

import (
	"testing"

	"github.com/talgya/tsunami-sim/internal/entropy"
)

func testWorld(seed int64) (*World, Config) {
	cfg := DefaultConfig()
	terrain := NewTerrain(seed+1, cfg.GroundLevel)
	return Generate(cfg, terrain, entropy.New(seed)), cfg
}

func TestGenerateSettlementsFitTheBand(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		w, cfg := testWorld(seed)

		if len(w.Towns) < 1 || len(w.Towns) > 4 {
			t.Fatalf("seed %d: %d towns, want 1–4", seed, len(w.Towns))
		}

		prevEnd := cfg.TownStart
		for _, town := range w.Towns {
			if town.Width < minTownWidth {
				t.Fatalf("seed %d: town %q width %.0f below minimum viable %d", seed, town.Name, town.Width, minTownWidth)
			}
			if town.X < prevEnd {
				t.Fatalf("seed %d: town %q overlaps its neighbor", seed, town.Name)
			}
			if town.X+town.Width > cfg.TownEnd+1e-9 {
				t.Fatalf("seed %d: town %q overflows the band", seed, town.Name)
			}
			prevEnd = town.X + town.Width
		}
	}
}

func TestGenerateUniqueNamesAndIDs(t *testing.T) {
	w, _ := testWorld(12)

	names := map[string]bool{}
	ids := map[int]bool{}
	for _, town := range w.Towns {
		if names[town.Name] {
			t.Fatalf("duplicate town name %q", town.Name)
		}
		if ids[town.ID] {
			t.Fatalf("duplicate town id %d", town.ID)
		}
		names[town.Name] = true
		ids[town.ID] = true
	}

	bids := map[int]bool{}
	for _, b := range w.Buildings {
		if bids[b.ID] {
			t.Fatalf("duplicate building id %d", b.ID)
		}
		bids[b.ID] = true
	}
}

func TestGenerateBuildingsInsideTheirTown(t *testing.T) {
	w, _ := testWorld(3)

	if len(w.Buildings) == 0 {
		t.Fatal("no buildings generated")
	}
	for _, b := range w.Buildings {
		inside := false
		for _, town := range w.Towns {
			if b.X >= town.X && b.X+b.Width <= town.X+town.Width+1e-9 {
				inside = true
				break
			}
		}
		if !inside {
			t.Fatalf("building %d at x=%.0f outside every town", b.ID, b.X)
		}
		if b.Health != b.Width*b.Height/50 {
			t.Fatalf("building %d health %.2f != w×h/50", b.ID, b.Health)
		}
		if b.Health != b.MaxHealth || b.Destroyed {
			t.Fatalf("building %d not pristine at spawn", b.ID)
		}
	}
}

func TestGenerateWaterSampleField(t *testing.T) {
	w, cfg := testWorld(5)

	want := int((cfg.TownEnd-cfg.OceanStart)/WaterSampleStep) + 1
	if len(w.WaterLevels) != want {
		t.Fatalf("water samples = %d, want %d", len(w.WaterLevels), want)
	}

	for i, s := range w.WaterLevels {
		if s.BaseLevel != cfg.SeaLevel || s.CurrentLevel != cfg.SeaLevel || s.Velocity != 0 {
			t.Fatalf("sample %d not initialized to sea level at rest", i)
		}
		if i > 0 && s.X <= w.WaterLevels[i-1].X {
			t.Fatalf("sample x not strictly increasing at %d", i)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, _ := testWorld(77)
	b, _ := testWorld(77)

	if len(a.Towns) != len(b.Towns) || len(a.Buildings) != len(b.Buildings) || len(a.Vehicles) != len(b.Vehicles) {
		t.Fatal("same seed produced different entity counts")
	}
	for i := range a.Towns {
		if a.Towns[i] != b.Towns[i] {
			t.Fatalf("same seed produced different town %d: %+v vs %+v", i, a.Towns[i], b.Towns[i])
		}
	}
	for i := range a.Buildings {
		if *a.Buildings[i] != *b.Buildings[i] {
			t.Fatalf("same seed produced different building %d", i)
		}
	}
}

func TestVehicleOccupantRange(t *testing.T) {
	w, _ := testWorld(8)
	if len(w.Vehicles) == 0 {
		t.Fatal("no vehicles generated")
	}
	for _, v := range w.Vehicles {
		if v.Occupants < 1 || v.Occupants > 4 {
			t.Fatalf("vehicle %d occupants = %d, want 1–4", v.ID, v.Occupants)
		}
		if v.Evacuated || v.Destroyed {
			t.Fatalf("vehicle %d not pristine at spawn", v.ID)
		}
	}
}

func TestNamePoolFallsBackWhenExhausted(t *testing.T) {
	src := entropy.New(1)
	pool := newNamePool()
	seen := map[string]bool{}
	// Drain well past the city pool size.
	for i := 0; i < 12; i++ {
		name := pool.take(ClassCity, src)
		if seen[name] {
			t.Fatalf("name %q handed out twice", name)
		}
		seen[name] = true
	}
}
