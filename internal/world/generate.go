// Procedural coastline generation — settlements, building stock,
// parked vehicles, and the water-surface sample field.
package world

import (
	"fmt"

	"github.com/talgya/tsunami-sim/internal/entropy"
)

// minTownWidth is the smallest viable settlement width. A clamped
// width below this ends generation instead of emitting a sliver town.
const minTownWidth = 100

// World is the generated static population of a run. People are
// spawned separately (internal/people) from the towns listed here.
type World struct {
	Towns       []Town
	Buildings   []*Building
	Vehicles    []*Vehicle
	WaterLevels []WaterLevel
	Terrain     *Terrain
}

// classParams holds per-class generation ranges.
type classParams struct {
	widthMin, widthMax     float64
	popMin, popMax         int
	gapMin, gapMax         float64 // Gap between packed buildings
	commercialChance       float64
	bWidthMin, bWidthMax   float64 // Building footprint width
	bHeightMin, bHeightMax float64
	vehMin, vehMax         int
}

func paramsFor(c TownClass) classParams {
	switch c {
	case ClassCity:
		return classParams{
			widthMin: 350, widthMax: 550,
			popMin: 800, popMax: 3000,
			gapMin: 5, gapMax: 15,
			commercialChance: 0.5,
			bWidthMin: 30, bWidthMax: 60,
			bHeightMin: 40, bHeightMax: 120,
			vehMin: 6, vehMax: 12,
		}
	case ClassTown:
		return classParams{
			widthMin: 250, widthMax: 400,
			popMin: 200, popMax: 800,
			gapMin: 10, gapMax: 30,
			commercialChance: 0.3,
			bWidthMin: 25, bWidthMax: 50,
			bHeightMin: 20, bHeightMax: 60,
			vehMin: 3, vehMax: 7,
		}
	default:
		return classParams{
			widthMin: 150, widthMax: 250,
			popMin: 50, popMax: 200,
			gapMin: 20, gapMax: 50,
			commercialChance: 0.12,
			bWidthMin: 20, bWidthMax: 40,
			bHeightMin: 15, bHeightMax: 30,
			vehMin: 1, vehMax: 4,
		}
	}
}

// Generate creates the full static world for a run. All randomness
// comes from src, so equal seeds yield equal worlds.
func Generate(cfg Config, terrain *Terrain, src *entropy.Source) *World {
	w := &World{Terrain: terrain}
	w.generateTowns(cfg, src)
	for i := range w.Towns {
		w.generateBuildings(&w.Towns[i], src)
		w.generateVehicles(&w.Towns[i], src)
	}
	w.generateWaterLevels(cfg)
	return w
}

func (w *World) generateTowns(cfg Config, src *entropy.Source) {
	names := newNamePool()
	total := cfg.TownBandWidth()
	x := cfg.TownStart
	count := src.Between(1, 4)

	for i := 0; i < count; i++ {
		remaining := cfg.TownEnd - x
		if remaining < minTownWidth {
			break
		}

		// Settlements skew larger the further inland they sit.
		roll := src.Float() + 0.3*(x-cfg.TownStart)/total
		var class TownClass
		switch {
		case roll < 0.35:
			class = ClassVillage
		case roll < 0.7:
			class = ClassTown
		default:
			class = ClassCity
		}

		p := paramsFor(class)
		width := src.Range(p.widthMin, p.widthMax)
		if width > remaining {
			width = remaining
		}
		if width < minTownWidth {
			break
		}

		w.Towns = append(w.Towns, Town{
			ID:         i + 1,
			Name:       names.take(class, src),
			X:          x,
			Width:      width,
			Population: src.Between(p.popMin, p.popMax),
			Class:      class,
		})

		x += width + src.Range(40, 100)
	}
}

func (w *World) generateBuildings(t *Town, src *entropy.Source) {
	p := paramsFor(t.Class)
	x := t.X + src.Range(p.gapMin, p.gapMax)

	for {
		bw := src.Range(p.bWidthMin, p.bWidthMax)
		if x+bw > t.X+t.Width {
			break
		}

		class := BuildingResidential
		bh := src.Range(p.bHeightMin, p.bHeightMax)
		if src.Chance(p.commercialChance) {
			class = BuildingCommercial
			bh *= 1.25
		}

		health := bw * bh / 50
		w.Buildings = append(w.Buildings, &Building{
			ID:        len(w.Buildings) + 1,
			X:         x,
			Y:         w.Terrain.GroundY(x),
			Width:     bw,
			Height:    bh,
			Class:     class,
			WallColor: src.IntN(5),
			RoofColor: src.IntN(3),
			Health:    health,
			MaxHealth: health,
		})

		x += bw + src.Range(p.gapMin, p.gapMax)
	}
}

func (w *World) generateVehicles(t *Town, src *entropy.Source) {
	p := paramsFor(t.Class)
	n := src.Between(p.vehMin, p.vehMax)

	for i := 0; i < n; i++ {
		x := src.Range(t.X, t.X+t.Width)
		w.Vehicles = append(w.Vehicles, &Vehicle{
			ID:        len(w.Vehicles) + 1,
			X:         x,
			Y:         w.Terrain.GroundY(x),
			Width:     18,
			Height:    8,
			Occupants: src.Between(1, 4),
		})
	}
}

func (w *World) generateWaterLevels(cfg Config) {
	for x := cfg.OceanStart; x <= cfg.TownEnd; x += WaterSampleStep {
		w.WaterLevels = append(w.WaterLevels, WaterLevel{
			X:            x,
			BaseLevel:    cfg.SeaLevel,
			CurrentLevel: cfg.SeaLevel,
		})
	}
}

// CoastalTown returns the settlement nearest the coast, or nil when no
// settlement was generated.
func (w *World) CoastalTown() *Town {
	if len(w.Towns) == 0 {
		return nil
	}
	best := &w.Towns[0]
	for i := range w.Towns[1:] {
		if w.Towns[i+1].X < best.X {
			best = &w.Towns[i+1]
		}
	}
	return best
}

// namePool hands out unique settlement names per class, falling back
// to a numbered placeholder once a pool runs dry.
type namePool struct {
	pools    map[TownClass][]string
	fallback int
}

func newNamePool() *namePool {
	return &namePool{
		pools: map[TownClass][]string{
			ClassVillage: {
				"Seabrook", "Gullhaven", "Tidemill", "Oyster Flats",
				"Drift Hollow", "Pelican Rest", "Kelp Landing",
			},
			ClassTown: {
				"Port Merrow", "Saltcliff", "Harborview", "Breakwater",
				"Moorfield", "Crescent Bay", "Anchorage Point",
			},
			ClassCity: {
				"New Meridian", "Cape Alder", "Stormhaven",
				"Vantage", "Coral Heights",
			},
		},
	}
}

func (n *namePool) take(class TownClass, src *entropy.Source) string {
	pool := n.pools[class]
	if len(pool) == 0 {
		n.fallback++
		return fmt.Sprintf("%s %d", class.String(), n.fallback)
	}
	i := src.IntN(len(pool))
	name := pool[i]
	n.pools[class] = append(pool[:i], pool[i+1:]...)
	return name
}
