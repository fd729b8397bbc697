package world

// TownClass categorizes settlement scale.
type TownClass uint8

const (
	ClassVillage TownClass = iota // 50–200 residents
	ClassTown                     // 200–800
	ClassCity                     // 800–3,000
)

// String returns the settlement class name.
func (c TownClass) String() string {
	switch c {
	case ClassVillage:
		return "village"
	case ClassTown:
		return "town"
	case ClassCity:
		return "city"
	default:
		return "unknown"
	}
}

// Town is a generated settlement occupying a contiguous x-range of the
// coastal band. Created once at generation and never mutated.
type Town struct {
	ID         int
	Name       string
	X          float64 // Seaward edge
	Width      float64
	Population int
	Class      TownClass
}

// BuildingClass distinguishes residential from commercial stock.
type BuildingClass uint8

const (
	BuildingResidential BuildingClass = iota
	BuildingCommercial
)

// Building is a damageable structure. Health stays in [0, MaxHealth]
// and Destroyed transitions false→true exactly once.
type Building struct {
	ID        int
	X, Y      float64 // X = seaward edge, Y = ground at spawn
	Width     float64
	Height    float64
	Class     BuildingClass
	WallColor int // Palette index for the renderer
	RoofColor int
	Health    float64
	MaxHealth float64
	Destroyed bool
}

// Vehicle is a parked vehicle. It never moves; its occupants may be
// released exactly once as new people, and it is destroyed in place
// when overtaken by water.
type Vehicle struct {
	ID        int
	X, Y      float64
	Width     float64
	Height    float64
	Occupants int
	Evacuated bool
	Destroyed bool
}

// WaterLevel is a fixed-x sample of the water surface.
type WaterLevel struct {
	X            float64
	BaseLevel    float64 // Sea level from the config
	CurrentLevel float64
	Velocity     float64 // Vertical surface velocity, units/s
}

// DebrisMaterial tags debris for the renderer.
type DebrisMaterial uint8

const (
	DebrisWood DebrisMaterial = iota
	DebrisConcrete
	DebrisMetal
)

// Debris is a persistent chunk of a destroyed building. Unlike
// particles, debris is never removed.
type Debris struct {
	X, Y     float64
	VX, VY   float64
	Rotation float64
	Spin     float64
	Size     float64
	Material DebrisMaterial
}
