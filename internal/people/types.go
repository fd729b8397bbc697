// Package people provides the person data model, risk categories, and
// the population spawner.
package people

// RiskCategory classifies how readily a person reacts to the disaster.
// Decided once at spawn time and consulted directly by the behavior
// engine.
type RiskCategory uint8

const (
	RiskNormal RiskCategory = iota
	RiskAtRisk               // Depressed reaction probability, slow
	RiskDoomed               // Ignores early warnings, very slow
)

// String returns the risk category name.
func (r RiskCategory) String() string {
	switch r {
	case RiskAtRisk:
		return "at-risk"
	case RiskDoomed:
		return "doomed"
	default:
		return "normal"
	}
}

// Person is a simulated resident. Speed is fixed for its lifetime;
// Fleeing, Caught, and Survived each transition false→true at most
// once, and Caught/Survived are mutually exclusive.
type Person struct {
	ID        int
	X, Y      float64
	Speed     float64 // Flee speed, units/s, always > 0
	Fleeing   bool
	WalkPhase float64 // Animation phase counter for the renderer
	Risk      RiskCategory
	Caught    bool
	Survived  bool
}

// Resolved reports whether the person has reached a terminal state.
func (p *Person) Resolved() bool {
	return p.Caught || p.Survived
}
