// The disaster phase state machine. Phases advance in a fixed order,
// each with a fixed duration except the two unbounded endpoints.
package engine

import "math"

// Phase is a named stage of the disaster timeline.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseEarthquake
	PhaseWaveFormation
	PhaseWaveTravel
	PhaseWaveShoaling
	PhaseWaveBreaking
	PhaseInundation
	PhaseRecession
	PhaseAftermath
)

// phaseDurations holds each phase's duration in milliseconds of
// simulated time. Idle and aftermath never auto-advance.
var phaseDurations = [...]float64{
	PhaseIdle:          math.Inf(1),
	PhaseEarthquake:    8000,
	PhaseWaveFormation: 6000,
	PhaseWaveTravel:    12000,
	PhaseWaveShoaling:  8000,
	PhaseWaveBreaking:  6000,
	PhaseInundation:    15000,
	PhaseRecession:     12000,
	PhaseAftermath:     math.Inf(1),
}

// Duration returns the phase duration in ms, +Inf for unbounded
// phases. Unknown values map to +Inf so a malformed phase can never
// cause a lookup miss.
func (p Phase) Duration() float64 {
	if int(p) >= len(phaseDurations) {
		return math.Inf(1)
	}
	return phaseDurations[p]
}

// next returns the following phase in the fixed order, clamped at the
// last.
func (p Phase) next() Phase {
	if p >= PhaseAftermath {
		return PhaseAftermath
	}
	return p + 1
}

// String returns the phase name used by the fact table and run logs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEarthquake:
		return "earthquake"
	case PhaseWaveFormation:
		return "waveFormation"
	case PhaseWaveTravel:
		return "waveTravel"
	case PhaseWaveShoaling:
		return "waveShoaling"
	case PhaseWaveBreaking:
		return "waveBreaking"
	case PhaseInundation:
		return "inundation"
	case PhaseRecession:
		return "recession"
	case PhaseAftermath:
		return "aftermath"
	default:
		return "unknown"
	}
}
