// Package facts provides the static per-phase educational fact lookup.
// It is a plain table with no behavior beyond a random pick; phases
// without entries yield nothing.
package facts

import "github.com/talgya/tsunami-sim/internal/entropy"

var byPhase = map[string][]string{
	"earthquake": {
		"Most tsunamis are triggered by undersea earthquakes of magnitude 7.0 or greater.",
		"The seafloor can shift several meters vertically in seconds, displacing enormous volumes of water.",
		"Strong coastal shaking that lasts longer than 20 seconds is itself a tsunami warning.",
	},
	"waveFormation": {
		"A tsunami begins as a broad hump of water only a meter or so high in the open ocean.",
		"The energy of a large tsunami can exceed that of thousands of atomic bombs.",
		"Ships at sea often pass over a forming tsunami without noticing it.",
	},
	"waveTravel": {
		"In deep water a tsunami travels as fast as a jet airliner, up to 800 km/h.",
		"Tsunami wavelengths can stretch over 200 km, far longer than wind waves.",
		"A tsunami can cross an entire ocean basin in less than a day.",
	},
	"waveShoaling": {
		"As the seafloor rises near shore, the wave slows sharply and its height grows.",
		"Shoaling can turn a one-meter open-ocean wave into a wall of water over ten meters tall.",
		"The sea often withdraws dramatically before a tsunami arrives. Exposed seabed means run.",
	},
	"waveBreaking": {
		"A breaking tsunami rarely looks like a surfing wave; it arrives as a fast-rising flood.",
		"The first wave is often not the largest. Later waves can be far more destructive.",
	},
	"inundation": {
		"Thirty centimeters of fast-moving water can knock an adult off their feet.",
		"Sixty centimeters of flowing water is enough to float and carry away most cars.",
		"Tsunami flooding can push several kilometers inland along low-lying coasts.",
	},
	"recession": {
		"Receding tsunami water drags debris, vehicles, and people out to sea.",
		"The backwash can be as dangerous as the incoming wave.",
	},
	"aftermath": {
		"Tsunami warning systems have cut casualties dramatically where evacuation routes are practiced.",
		"Vertical evacuation, just a few floors up in a sturdy building, saves lives when high ground is far.",
	},
}

// Random returns a random fact for the named phase. The second result
// is false when the phase has no facts.
func Random(phase string, src *entropy.Source) (string, bool) {
	pool := byPhase[phase]
	if len(pool) == 0 {
		return "", false
	}
	return pool[src.IntN(len(pool))], true
}
