package engine

import (
	"math"
	"testing"
)

func TestFormationDisplacesWaterNearEpicenter(t *testing.T) {
	sim := newTestSim(8.0, 4)
	sim.Start()
	for sim.State.Phase != PhaseWaveFormation {
		sim.Update(500)
	}
	// Mid-formation, where sin(progress×π) is near its peak.
	for i := 0; i < 6; i++ {
		sim.Update(500)
	}

	epicenter := sim.Cfg.EpicenterX
	var atEpicenter, farAway float64
	for _, w := range sim.State.WaterLevels {
		if math.Abs(w.X-epicenter) < 10 {
			atEpicenter = w.CurrentLevel - w.BaseLevel
		}
		if w.X > epicenter+1000 {
			farAway = w.CurrentLevel - w.BaseLevel
			break
		}
	}

	if atEpicenter <= 0 {
		t.Fatalf("no displacement at epicenter: %.2f", atEpicenter)
	}
	if math.Abs(farAway) > math.Abs(atEpicenter)/4 {
		t.Fatalf("displacement far from epicenter (%.2f) not small next to peak (%.2f)", farAway, atEpicenter)
	}
}

func TestShoalingGrowsWaveHeight(t *testing.T) {
	sim := newTestSim(7.0, 4)
	sim.Start()
	for sim.State.Phase != PhaseWaveShoaling {
		sim.Update(500)
	}

	sim.Update(100)
	early := sim.State.Wave.Height
	earlySpeed := sim.State.Wave.Speed
	for sim.State.Phase == PhaseWaveShoaling {
		sim.Update(500)
	}

	if sim.State.Wave.Height <= early {
		t.Fatalf("wave did not grow during shoaling: %.1f -> %.1f", early, sim.State.Wave.Height)
	}
	if earlySpeed <= sim.State.Wave.Speed {
		t.Fatalf("wave did not slow during shoaling: %.1f -> %.1f", earlySpeed, sim.State.Wave.Speed)
	}
}

func TestInundationDepthLimitedByDistanceBehindFront(t *testing.T) {
	sim := newTestSim(9.0, 4)
	sim.Start()
	for sim.State.Phase != PhaseInundation {
		sim.Update(500)
	}
	sim.Update(2000)

	front := sim.State.Wave.FrontX
	for _, w := range sim.State.WaterLevels {
		if w.X <= front && w.X >= sim.Cfg.TownStart {
			depth := w.CurrentLevel - w.BaseLevel
			limit := (front - w.X) * 0.3
			if depth > limit+1e-6 {
				t.Fatalf("depth %.2f at x=%.0f exceeds front-distance limit %.2f", depth, w.X, limit)
			}
		}
	}
}

func TestAftermathWaterRelaxesToBaseline(t *testing.T) {
	sim := newTestSim(8.0, 4)
	sim.Start()

	settled := 0.0
	for i := 0; i < 5000 && settled < 60000; i++ {
		sim.Update(50)
		if sim.State.Phase == PhaseAftermath {
			settled += 50
		}
	}

	prevDev := maxDeviation(sim)
	for i := 0; i < 200; i++ {
		sim.Update(50)
	}
	dev := maxDeviation(sim)

	if dev > prevDev+1e-9 {
		t.Fatalf("aftermath water diverging: %.4f -> %.4f", prevDev, dev)
	}
	if dev > 1.0 {
		t.Fatalf("water never settled: max deviation %.4f after a minute of aftermath", dev)
	}
}

func maxDeviation(sim *Simulation) float64 {
	max := 0.0
	for _, w := range sim.State.WaterLevels {
		if d := math.Abs(w.CurrentLevel - w.BaseLevel); d > max {
			max = d
		}
	}
	return max
}

func TestRelaxTowardZeroDtNoChange(t *testing.T) {
	if got := relaxToward(10, 0, 0.02, 0); got != 10 {
		t.Fatalf("relaxToward with dt=0 moved value: %.4f", got)
	}
	if got := relaxToward(10, 0, 0.02, 1e9); got != 0 {
		t.Fatalf("relaxToward with huge dt overshot: %.4f", got)
	}
}

func TestEaseOutBounds(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{1, 1},
		{-5, 0},
		{2, 1},
	}
	for _, c := range cases {
		if got := easeOut(c.in); got != c.want {
			t.Fatalf("easeOut(%.1f) = %.3f, want %.3f", c.in, got, c.want)
		}
	}
	if easeOut(0.5) <= 0.5 {
		t.Fatal("easeOut(0.5) should exceed linear progress")
	}
}
