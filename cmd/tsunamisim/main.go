// Command tsunamisim runs one tsunami disaster scenario headless: it
// generates a coastline at the requested magnitude, steps the engine
// through the full phase timeline, logs every transition, and records
// the run in SQLite.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/tsunami-sim/internal/engine"
	"github.com/talgya/tsunami-sim/internal/persistence"
	"github.com/talgya/tsunami-sim/internal/world"
)

// settleTime is how long the host keeps stepping after aftermath is
// reached, so the water visibly settles in the recorded run.
const settleTime = 10000.0

func main() {
	var (
		configPath = flag.String("config", "configs/world.yaml", "world geometry YAML")
		dbPath     = flag.String("db", "data/runs.db", "run database path (empty disables storage)")
		magnitude  = flag.Float64("magnitude", 7.0, "earthquake magnitude (5.0–9.5)")
		seed       = flag.Int64("seed", 42, "world seed")
		speed      = flag.Float64("speed", 1.0, "time multiplier")
		stepMs     = flag.Float64("step", 50, "simulated ms per tick")
		realtime   = flag.Bool("realtime", false, "pace ticks against wall time")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := world.LoadConfig(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Warn("config not found, using defaults", "path", *configPath)
			cfg = world.DefaultConfig()
		} else {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	}

	var db *persistence.DB
	if *dbPath != "" {
		os.MkdirAll(filepath.Dir(*dbPath), 0o755)
		db, err = persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	sim := engine.New(cfg, *magnitude, *seed)
	sim.State.SpeedMult = *speed

	population := len(sim.State.People)
	slog.Info("world generated",
		"seed", *seed,
		"magnitude", *magnitude,
		"settlements", len(sim.State.Towns),
		"buildings", len(sim.State.Buildings),
		"vehicles", len(sim.State.Vehicles),
		"people", population,
		"water_samples", len(sim.State.WaterLevels),
	)
	for _, t := range sim.State.Towns {
		slog.Info("settlement", "name", t.Name, "class", t.Class.String(),
			"x", int(t.X), "width", int(t.Width),
			"population", humanize.Comma(int64(t.Population)))
	}

	runID := uuid.NewString()
	if db != nil {
		if err := db.BeginRun(runID, *seed, *magnitude); err != nil {
			slog.Error("begin run failed", "error", err)
		}
	}

	sim.Start()

	lastPhase := sim.State.Phase
	logPhase(db, runID, sim)

	var aftermathFor float64
	for {
		sim.Update(*stepMs)

		if sim.State.Phase != lastPhase {
			lastPhase = sim.State.Phase
			logPhase(db, runID, sim)
		}

		if sim.State.Phase == engine.PhaseAftermath {
			aftermathFor += *stepMs
			if aftermathFor >= settleTime {
				break
			}
		}

		if *realtime {
			time.Sleep(time.Duration(*stepMs * float64(time.Millisecond)))
		}
	}

	st := sim.State
	population = len(st.People) // Includes vehicle evacuees
	if db != nil {
		if err := db.FinishRun(runID, st, population); err != nil {
			slog.Error("finish run failed", "error", err)
		}
	}

	slog.Info("run complete",
		"run_id", runID,
		"sim_time", time.Duration(st.Time*float64(time.Millisecond)).Round(time.Second),
		"people", humanize.Comma(int64(population)),
		"casualties", humanize.Comma(int64(st.Stats.Casualties)),
		"survivors", humanize.Comma(int64(st.Stats.Survivors)),
		"buildings_destroyed", st.Stats.BuildingsDestroyed,
		"vehicles_destroyed", st.Stats.VehiclesDestroyed,
		"debris", len(st.Debris),
	)
}

func logPhase(db *persistence.DB, runID string, sim *engine.Simulation) {
	st := sim.State
	slog.Info("phase",
		"phase", st.Phase.String(),
		"sim_time_ms", int(st.Time),
		"wave_height", int(st.Wave.Height),
		"casualties", st.Stats.Casualties,
		"survivors", st.Stats.Survivors,
	)
	if st.Fact != "" {
		slog.Info("fact", "text", st.Fact)
	}
	if db != nil {
		if err := db.LogPhase(runID, st.Phase.String(), st.Time, st.Fact); err != nil {
			slog.Error("phase log failed", "error", err)
		}
	}
}
