package app

import (
	"fmt"
	"io"
	"log/slog"

	"wolfram-ca/internal/core"
	"wolfram-ca/internal/logging"
	"wolfram-ca/internal/render"
	"wolfram-ca/internal/sims/elementary"
)

// Runner drives a simulation and streams each generation as a text line.
type Runner struct {
	sim core.Sim
	out *render.LineWriter
	log *slog.Logger
}

// New constructs a Runner for the provided simulation. A nil logger
// discards records.
func New(sim core.Sim, w io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		sim: sim,
		out: render.NewLineWriter(w, sim.Size().W),
		log: logger,
	}
}

// Run prints the current state and then advances it, generations times.
// The first line is the state the simulation was reset to.
func (r *Runner) Run(generations int) error {
	for gen := 0; gen < generations; gen++ {
		if err := r.out.WriteCells(r.sim.Cells()); err != nil {
			return fmt.Errorf("write generation %d: %w", gen, err)
		}
		r.sim.Step()
	}
	r.log.Debug("run complete", "sim", r.sim.Name(), "generations", generations)
	return nil
}

// Simulate builds an elementary automaton from cfg, seeds it and writes
// cfg.Generations lines to w.
func Simulate(cfg Config, seed int64, w io.Writer, logger *slog.Logger) error {
	sim, err := elementary.NewWithConfig(elementary.Config{Size: cfg.Size, Rule: cfg.Rule})
	if err != nil {
		return fmt.Errorf("allocate lattice: %w", err)
	}
	sim.Reset(seed)
	r := New(sim, w, logger)
	r.log.Debug("lattice seeded", "size", cfg.Size, "rule", cfg.Rule, "seed", seed)
	return r.Run(cfg.Generations)
}
