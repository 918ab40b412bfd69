package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/opstats/opcalc/internal/combat"
	"github.com/opstats/opcalc/internal/config"
	"github.com/opstats/opcalc/internal/model"
	"github.com/opstats/opcalc/internal/roster"
)

const ConfigPath = "config/opcalc.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config
	cfgPath := ConfigPath
	if p := os.Getenv("OPCALC_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})))

	slog.Info("opcalc starting", "roster", cfg.RosterPath,
		"enemy_def", cfg.Enemy.Defense, "enemy_mres", cfg.Enemy.MagicResist)

	// Load operator roster
	ops, err := roster.Load(cfg.RosterPath)
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}
	slog.Info("roster loaded", "operators", len(ops))

	enemy := model.Enemy{Defense: cfg.Enemy.Defense, MagicResist: cfg.Enemy.MagicResist}
	printMetricsTable(os.Stdout, ops, enemy)

	// Defense sweeps for all operators in parallel
	curves, err := combat.DamageCurves(ctx, ops, cfg.Sweep.MaxDefense, cfg.Sweep.DefenseStep)
	if err != nil {
		return fmt.Errorf("generating curves: %w", err)
	}
	for i, op := range ops {
		c := curves[i]
		slog.Info("defense curve", "operator", op.Name,
			"points", len(c), "dps_at_0", c[0].DPS, "dps_at_max", c[len(c)-1].DPS)
	}

	return nil
}

// printMetricsTable writes one row of performance metrics per operator.
func printMetricsTable(out io.Writer, ops []model.Operator, enemy model.Enemy) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tDPH\tDPS\tBREAK\tCOST-EFF\tHPS\tSURV")
	for _, op := range ops {
		m := combat.OperatorPerformance(op, enemy)
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%d\t%.2f\t%.1f\t%.0f\n",
			op.Name, op.AtkType, m.DPH, m.DPS, m.ArmorBreak, m.CostEfficiency, m.HPS, m.Survivability)
	}
	w.Flush()
}
