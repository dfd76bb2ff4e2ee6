// Command redstonesim loads a .schematic file, flips every switch it
// contains, runs the simulation until it settles (or a tick budget is
// exhausted), and writes the resulting grid back out as a .schematic file.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/df-mc/redstonesim/redstone"
	"github.com/df-mc/redstonesim/redstone/schematic"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var ticks int

	cmd := &cobra.Command{
		Use:   "redstonesim <input.schematic> <output.schematic>",
		Short: "Run a redstone simulation on a schematic file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], ticks)
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 1000, "maximum number of ticks to run before giving up on settling")
	return cmd
}

func run(inputPath, outputPath string, maxTicks int) error {
	log := slog.Default().With("run", uuid.NewString())

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("redstonesim: open input: %w", err)
	}
	defer in.Close()

	grid, err := schematic.Load(in)
	if err != nil {
		return fmt.Errorf("redstonesim: load schematic: %w", err)
	}
	log.Info("loaded schematic", "size", grid.Size())

	e := redstone.NewEngine(redstone.Config{Log: log})
	e.SetMap(grid)
	flipSwitches(e)

	for e.TickNumber() < maxTicks && !e.IsStill() {
		e.Run()
	}
	log.Info("simulation settled", "ticks", e.TickNumber(), "still", e.IsStill())

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("redstonesim: create output: %w", err)
	}
	defer out.Close()

	if err := schematic.Save(out, e.Map()); err != nil {
		return fmt.Errorf("redstonesim: save schematic: %w", err)
	}
	return nil
}

// flipSwitches engages every switch in the engine's grid, in the grid's
// y-outer, z-middle, x-inner traversal order.
func flipSwitches(e *redstone.Engine) {
	g := e.Map()
	g.Each(func(pos redstone.Pos) {
		if sw, ok := g.At(pos).(*redstone.Switch); ok {
			sw.Flip(e, pos)
		}
	})
}
