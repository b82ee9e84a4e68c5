package main

import (
	"fmt"
	"os"
	"time"

	"github.com/philipparndt/isopipe/pkg/pipe"
	"github.com/philipparndt/isopipe/pkg/resolve"
	"github.com/philipparndt/isopipe/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resolveWatch bool

var resolveCmd = &cobra.Command{
	Use:   "resolve [file]",
	Short: "Resolve a plan into absolute 2D coordinates",
	Long: `Resolve every segment of a plan into absolute start and end coordinates.
Segments with a missing or cyclic ancestry are excluded and reported.

With --watch the plan file is re-resolved whenever it changes on disk.`,
	Args: cobra.ExactArgs(1),
	Run:  runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolVar(&resolveWatch, "watch", false, "re-resolve whenever the plan file changes")
}

func runResolve(cmd *cobra.Command, args []string) {
	filename := args[0]

	if !resolveWatch {
		if err := resolveOnce(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := watchAndResolve(filename, logger); err != nil {
		logger.Fatal("Watch failed", zap.Error(err))
	}
}

// resolveOnce loads, resolves and prints a single coordinate table
func resolveOnce(filename string) error {
	plan, err := pipe.Load(filename)
	if err != nil {
		return err
	}

	segments := plan.Segments()
	coords, diag := resolve.ResolveAll(segments)

	fmt.Printf("%-24s %-9s %12s %12s %12s %12s\n", "ID", "DIR", "START X", "START Y", "END X", "END Y")
	for _, s := range segments {
		pos, ok := coords[s.ID]
		if !ok {
			continue
		}
		fmt.Printf("%-24s %-9s %12.3f %12.3f %12.3f %12.3f\n",
			s.ID, s.Direction, pos.Start.X, pos.Start.Y, pos.End.X, pos.End.Y)
	}

	if !diag.Clean() {
		fmt.Println()
		for _, id := range diag.Orphans {
			fmt.Printf("warning: segment %s has a missing ancestor and was excluded\n", id)
		}
		for _, id := range diag.Cycles {
			fmt.Printf("warning: segment %s is part of a parent cycle and was excluded\n", id)
		}
	}
	return nil
}

// watchAndResolve re-resolves the plan on every file change until
// interrupted
func watchAndResolve(filename string, logger *zap.Logger) error {
	resolvePass := func(path string) {
		start := time.Now()

		plan, err := pipe.Load(path)
		if err != nil {
			logger.Error("Failed to reload plan", zap.String("file", path), zap.Error(err))
			return
		}

		coords, diag := resolve.ResolveAll(plan.Segments())
		logger.Info("Plan resolved",
			zap.String("file", path),
			zap.Int("segments", plan.Len()),
			zap.Int("resolved", len(coords)),
			zap.Strings("orphans", diag.Orphans),
			zap.Strings("cycles", diag.Cycles),
			zap.Duration("duration", time.Since(start)),
		)
	}

	pw, err := watcher.NewPlanWatcher(filename, 200*time.Millisecond, resolvePass)
	if err != nil {
		return err
	}
	defer pw.Close()

	pw.Start(func(err error) {
		logger.Warn("Watcher error", zap.Error(err))
	})

	resolvePass(filename)
	logger.Info("Watching plan file", zap.String("file", filename))
	select {}
}
