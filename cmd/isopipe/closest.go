package main

import (
	"fmt"

	"github.com/philipparndt/isopipe/pkg/geometry"
	"github.com/philipparndt/isopipe/pkg/pipe"
	"github.com/philipparndt/isopipe/pkg/spatial"
	"github.com/spf13/cobra"
)

var (
	closestX         float64
	closestY         float64
	closestThreshold float64
	closestZoom      float64
)

var closestCmd = &cobra.Command{
	Use:   "closest [file]",
	Short: "Find the segment closest to a position",
	Long: `Hit-test a world-space position against the plan: report the segment whose
line is geometrically closest, the way a click selects a segment in the
editor. When nothing is within the threshold the root is reported.`,
	Args: cobra.ExactArgs(1),
	Run:  runClosest,
}

func init() {
	rootCmd.AddCommand(closestCmd)

	closestCmd.Flags().Float64Var(&closestX, "x", 0.0, "X coordinate in world units")
	closestCmd.Flags().Float64Var(&closestY, "y", 0.0, "Y coordinate in world units")
	closestCmd.Flags().Float64Var(&closestThreshold, "threshold", 10.0, "hit radius in pixels")
	closestCmd.Flags().Float64Var(&closestZoom, "zoom", 1.0, "zoom factor")

	closestCmd.MarkFlagsRequiredTogether("x", "y")
}

func runClosest(cmd *cobra.Command, args []string) {
	coords := loadAndResolve(args[0])
	point := geometry.NewPoint(closestX, closestY)

	id := spatial.ClosestSegment(point, coords, closestThreshold/closestZoom)
	if id == pipe.RootID {
		fmt.Println("Closest: root (nothing within threshold, or root itself)")
		return
	}

	pos := coords[id]
	distance := geometry.DistancePointToSegment(point.X, point.Y,
		pos.Start.X, pos.Start.Y, pos.End.X, pos.End.Y)

	fmt.Printf("Closest segment: %s\n", id)
	fmt.Printf("Distance:        %.3f world units\n", distance)
}
