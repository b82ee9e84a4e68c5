package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/isopipe/internal/editor"
	"github.com/philipparndt/isopipe/pkg/analysis"
	"github.com/philipparndt/isopipe/pkg/geometry"
	"github.com/philipparndt/isopipe/pkg/pipe"
	"github.com/spf13/cobra"
)

var (
	measureX1   float64
	measureY1   float64
	measureX2   float64
	measureY2   float64
	measureSnap bool
	measureZoom float64
)

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure the distance between two positions",
	Long: `Run the free-form ruler between two world-space positions. With --snap each
endpoint is magnetized to the nearest snap point (root or segment endpoint)
within the snap radius before measuring.`,
	Args: cobra.ExactArgs(1),
	Run:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&measureX1, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float64Var(&measureY1, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float64Var(&measureX2, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float64Var(&measureY2, "y2", 0.0, "Y coordinate of second point")
	measureCmd.Flags().BoolVar(&measureSnap, "snap", false, "snap endpoints to the nearest snap point")
	measureCmd.Flags().Float64Var(&measureZoom, "zoom", 1.0, "zoom factor")

	measureCmd.MarkFlagsRequiredTogether("x1", "y1", "x2", "y2")
}

func runMeasure(cmd *cobra.Command, args []string) {
	filename := args[0]

	plan, err := pipe.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading plan file: %v\n", err)
		os.Exit(1)
	}

	ed := editor.New(plan)
	ed.SetZoom(measureZoom)

	p1 := geometry.NewPoint(measureX1, measureY1)
	p2 := geometry.NewPoint(measureX2, measureY2)
	m := ed.Measure(p1, p2, measureSnap)

	fmt.Println("Ruler Measurement")
	fmt.Println("=================")
	fmt.Printf("\nPoint 1: %s", analysis.FormatPoint(p1))
	if measureSnap && m.Start != p1 {
		fmt.Printf(" snapped to %s", analysis.FormatPoint(m.Start))
	}
	fmt.Printf("\nPoint 2: %s", analysis.FormatPoint(p2))
	if measureSnap && m.End != p2 {
		fmt.Printf(" snapped to %s", analysis.FormatPoint(m.End))
	}

	fmt.Printf("\n\nDistance: %.3f world units (%.1f cm of pipe)\n", m.WorldUnits, m.Centimeters)
}
