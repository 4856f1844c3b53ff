// Package main provides the shapekit CLI.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shapekit/shapekit/shape"
)

const version = "v0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "shapekit",
	Short: "Shape bookkeeping for nested numeric arrays",
	Long:  "shapekit infers, converts, and enumerates shapes of nested numeric arrays (rank 1-6).",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shapekit %s\n", version)
	},
}

var inferCmd = &cobra.Command{
	Use:   "infer [JSON]",
	Short: "Infer the shape of a nested JSON array",
	Long: `Infers the shape of a nested JSON array along its first-element path
and prints the shape and total element count. Reads from stdin when no
argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfer,
}

var reshapeTo int

var reshapeCmd = &cobra.Command{
	Use:   "reshape DIMS",
	Short: "Convert a shape to a target rank",
	Long: `Converts a comma-separated shape (for example "1,2,3") to the target
rank, padding with leading 1s or collapsing leading dimensions so the
element count is preserved.`,
	Args: cobra.ExactArgs(1),
	RunE: runReshape,
}

func runInfer(cmd *cobra.Command, args []string) error {
	var input []byte
	if len(args) == 1 {
		input = []byte(args[0])
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		input = data
	}

	var v any
	if err := json.Unmarshal(input, &v); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	e, err := shape.FromAny(v)
	if err != nil {
		return err
	}

	s := shape.Infer(e)
	if len(s) == 0 {
		return fmt.Errorf("input is a scalar, not a nested array")
	}
	fmt.Printf("shape:    %v\n", s)
	fmt.Printf("rank:     %d\n", len(s))
	fmt.Printf("elements: %d\n", s.NumElements())
	return nil
}

func runReshape(cmd *cobra.Command, args []string) error {
	s, err := parseShape(args[0])
	if err != nil {
		return err
	}
	rank := shape.Rank(reshapeTo)
	if !rank.Valid() {
		return fmt.Errorf("target rank %d out of range [1, 6]", reshapeTo)
	}
	fmt.Printf("%v\n", s.ToRank(rank))
	return nil
}

// parseShape parses a comma-separated shape string (for example: "1,2,3").
func parseShape(raw string) (shape.Shape, error) {
	parts := strings.Split(raw, ",")
	s := make(shape.Shape, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty dimension")
		}
		dim, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("failed to parse dimension %q: %w", part, err)
		}
		if dim < 1 {
			return nil, fmt.Errorf("invalid dimension %d (must be >= 1)", dim)
		}
		s = append(s, dim)
	}
	if len(s) > int(shape.Rank6) {
		return nil, fmt.Errorf("rank %d out of range [1, 6]", len(s))
	}
	return s, nil
}

func main() {
	reshapeCmd.Flags().IntVar(&reshapeTo, "to", 0, "target rank (1-6)")
	_ = reshapeCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(versionCmd, inferCmd, reshapeCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
