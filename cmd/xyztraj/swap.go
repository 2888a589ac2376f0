package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"xyztraj/traj/xyz"
)

var swapCmd = &cobra.Command{
	Use:   "swap <file.xyz> <atom1> <atom2>",
	Short: "Swap two atoms in every frame of a trajectory",
	Long: `Exchanges the coordinate lines of two 1-based atoms in every frame of an
XYZ file and writes the result next to the input as <name>_<a>_<b>.xyz.
Useful when two scans ordered their atoms differently and have to be
compared or combined.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("atom1 %q is not an integer", args[1])
		}
		b, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("atom2 %q is not an integer", args[2])
		}
		return runSwap(args[0], a, b)
	},
}

func init() {
	rootCmd.AddCommand(swapCmd)
}

func runSwap(name string, a, b int) error {
	t, err := xyz.Read(name)
	if err != nil {
		return err
	}
	out := fmt.Sprintf("%s_%d_%d.xyz", strings.TrimSuffix(name, ".xyz"), a, b)
	W, err := xyz.NewWriter(out)
	if err != nil {
		return err
	}
	for i := 0; i < t.NFrames(); i++ {
		swapped, err := t.Frame(i).SwapAtoms(a, b)
		if err != nil {
			W.Close()
			return err
		}
		if err := W.WNext(swapped); err != nil {
			W.Close()
			return err
		}
	}
	if err := W.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
