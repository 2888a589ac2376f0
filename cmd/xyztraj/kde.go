package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"xyztraj/kdeplot"
)

var (
	kdeConfig     string
	kdeDir        string
	kdeOut        string
	kdeCrosshairs bool
)

var kdeCmd = &cobra.Command{
	Use:   "kde",
	Short: "KDE scatter plots of paired reaction coordinates",
	Long: `Draws one density-colored scatter panel per pair of N_distances.dat and
N_angles.dat files found in the input directory, against the experimentally
expected region from the config file, and writes them side by side into a
single PDF.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKDE()
	},
}

func init() {
	rootCmd.AddCommand(kdeCmd)
	kdeCmd.Flags().StringVarP(&kdeConfig, "config", "c", "config", "plot configuration file")
	kdeCmd.Flags().StringVarP(&kdeDir, "dir", "d", ".", "directory with *_distances.dat and *_angles.dat files")
	kdeCmd.Flags().StringVarP(&kdeOut, "out", "o", "restraints_kde.pdf", "output PDF")
	kdeCmd.Flags().BoolVar(&kdeCrosshairs, "crosshairs", true, "draw the expected-region patch and crosshairs")
}

func runKDE() error {
	labels, panels, err := kdeplot.ReadConfig(kdeConfig)
	if err != nil {
		return err
	}
	sets, err := kdeplot.LoadDir(kdeDir)
	if err != nil {
		return err
	}
	if len(sets) != len(panels) {
		return fmt.Errorf("%d dataset pairs in %s but %d panel sections in %s", len(sets), kdeDir, len(panels), kdeConfig)
	}
	for _, d := range sets {
		if err := d.Weigh(); err != nil {
			return err
		}
	}
	if err := kdeplot.Render(kdeOut, sets, labels, panels, kdeCrosshairs); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", kdeOut)
	return nil
}
