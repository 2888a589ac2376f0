//Command xyztraj curates XYZ molecular-dynamics trajectories: it stitches
//selected frames from several trajectory files into one, swaps atoms across
//frames, measures centroid distances per frame, and plots KDE maps of paired
//reaction coordinates.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

//rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "xyztraj",
	Short: `Curate XYZ molecular-dynamics trajectories.
Stitch frames from several scans together, measure them, or plot them`,
	Version: "0.1.0",
}

//Execute adds all child commands to the root command and sets flags appropriately.
//This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
