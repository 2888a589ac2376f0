package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xyztraj/sel"
	"xyztraj/traj/xyz"
)

var combineFrames []string

//combineCmd stitches frames from the trajectories found in a directory into
//one combined file. Reaction-path scans often have to be restarted from a
//later point, e.g. to rerun the peak at higher resolution; afterwards the
//pieces are recombined here, keeping only the frames that are wanted and
//optionally playing a leg backwards.
var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Stitch selected frames from trajectory files into one trajectory",
	Long: `Scans a directory for multi-frame XYZ files and concatenates the requested
frames from each, in lexicographic file order, into a single output
trajectory. Frame blocks are copied verbatim.

Selections are given as repeated --frames flags, file=expression, where the
expression is a comma-separated list of 1-based frames and ascending ranges:

  xyztraj combine --frames 1.xyz=1-3 --frames 2.xyz=1,4-6:r

The :r suffix reverses that file's selection. Files without a --frames entry
contribute nothing. Without any --frames flag, the selection for each
discovered trajectory is prompted for interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCombine()
	},
}

func init() {
	rootCmd.AddCommand(combineCmd)
	combineCmd.Flags().StringP("dir", "d", ".", "directory to scan for trajectory files")
	combineCmd.Flags().StringP("out", "o", "combined.xyz", "output trajectory file")
	combineCmd.Flags().StringArrayVarP(&combineFrames, "frames", "f", nil, "frame selection as file=expr[:r]; repeatable")

	// Bind the parameters to viper
	viper.BindPFlag("dir", combineCmd.Flags().Lookup("dir"))
	viper.BindPFlag("out", combineCmd.Flags().Lookup("out"))
}

func runCombine() error {
	dir := viper.GetString("dir")
	files, err := xyz.Discover(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no multi-frame XYZ files found in %s", dir)
	}
	var requests []sel.Request
	if len(combineFrames) > 0 {
		requests, err = flagSelections(files, combineFrames)
	} else {
		requests, err = promptSelections(files)
	}
	if err != nil {
		return err
	}
	out := viper.GetString("out")
	if err := sel.Combine(requests, out); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

//flagSelections matches --frames entries against the discovered trajectories,
//preserving the lexicographic file order. A flag naming a file that was not
//discovered is an error: it would otherwise be silently ignored.
func flagSelections(files []string, specs []string) ([]sel.Request, error) {
	wanted := make(map[string]sel.Request, len(specs))
	for _, s := range specs {
		name, expr, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("malformed --frames %q: want file=expr", s)
		}
		req := sel.Request{Frames: expr}
		if rest, found := strings.CutSuffix(req.Frames, ":r"); found {
			req.Frames = rest
			req.Reverse = true
		}
		//the expression is validated here so a bad flag fails before any file work.
		if _, err := sel.ParseRange(req.Frames); err != nil {
			return nil, err
		}
		wanted[name] = req
	}
	var requests []sel.Request
	for _, f := range files {
		req, ok := wanted[filepath.Base(f)]
		if !ok {
			req, ok = wanted[f]
		}
		if !ok {
			continue
		}
		req.File = f
		requests = append(requests, req)
		delete(wanted, filepath.Base(f))
		delete(wanted, f)
	}
	for name := range wanted {
		return nil, fmt.Errorf("--frames names %s, which is not a discovered trajectory", name)
	}
	return requests, nil
}

//promptSelections asks for each trajectory's frames on stdin. The parser
//itself never retries; the re-prompt loop on malformed input lives here,
//with the caller.
func promptSelections(files []string) ([]sel.Request, error) {
	in := bufio.NewReader(os.Stdin)
	requests := make([]sel.Request, 0, len(files))
	for _, f := range files {
		for {
			fmt.Printf("Frames from %s? (e.g. 1,3-5; empty to skip): ", f)
			line, err := in.ReadString('\n')
			if err != nil {
				return nil, fmt.Errorf("reading selection for %s: %v", f, err)
			}
			expr := strings.TrimSpace(line)
			indices, err := sel.ParseRange(expr)
			if err != nil {
				fmt.Println(err)
				continue
			}
			req := sel.Request{File: f, Frames: expr}
			if len(indices) > 0 {
				fmt.Printf("Reverse the selection from %s? (y/N): ", f)
				ans, err := in.ReadString('\n')
				if err != nil {
					return nil, fmt.Errorf("reading selection for %s: %v", f, err)
				}
				req.Reverse = strings.HasPrefix(strings.ToLower(strings.TrimSpace(ans)), "y")
			}
			requests = append(requests, req)
			break
		}
	}
	return requests, nil
}
