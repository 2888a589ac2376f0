package xyz

import (
	"bufio"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

//IsTrajectory reports whether the file holds more than one frame. It uses
//the repeated-header heuristic: the trimmed first line is the declared atom
//count, and any later line whose trimmed text equals it counts as another
//frame header. A coordinate value that happens to match the atom count as a
//standalone line is a false positive; that is a known limitation of the
//heuristic, and the strict per-boundary validation in Next catches such
//files when they are actually parsed.
func IsTrajectory(name string) (bool, error) {
	f, err := os.Open(name)
	if err != nil {
		return false, Error{UnableToOpen + ": " + err.Error(), name, []string{"IsTrajectory"}, true}
	}
	defer f.Close()
	z, err := newDecompressor(name, f)
	if err != nil {
		return false, Error{"Can't read compressed trajectory: " + err.Error(), name, []string{"IsTrajectory"}, true}
	}
	var r io.Reader = f
	if z != nil {
		defer z.Close()
		r = z
	}
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return false, Error{"Can't read the first line", name, []string{"IsTrajectory"}, true}
	}
	header := strings.TrimSpace(scanner.Text())
	if n, err := strconv.Atoi(header); err != nil || n <= 0 {
		return false, Error{WrongFormat + ": first line is not an atom count", name, []string{"IsTrajectory"}, true}
	}
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == header {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, Error{err.Error(), name, []string{"IsTrajectory"}, true}
	}
	return false, nil
}

//Discover scans dir for XYZ files (plain or compressed) that are multi-frame
//trajectories and returns their paths in lexicographic order. Single-frame
//files are left out: they are not valid sources for frame selection. Files
//that can't be opened or don't look like XYZ at all contribute nothing and
//are reported through the log, so one stray file does not abort the scan.
func Discover(dir string) ([]string, error) {
	var candidates []string
	for _, pattern := range []string{"*.xyz", "*.xyz.gz", "*.xyz.zst", "*.xyz.zstd"} {
		m, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, Error{err.Error(), dir, []string{"Discover"}, true}
		}
		candidates = append(candidates, m...)
	}
	sort.Strings(candidates)
	var trajs []string
	for _, name := range candidates {
		ok, err := IsTrajectory(name)
		if err != nil {
			log.Printf("xyztraj: skipping %s: %v", name, err)
			continue
		}
		if ok {
			trajs = append(trajs, name)
		}
	}
	return trajs, nil
}
