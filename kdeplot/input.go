package kdeplot

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

//Dataset is one panel's worth of paired reaction-coordinate samples, e.g.
//distances on X against angles on Y. Density is filled by Weigh.
type Dataset struct {
	X, Y    []float64
	Density []float64
}

//Len returns the number of samples in the dataset.
func (D *Dataset) Len() int {
	return len(D.X)
}

//LoadDir pairs the *_distances.dat and *_angles.dat files in dir into
//datasets, one per pair, sorted by the distances-file name. Both files of a
//pair are read line by line in step: comment lines (containing '#') are
//skipped, and the second column of each file supplies the value, distances
//on X and angles on Y. A distances file without its angles counterpart, or a
//pair of different lengths, is an error.
func LoadDir(dir string) ([]*Dataset, error) {
	dists, err := filepath.Glob(filepath.Join(dir, "*_distances.dat"))
	if err != nil {
		return nil, Error{err.Error(), dir, []string{"LoadDir"}}
	}
	angs, err := filepath.Glob(filepath.Join(dir, "*_angles.dat"))
	if err != nil {
		return nil, Error{err.Error(), dir, []string{"LoadDir"}}
	}
	if len(dists) != len(angs) {
		return nil, Error{fmt.Sprintf("%d distance files but %d angle files", len(dists), len(angs)), dir, []string{"LoadDir"}}
	}
	if len(dists) == 0 {
		return nil, Error{"no *_distances.dat files found", dir, []string{"LoadDir"}}
	}
	sort.Strings(dists)
	var sets []*Dataset
	for _, dname := range dists {
		aname := strings.TrimSuffix(dname, "_distances.dat") + "_angles.dat"
		x, err := readColumn(dname)
		if err != nil {
			return nil, errDecorate(err, "LoadDir")
		}
		y, err := readColumn(aname)
		if err != nil {
			return nil, errDecorate(err, "LoadDir")
		}
		if len(x) != len(y) {
			return nil, Error{fmt.Sprintf("%s has %d samples but %s has %d", dname, len(x), aname, len(y)), dir, []string{"LoadDir"}}
		}
		sets = append(sets, &Dataset{X: x, Y: y})
	}
	return sets, nil
}

//readColumn reads the second whitespace-separated column of a .dat file,
//skipping comment lines.
func readColumn(name string) ([]float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"readColumn"}}
	}
	defer f.Close()
	var vals []float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, Error{fmt.Sprintf("can't parse value %q: %s", fields[1], err.Error()), name, []string{"readColumn"}}
		}
		vals = append(vals, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), name, []string{"readColumn"}}
	}
	return vals, nil
}
