//Package geo computes simple per-frame geometry from XYZ trajectories. XYZ
//scans lose the atom identifiers of the source topology, so groups are given
//as plain 1-based atom indices.
package geo

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"xyztraj"
	"xyztraj/traj/xyz"
)

//Error is the structure for geometry errors.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return "geo: " + err.message
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Centroid returns the geometric center of the 1-based atoms idx in coords,
//an NAtoms x 3 matrix.
func Centroid(coords *mat.Dense, idx []int) (*mat.VecDense, error) {
	if len(idx) == 0 {
		return nil, Error{"empty atom group", []string{"Centroid"}}
	}
	r, _ := coords.Dims()
	c := mat.NewVecDense(3, nil)
	for _, i := range idx {
		if i < 1 || i > r {
			return nil, Error{fmt.Sprintf("atom %d requested but the frame has %d atoms", i, r), []string{"Centroid"}}
		}
		c.AddVec(c, coords.RowView(i-1))
	}
	c.ScaleVec(1.0/float64(len(idx)), c)
	return c, nil
}

//Scan returns, for each frame of t, the distance between the centroids of
//the two 1-based atom groups.
func Scan(t *xyz.Trajectory, groupA, groupB []int) ([]float64, error) {
	d := make([]float64, t.NFrames())
	diff := mat.NewVecDense(3, nil)
	for i := 0; i < t.NFrames(); i++ {
		coords, _, err := t.Frame(i).Coords()
		if err != nil {
			return nil, Error{fmt.Sprintf("frame %d of %s: %s", i+1, t.FileName(), err.Error()), []string{"Scan"}}
		}
		a, err := Centroid(coords, groupA)
		if err != nil {
			return nil, errDecorate(err, "Scan")
		}
		b, err := Centroid(coords, groupB)
		if err != nil {
			return nil, errDecorate(err, "Scan")
		}
		diff.SubVec(a, b)
		d[i] = mat.Norm(diff, 2)
	}
	return d, nil
}

//Stats returns the mean and the population standard deviation of the
//per-frame distances.
func Stats(d []float64) (mean, std float64) {
	mean = stat.Mean(d, nil)
	std = stat.PopStdDev(d, nil)
	return mean, std
}

//WriteCSV writes the per-frame distances as frame,distance rows, 1-based
//frames, preceded by a header row.
func WriteCSV(w io.Writer, d []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frame", "distance"}); err != nil {
		return Error{err.Error(), []string{"WriteCSV"}}
	}
	for i, v := range d {
		if err := cw.Write([]string{strconv.Itoa(i + 1), strconv.FormatFloat(v, 'f', 6, 64)}); err != nil {
			return Error{err.Error(), []string{"WriteCSV"}}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return Error{err.Error(), []string{"WriteCSV"}}
	}
	return nil
}

//errDecorate is a helper function that asserts that the error implements
//xyztraj.Error and decorates the error with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(xyztraj.Error)
	err2.Decorate(caller)
	return err2
}
