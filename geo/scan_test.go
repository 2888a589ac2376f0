package geo

import (
	"math"
	"strings"
	"testing"

	"xyztraj/traj/xyz"
)

const scanTraj = `4
 frame 1
C    0.000000    0.000000    0.000000
C    0.000000    0.000000    0.000000
N    1.000000    0.000000    0.000000
N    1.000000    0.000000    0.000000
4
 frame 2
C    0.000000    0.000000    0.000000
C    0.000000    0.000000    0.000000
N    3.000000    0.000000    0.000000
N    3.000000    0.000000    0.000000
`

func TestScan(Te *testing.T) {
	T, err := xyz.Decode(strings.NewReader(scanTraj), "scan")
	if err != nil {
		Te.Fatal(err)
	}
	d, err := Scan(T, []int{1, 2}, []int{3, 4})
	if err != nil {
		Te.Fatal(err)
	}
	if len(d) != 2 {
		Te.Fatalf("got %d distances, want 2", len(d))
	}
	if math.Abs(d[0]-1.0) > 1e-12 || math.Abs(d[1]-3.0) > 1e-12 {
		Te.Errorf("got distances %v, want [1 3]", d)
	}
	mean, std := Stats(d)
	if math.Abs(mean-2.0) > 1e-12 {
		Te.Errorf("got mean %v, want 2", mean)
	}
	if math.Abs(std-1.0) > 1e-12 {
		Te.Errorf("got std %v, want 1", std)
	}
}

func TestCentroid(Te *testing.T) {
	T, err := xyz.Decode(strings.NewReader(scanTraj), "scan")
	if err != nil {
		Te.Fatal(err)
	}
	coords, _, err := T.Frame(0).Coords()
	if err != nil {
		Te.Fatal(err)
	}
	c, err := Centroid(coords, []int{1, 3})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(c.AtVec(0)-0.5) > 1e-12 {
		Te.Errorf("got x %v, want 0.5", c.AtVec(0))
	}
	if _, err := Centroid(coords, nil); err == nil {
		Te.Error("empty group did not fail")
	}
	if _, err := Centroid(coords, []int{5}); err == nil {
		Te.Error("out-of-range atom did not fail")
	}
}

func TestWriteCSV(Te *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, []float64{1.5, 2.5}); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		Te.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "frame,distance" {
		Te.Errorf("wrong header: %q", lines[0])
	}
	if lines[1] != "1,1.500000" || lines[2] != "2,2.500000" {
		Te.Errorf("wrong rows: %q, %q", lines[1], lines[2])
	}
}
