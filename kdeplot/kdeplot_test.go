package kdeplot

import (
	"math"
	"os"
	"sort"
	"testing"
)

//clusteredData returns a tight cluster plus one far outlier, scattered
//enough for a non-singular covariance.
func clusteredData() ([]float64, []float64) {
	x := []float64{0.0, 0.1, 0.0, 0.1, 5.0}
	y := []float64{0.0, 0.0, 0.1, 0.15, 5.0}
	return x, y
}

func TestKDE(Te *testing.T) {
	x, y := clusteredData()
	dens, err := KDE(x, y)
	if err != nil {
		Te.Fatal(err)
	}
	for i, d := range dens {
		if d <= 0 || math.IsNaN(d) {
			Te.Errorf("density %d is %v", i, d)
		}
	}
	//the outlier must be less dense than every cluster point.
	for i := 0; i < 4; i++ {
		if dens[4] >= dens[i] {
			Te.Errorf("outlier density %v not below cluster density %v", dens[4], dens[i])
		}
	}
	if _, err := KDE([]float64{1, 2}, []float64{1}); err == nil {
		Te.Error("mismatched lengths did not fail")
	}
	if _, err := KDE([]float64{1, 1, 1}, []float64{2, 2, 2}); err == nil {
		Te.Error("degenerate data did not fail")
	}
}

func TestWeigh(Te *testing.T) {
	x, y := clusteredData()
	d := &Dataset{X: x, Y: y}
	if err := d.Weigh(); err != nil {
		Te.Fatal(err)
	}
	if !sort.Float64sAreSorted(d.Density) {
		Te.Error("densities not in increasing order after Weigh")
	}
	//the outlier is the sparsest point, so it is drawn first.
	if d.X[0] != 5.0 || d.Y[0] != 5.0 {
		Te.Errorf("sparsest point is (%v, %v), want the outlier (5, 5)", d.X[0], d.Y[0])
	}
}

func TestPanelLimits(Te *testing.T) {
	d := &Dataset{X: []float64{1, 2}, Y: []float64{10, 20}}
	p := Panel{WidthMin: 0, WidthMax: 3, HeightMin: 5, HeightMax: 25}
	xlim, ylim := panelLimits(d, p)
	//patch is wider than the data, so limits are the patch plus a
	//seventh of the spread on each side.
	if math.Abs(xlim[0]-(0-3.0/7.0)) > 1e-12 || math.Abs(xlim[1]-(3+3.0/7.0)) > 1e-12 {
		Te.Errorf("got xlim %v", xlim)
	}
	if math.Abs(ylim[0]-(5-20.0/7.0)) > 1e-12 || math.Abs(ylim[1]-(25+20.0/7.0)) > 1e-12 {
		Te.Errorf("got ylim %v", ylim)
	}
	//data wider than the patch takes over.
	d2 := &Dataset{X: []float64{-10, 10}, Y: []float64{15, 16}}
	xlim2, _ := panelLimits(d2, p)
	if xlim2[0] >= -10 || xlim2[1] <= 10 {
		Te.Errorf("got xlim %v, want it to cover the data", xlim2)
	}
}

func TestGroupLimits(Te *testing.T) {
	ds := []*Dataset{
		{X: []float64{0, 1}, Y: []float64{0, 1}},
		{X: []float64{5, 9}, Y: []float64{5, 9}},
	}
	panels := []Panel{
		{WidthMin: 0, WidthMax: 1, HeightMin: 0, HeightMax: 1, SizeGroup: 1},
		{WidthMin: 5, WidthMax: 9, HeightMin: 5, HeightMax: 9, SizeGroup: 1},
	}
	xlims, ylims := groupLimits(ds, panels)
	if xlims[0] != xlims[1] || ylims[0] != ylims[1] {
		Te.Error("panels in the same size group do not share limits")
	}
	if xlims[0][0] > 0 || xlims[0][1] < 9 {
		Te.Errorf("merged xlim %v does not cover both panels", xlims[0])
	}
	//different groups keep their own limits.
	panels[1].SizeGroup = 2
	xlims, _ = groupLimits(ds, panels)
	if xlims[0] == xlims[1] {
		Te.Error("panels in different size groups share limits")
	}
}

const testConfig = `[Labels]
xlabel = Distance (A)
ylabel = Angle (deg)

[plot1]
height_min = 30.0
height_max = 60.0
width_min = 2.0
width_max = 3.0
size_group = 1
color = blue

[plot2]
height_min = 35.0
height_max = 65.0
width_min = 2.2
width_max = 3.2
size_group = 1
color = red
`

func TestReadConfig(Te *testing.T) {
	if err := os.MkdirAll("../test/out", 0755); err != nil {
		Te.Fatal(err)
	}
	path := "../test/out/kde_config"
	if err := os.WriteFile(path, []byte(testConfig), 0644); err != nil {
		Te.Fatal(err)
	}
	labels, panels, err := ReadConfig(path)
	if err != nil {
		Te.Fatal(err)
	}
	if labels.X != "Distance (A)" || labels.Y != "Angle (deg)" {
		Te.Errorf("wrong labels: %+v", labels)
	}
	if len(panels) != 2 {
		Te.Fatalf("got %d panels, want 2", len(panels))
	}
	if panels[0].Color != "blue" || panels[1].Color != "red" {
		Te.Errorf("wrong panel order or colors: %+v", panels)
	}
	if panels[0].HeightMin != 30.0 || panels[0].WidthMax != 3.0 || panels[0].SizeGroup != 1 {
		Te.Errorf("wrong panel values: %+v", panels[0])
	}
	bad := path + "_badcolor"
	if err := os.WriteFile(bad, []byte("[p]\ncolor = purple\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, _, err := ReadConfig(bad); err == nil {
		Te.Error("unknown color did not fail")
	}
}

func TestRender(Te *testing.T) {
	if err := os.MkdirAll("../test/out", 0755); err != nil {
		Te.Fatal(err)
	}
	x, y := clusteredData()
	d1 := &Dataset{X: x, Y: y}
	d2 := &Dataset{X: []float64{1, 2, 3, 2.5, 1.5}, Y: []float64{2, 1, 3, 2.2, 2.8}}
	for _, d := range []*Dataset{d1, d2} {
		if err := d.Weigh(); err != nil {
			Te.Fatal(err)
		}
	}
	labels := Labels{X: "Distance (A)", Y: "Angle (deg)"}
	panels := []Panel{
		{WidthMin: 0, WidthMax: 1, HeightMin: 0, HeightMax: 1, SizeGroup: 1, Color: "blue"},
		{WidthMin: 1, WidthMax: 3, HeightMin: 1, HeightMax: 3, SizeGroup: 2, Color: "green"},
	}
	out := "../test/out/restraints_kde.pdf"
	if err := Render(out, []*Dataset{d1, d2}, labels, panels, true); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(out)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("empty PDF written")
	}
	//rendering an unweighed dataset must fail, not panic.
	if err := Render(out, []*Dataset{{X: x, Y: y}}, labels, panels[:1], false); err == nil {
		Te.Error("unweighed dataset did not fail")
	}
}
