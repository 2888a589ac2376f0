package kdeplot

import (
	"image/color"
	"os"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

//Densities above this value all get the strongest color, matching the fixed
//color scale the plots have always used.
const densityScaleMax = 0.30

var ramps = map[string]color.RGBA{
	"blue":   {R: 8, G: 48, B: 107, A: 255},
	"orange": {R: 127, G: 39, B: 4, A: 255},
	"red":    {R: 103, G: 0, B: 13, A: 255},
	"grey":   {R: 40, G: 40, B: 40, A: 255},
	"green":  {R: 0, G: 68, B: 27, A: 255},
}

func rampNames() string {
	names := make([]string, 0, len(ramps))
	for k := range ramps {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

//rampColor maps a normalized density t in [0, 1] to a color between a pale
//and a saturated shade of base. The palest quarter of the ramp is skipped,
//as in the reference palettes, so even sparse points stay visible.
func rampColor(base color.RGBA, t float64) color.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	t = 0.25 + 0.75*t
	mix := func(c uint8) uint8 {
		return uint8(float64(c)*t + 255.0*(1.0-t))
	}
	return color.RGBA{R: mix(base.R), G: mix(base.G), B: mix(base.B), A: 255}
}

//panelLimits widens the panel's patch bounds to cover its data and pads the
//result by a seventh of the spread on each axis.
func panelLimits(d *Dataset, p Panel) (xlim, ylim [2]float64) {
	xmin := floats.Min(d.X)
	xmax := floats.Max(d.X)
	ymin := floats.Min(d.Y)
	ymax := floats.Max(d.Y)
	if p.WidthMin < xmin {
		xmin = p.WidthMin
	}
	if p.WidthMax > xmax {
		xmax = p.WidthMax
	}
	if p.HeightMin < ymin {
		ymin = p.HeightMin
	}
	if p.HeightMax > ymax {
		ymax = p.HeightMax
	}
	xpad := (xmax - xmin) / 7.0
	ypad := (ymax - ymin) / 7.0
	return [2]float64{xmin - xpad, xmax + xpad}, [2]float64{ymin - ypad, ymax + ypad}
}

//groupLimits computes per-panel axis limits, then merges them so panels in
//the same size group share the widest limits of the group.
func groupLimits(ds []*Dataset, panels []Panel) (xlims, ylims [][2]float64) {
	xlims = make([][2]float64, len(ds))
	ylims = make([][2]float64, len(ds))
	type lim struct{ x, y [2]float64 }
	groups := make(map[int]lim)
	for i := range ds {
		x, y := panelLimits(ds[i], panels[i])
		g, ok := groups[panels[i].SizeGroup]
		if !ok {
			groups[panels[i].SizeGroup] = lim{x, y}
			continue
		}
		if x[0] < g.x[0] {
			g.x[0] = x[0]
		}
		if x[1] > g.x[1] {
			g.x[1] = x[1]
		}
		if y[0] < g.y[0] {
			g.y[0] = y[0]
		}
		if y[1] > g.y[1] {
			g.y[1] = y[1]
		}
		groups[panels[i].SizeGroup] = g
	}
	for i := range ds {
		g := groups[panels[i].SizeGroup]
		xlims[i] = g.x
		ylims[i] = g.y
	}
	return xlims, ylims
}

//Render draws one density-colored scatter panel per dataset, side by side
//with a shared y axis, into a single PDF at path. Panels must be weighed
//(see Weigh) before rendering. With crosshairs, the experimentally expected
//region of each panel is drawn as a dashed rectangle with center lines.
func Render(path string, ds []*Dataset, labels Labels, panels []Panel, crosshairs bool) error {
	if len(ds) == 0 {
		return Error{"no datasets to plot", path, []string{"Render"}}
	}
	if len(ds) != len(panels) {
		return Error{"number of datasets and config panels differ", path, []string{"Render"}}
	}
	for _, d := range ds {
		if d.Len() == 0 || len(d.Density) != d.Len() {
			return Error{"dataset is empty or has not been weighed", path, []string{"Render"}}
		}
	}
	xlims, ylims := groupLimits(ds, panels)
	//the y axis is shared across the whole figure.
	ymin := ylims[0][0]
	ymax := ylims[0][1]
	for _, y := range ylims[1:] {
		if y[0] < ymin {
			ymin = y[0]
		}
		if y[1] > ymax {
			ymax = y[1]
		}
	}
	plots := make([]*plot.Plot, len(ds))
	for i := range ds {
		p, err := panelPlot(ds[i], panels[i], xlims[i], ymin, ymax, crosshairs)
		if err != nil {
			return errDecorate(err, "Render")
		}
		p.X.Label.Text = labels.X
		if i == 0 {
			p.Y.Label.Text = labels.Y
		}
		plots[i] = p
	}
	canvas := vgpdf.New(vg.Length(len(ds))*4*vg.Inch, 4*vg.Inch)
	dc := draw.New(canvas)
	tiles := draw.Tiles{Rows: 1, Cols: len(ds)}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}
	f, err := os.Create(path)
	if err != nil {
		return Error{err.Error(), path, []string{"Render"}}
	}
	defer f.Close()
	if _, err := canvas.WriteTo(f); err != nil {
		return Error{err.Error(), path, []string{"Render"}}
	}
	return nil
}

func panelPlot(d *Dataset, panel Panel, xlim [2]float64, ymin, ymax float64, crosshairs bool) (*plot.Plot, error) {
	if len(d.Density) != d.Len() {
		return nil, Error{"dataset has not been weighed", "", []string{"panelPlot"}}
	}
	p := plot.New()
	p.X.Min, p.X.Max = xlim[0], xlim[1]
	p.Y.Min, p.Y.Max = ymin, ymax
	pts := make(plotter.XYs, d.Len())
	for i := range pts {
		pts[i].X = d.X[i]
		pts[i].Y = d.Y[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, Error{err.Error(), "", []string{"panelPlot"}}
	}
	base := ramps[panel.Color]
	dens := d.Density
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  rampColor(base, dens[i]/densityScaleMax),
			Radius: vg.Points(2.5),
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(s)
	if crosshairs {
		if err := addPatch(p, panel); err != nil {
			return nil, errDecorate(err, "panelPlot")
		}
	}
	return p, nil
}

//addPatch draws the expected-region rectangle, dashed, plus the horizontal
//and vertical center lines through it.
func addPatch(p *plot.Plot, panel Panel) error {
	rect := plotter.XYs{
		{X: panel.WidthMin, Y: panel.HeightMin},
		{X: panel.WidthMax, Y: panel.HeightMin},
		{X: panel.WidthMax, Y: panel.HeightMax},
		{X: panel.WidthMin, Y: panel.HeightMax},
		{X: panel.WidthMin, Y: panel.HeightMin},
	}
	wavg := (panel.WidthMin + panel.WidthMax) / 2.0
	havg := (panel.HeightMin + panel.HeightMax) / 2.0
	horiz := plotter.XYs{
		{X: panel.WidthMin, Y: havg},
		{X: panel.WidthMax, Y: havg},
	}
	vert := plotter.XYs{
		{X: wavg, Y: panel.HeightMin},
		{X: wavg, Y: panel.HeightMax},
	}
	for i, pts := range []plotter.XYs{rect, horiz, vert} {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return Error{err.Error(), "", []string{"addPatch"}}
		}
		l.LineStyle.Color = color.Black
		l.LineStyle.Width = vg.Points(1.5)
		if i == 0 {
			l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		}
		p.Add(l)
	}
	return nil
}
