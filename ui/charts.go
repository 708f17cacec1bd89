package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"image/color"
	"math"

	"churnreport/domain/datareadiness/profiling"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

var piePalette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

// pieWedges is a plot.Plotter drawing class shares on the unit circle
type pieWedges struct {
	dist  *profiling.TargetDistribution
	inner draw.TextStyle
	outer draw.TextStyle
}

func newPieWedges(dist *profiling.TargetDistribution) pieWedges {
	face := font.From(font.Font{Typeface: "Liberation", Variant: "Sans"}, vg.Points(11))
	style := func(c color.Color) draw.TextStyle {
		return draw.TextStyle{
			Color:   c,
			Font:    face,
			XAlign:  draw.XCenter,
			YAlign:  draw.YCenter,
			Handler: plot.DefaultTextHandler,
		}
	}
	return pieWedges{
		dist:  dist,
		inner: style(color.White),
		outer: style(color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}),
	}
}

// DataRange leaves room around the unit circle for the outer labels
func (w pieWedges) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1.5, 1.5, -1.5, 1.5
}

// Plot fills one wedge per class, clockwise from twelve o'clock
func (w pieWedges) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	center := vg.Point{X: trX(0), Y: trY(0)}
	radius := trX(1) - center.X
	if h := trY(1) - center.Y; h < radius {
		radius = h
	}
	// angle is measured clockwise from twelve o'clock, y points up
	at := func(angle, r float64) vg.Point {
		return vg.Point{
			X: center.X + vg.Length(r*math.Sin(angle))*radius,
			Y: center.Y + vg.Length(r*math.Cos(angle))*radius,
		}
	}

	start := 0.0
	for i, class := range w.dist.Classes {
		share := float64(class.Count) / float64(w.dist.Total) * 2 * math.Pi

		var path vg.Path
		if share >= 2*math.Pi {
			path.Move(at(start, 1))
		} else {
			path.Move(center)
		}
		// vg arcs start at three o'clock and turn counter-clockwise
		path.Arc(center, radius, math.Pi/2-start, -share)
		path.Close()
		c.SetColor(piePalette[i%len(piePalette)])
		c.Fill(path)

		mid := start + share/2
		c.FillText(w.inner, at(mid, 0.6), fmt.Sprintf("%.1f%%", class.Percent))
		c.FillText(w.outer, at(mid, 1.25), class.Label)
		start += share
	}
}

// PieChart draws the class shares as an inline SVG pie
func PieChart(dist *profiling.TargetDistribution, size int) (template.HTML, error) {
	if dist == nil || dist.Total == 0 {
		return "", nil
	}

	p := plot.New()
	p.BackgroundColor = nil
	p.HideAxes()
	p.Add(newPieWedges(dist))

	side := vg.Points(float64(size))
	canvas := vgsvg.NewWith(vgsvg.UseWH(side, side))
	p.Draw(draw.New(canvas))

	var buf bytes.Buffer
	if _, err := canvas.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("render pie chart: %w", err)
	}

	// the XML prolog is not valid inside an HTML document
	out := buf.Bytes()
	if i := bytes.Index(out, []byte("<svg")); i > 0 {
		out = out[i:]
	}
	return template.HTML(out), nil
}
