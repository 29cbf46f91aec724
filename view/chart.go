package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rxnprogress/extent"
)

// Chart geometry defaults (pixels).
const (
	DefaultWidth  = 600
	DefaultHeight = 400

	// tickCount is the number of labelled ticks per axis (ends included).
	tickCount = 6
)

// Axis titles.
const (
	ExtentAxisTitle = "Extent of Reaction, ξ (moles)"
	molesAxisTitle  = "Amount (moles)"
	massAxisTitle   = "Mass (g)"
)

// AxisTitle returns the vertical axis title for mode.
func AxisTitle(mode extent.Mode) string {
	if mode == extent.Mass {
		return massAxisTitle
	}

	return molesAxisTitle
}

// Format selects the image encoding used by Render.
type Format int

const (
	PNG Format = iota
	SVG
)

// ParseFormat accepts "png" or "svg" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Ext returns the file extension without the dot.
func (f Format) Ext() string {
	if f == SVG {
		return "svg"
	}

	return "png"
}

// provider maps the format to a go-chart renderer.
func (f Format) provider() (chart.RendererProvider, error) {
	switch f {
	case PNG:
		return chart.PNG, nil
	case SVG:
		return chart.SVG, nil
	}

	return nil, fmt.Errorf("format %d: %w", int(f), ErrUnknownFormat)
}

// Renderable is satisfied by chart.Chart and chart.BarChart.
type Renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Render encodes c into w.
func Render(w io.Writer, c Renderable, f Format) error {
	rp, err := f.provider()
	if err != nil {
		return err
	}
	if err = c.Render(rp, w); err != nil {
		return fmt.Errorf("view: render %s: %w", f.Ext(), err)
	}

	return nil
}

// ceiling is the top of the vertical axis. An all-zero snapshot still gets a
// non-empty axis.
func ceiling(snap extent.Snapshot, mode extent.Mode) float64 {
	top := snap.Peak(mode)
	if top <= 0 {
		return 1
	}

	return top
}

// ticks returns tickCount evenly spaced, labelled ticks on [lo, hi].
func ticks(lo, hi float64) []chart.Tick {
	vals := make([]float64, tickCount)
	floats.Span(vals, lo, hi)

	out := make([]chart.Tick, len(vals))
	for i, v := range vals {
		out[i] = chart.Tick{Value: v, Label: tickLabel(v)}
	}

	return out
}

// BarChart draws an initial and an end bar for every species, scaled to the
// largest amount reachable anywhere in the range so bars do not jump off the
// axis while the extent moves.
func BarChart(snap extent.Snapshot, mode extent.Mode) chart.BarChart {
	top := ceiling(snap, mode)

	bars := make([]chart.Value, 0, 2*extent.SlotCount)
	for _, sa := range snap.Slots {
		a := sa.In(mode)
		bars = append(bars,
			chart.Value{
				Label: sa.Slot.String() + " initial",
				Value: a.Initial,
				Style: chart.Style{FillColor: Palette.Initial, StrokeColor: Palette.Initial},
			},
			chart.Value{
				Label: sa.Slot.String() + " end",
				Value: a.End,
				Style: chart.Style{FillColor: Palette.End, StrokeColor: Palette.End},
			},
		)
	}

	return chart.BarChart{
		Title:      fmt.Sprintf("Initial vs. current, %s", AxisTitle(mode)),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		BarWidth:   32,
		BarSpacing: 12,
		YAxis: chart.YAxis{
			Name:  AxisTitle(mode),
			Range: &chart.ContinuousRange{Min: 0, Max: top},
			Ticks: ticks(0, top),
		},
		Bars: bars,
	}
}

// LineGraph draws every species' amount from Range.Min to Range.Max. Amounts
// are linear in ξ, so each line needs only its two end points. A vertical
// marker shows the current ξ and, when the range straddles it, a grey line
// marks ξ = 0.
//
// Errors: ErrNoRange when the snapshot is infeasible or unbounded.
func LineGraph(snap extent.Snapshot, mode extent.Mode) (chart.Chart, error) {
	rng := snap.Range
	if !snap.Feasible || !rng.Bounded() || rng.Degenerate() {
		return chart.Chart{}, ErrNoRange
	}
	top := ceiling(snap, mode)

	series := make([]chart.Series, 0, extent.SlotCount+3)
	for _, sa := range snap.Slots {
		a := sa.In(mode)
		col := Palette.Species[sa.Slot]
		series = append(series, chart.ContinuousSeries{
			Name:    sa.Slot.String(),
			XValues: []float64{rng.Min, rng.Max},
			YValues: []float64{a.AtMin, a.AtMax},
			Style:   chart.Style{StrokeColor: col, StrokeWidth: 3},
		})
	}
	if rng.Min < 0 && rng.Max > 0 {
		series = append(series, chart.ContinuousSeries{
			Name:    "ξ = 0",
			XValues: []float64{0, 0},
			YValues: []float64{0, top},
			Style:   chart.Style{StrokeColor: Palette.Grid, StrokeWidth: 1, StrokeDashArray: []float64{4, 4}},
		})
	}
	series = append(series,
		chart.ContinuousSeries{
			Name:    "current ξ",
			XValues: []float64{snap.Extent, snap.Extent},
			YValues: []float64{0, top},
			Style:   chart.Style{StrokeColor: Palette.Marker, StrokeWidth: 2},
		},
		chart.AnnotationSeries{
			Annotations: []chart.Value2{{
				XValue: snap.Extent,
				YValue: top,
				Label:  "ξ = " + tickLabel(snap.Extent),
			}},
		},
	)

	ch := chart.Chart{
		Title:      fmt.Sprintf("%s vs. extent", AxisTitle(mode)),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		XAxis: chart.XAxis{
			Name:  ExtentAxisTitle,
			Range: &chart.ContinuousRange{Min: rng.Min, Max: rng.Max},
			Ticks: ticks(rng.Min, rng.Max),
		},
		YAxis: chart.YAxis{
			Name:  AxisTitle(mode),
			Range: &chart.ContinuousRange{Min: 0, Max: top},
			Ticks: ticks(0, top),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch, nil
}

// Colors holds the colours of the bar chart and line graph.
type Colors struct {
	Initial drawing.Color
	End     drawing.Color
	Marker  drawing.Color
	Grid    drawing.Color
	Species [extent.SlotCount]drawing.Color
}

// Palette is the colour scheme shared by every chart.
var Palette = Colors{
	Initial: rgb(0xaa, 0x00, 0x00),
	End:     rgb(0x00, 0x00, 0xaa),
	Marker:  rgb(0xaa, 0x00, 0x00),
	Grid:    rgb(0x99, 0x99, 0x99),
	Species: [extent.SlotCount]drawing.Color{
		rgb(0x11, 0x11, 0x11), // A
		rgb(0x00, 0xaa, 0x00), // B
		rgb(0x00, 0xaa, 0xaa), // C
		rgb(0xaa, 0x00, 0xaa), // X
		rgb(0xff, 0x88, 0x00), // Y
		rgb(0xee, 0xcc, 0x33), // Z
	},
}

func rgb(r, g, b uint8) drawing.Color {
	return drawing.Color{R: r, G: g, B: b, A: 255}
}
