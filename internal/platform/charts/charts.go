package charts

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

var ErrNoData = errors.New("charts: not enough data")

var (
	barColor   = drawing.ColorFromHex("6366f1")
	pointColor = drawing.ColorFromHex("10b981")
)

// Bar es una barra etiquetada.
type Bar struct {
	Label string
	Value float64
}

// Point es un punto del scatter.
type Point struct {
	X float64
	Y float64
}

// Options controla tamaño y títulos. Los ceros toman defaults.
type Options struct {
	Title  string
	XName  string
	YName  string
	Width  int
	Height int
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// BarPNG renderiza un gráfico de barras en PNG.
func BarPNG(w io.Writer, bars []Bar, opts Options) error {
	if len(bars) == 0 {
		return ErrNoData
	}

	values := make([]chart.Value, 0, len(bars))
	maxV := 0.0
	for _, b := range bars {
		values = append(values, chart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor},
		})
		if b.Value > maxV {
			maxV = b.Value
		}
	}

	width, height := opts.size()
	bc := chart.BarChart{
		Title:      opts.Title,
		Width:      width,
		Height:     height,
		BarWidth:   barWidth(width, len(bars)),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 30}},
		// rango explícito: con una sola barra el rango calculado sería cero
		YAxis: chart.YAxis{
			Name:  opts.YName,
			Range: &chart.ContinuousRange{Min: 0, Max: maxV + 1},
		},
		Bars: values,
	}

	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("charts: render bar chart: %w", err)
	}
	return nil
}

// ScatterPNG renderiza puntos sin línea que los una.
func ScatterPNG(w io.Writer, name string, points []Point, opts Options) error {
	if len(points) < 2 {
		return ErrNoData
	}

	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}

	xAxis := chart.XAxis{Name: opts.XName}
	if r := flatRange(xs); r != nil {
		xAxis.Range = r
	}
	yAxis := chart.YAxis{Name: opts.YName}
	if r := flatRange(ys); r != nil {
		yAxis.Range = r
	}

	width, height := opts.size()
	ch := chart.Chart{
		Title:      opts.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    name,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    pointColor,
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("charts: render scatter: %w", err)
	}
	return nil
}

// flatRange devuelve un rango de ±1 alrededor del valor cuando todos los
// valores son iguales (go-chart no renderiza ejes con delta cero); nil si no.
func flatRange(vs []float64) *chart.ContinuousRange {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi > lo {
		return nil
	}
	return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
}

func barWidth(width, n int) int {
	bw := (width - 80) / (n * 2)
	if bw < 10 {
		return 10
	}
	if bw > 60 {
		return 60
	}
	return bw
}
