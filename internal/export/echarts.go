package export

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"rf-heatmap.klederson.com/internal/coverage"
)

// Band display colors for the HTML heatmap.
var bandColors = map[coverage.Band]string{
	coverage.BandWeak:   "#e03131",
	coverage.BandMedium: "#f5c518",
	coverage.BandStrong: "#2fb344",
}

// WriteHTML renders the coverage result as a top-down scatter heatmap,
// one series per signal band, with square symmetric axes so distances read
// true in both directions.
func WriteHTML(w io.Writer, res *coverage.Result) error {
	series := map[coverage.Band][]opts.ScatterData{}
	maxAbs := 0.0
	for _, pt := range res.Points {
		band := coverage.BandFor(pt.Strength)
		series[band] = append(series[band], opts.ScatterData{
			Value: []interface{}{pt.Position.X, pt.Position.Y},
		})
		if v := math.Abs(pt.Position.X); v > maxAbs {
			maxAbs = v
		}
		if v := math.Abs(pt.Position.Y); v > maxAbs {
			maxAbs = v
		}
	}

	var towers []opts.ScatterData
	for _, em := range res.Emitters {
		towers = append(towers, opts.ScatterData{
			Value: []interface{}{em.Position.X, em.Position.Y},
		})
		if v := math.Abs(em.Position.X); v > maxAbs {
			maxAbs = v
		}
		if v := math.Abs(em.Position.Y); v > maxAbs {
			maxAbs = v
		}
	}

	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "RF Coverage Heatmap",
			Theme:     "dark",
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "RF Coverage Heatmap",
			Subtitle: fmt.Sprintf("emitters=%d points=%d range=%g-%gm",
				len(res.Emitters), res.Stats.TotalPoints, res.Params.MinRange, res.Params.MaxRange),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y (m)", NameLocation: "middle", NameGap: 30}),
	)

	symbol := float32(res.Params.PointSize)
	if symbol <= 0 {
		symbol = 3
	}
	for _, band := range []coverage.Band{coverage.BandWeak, coverage.BandMedium, coverage.BandStrong} {
		scatter.AddSeries(band.String(), series[band],
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: symbol}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: bandColors[band]}),
		)
	}
	scatter.AddSeries("emitters", towers,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: symbol * 3}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#ffffff"}),
	)

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render heatmap chart: %w", err)
	}
	return nil
}
