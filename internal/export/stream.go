// Package export shapes coverage results for external consumers: a flat
// point/color/size stream for GPU point-cloud renderers, an HTML scatter
// heatmap and a textual statistics report.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"rf-heatmap.klederson.com/internal/coverage"
)

// PointStream is the flat render payload: positions and colors are
// parallel arrays, one entry per sample point, plus a single point size
// hint. The order matches the engine's emitter-major ordering contract.
type PointStream struct {
	Positions [][3]float64 `json:"positions"`
	Colors    [][3]float64 `json:"colors"`
	PointSize float64      `json:"point_size"`
}

// Stream flattens a coverage result into a PointStream.
func Stream(res *coverage.Result) PointStream {
	ps := PointStream{
		Positions: make([][3]float64, len(res.Points)),
		Colors:    make([][3]float64, len(res.Points)),
		PointSize: res.Params.PointSize,
	}
	for i, pt := range res.Points {
		ps.Positions[i] = [3]float64{pt.Position.X, pt.Position.Y, pt.Position.Z}
		ps.Colors[i] = [3]float64{pt.Color.R, pt.Color.G, pt.Color.B}
	}
	return ps
}

// WriteJSON writes the point stream as indented JSON.
func WriteJSON(w io.Writer, res *coverage.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Stream(res)); err != nil {
		return fmt.Errorf("failed to encode point stream: %w", err)
	}
	return nil
}
