// Package heatmap renders a coverage result as a top-down colored point
// map for the terminal.
package heatmap

import (
	"math"

	"rf-heatmap.klederson.com/internal/config"
	"rf-heatmap.klederson.com/internal/coverage"
)

// Bounds is the square world-space window the map displays: a center and a
// half-extent in meters.
type Bounds struct {
	CenterX float64
	CenterY float64
	Half    float64
}

// ResultBounds computes the window that contains every emitter's coverage
// disc, padded slightly so edge rings stay visible.
func ResultBounds(res *coverage.Result) Bounds {
	if len(res.Emitters) == 0 {
		return Bounds{Half: res.Params.MaxRange}
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, em := range res.Emitters {
		minX = math.Min(minX, em.Position.X-res.Params.MaxRange)
		maxX = math.Max(maxX, em.Position.X+res.Params.MaxRange)
		minY = math.Min(minY, em.Position.Y-res.Params.MaxRange)
		maxY = math.Max(maxY, em.Position.Y+res.Params.MaxRange)
	}

	half := math.Max(maxX-minX, maxY-minY) / 2 * 1.05
	if half <= 0 {
		half = 1
	}
	return Bounds{
		CenterX: (minX + maxX) / 2,
		CenterY: (minY + maxY) / 2,
		Half:    half,
	}
}

// Project maps a world position to a terminal cell. Rows are compressed by
// the terminal aspect ratio so circles render round. The second return is
// false when the position falls outside the grid.
func Project(x, y float64, b Bounds, width, height int) (int, int, bool) {
	if width < 1 || height < 1 || b.Half <= 0 {
		return 0, 0, false
	}

	// Columns per meter; the smaller axis wins so the square window fits.
	scaleX := float64(width-1) / (2 * b.Half)
	scaleY := float64(height-1) / (2 * b.Half) / config.AspectRatio
	scale := math.Min(scaleX, scaleY)

	col := int(math.Round(float64(width)/2 + (x-b.CenterX)*scale))
	row := int(math.Round(float64(height)/2 - (y-b.CenterY)*scale*config.AspectRatio))
	if col < 0 || col >= width || row < 0 || row >= height {
		return 0, 0, false
	}
	return col, row, true
}
