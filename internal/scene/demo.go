package scene

import "github.com/golang/geo/r3"

// demoObjects is a fixed downtown-block layout used when no scene file or
// database is configured. The layout is deliberately static: demo runs must
// reproduce bit-for-bit, the same as runs against a real scene.
var demoObjects = []Object{
	{ID: "tower-north", Name: "Tower_North", Position: r3.Vector{X: 0, Y: 180, Z: 42}, Visible: true},
	{ID: "tower-east", Name: "Tower_East", Position: r3.Vector{X: 210, Y: -30, Z: 38}, Visible: true},
	{ID: "tower-west", Name: "Tower_West", Position: r3.Vector{X: -190, Y: 10, Z: 45}, Visible: true},
	{ID: "tower-depot", Name: "Tower_Depot", Position: r3.Vector{X: 60, Y: -220, Z: 30}, Visible: false},
	{ID: "bldg-plaza", Name: "Building_Plaza", Position: r3.Vector{X: 40, Y: 60, Z: 0}, Visible: true},
	{ID: "bldg-garage", Name: "Building_Garage", Position: r3.Vector{X: -80, Y: -90, Z: 0}, Visible: true},
	{ID: "antenna-roof", Name: "towerette_Roof", Position: r3.Vector{X: 120, Y: 140, Z: 55}, Visible: true},
}

// DemoSource serves the built-in demo layout: three visible towers, one
// hidden tower, a lowercase-prefixed rooftop unit and two non-tower props.
type DemoSource struct{}

// NewDemoSource returns the demo scene.
func NewDemoSource() *DemoSource {
	return &DemoSource{}
}

// Objects returns a copy of the demo layout.
func (d *DemoSource) Objects() ([]Object, error) {
	out := make([]Object, len(demoObjects))
	copy(out, demoObjects)
	return out, nil
}
