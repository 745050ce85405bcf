// Package emitter discovers signal emitters (towers) in a scene.
package emitter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/golang/geo/r3"
	"rf-heatmap.klederson.com/internal/scene"
)

// DefaultPrefix is the naming convention that marks a scene object as an
// emitter. Matching is case-insensitive.
const DefaultPrefix = "Tower"

// Emitter is a discovered coverage source. Emitters are immutable
// snapshots: the directory rebuilds the whole set on every Discover call
// and never updates one in place.
type Emitter struct {
	Name     string    `json:"name"`
	Position r3.Vector `json:"position"`
}

// Directory finds emitters in a scene source.
type Directory struct {
	source scene.Source
	prefix string
}

// NewDirectory creates a directory over the given scene source. An empty
// prefix falls back to DefaultPrefix.
func NewDirectory(source scene.Source, prefix string) *Directory {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Directory{source: source, prefix: prefix}
}

// Discover returns every visible scene object whose name starts with the
// emitter prefix, sorted by name. Sorting makes the result independent of
// backend iteration order, so repeated runs over an unchanged scene are
// reproducible. Finding nothing is not an error.
func (d *Directory) Discover() ([]Emitter, error) {
	objects, err := d.source.Objects()
	if err != nil {
		return nil, fmt.Errorf("scene query failed: %w", err)
	}

	prefix := strings.ToLower(d.prefix)
	emitters := make([]Emitter, 0, len(objects))
	for _, o := range objects {
		if !o.Visible {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(o.Name), prefix) {
			continue
		}
		emitters = append(emitters, Emitter{Name: o.Name, Position: o.Position})
	}

	sort.Slice(emitters, func(i, j int) bool {
		return emitters[i].Name < emitters[j].Name
	})
	return emitters, nil
}
