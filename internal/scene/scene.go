package scene

import "github.com/golang/geo/r3"

// Object is one entry in an external scene description: anything with a
// name, a world-space position and a visibility flag. The coverage core
// only ever sees scenes through this record.
type Object struct {
	ID       string
	Name     string
	Position r3.Vector
	Visible  bool
}

// Source answers "list every object in the scene". Backends exist for JSON
// scene files, SQLite scene inventories, and a built-in demo layout; any
// other scene representation only needs to implement this one method.
type Source interface {
	Objects() ([]Object, error)
}
