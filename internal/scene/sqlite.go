package scene

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteSource reads scene objects from a SQLite inventory database.
// Rows are returned ordered by name so repeated runs over an unchanged
// database are reproducible.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a scene inventory database at path.
func OpenSQLite(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS objects (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			x DOUBLE NOT NULL,
			y DOUBLE NOT NULL,
			z DOUBLE NOT NULL,
			visible INTEGER NOT NULL DEFAULT 1
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create objects table: %w", err)
	}

	return &SQLiteSource{db: db}, nil
}

// Objects returns every scene object, ordered by name.
func (s *SQLiteSource) Objects() ([]Object, error) {
	rows, err := s.db.Query(`SELECT id, name, x, y, z, visible FROM objects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query scene objects: %w", err)
	}
	defer rows.Close()

	var objects []Object
	for rows.Next() {
		var o Object
		var visible int
		if err := rows.Scan(&o.ID, &o.Name, &o.Position.X, &o.Position.Y, &o.Position.Z, &visible); err != nil {
			return nil, fmt.Errorf("failed to scan scene object: %w", err)
		}
		o.Visible = visible != 0
		objects = append(objects, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scene objects: %w", err)
	}
	return objects, nil
}

// Upsert inserts or replaces a scene object.
func (s *SQLiteSource) Upsert(o Object) error {
	visible := 0
	if o.Visible {
		visible = 1
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO objects (id, name, x, y, z, visible) VALUES (?, ?, ?, ?, ?, ?)`,
		o.ID, o.Name, o.Position.X, o.Position.Y, o.Position.Z, visible,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert scene object %q: %w", o.ID, err)
	}
	return nil
}

// Seed replaces the whole inventory with the given objects.
func (s *SQLiteSource) Seed(objects []Object) error {
	if _, err := s.db.Exec(`DELETE FROM objects`); err != nil {
		return fmt.Errorf("failed to clear scene objects: %w", err)
	}
	for _, o := range objects {
		if err := s.Upsert(o); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
