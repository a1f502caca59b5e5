// Package library persists a reusable catalog of stackup materials in
// SQLite. The catalog outlives individual stackup documents: materials
// imported from one project can be listed and reused when authoring
// the next. Stackup validation never consults the library; documents
// stay self-contained.
package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"zcalc/internal/domain"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a material is not in the catalog
var ErrNotFound = errors.New("material not found")

// Library is a SQLite-backed materials catalog
type Library struct {
	db *sql.DB
}

// Open opens (creating if needed) a catalog at the given path.
// Use ":memory:" for an ephemeral catalog.
func Open(path string) (*Library, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open materials library: %w", err)
	}

	lib := &Library{db: db}
	if err := lib.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate materials library: %w", err)
	}

	return lib, nil
}

func (l *Library) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS materials (
		name TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		er REAL,
		conductivity REAL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Put upserts one material
func (l *Library) Put(ctx context.Context, m domain.Material) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO materials (name, kind, er, conductivity, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			kind = excluded.kind,
			er = excluded.er,
			conductivity = excluded.conductivity,
			updated_at = CURRENT_TIMESTAMP
	`, m.Name, string(m.Kind), nullFloat(m.Er), nullFloat(m.Conductivity))
	if err != nil {
		return fmt.Errorf("put material %q: %w", m.Name, err)
	}
	return nil
}

// Get looks up one material by name
func (l *Library) Get(ctx context.Context, name string) (domain.Material, error) {
	row := l.db.QueryRowContext(ctx, `
		SELECT name, kind, er, conductivity FROM materials WHERE name = ?
	`, name)

	m, err := scanMaterial(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Material{}, fmt.Errorf("material %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return domain.Material{}, fmt.Errorf("get material %q: %w", name, err)
	}
	return m, nil
}

// List returns all cataloged materials sorted by name
func (l *Library) List(ctx context.Context) ([]domain.Material, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT name, kind, er, conductivity FROM materials
	`)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var out []domain.Material
	for rows.Next() {
		m, err := scanMaterial(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ImportStackup upserts every material of a validated stackup in one
// transaction.
func (l *Library) ImportStackup(ctx context.Context, st *domain.Stackup) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("import materials: %w", err)
	}
	defer tx.Rollback()

	for _, m := range st.Materials {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO materials (name, kind, er, conductivity, updated_at)
			VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(name) DO UPDATE SET
				kind = excluded.kind,
				er = excluded.er,
				conductivity = excluded.conductivity,
				updated_at = CURRENT_TIMESTAMP
		`, m.Name, string(m.Kind), nullFloat(m.Er), nullFloat(m.Conductivity))
		if err != nil {
			return fmt.Errorf("import material %q: %w", m.Name, err)
		}
	}

	return tx.Commit()
}

// Close releases the database handle
func (l *Library) Close() error {
	return l.db.Close()
}

func scanMaterial(scan func(dest ...any) error) (domain.Material, error) {
	var (
		m            domain.Material
		kind         string
		er, conductv sql.NullFloat64
	)
	if err := scan(&m.Name, &kind, &er, &conductv); err != nil {
		return domain.Material{}, err
	}

	parsed, err := domain.ParseMaterialKind(kind)
	if err != nil {
		return domain.Material{}, err
	}
	m.Kind = parsed

	if er.Valid {
		v := er.Float64
		m.Er = &v
	}
	if conductv.Valid {
		v := conductv.Float64
		m.Conductivity = &v
	}
	return m, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
