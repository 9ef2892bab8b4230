package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udisondev/arenago/internal/data"
)

// ErrTemplateNotFound is returned when no template is stored under a name.
var ErrTemplateNotFound = errors.New("map template not found")

// MapInfo describes a stored template without its regions.
type MapInfo struct {
	Name      string
	Regions   int
	UpdatedAt time.Time
}

// MapRepository stores map templates as JSONB rows.
type MapRepository struct {
	pool *pgxpool.Pool
}

// NewMapRepository creates a new map template repository.
func NewMapRepository(pool *pgxpool.Pool) *MapRepository {
	return &MapRepository{pool: pool}
}

// Save inserts or replaces the template stored under tpl.Name.
func (r *MapRepository) Save(ctx context.Context, tpl *data.Template) error {
	if err := tpl.Validate(); err != nil {
		return fmt.Errorf("save map %q: %w", tpl.Name, err)
	}
	payload, err := json.Marshal(tpl)
	if err != nil {
		return fmt.Errorf("encode map %q: %w", tpl.Name, err)
	}

	if _, err := r.pool.Exec(ctx,
		`INSERT INTO map_templates (name, data, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		tpl.Name, payload); err != nil {
		return fmt.Errorf("upsert map %q: %w", tpl.Name, err)
	}
	return nil
}

// Load fetches a template by name.
// Returns ErrTemplateNotFound if no row exists.
func (r *MapRepository) Load(ctx context.Context, name string) (*data.Template, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx,
		`SELECT data FROM map_templates WHERE name = $1`, name,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("load map %q: %w", name, ErrTemplateNotFound)
		}
		return nil, fmt.Errorf("query map %q: %w", name, err)
	}

	var tpl data.Template
	if err := json.Unmarshal(payload, &tpl); err != nil {
		return nil, fmt.Errorf("decode map %q: %w", name, err)
	}
	return &tpl, nil
}

// Delete removes a template. Deleting a missing template is not an error.
func (r *MapRepository) Delete(ctx context.Context, name string) error {
	if _, err := r.pool.Exec(ctx,
		`DELETE FROM map_templates WHERE name = $1`, name); err != nil {
		return fmt.Errorf("delete map %q: %w", name, err)
	}
	return nil
}

// List returns all stored templates ordered by name.
func (r *MapRepository) List(ctx context.Context) ([]MapInfo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, jsonb_array_length(COALESCE(data->'regions', '[]'::jsonb)), updated_at
		 FROM map_templates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query maps: %w", err)
	}
	defer rows.Close()

	var result []MapInfo
	for rows.Next() {
		var info MapInfo
		if err := rows.Scan(&info.Name, &info.Regions, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan map row: %w", err)
		}
		result = append(result, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate map rows: %w", err)
	}
	return result, nil
}
