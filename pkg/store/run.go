package store

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"
)

// ErrRunNotFound is returned by ReadRun for an unknown run id.
var ErrRunNotFound = stderrors.New("run not found")

// Run is one exported scene.
type Run struct {
	ID        string
	Scene     string
	Sheet     string
	CreatedAt time.Time
	Elements  []Element
}

// Element is the resolved style of one element, in pre-order.
type Element struct {
	Name       string
	Depth      int
	State      string
	Styles     string
	Disabled   bool
	Properties []Property
}

// Property is one non-default property value and where it came from.
type Property struct {
	Name   string
	Value  string
	Source string
}

// WriteRun inserts run with its elements and properties in one transaction.
// Writing a run id that already exists is a no-op.
func (s *Store) WriteRun(ctx context.Context, run Run) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, scene, sheet, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, run.ID, run.Scene, run.Sheet, run.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return tx.Commit()
	}

	for seq, e := range run.Elements {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO elements (run_id, seq, name, depth, state, styles, disabled)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, run.ID, seq, e.Name, e.Depth, e.State, e.Styles, e.Disabled); err != nil {
			return fmt.Errorf("write element %q: %w", e.Name, err)
		}
		for _, p := range e.Properties {
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO properties (run_id, seq, name, value, source)
				VALUES (?, ?, ?, ?, ?)
			`, run.ID, seq, p.Name, p.Value, p.Source); err != nil {
				return fmt.Errorf("write property %s.%s: %w", e.Name, p.Name, err)
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// ReadRun loads a run with its elements in pre-order and each element's
// properties ordered by name.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	run := Run{ID: id}
	var created int64
	err := s.db.QueryRowContext(ctx, `SELECT scene, sheet, created_at FROM runs WHERE id = ?`, id).
		Scan(&run.Scene, &run.Sheet, &created)
	if stderrors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}
	run.CreatedAt = time.UnixMilli(created).UTC()

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, depth, state, styles, disabled
		FROM elements
		WHERE run_id = ?
		ORDER BY seq ASC
	`, id)
	if err != nil {
		return Run{}, fmt.Errorf("query elements: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e Element
		if err := rows.Scan(&e.Name, &e.Depth, &e.State, &e.Styles, &e.Disabled); err != nil {
			return Run{}, fmt.Errorf("scan element: %w", err)
		}
		run.Elements = append(run.Elements, e)
	}
	if err := rows.Err(); err != nil {
		return Run{}, fmt.Errorf("iterate elements: %w", err)
	}

	props, err := s.db.QueryContext(ctx, `
		SELECT seq, name, value, source
		FROM properties
		WHERE run_id = ?
		ORDER BY seq ASC, name COLLATE BINARY ASC
	`, id)
	if err != nil {
		return Run{}, fmt.Errorf("query properties: %w", err)
	}
	defer props.Close()
	for props.Next() {
		var (
			seq int
			p   Property
		)
		if err := props.Scan(&seq, &p.Name, &p.Value, &p.Source); err != nil {
			return Run{}, fmt.Errorf("scan property: %w", err)
		}
		if seq < 0 || seq >= len(run.Elements) {
			return Run{}, fmt.Errorf("property %s references missing element %d", p.Name, seq)
		}
		run.Elements[seq].Properties = append(run.Elements[seq].Properties, p)
	}
	if err := props.Err(); err != nil {
		return Run{}, fmt.Errorf("iterate properties: %w", err)
	}
	return run, nil
}

// RunIDs returns every stored run id, newest first.
func (s *Store) RunIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM runs ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
