package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Scanner is the subset of *sql.Row and *sql.Rows used to scan a record.
type Scanner interface {
	Scan(dest ...any) error
}

// Collection describes an owner-scoped table and how to map its rows to a
// document type. The four inventory resources differ only in their field
// sets, so the find/insert/update/delete logic lives here once and each
// resource supplies its table name, mutable columns, and scan/bind functions.
//
// Every query is scoped to the owner id, so a document that exists but
// belongs to another user is indistinguishable from one that doesn't exist.
type Collection[T any] struct {
	Table   string
	Columns []string // mutable columns, excluding id, owner_id, and timestamps
	Scan    func(s Scanner) (*T, error)
	Values  func(t *T) []any // bind values for Columns, in order
}

func (c *Collection[T]) selectColumns() string {
	return "id, owner_id, " + strings.Join(c.Columns, ", ") + ", created_at, updated_at"
}

// ListByOwner returns all documents belonging to the given owner, newest first.
func (c *Collection[T]) ListByOwner(ctx context.Context, db *sql.DB, ownerID int64) ([]T, error) {
	rows, err := db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE owner_id = ? ORDER BY created_at DESC, id DESC`,
			c.selectColumns(), c.Table),
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.Table, err)
	}
	defer rows.Close()

	var docs []T
	for rows.Next() {
		doc, err := c.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", c.Table, err)
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

// Get returns the document with the given id if it belongs to the owner,
// or nil if it is absent or owned by someone else.
func (c *Collection[T]) Get(ctx context.Context, db *sql.DB, id, ownerID int64) (*T, error) {
	row := db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE id = ? AND owner_id = ?`,
			c.selectColumns(), c.Table),
		id, ownerID,
	)
	doc, err := c.Scan(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting from %s: %w", c.Table, err)
	}
	return doc, nil
}

// Insert creates a document for the given owner and returns it with its
// generated id and timestamps.
func (c *Collection[T]) Insert(ctx context.Context, db *sql.DB, ownerID int64, doc *T) (*T, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(c.Columns)+1), ", ")
	args := append([]any{ownerID}, c.Values(doc)...)

	result, err := db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (owner_id, %s) VALUES (%s)`,
			c.Table, strings.Join(c.Columns, ", "), placeholders),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting into %s: %w", c.Table, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting %s id: %w", c.Table, err)
	}

	return c.Get(ctx, db, id, ownerID)
}

// Update replaces the mutable fields of a document if it belongs to the
// owner, returning the updated document, or nil if no owned document matched.
func (c *Collection[T]) Update(ctx context.Context, db *sql.DB, id, ownerID int64, doc *T) (*T, error) {
	assignments := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		assignments[i] = col + " = ?"
	}
	args := append(c.Values(doc), id, ownerID)

	result, err := db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET %s, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND owner_id = ?`,
			c.Table, strings.Join(assignments, ", ")),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.Table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking %s update: %w", c.Table, err)
	}
	if affected == 0 {
		return nil, nil
	}

	return c.Get(ctx, db, id, ownerID)
}

// Delete removes a document if it belongs to the owner. It reports whether
// a document was deleted.
func (c *Collection[T]) Delete(ctx context.Context, db *sql.DB, id, ownerID int64) (bool, error) {
	result, err := db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = ? AND owner_id = ?`, c.Table),
		id, ownerID,
	)
	if err != nil {
		return false, fmt.Errorf("deleting from %s: %w", c.Table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking %s delete: %w", c.Table, err)
	}
	return affected > 0, nil
}
