package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Template represents a row in the templates table.
type Template struct {
	ID          string     `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description"`
	Prompt      string     `db:"prompt" json:"prompt"`
	FormFields  FormFields `db:"form_fields" json:"form_fields"`
}

// FormFields is the ordered list of field names a template expects.
// It is persisted as a JSON array in a text column.
type FormFields []string

// Scan implements sql.Scanner.
func (f *FormFields) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = FormFields{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("form_fields: unsupported column type %T", src)
	}
	if len(raw) == 0 {
		*f = FormFields{}
		return nil
	}
	var fields []string
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("form_fields: %w", err)
	}
	*f = fields
	return nil
}

// Value implements driver.Valuer.
func (f FormFields) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(f))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// MarshalJSON renders a nil list as [] so clients always see an array.
func (f FormFields) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(f))
}

// TemplateStore is the sqlx-backed implementation of TemplateStoreIface.
type TemplateStore struct {
	db *sqlx.DB
}

// NewTemplateStore returns a store over the templates table in db.
func NewTemplateStore(db *sqlx.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *TemplateStore) q(query string) string { return s.db.Rebind(query) }

const templateColumns = `id, name, description, prompt, form_fields`

// ListAll returns every template ordered by id.
func (s *TemplateStore) ListAll(ctx context.Context) ([]*Template, error) {
	var templates []*Template
	err := s.db.SelectContext(ctx, &templates, `SELECT `+templateColumns+` FROM templates ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// GetByID returns the template matching id, or ErrNotFound.
func (s *TemplateStore) GetByID(ctx context.Context, id string) (*Template, error) {
	var t Template
	err := s.db.GetContext(ctx, &t, s.q(`SELECT `+templateColumns+` FROM templates WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Upsert inserts or replaces a template. The relay itself never writes
// templates; this exists for seeding and tests.
func (s *TemplateStore) Upsert(ctx context.Context, t *Template) error {
	if err := ValidateTemplate(t); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, s.q(`DELETE FROM templates WHERE id = ?`), t.ID); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, s.q(`
		INSERT INTO templates (`+templateColumns+`) VALUES (?, ?, ?, ?, ?)
	`), t.ID, t.Name, t.Description, t.Prompt, t.FormFields)
	if err != nil {
		return err
	}
	return tx.Commit()
}
