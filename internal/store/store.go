package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// TemplateStoreIface exposes read access to the templates table.
// No handler MAY query the DB directly; all access goes through this interface.
type TemplateStoreIface interface {
	ListAll(ctx context.Context) ([]*Template, error)
	GetByID(ctx context.Context, id string) (*Template, error)
}
