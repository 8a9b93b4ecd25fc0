package catalog

import "context"

// Store defines the persistence operations for event sets and their
// ground motion fields.
type Store interface {
	Init(ctx context.Context) error
	Reset(ctx context.Context) error
	SaveEventSet(ctx context.Context, set EventSet) error
	GetEventSet(ctx context.Context, id string) (EventSet, bool, error)
	ListEventSets(ctx context.Context) ([]string, error)
	SaveFieldSet(ctx context.Context, fields FieldSet) error
	GetFieldSet(ctx context.Context, id string) (FieldSet, bool, error)
	ListFieldSets(ctx context.Context, eventSetID string) ([]string, error)
}
