package entities

import "context"

// Store is the typed layer over the raw key-value repository: whole-record
// JSON reads/writes plus the ID index lists that stand in for secondary
// indexes. Index mutations are read-modify-write of a JSON array; per-key
// last-write-wins is inherited from the store.
type Store interface {
	PutJSON(ctx context.Context, key string, value interface{}) error
	// GetJSON reports found=false for an absent key without error.
	GetJSON(ctx context.Context, key string, dst interface{}) (bool, error)
	ReadIndex(ctx context.Context, key string) ([]string, error)
	AppendToIndex(ctx context.Context, key, id string) error
	RemoveFromIndex(ctx context.Context, key, id string) error
}
