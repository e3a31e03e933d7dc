package storage

import "context"

// Keys under which the credential pair is persisted. The prefix namespaces
// the entries so the database file can be shared with future app data.
const (
	KeyToken = "womshop:token"
	KeyUser  = "womshop:user"
)

// Repository is a string-keyed blob store. Get returns (nil, nil) when the
// key is absent; absence is a normal condition, not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
