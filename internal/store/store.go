package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrNotFound is returned by FindByID when no document matches the id,
	// including ids that cannot be parsed as store identifiers.
	ErrNotFound = errors.New("document not found")
	// ErrUnavailable is returned by write operations when no database
	// connection is configured.
	ErrUnavailable = errors.New("storage unavailable")
)

// Store is a generic document-store adapter over named collections.
// Implementations must be safe for concurrent use; handlers share a single
// instance for the lifetime of the process.
type Store interface {
	// Insert stores doc and returns the generated identifier (hex string).
	Insert(ctx context.Context, collection string, doc bson.M) (string, error)
	// Find returns all documents matching filter, in the store's natural
	// order. An empty filter matches everything.
	Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	// FindByID returns the document with the given identifier or ErrNotFound.
	FindByID(ctx context.Context, collection, id string) (bson.M, error)
	// Count returns the number of documents in the collection.
	Count(ctx context.Context, collection string) (int64, error)
	// Collections lists the collection names currently present.
	Collections(ctx context.Context) ([]string, error)
	// Name reports the database name backing this store.
	Name() string
}
