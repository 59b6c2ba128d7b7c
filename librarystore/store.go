// Package librarystore persists reference libraries through pluggable
// object stores.
//
// Simulation libraries are expensive to compute and are shipped between
// machines; a library is serialized once through a codec (see codec) and
// published to a store, then fetched read-only by every indexation host.
//
// Backends: in-memory (tests), local filesystem, S3 (subpackage s3, with a
// DynamoDB-backed version catalog), and MinIO/S3-compatible (subpackage
// minio).
package librarystore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a stored object does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for accessing serialized library objects.
// Objects are fetched and written wholesale: libraries decode in one piece,
// so no random access is needed.
type Store interface {
	// Fetch reads the full object.
	Fetch(ctx context.Context, name string) ([]byte, error)

	// Put writes an object atomically, replacing any previous version.
	Put(ctx context.Context, name string, data []byte) error

	// List returns all object names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, name string) error
}
