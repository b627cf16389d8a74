package core

import "context"

// Repository defines the contract for storing and retrieving documents.
// Adhering to this interface keeps the core independent of the
// underlying storage mechanism.
type Repository interface {
	// List returns the names of all documents, sorted.
	List(ctx context.Context) ([]string, error)

	// Read retrieves a document by its exact name.
	Read(ctx context.Context, name string) (Document, error)

	// Write creates or replaces a document. Readers never observe a partial write.
	Write(ctx context.Context, name string, content []byte) error

	// Create adds an empty document. It fails with ErrAlreadyExists on collision.
	Create(ctx context.Context, name string) error

	// Delete removes a document by its name.
	Delete(ctx context.Context, name string) error

	// Initialize ensures the underlying storage is ready (e.g. create directories).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for repositories that report external changes.
type Watchable interface {
	// Watch emits events until ctx is cancelled, then closes the channel.
	Watch(ctx context.Context) (<-chan Event, error)
}
