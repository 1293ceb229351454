// Package credentials persists the session credential between runs.
//
// The persisted layout is a single durable key holding the raw credential
// string. Absence (first run, storage disabled) is reported as ok=false by
// Load and is never an error.
package credentials

import "context"

// Store is the durable bridge used by the session store. It has no mutation
// authority of its own: it only mirrors what the session store tells it.
type Store interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (token string, ok bool, err error)
	Clear(ctx context.Context) error
}
