package credentials

import (
	"context"
	"sync"
)

// MemoryStore keeps the credential in process memory. It stands in for
// durable storage in tests; SaveErr/LoadErr/ClearErr inject failures.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	ok    bool

	SaveErr  error
	LoadErr  error
	ClearErr error
}

// NewMemoryStore returns a store pre-loaded with token when it is non-empty.
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token, ok: token != ""}
}

func (m *MemoryStore) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.token, m.ok = token, true
	return nil
}

func (m *MemoryStore) Load(_ context.Context) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return "", false, m.LoadErr
	}
	return m.token, m.ok, nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.token, m.ok = "", false
	return nil
}

// Nop is used when persistence is disabled: nothing is kept.
type Nop struct{}

func (Nop) Save(context.Context, string) error         { return nil }
func (Nop) Load(context.Context) (string, bool, error) { return "", false, nil }
func (Nop) Clear(context.Context) error                { return nil }
