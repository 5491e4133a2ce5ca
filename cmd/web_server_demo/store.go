package main

import "sync"

// TokenStore maps an opaque session id to the access token held for it.
// The cookie only ever carries the id; tokens stay server-side.
type TokenStore interface {
	Get(sid string) (string, bool)
	Put(sid, token string)
	Delete(sid string)
}

// MemoryTokenStore keeps tokens in process memory. Everything is lost on
// restart, which matches the demo's session model.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		tokens: make(map[string]string),
	}
}

func (m *MemoryTokenStore) Get(sid string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	token, ok := m.tokens[sid]
	return token, ok
}

func (m *MemoryTokenStore) Put(sid, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens[sid] = token
}

func (m *MemoryTokenStore) Delete(sid string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tokens, sid)
}
