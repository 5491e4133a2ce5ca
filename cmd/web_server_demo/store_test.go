package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryTokenStore(t *testing.T) {
	store := NewMemoryTokenStore()

	_, ok := store.Get("sid-1")
	assert.False(t, ok)

	store.Put("sid-1", "T1")

	token, ok := store.Get("sid-1")
	assert.True(t, ok)
	assert.Equal(t, "T1", token)

	// a new token for the same session replaces the old one
	store.Put("sid-1", "T2")

	token, _ = store.Get("sid-1")
	assert.Equal(t, "T2", token)

	store.Delete("sid-1")

	_, ok = store.Get("sid-1")
	assert.False(t, ok)

	// deleting a missing session is a no-op
	store.Delete("sid-2")
}
