package store

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_PutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "privates.db")

	s := Open(path)
	s.Put("k", "v")
	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
	require.NoError(t, s.Close())

	// Values survive a reopen.
	s = Open(path)
	defer s.Close()
	got, ok = s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestOpen_BadPathDegrades(t *testing.T) {
	// The parent directory does not exist, the bolt file cannot be created.
	path := filepath.Join(t.TempDir(), "missing", "privates.db")

	s := Open(path)
	defer s.Close()

	// The store still works, it just will not survive the process.
	s.Put("k", "v")
	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestDelete(t *testing.T) {
	s := InMemory()
	s.Put("k", "v")
	s.Delete("k")
	_, ok := s.Get("k")
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	s.Delete("missing")
}

func TestLoadString(t *testing.T) {
	s := InMemory()
	assert.Equal(t, "fallback", LoadString(s, "k", "fallback"))
	s.Put("k", "v")
	assert.Equal(t, "v", LoadString(s, "k", "fallback"))
}

func TestLoadNumber(t *testing.T) {
	s := InMemory()
	fallback := decimal.NewFromInt(7)

	assert.True(t, LoadNumber(s, "k", fallback).Equal(fallback), "absent key")

	s.Put("k", "12.5")
	assert.True(t, LoadNumber(s, "k", fallback).Equal(decimal.RequireFromString("12.5")))

	s.Put("k", "not a number")
	assert.True(t, LoadNumber(s, "k", fallback).Equal(fallback), "malformed value")
}

func TestLoadSaveJSON(t *testing.T) {
	type record struct {
		Name string `json:"name"`
		N    int    `json:"n"`
	}
	s := InMemory()

	got := LoadJSON(s, "k", record{Name: "fallback"})
	assert.Equal(t, "fallback", got.Name, "absent key")

	SaveJSON(s, "k", record{Name: "stored", N: 42})
	got = LoadJSON(s, "k", record{})
	assert.Equal(t, record{Name: "stored", N: 42}, got)

	s.Put("k", "{broken json")
	got = LoadJSON(s, "k", record{Name: "fallback"})
	assert.Equal(t, "fallback", got.Name, "malformed value")
}
