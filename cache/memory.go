package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Memory is an in-process LRU Store for long-lived programs that embed the
// search. It is forgotten when the process exits.
type Memory struct {
	lru *lru.Cache[uint64, Entry]
}

var _ Store = (*Memory)(nil)

// NewMemory returns a Memory holding at most size entries.
func NewMemory(size int) (*Memory, error) {
	c, err := lru.New[uint64, Entry](size)
	if err != nil {
		return nil, fmt.Errorf("cache: memory: %w", err)
	}

	return &Memory{lru: c}, nil
}

func (m *Memory) Get(_ context.Context, key uint64) (Entry, error) {
	e, ok := m.lru.Get(key)
	if !ok {
		return Entry{}, ErrMiss
	}

	return e, nil
}

func (m *Memory) Put(_ context.Context, key uint64, e Entry) error {
	m.lru.Add(key, e)
	return nil
}

// Len returns the number of cached entries.
func (m *Memory) Len() int { return m.lru.Len() }
