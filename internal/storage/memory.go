package storage

import (
	"context"
	"sync"
)

// MemoryKeyValue - потокобезопасная реализация KeyValue в памяти.
// Используется в тестах вместо Redis.
type MemoryKeyValue struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryKeyValue() *MemoryKeyValue {
	return &MemoryKeyValue{values: make(map[string]string)}
}

func (s *MemoryKeyValue) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key], nil
}

func (s *MemoryKeyValue) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryKeyValue) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
