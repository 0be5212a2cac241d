// Package userdir adapts the user directories the scheduler consults.
package userdir

import (
	"context"
	"sync"
)

// StaticDirectory is an in-memory directory for the memory store driver and tests.
type StaticDirectory struct {
	mu    sync.RWMutex
	names map[string]string
}

func NewStaticDirectory(names map[string]string) *StaticDirectory {
	d := &StaticDirectory{names: make(map[string]string, len(names))}
	for id, name := range names {
		d.names[id] = name
	}
	return d
}

func (d *StaticDirectory) Add(userID, displayName string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.names[userID] = displayName
}

func (d *StaticDirectory) Exists(_ context.Context, userID string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.names[userID]
	return ok, nil
}

func (d *StaticDirectory) DisplayName(_ context.Context, userID string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	name, ok := d.names[userID]
	if !ok {
		return "", ErrUserNotFound
	}
	return name, nil
}
