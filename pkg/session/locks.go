package session

import (
	"context"
	"sync"
)

// lockTable serializes sessions per device identifier. A slot is a
// one-element channel acting as a mutex whose acquisition can be abandoned
// when the caller's context is canceled. Slots live for the process
// lifetime; the set of managed devices is small.
type lockTable struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func newLockTable() *lockTable {
	return &lockTable{slots: make(map[string]chan struct{})}
}

func (t *lockTable) slot(device string) chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.slots[device]
	if !ok {
		s = make(chan struct{}, 1)
		t.slots[device] = s
	}
	return s
}

// acquire blocks until the device slot is free or ctx is done.
func (t *lockTable) acquire(ctx context.Context, device string) error {
	select {
	case t.slot(device) <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *lockTable) release(device string) {
	<-t.slot(device)
}
