package services

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// routeLocks serializes computations that share a route id. Entries are
// reference counted and removed once no caller holds or waits on them.
type routeLocks struct {
	mu    sync.Mutex
	locks map[string]*routeLock
}

type routeLock struct {
	sem  *semaphore.Weighted
	refs int
}

func newRouteLocks() *routeLocks {
	return &routeLocks{locks: make(map[string]*routeLock)}
}

// acquire blocks until id is free or ctx is done. The returned func releases it.
func (l *routeLocks) acquire(ctx context.Context, id string) (func(), error) {
	l.mu.Lock()
	lk, ok := l.locks[id]
	if !ok {
		lk = &routeLock{sem: semaphore.NewWeighted(1)}
		l.locks[id] = lk
	}
	lk.refs++
	l.mu.Unlock()

	if err := lk.sem.Acquire(ctx, 1); err != nil {
		l.drop(id, lk)
		return nil, err
	}

	return func() {
		lk.sem.Release(1)
		l.drop(id, lk)
	}, nil
}

func (l *routeLocks) drop(id string, lk *routeLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lk.refs--
	if lk.refs == 0 {
		delete(l.locks, id)
	}
}

func (l *routeLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
