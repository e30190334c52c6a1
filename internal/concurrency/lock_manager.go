// Package concurrency provides keyed locks for serialising work per wallet.
package concurrency

import (
	"context"
	"sync"
)

type keyedLock struct {
	// sem holds one token while the key is locked
	sem  chan struct{}
	refs int
}

// LockManager hands out one lock per key. An entry lives only while some
// caller holds or waits on it, so idle wallets cost nothing.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

// NewLockManager creates an empty LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyedLock)}
}

func (lm *LockManager) acquireRef(key string) *keyedLock {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyedLock{sem: make(chan struct{}, 1)}
		lm.locks[key] = l
	}
	l.refs++
	return l
}

func (lm *LockManager) releaseRef(key string, l *keyedLock) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
}

// Lock blocks until key is free and returns its unlock function
func (lm *LockManager) Lock(key string) (unlock func()) {
	unlock, _ = lm.LockContext(context.Background(), key)
	return unlock
}

// LockContext is Lock with cancellation. On error the lock is not held and
// unlock is nil.
func (lm *LockManager) LockContext(ctx context.Context, key string) (unlock func(), err error) {
	l := lm.acquireRef(key)
	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		lm.releaseRef(key, l)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.sem
			lm.releaseRef(key, l)
		})
	}, nil
}

// Len reports how many keys are currently held or awaited
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
