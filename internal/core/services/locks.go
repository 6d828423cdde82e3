package services

import (
	"sync"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
)

// ContainerLocks hands out one read/write lock per container and remembers containers
// that were found inconsistent. A fenced container accepts reads but refuses writes until
// Lift. It also guards the global category registry: entries hold the category read lock
// from category lookup to insert, and category deletion holds the write lock.
type ContainerLocks struct {
	mu         sync.Mutex
	locks      map[int64]*sync.RWMutex
	fenced     map[int64]string
	categories sync.RWMutex
}

// NewContainerLocks creates an empty lock manager.
func NewContainerLocks() *ContainerLocks {
	return &ContainerLocks{
		locks:  make(map[int64]*sync.RWMutex),
		fenced: make(map[int64]string),
	}
}

func (l *ContainerLocks) lockFor(containerID int64) *sync.RWMutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[containerID]
	if !ok {
		m = &sync.RWMutex{}
		l.locks[containerID] = m
	}
	return m
}

// WithReadLock runs fn while holding the container's read lock. Readers run in parallel
// but never overlap a write. The lock is not reentrant.
func (l *ContainerLocks) WithReadLock(containerID int64, fn func() error) error {
	m := l.lockFor(containerID)
	m.RLock()
	defer m.RUnlock()
	return fn()
}

// WithWriteLock runs mutating work exclusively. It fails with ErrConsistency when the
// container is fenced.
func (l *ContainerLocks) WithWriteLock(containerID int64, fn func() error) error {
	m := l.lockFor(containerID)
	m.Lock()
	defer m.Unlock()
	if err := l.FenceError(containerID); err != nil {
		return err
	}
	return fn()
}

// WithCategoriesRead runs fn while no category can be removed.
func (l *ContainerLocks) WithCategoriesRead(fn func() error) error {
	l.categories.RLock()
	defer l.categories.RUnlock()
	return fn()
}

// WithCategoriesWrite runs fn exclusively against every category reader.
func (l *ContainerLocks) WithCategoriesWrite(fn func() error) error {
	l.categories.Lock()
	defer l.categories.Unlock()
	return fn()
}

// Fence blocks writes to the container.
func (l *ContainerLocks) Fence(containerID int64, reason string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fenced[containerID] = reason
}

// Lift unblocks writes to the container.
func (l *ContainerLocks) Lift(containerID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.fenced, containerID)
}

// FenceError returns the consistency error of a fenced container, or nil.
func (l *ContainerLocks) FenceError(containerID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	reason, ok := l.fenced[containerID]
	if !ok {
		return nil
	}
	return apperrors.ConsistencyError(containerID, reason+"; writes are blocked until the container is reconciled")
}
