package services

import (
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerLocks_SerializesPerContainer(t *testing.T) {
	locks := NewContainerLocks()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = locks.WithWriteLock(1, func() error {
				v := counter
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestContainerLocks_FenceBlocksWritesOnly(t *testing.T) {
	locks := NewContainerLocks()
	locks.Fence(3, "1 broken transfer group(s)")

	ran := false
	err := locks.WithWriteLock(3, func() error { ran = true; return nil })
	require.ErrorIs(t, err, apperrors.ErrConsistency)
	assert.Contains(t, err.Error(), "broken transfer group")
	assert.False(t, ran)

	assert.NoError(t, locks.WithReadLock(3, func() error { ran = true; return nil }))
	assert.True(t, ran)

	// Other containers are unaffected
	assert.NoError(t, locks.WithWriteLock(4, func() error { return nil }))

	locks.Lift(3)
	assert.NoError(t, locks.FenceError(3))
	assert.NoError(t, locks.WithWriteLock(3, func() error { return nil }))
}

func TestContainerLocks_ReadersShareTheLock(t *testing.T) {
	locks := NewContainerLocks()
	inside := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = locks.WithReadLock(1, func() error {
			close(inside)
			<-release
			return nil
		})
	}()
	<-inside

	done := make(chan struct{})
	go func() {
		_ = locks.WithReadLock(1, func() error { return nil })
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("second reader blocked behind the first")
	}
	close(release)
}

func TestContainerLocks_CategoryWriteWaitsForReaders(t *testing.T) {
	locks := NewContainerLocks()
	inside := make(chan struct{})
	release := make(chan struct{})
	var order []string
	var mu sync.Mutex
	mark := func(step string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, step)
	}

	go func() {
		_ = locks.WithCategoriesRead(func() error {
			close(inside)
			<-release
			mark("entry saved")
			return nil
		})
	}()
	<-inside

	done := make(chan struct{})
	go func() {
		_ = locks.WithCategoriesWrite(func() error {
			mark("category deleted")
			return nil
		})
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("category write ran while an entry held the read lock")
	case <-time.After(50 * time.Millisecond):
	}
	close(release)
	<-done

	assert.Equal(t, []string{"entry saved", "category deleted"}, order)
}
