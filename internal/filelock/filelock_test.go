package filelock

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLockUnlock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")
	lock := NewFileLock(lockPath)
	assert.Equal(t, lockPath, lock.Path())

	require.NoError(t, lock.Lock())
	require.NoError(t, lock.Unlock())
}

// heldElsewhere reports whether another FileLock on path is refused.
func heldElsewhere(t *testing.T, path string) bool {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	other := NewFileLock(path)
	if err := other.LockContext(ctx); err != nil {
		return true
	}
	require.NoError(t, other.Unlock())
	return false
}

func TestLockIsExclusive(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	holder := NewFileLock(lockPath)
	require.NoError(t, holder.Lock())
	assert.True(t, heldElsewhere(t, lockPath), "lock should be held")

	require.NoError(t, holder.Unlock())
	assert.False(t, heldElsewhere(t, lockPath), "lock should be free after unlock")
}

func TestLockContextTimeout(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	holder := NewFileLock(lockPath)
	require.NoError(t, holder.Lock())
	defer holder.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := NewFileLock(lockPath).LockContext(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

func TestLockContextAcquiresAfterRelease(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	holder := NewFileLock(lockPath)
	require.NoError(t, holder.Lock())
	go func() {
		time.Sleep(50 * time.Millisecond)
		holder.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	waiter := NewFileLock(lockPath)
	require.NoError(t, waiter.LockContext(ctx))
	require.NoError(t, waiter.Unlock())
}

func TestAtomicWrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "dir", "out.yaml")

	require.NoError(t, AtomicWrite(target, []byte("first")))
	require.NoError(t, AtomicWrite(target, []byte("second")))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files left behind")
}

func TestAtomicWriteRenameFailure(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "occupied")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0755))

	err := AtomicWrite(target, []byte("data"))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be removed on failure")
}

func TestWithLockHoldsLock(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.yaml")

	called := false
	err := WithLock(context.Background(), target, func() error {
		called = true
		assert.True(t, heldElsewhere(t, LockPath(target)), "lock should be held inside fn")
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.False(t, heldElsewhere(t, LockPath(target)), "lock should be released after fn")
}

func TestWithLockPropagatesError(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.yaml")
	boom := errors.New("boom")

	err := WithLock(context.Background(), target, func() error { return boom })
	assert.ErrorIs(t, err, boom)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr), "target should not be written")
}

func TestWithLockSerializesUpdates(t *testing.T) {
	target := filepath.Join(t.TempDir(), "counter.txt")
	require.NoError(t, AtomicWrite(target, []byte("0")))

	var g errgroup.Group
	for i := 0; i < 10; i++ {
		g.Go(func() error {
			return WithLock(context.Background(), target, func() error {
				data, err := os.ReadFile(target)
				if err != nil {
					return err
				}
				n, err := strconv.Atoi(string(data))
				if err != nil {
					return err
				}
				return AtomicWrite(target, []byte(strconv.Itoa(n+1)))
			})
		})
	}
	require.NoError(t, g.Wait())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "10", string(data), "an update was lost")
}
