//go:build unit

package lock

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLockAdapter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calmnetconfig.lock")

	first := NewFileLockAdapter(path)
	second := NewFileLockAdapter(path)

	locked, err := first.TryLock()
	require.NoError(t, err)
	assert.True(t, locked)

	t.Run("HeldBySomeoneElse", func(t *testing.T) {
		locked, err := second.TryLock()
		require.NoError(t, err)
		assert.False(t, locked)
	})

	require.NoError(t, first.Unlock())

	t.Run("ReleasedLock", func(t *testing.T) {
		locked, err := second.TryLock()
		require.NoError(t, err)
		assert.True(t, locked)
		assert.NoError(t, second.Unlock())
	})
}

func TestFileLockAdapter_InvalidPath(t *testing.T) {
	l := NewFileLockAdapter("/nonexistent/directory/calmnetconfig.lock")

	_, err := l.TryLock()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to lock")
}
