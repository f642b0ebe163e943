package numbers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "numbers_1000.txt", FileName(1000))
}

func TestGenerate(t *testing.T) {
	t.Run("should write one file per size", func(t *testing.T) {
		assert := assert.New(t)
		dir := t.TempDir()
		require.NoError(t, Generate(dir, []int{10, 100}, 7))

		for _, size := range []int{10, 100} {
			numbers := LoadFile(filepath.Join(dir, FileName(size)))
			assert.Len(numbers, size)
			for _, n := range numbers {
				assert.GreaterOrEqual(n, 0)
				assert.LessOrEqual(n, size)
			}
		}
	})

	t.Run("should be reproducible for the same seed", func(t *testing.T) {
		first, second := t.TempDir(), t.TempDir()
		require.NoError(t, Generate(first, []int{50}, 99))
		require.NoError(t, Generate(second, []int{50}, 99))
		assert.Equal(t, LoadFile(filepath.Join(first, FileName(50))), LoadFile(filepath.Join(second, FileName(50))))
	})

	t.Run("should separate values with single spaces", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, Generate(dir, []int{3}, 1))
		content, err := os.ReadFile(filepath.Join(dir, FileName(3)))
		require.NoError(t, err)
		assert.Regexp(t, `^\d+ \d+ \d+$`, string(content))
	})

	t.Run("should aggregate errors", func(t *testing.T) {
		assert := assert.New(t)
		err := Generate(filepath.Join(t.TempDir(), "missing"), []int{1, 2}, 1)
		assert.Error(err)
		assert.Contains(err.Error(), FileName(1))
		assert.Contains(err.Error(), FileName(2))
	})

	t.Run("should reject negative sizes", func(t *testing.T) {
		assert.Error(t, Generate(t.TempDir(), []int{-1}, 1))
	})
}
