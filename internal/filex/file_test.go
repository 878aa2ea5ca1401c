package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_RelativeToCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("data")
	require.NoError(t, err)

	want := filepath.Join(tmp, "data")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureDir_AbsoluteAndIdempotent(t *testing.T) {
	want := filepath.Join(t.TempDir(), "a", "b")

	first, err := EnsureDir(want)
	require.NoError(t, err)
	second, err := EnsureDir(want)
	require.NoError(t, err)

	require.Equal(t, want, first)
	require.Equal(t, first, second)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o660))

	_, err := EnsureDir(path)
	require.Error(t, err)
}

func TestReadLimited(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.png")
	require.NoError(t, os.WriteFile(small, []byte("12345"), 0o600))

	data, err := ReadLimited(small, 5)
	require.NoError(t, err)
	require.Equal(t, []byte("12345"), data)

	_, err = ReadLimited(small, 4)
	require.ErrorIs(t, err, ErrTooLarge)

	_, err = ReadLimited(filepath.Join(dir, "missing"), 10)
	require.Error(t, err)

	_, err = ReadLimited(dir, 10)
	require.Error(t, err)
}
