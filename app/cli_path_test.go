package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeExecutable(t *testing.T, path string, err error) {
	t.Helper()

	previous := executable
	executable = func() (string, error) { return path, err }

	t.Cleanup(func() { executable = previous })
}

func keepWorkingDir(t *testing.T) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)

	t.Cleanup(func() { os.Chdir(wd) })
}

func evalDir(t *testing.T, dir string) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	return dir
}

func TestExecutableDir(t *testing.T) {
	dir := evalDir(t, t.TempDir())
	fakeExecutable(t, filepath.Join(dir, "serve"), nil)

	result, err := ExecutableDir()
	require.NoError(t, err)

	assert.Equal(t, dir, result)
}

func TestExecutableDirFollowsSymlink(t *testing.T) {
	dir := evalDir(t, t.TempDir())
	bin := filepath.Join(dir, "serve")
	require.NoError(t, os.WriteFile(bin, nil, 0755))

	links := t.TempDir()
	link := filepath.Join(links, "serve")

	if err := os.Symlink(bin, link); err != nil {
		t.Skip("symlinks not supported:", err)
	}

	fakeExecutable(t, link, nil)

	result, err := ExecutableDir()
	require.NoError(t, err)

	assert.Equal(t, dir, result)
}

func TestEnterRootIgnoresLaunchDirectory(t *testing.T) {
	keepWorkingDir(t)

	dir := evalDir(t, t.TempDir())
	fakeExecutable(t, filepath.Join(dir, "serve"), nil)

	require.NoError(t, os.Chdir(t.TempDir()))

	root, err := EnterRoot("")
	require.NoError(t, err)
	assert.Equal(t, dir, root)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, dir, evalDir(t, wd))
}

func TestEnterRootExplicitPath(t *testing.T) {
	keepWorkingDir(t)

	dir := evalDir(t, t.TempDir())

	root, err := EnterRoot(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestResolveRootFailures(t *testing.T) {
	fakeExecutable(t, "", errors.New("no executable"))

	_, err := ResolveRoot("")
	assert.ErrorContains(t, err, "no executable")

	_, err = ResolveRoot(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err = ResolveRoot(file)
	assert.ErrorContains(t, err, "not a directory")
}
