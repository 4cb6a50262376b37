package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var executable = os.Executable

// ExecutableDir returns the absolute directory holding the running binary,
// with symlinks resolved.
func ExecutableDir() (string, error) {
	path, err := executable()

	if err != nil {
		return "", err
	}

	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	return filepath.Abs(filepath.Dir(path))
}

func ResolveRoot(path string) (string, error) {
	if path == "" {
		dir, err := ExecutableDir()

		if err != nil {
			return "", fmt.Errorf("resolve executable directory: %w", err)
		}

		path = dir
	}

	path, err := filepath.Abs(path)

	if err != nil {
		return "", err
	}

	if err := IsDir(path); err != nil {
		return "", err
	}

	return path, nil
}

// EnterRoot resolves the base directory and makes it the working directory.
func EnterRoot(path string) (string, error) {
	root, err := ResolveRoot(path)

	if err != nil {
		return "", err
	}

	if err := os.Chdir(root); err != nil {
		return "", err
	}

	return root, nil
}

func IsDir(path string) error {
	info, err := os.Stat(path)

	if err != nil {
		return err
	}

	if !info.IsDir() {
		return errors.New("path is not a directory: " + path)
	}

	return nil
}
