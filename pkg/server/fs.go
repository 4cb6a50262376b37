package server

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// extensionFS resolves extensionless paths by trying each extension in order,
// so /page serves page.html.
type extensionFS struct {
	http.FileSystem

	extensions []string
}

func (f *extensionFS) Open(name string) (http.File, error) {
	file, err := f.FileSystem.Open(name)

	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return file, err
	}

	if strings.HasSuffix(name, "/") || path.Ext(name) != "" {
		return nil, err
	}

	for _, ext := range f.extensions {
		if file, e := f.FileSystem.Open(name + "." + ext); e == nil {
			return file, nil
		}
	}

	return nil, err
}

func newFileSystem(root string, extensions []string) http.FileSystem {
	var dir http.FileSystem = http.Dir(root)

	if len(extensions) == 0 {
		return dir
	}

	return &extensionFS{dir, extensions}
}
