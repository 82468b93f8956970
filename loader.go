// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package stratum

import "io/fs"

// Loader loads the raw content of a configuration document. How a path
// identifier maps to actual storage is entirely up to the implementation.
type Loader interface {
	ReadConfiguration(path string) ([]byte, error)
}

// LoaderFunc is an adapter to allow ordinary functions to be used as
// Loaders. os.ReadFile satisfies it directly:
//
//	stratum.New(stratum.LoaderFunc(os.ReadFile))
type LoaderFunc func(path string) ([]byte, error)

// ReadConfiguration implements the Loader interface.
func (f LoaderFunc) ReadConfiguration(path string) ([]byte, error) {
	return f(path)
}

// FileLoader reads configuration documents from an fs.FS.
type FileLoader struct {
	fsys fs.FS
}

// NewFileLoader returns a FileLoader which resolves paths against fsys.
func NewFileLoader(fsys fs.FS) FileLoader {
	return FileLoader{fsys: fsys}
}

// ReadConfiguration implements the Loader interface.
func (l FileLoader) ReadConfiguration(path string) ([]byte, error) {
	return fs.ReadFile(l.fsys, path)
}
