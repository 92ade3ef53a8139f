// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package asset resolves engine resources by name. A name is looked
// up in a plain directory first and in a kar archive second, so loose
// files can override archived ones during development.
package asset

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/devblok/prism/utility/kar"
)

// ErrNotFound means the name is in neither the directory nor the archive.
var ErrNotFound = errors.New("asset not found")

// Loader resolves names to resource contents. Both sources are
// read-only, so a Loader can be shared between goroutines.
type Loader struct {
	dir     string
	archive *kar.Archive
	file    *os.File
}

// NewLoader builds a loader over a directory and a kar archive, each
// optional when empty. A loader with neither source fails every
// lookup with ErrNotFound.
func NewLoader(dir, archive string) (*Loader, error) {
	loader := &Loader{dir: dir}
	if archive != "" {
		file, err := os.Open(archive)
		if err != nil {
			return nil, errors.New("asset.NewLoader(): " + err.Error())
		}
		ar, err := kar.Open(file)
		if err != nil {
			file.Close()
			return nil, errors.New("asset.NewLoader(): " + err.Error())
		}
		loader.file = file
		loader.archive = ar
	}
	return loader, nil
}

// Bytes returns the contents of the named resource.
func (l *Loader) Bytes(name string) ([]byte, error) {
	if l.dir != "" {
		data, err := ioutil.ReadFile(filepath.Join(l.dir, name))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, errors.New("asset.Bytes(): " + err.Error())
		}
	}
	if l.archive != nil {
		data, err := l.archive.ReadAll(name)
		if err == kar.ErrNotFound {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, errors.New("asset.Bytes(): " + err.Error())
		}
		return data, nil
	}
	return nil, ErrNotFound
}

// Close releases the archive handle, if one is open.
func (l *Loader) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
