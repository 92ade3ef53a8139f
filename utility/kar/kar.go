// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package kar implements an lz4 backed archive format for game assets.
// The archive itself is never compressed as a whole, every file in it is
// compressed individually, so any file can be located and streamed out
// without touching the rest of the archive. The index sits at the front
// of the file, which makes the format friendly to memory mapping: a
// reader knows where every file lives before any of them are read. Space
// efficiency is traded away for read speed. Archives can be read from
// concurrently.
package kar

import "errors"

// package errors
var (
	ErrFileFormat = errors.New("corrupted or not a kar archive")
	ErrTempFail   = errors.New("temporary folder or file operation failed")
	ErrIOMisc     = errors.New("some unknown error unhandled by the io occured")
	ErrNotFound   = errors.New("no entry with the given name in the archive")
)

// Sizes relevant to the header of the file
const (
	MagicLength            = 4
	HeaderSizeNumberLength = 16
)

var magic = [MagicLength]byte{'K', 'A', 'R', 0}
