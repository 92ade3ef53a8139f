// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package kar

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4"
)

// Open opens the kar archive read through r. It checks that the file
// actually is a kar archive and decodes the whole index, returns an
// error when the file is not usable.
func Open(r io.ReaderAt) (*Archive, error) {
	readMagic := make([]byte, MagicLength)
	if num, err := r.ReadAt(readMagic, 0); err != nil {
		return nil, err
	} else if num < MagicLength || !bytes.Equal(readMagic, magic[:]) {
		return nil, ErrFileFormat
	}

	headerSizeBytes := make([]byte, HeaderSizeNumberLength)
	if num, err := r.ReadAt(headerSizeBytes, MagicLength); err != nil {
		return nil, err
	} else if num < HeaderSizeNumberLength {
		return nil, ErrFileFormat
	}

	headerSize, err := binaryToint64(headerSizeBytes)
	if err != nil || headerSize <= 0 || headerSize > 1<<30 {
		return nil, ErrFileFormat
	}

	headerBytes := make([]byte, headerSize)
	if num, err := r.ReadAt(headerBytes, MagicLength+HeaderSizeNumberLength); err != nil {
		return nil, err
	} else if int64(num) < headerSize {
		return nil, ErrFileFormat
	}

	var header Header
	if err := gobDecode(&header, headerBytes); err != nil {
		return nil, ErrFileFormat
	}

	ar := Archive{
		reader: r,
		header: header,
		index:  make(map[string]IndexEntry, len(header.Index)),
	}
	for _, e := range header.Index {
		ar.index[e.Name] = e
	}
	return &ar, nil
}

// Archive provides concurrent io for a kar file, and can provide
// an io.Reader for each file separately to perform actions on.
type Archive struct {
	reader io.ReaderAt
	header Header
	index  map[string]IndexEntry
}

// Header returns the decoded archive header.
func (a *Archive) Header() Header {
	return a.header
}

// Index returns the decoded file index in archive order.
func (a *Archive) Index() []IndexEntry {
	out := make([]IndexEntry, len(a.header.Index))
	copy(out, a.header.Index)
	return out
}

// ReadAll returns the entire contents of a file with a given name.
func (a *Archive) ReadAll(name string) ([]byte, error) {
	r, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	out := make([]byte, r.Size())
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Open returns a Reader for a file in the Archive.
func (a *Archive) Open(name string) (*Reader, error) {
	entry, ok := a.index[name]
	if !ok {
		return nil, ErrNotFound
	}
	section := io.NewSectionReader(a.reader, entry.Offset, entry.CompressedSize)
	return &Reader{
		entry: entry,
		lz:    io.LimitReader(lz4.NewReader(section), entry.Size),
	}, nil
}

// Reader is a reader for a single file in an Archive.
// Abstracts away the location that needs to be known.
type Reader struct {
	entry IndexEntry
	lz    io.Reader
}

// Read reads already decompressed data.
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.lz.Read(p)
}

// Size returns the decompressed size of the file.
func (r *Reader) Size() int64 {
	return r.entry.Size
}

// Name returns the name the file was archived under.
func (r *Reader) Name() string {
	return r.entry.Name
}
