// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package kar

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/pierrec/lz4"
)

// NewBuilder creates a new Builder. Do not fill the Index in
// the header, it will be overwritten anyway.
func NewBuilder(header Header) (*Builder, error) {
	temp, err := ioutil.TempDir("", "karBuilder")
	if err != nil {
		return nil, ErrTempFail
	}
	header.Index = nil
	builder := &Builder{
		tempDir: temp,
		header:  header,
	}
	// Backstop for callers that never get around to Close.
	runtime.SetFinalizer(builder, func(builder *Builder) {
		os.RemoveAll(builder.tempDir)
	})
	return builder, nil
}

type tempFile struct {

	// Name is the actual name of the file
	Name string

	// TempName is the temporary name given by the Builder
	TempName string

	// Size in decompressed state
	Size int64

	// Compressed size as staged on disk
	Compressed int64
}

// Builder is the high level builder for the archive format.
// Archives are versioned and cannot be appended to, this Builder
// is the only way to create one. Whenever Add is called the data is
// compressed right away into a staging directory, WriteTo then bundles
// the staged files together behind the index.
type Builder struct {
	tempDir string
	header  Header

	mutex sync.Mutex
	files []tempFile
}

// Add compresses the contents of r and stages them under the given
// name. Blocks until lz4 finishes. Safe for use from multiple
// goroutines.
func (b *Builder) Add(name string, r io.Reader) error {
	f, err := ioutil.TempFile(b.tempDir, "entry")
	if err != nil {
		return ErrTempFail
	}
	defer f.Close()

	writer := lz4.NewWriter(f)
	written, err := io.Copy(writer, r)
	if err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	info, err := f.Stat()
	if err != nil {
		return err
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.files = append(b.files, tempFile{
		Name:       name,
		TempName:   filepath.Base(f.Name()),
		Size:       written,
		Compressed: info.Size(),
	})
	return nil
}

// WriteTo bundles all of the staged files into a kar archive
// that is ready to use and writes it out to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	header := b.header
	header.Index = make([]IndexEntry, 0, len(b.files))
	for _, v := range b.files {
		header.Index = append(header.Index, IndexEntry{
			Name:           v.Name,
			Size:           v.Size,
			CompressedSize: v.Compressed,
		})
	}

	// Offsets depend on the size of the encoded header, so a region
	// of MaxExpectedSize is reserved for it and padded out.
	reserved := header.MaxExpectedSize()
	offset := int64(MagicLength + HeaderSizeNumberLength + reserved)
	for i := range header.Index {
		header.Index[i].Offset = offset
		offset += header.Index[i].CompressedSize
	}

	rawHeader, err := gobEncode(header)
	if err != nil {
		return 0, err
	}
	if int64(len(rawHeader)) > reserved {
		return 0, ErrIOMisc
	}

	var total int64
	for _, chunk := range [][]byte{
		magic[:],
		int64ToBinary(reserved),
		rawHeader,
		make([]byte, reserved-int64(len(rawHeader))),
	} {
		n, err := w.Write(chunk)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	for _, v := range b.files {
		f, err := os.Open(filepath.Join(b.tempDir, v.TempName))
		if err != nil {
			return total, ErrTempFail
		}
		n, err := io.Copy(w, f)
		f.Close()
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Close removes the staging directory. The Builder is not
// usable afterwards.
func (b *Builder) Close() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.files = nil
	return os.RemoveAll(b.tempDir)
}
