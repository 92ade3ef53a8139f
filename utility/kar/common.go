// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package kar

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
)

// IndexEntry is info for one file in the file index.
type IndexEntry struct {

	// Name the file was added under.
	Name string

	// Offset of the compressed data, counted from the
	// beginning of the archive.
	Offset int64

	// Size of the file when decompressed.
	Size int64

	// CompressedSize is the size the file occupies in the archive.
	CompressedSize int64
}

// Header is the file header for kar files.
type Header struct {
	Author      string
	DateCreated int64
	Version     int64
	Index       []IndexEntry
}

// MaxExpectedSize returns an upper bound on the encoded size of the
// Header. The builder reserves this much space at the front of the
// archive before the index offsets are final, so the bound must hold
// for any offset values. Gob needs a couple hundred bytes for the type
// descriptions alone, the rest scales with the index.
func (h *Header) MaxExpectedSize() int64 {
	size := int64(256)
	size += int64(len(h.Author))
	for _, e := range h.Index {
		size += int64(len(e.Name))
		size += 96
	}
	return size
}

func int64ToBinary(num int64) []byte {
	numBytes := make([]byte, HeaderSizeNumberLength)
	binary.PutVarint(numBytes, num)
	return numBytes
}

func binaryToint64(bts []byte) (int64, error) {
	num, err := binary.ReadVarint(bytes.NewReader(bts))
	if err != nil {
		return 0, err
	}
	return num, nil
}

func gobEncode(data interface{}) ([]byte, error) {
	var encoded bytes.Buffer
	enc := gob.NewEncoder(&encoded)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return encoded.Bytes(), nil
}

func gobDecode(obj interface{}, bts []byte) error {
	dec := gob.NewDecoder(bytes.NewBuffer(bts))
	return dec.Decode(obj)
}
