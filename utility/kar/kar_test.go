// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package kar_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/devblok/prism/utility/kar"
)

var (
	testString1 = "idunvovkjnreovmegihjbrqlkmfrjnb"
	testString2 = "idunvovkjnreovmsdvwrvnervnreegihjbrqlkmfrjnb"
)

func buildTestArchive(t *testing.T) []byte {
	builder, err := kar.NewBuilder(kar.Header{
		Author:      "devblok",
		DateCreated: time.Now().Unix(),
		Version:     1,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer builder.Close()

	if err := builder.Add("test", strings.NewReader(testString1)); err != nil {
		t.Fatal(err)
	}
	if err := builder.Add("test2", strings.NewReader(testString2)); err != nil {
		t.Fatal(err)
	}

	buf := bytes.NewBuffer([]byte{})
	if written, err := builder.WriteTo(buf); err != nil {
		t.Fatal(err)
	} else {
		t.Logf("written %d", written)
	}
	return buf.Bytes()
}

func TestCreateAndRead(t *testing.T) {
	ar, err := kar.Open(bytes.NewReader(buildTestArchive(t)))
	if err != nil {
		t.Fatal(err)
	}

	f, err := ar.Open("test")
	if err != nil {
		t.Fatal(err)
	}
	if f.Size() != int64(len(testString1)) {
		t.Errorf("index has wrong size: %d", f.Size())
	}

	result := make([]byte, len(testString1))
	if _, err := io.ReadFull(f, result); err != nil {
		t.Fatal(err)
	}
	if strings.Compare(string(result), testString1) != 0 {
		t.Error("test string does not match up")
	}
}

func TestCreateAndReadAll(t *testing.T) {
	ar, err := kar.Open(bytes.NewReader(buildTestArchive(t)))
	if err != nil {
		t.Fatal(err)
	}

	if f, err := ar.ReadAll("test"); err != nil {
		t.Error(err)
	} else if strings.Compare(string(f), testString1) != 0 {
		t.Error("test string does not match up")
	}

	if f, err := ar.ReadAll("test2"); err != nil {
		t.Error(err)
	} else if strings.Compare(string(f), testString2) != 0 {
		t.Error("test string does not match up")
	}
}

func TestIndex(t *testing.T) {
	ar, err := kar.Open(bytes.NewReader(buildTestArchive(t)))
	if err != nil {
		t.Fatal(err)
	}

	header := ar.Header()
	if header.Author != "devblok" {
		t.Errorf("unexpected author %s", header.Author)
	}
	if header.Version != 1 {
		t.Errorf("unexpected version %d", header.Version)
	}

	index := ar.Index()
	if len(index) != 2 {
		t.Fatalf("incorrect number of index entries: %d", len(index))
	}
	if index[0].Name != "test" || index[1].Name != "test2" {
		t.Error("index entries out of order")
	}
	if index[0].Offset >= index[1].Offset {
		t.Error("offsets do not increase in archive order")
	}
}

func TestOpenNotAnArchive(t *testing.T) {
	if _, err := kar.Open(bytes.NewReader([]byte("certainly not an archive of any kind"))); err != kar.ErrFileFormat {
		t.Errorf("expected ErrFileFormat, got %v", err)
	}
}

func TestOpenMissingEntry(t *testing.T) {
	ar, err := kar.Open(bytes.NewReader(buildTestArchive(t)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ar.Open("nosuchfile"); err != kar.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := ar.ReadAll("nosuchfile"); err != kar.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
