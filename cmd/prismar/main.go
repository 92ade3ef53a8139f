// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command prismar creates, lists and extracts kar asset archives.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"golang.org/x/exp/mmap"

	"github.com/devblok/prism/utility/kar"
)

func init() {
	u, err := user.Current()
	if err != nil {
		currentUserName = "unknown"
		return
	}
	currentUserName = u.Name
}

var (
	currentUserName string
	author          = flag.String("author", "", "Set the author of the archive when compressing, defaults to the current user")
	version         = flag.Int64("version", 1, "Archive version number to create it with")
	extract         = flag.String("e", "", "Extract the named file from the archive")
	compress        = flag.String("c", "", "Compress the given file or folder")
	list            = flag.Bool("l", false, "List the contents of the archive")
	archiveFile     = flag.String("f", "out.kar", "Archive file to operate on")
	outDir          = flag.String("o", ".", "Directory extracted files are written to")
	silent          = flag.Bool("s", false, "Do not print progress")
)

func main() {
	flag.Parse()

	ops := 0
	for _, requested := range []bool{*extract != "", *compress != "", *list} {
		if requested {
			ops++
		}
	}
	if ops > 1 {
		panic(errors.New("only one operation at a time"))
	}

	switch {
	case *compress != "":
		if *author == "" {
			*author = currentUserName
		}
		if err := compressFiles(); err != nil {
			panic(err)
		}
	case *extract != "":
		if err := extractFile(); err != nil {
			panic(err)
		}
	case *list:
		if err := listFiles(); err != nil {
			panic(err)
		}
	default:
		flag.PrintDefaults()
	}
}

// entryName is the path a file is archived under, relative to the
// compression root.
func entryName(path string) (string, error) {
	if path == *compress {
		return filepath.Base(path), nil
	}
	return filepath.Rel(*compress, path)
}

func addFile(builder *kar.Builder, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	name, err := entryName(path)
	if err != nil {
		return err
	}
	return builder.Add(name, f)
}

func compressFiles() error {
	if _, err := os.Stat(*archiveFile); err == nil {
		return errors.New("destination file exists, will not overwrite")
	}

	dst, err := os.Create(*archiveFile)
	if err != nil {
		return err
	}
	defer dst.Close()

	var toCompress []string
	err = filepath.Walk(*compress, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		toCompress = append(toCompress, path)
		return nil
	})
	if err != nil {
		return err
	}

	builder, err := kar.NewBuilder(kar.Header{
		Author:      *author,
		DateCreated: time.Now().Unix(),
		Version:     *version,
	})
	if err != nil {
		return err
	}
	defer builder.Close()

	for _, path := range toCompress {
		if err := addFile(builder, path); err != nil {
			return err
		}
		if !*silent {
			fmt.Println(path)
		}
	}

	_, err = builder.WriteTo(dst)
	return err
}

func extractFile() error {
	reader, err := mmap.Open(*archiveFile)
	if err != nil {
		return err
	}
	defer reader.Close()

	archive, err := kar.Open(reader)
	if err != nil {
		return err
	}

	f, err := archive.Open(*extract)
	if err != nil {
		return err
	}

	path := filepath.Join(*outDir, filepath.FromSlash(*extract))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, f); err != nil {
		return err
	}
	if !*silent {
		fmt.Println(path)
	}
	return nil
}

func listFiles() error {
	reader, err := mmap.Open(*archiveFile)
	if err != nil {
		return err
	}
	defer reader.Close()

	archive, err := kar.Open(reader)
	if err != nil {
		return err
	}

	header := archive.Header()
	fmt.Printf("%s: version %d, created %s by %s\n",
		*archiveFile, header.Version,
		time.Unix(header.DateCreated, 0).Format("2006-01-02"), header.Author)
	fmt.Printf("%12s %12s  %s\n", "size", "compressed", "name")
	for _, entry := range archive.Index() {
		fmt.Printf("%12d %12d  %s\n", entry.Size, entry.CompressedSize, entry.Name)
	}
	return nil
}
