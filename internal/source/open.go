package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/go-theft-craft/schematic/internal/schematic"
	"github.com/go-theft-craft/schematic/pkg/nbt"
)

// ErrUnknownFormat is returned by Open for files that are neither gzip nor a
// raw tag tree.
var ErrUnknownFormat = errors.New("neither gzip nor tag data")

// File is an opened schematic, always positioned at a gzip stream.
type File struct {
	*os.File
	repacked bool
}

// Repacked reports whether the original file lacked the gzip envelope and
// was compressed into a temporary copy.
func (f *File) Repacked() bool {
	return f.repacked
}

// Close closes the file and removes the temporary copy, if any.
func (f *File) Close() error {
	err := f.File.Close()
	if f.repacked {
		if rmErr := os.Remove(f.Name()); rmErr != nil && err == nil {
			err = rmErr
		}
	}
	return err
}

// Open opens the schematic at path. A raw tag file is compressed into a
// temporary file in tempDir (empty means os.TempDir) so callers can always
// hand the result to schematic.Read.
func Open(path, tempDir string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var magic [2]byte
	n, err := io.ReadFull(f, magic[:])
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		f.Close()
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("rewind %s: %w", path, err)
	}

	if schematic.IsGzip(magic[:n]) {
		return &File{File: f}, nil
	}
	defer f.Close()
	if n == 0 || magic[0] != nbt.TagCompound {
		return nil, fmt.Errorf("open %s: %w", path, ErrUnknownFormat)
	}

	tmp, err := repack(f, tempDir)
	if err != nil {
		return nil, fmt.Errorf("repack %s: %w", path, err)
	}
	return &File{File: tmp, repacked: true}, nil
}

func repack(r io.Reader, tempDir string) (*os.File, error) {
	tmp, err := os.CreateTemp(tempDir, "schematic-*.gz")
	if err != nil {
		return nil, err
	}
	fail := func(err error) (*os.File, error) {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}

	zw := gzip.NewWriter(tmp)
	if _, err := io.Copy(zw, r); err != nil {
		return fail(err)
	}
	if err := zw.Close(); err != nil {
		return fail(err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return fail(err)
	}
	return tmp, nil
}
