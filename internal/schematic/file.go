package schematic

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/go-theft-craft/schematic/internal/world"
	"github.com/go-theft-craft/schematic/pkg/nbt"
)

// rootName is the name of the root compound in files written by Write.
const rootName = "Schematic"

var gzipMagic = []byte{0x1f, 0x8b}

// IsGzip reports whether prefix starts with the gzip magic bytes.
func IsGzip(prefix []byte) bool {
	return bytes.HasPrefix(prefix, gzipMagic)
}

// Read decodes a gzip-compressed schematic from r.
func (d *Decoder) Read(r io.Reader) (*Result, error) {
	br := bufio.NewReader(r)
	prefix, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !IsGzip(prefix) {
		return nil, ErrNotGzip
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	defer zr.Close()

	_, root, err := nbt.Parse(zr)
	if err != nil {
		return nil, formatErr(err, "parse tag tree")
	}
	return d.Decode(root)
}

// Read decodes a gzip-compressed schematic from r with a zero Decoder.
func Read(r io.Reader) (*Result, error) {
	return (&Decoder{}).Read(r)
}

// Write encodes s and writes it gzip-compressed to w.
func Write(w io.Writer, s *world.Stack) error {
	root, err := Encode(s)
	if err != nil {
		return err
	}

	zw := gzip.NewWriter(w)
	if err := nbt.Marshal(zw, rootName, root); err != nil {
		zw.Close()
		return fmt.Errorf("write tag tree: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close gzip stream: %w", err)
	}
	return nil
}
