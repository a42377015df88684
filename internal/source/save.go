package source

import (
	"fmt"
	"io"
	"os"

	"github.com/go-theft-craft/schematic/internal/schematic"
	"github.com/go-theft-craft/schematic/internal/world"
)

// Save writes s to path as a gzip schematic.
func Save(path string, s *world.Stack) error {
	return WriteFile(path, func(w io.Writer) error {
		return schematic.Write(w, s)
	})
}

// WriteFile writes the output of write to path atomically using a temp file
// + rename. The target is left untouched when write fails.
func WriteFile(path string, write func(io.Writer) error) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
