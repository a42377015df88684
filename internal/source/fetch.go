// Package source locates schematic bytes: remote downloads, local files that
// may lack the gzip envelope, and atomic saves.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"
)

// defaultName is used when the source address has no usable file name.
const defaultName = "download.schematic"

// Fetcher downloads schematics into a cache directory.
type Fetcher struct {
	// Dir receives downloaded files. Empty means the working directory.
	Dir string
	Log *slog.Logger
}

// Fetch downloads src and returns the local path of the copy. src is any
// address go-getter understands: a local path, an http(s) URL, an s3:: or
// gcs:: address, or a file inside a git:: repository.
func (f *Fetcher) Fetch(ctx context.Context, src string) (string, error) {
	log := f.Log
	if log == nil {
		log = slog.Default()
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}
	dst := filepath.Join(f.Dir, fileName(src))

	log.Info("fetching schematic", "src", src, "dst", dst)
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("fetch %s: %w", src, err)
	}
	log.Info("fetched schematic", "path", dst)
	return dst, nil
}

// fileName picks the local name for src: the last path element with any
// forced getter prefix, query and subdirectory marker removed.
func fileName(src string) string {
	if i := strings.Index(src, "::"); i >= 0 {
		src = src[i+2:]
	}
	if u, err := url.Parse(src); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		src = u.Path
	} else if i := strings.IndexByte(src, '?'); i >= 0 {
		src = src[:i]
	}
	src = strings.ReplaceAll(src, "//", "/")
	src = filepath.ToSlash(src)

	name := path.Base(src)
	switch name {
	case "", ".", "/":
		return defaultName
	}
	return name
}
