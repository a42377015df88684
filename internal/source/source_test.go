package source

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-craft/schematic/internal/block"
	"github.com/go-theft-craft/schematic/internal/schematic"
	"github.com/go-theft-craft/schematic/internal/world"
	"github.com/go-theft-craft/schematic/pkg/nbt"
)

func sampleStack(t *testing.T) *world.Stack {
	t.Helper()
	s := world.NewStack(2, 3, 2)
	require.NoError(t, s.Set(1, 1, 0, block.New(block.Stone, 0)))
	require.NoError(t, s.Set(0, 0, 1, block.New(block.Chest, 2)))
	return s
}

func TestFileName(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"/tmp/castle.schematic", "castle.schematic"},
		{"https://example.com/files/tower.schematic?token=abc", "tower.schematic"},
		{"git::https://github.com/owner/builds.git//houses/hut.schematic?ref=v1", "hut.schematic"},
		{"s3::https://s3.amazonaws.com/bucket/key/bridge.schematic", "bridge.schematic"},
		{"https://example.com/", defaultName},
		{"", defaultName},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, fileName(tt.src))
		})
	}
}

func TestFetchLocalFile(t *testing.T) {
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "house.schematic")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	f := &Fetcher{Dir: t.TempDir(), Log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	got, err := f.Fetch(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.Dir, "house.schematic"), got)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

func TestFetchMissingSource(t *testing.T) {
	f := &Fetcher{Dir: t.TempDir(), Log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	_, err := f.Fetch(context.Background(), filepath.Join(t.TempDir(), "absent.schematic"))
	assert.Error(t, err)
}

func TestOpenGzip(t *testing.T) {
	s := sampleStack(t)
	path := filepath.Join(t.TempDir(), "a.schematic")
	require.NoError(t, Save(path, s))

	f, err := Open(path, t.TempDir())
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, f.Repacked())

	res, err := schematic.Read(f)
	require.NoError(t, err)
	assert.True(t, s.Equal(res.Stack))
}

func TestOpenRepacksRawTagFile(t *testing.T) {
	s := sampleStack(t)
	root, err := schematic.Encode(s)
	require.NoError(t, err)

	var raw bytes.Buffer
	require.NoError(t, nbt.Marshal(&raw, "Schematic", root))
	path := filepath.Join(t.TempDir(), "raw.schematic")
	require.NoError(t, os.WriteFile(path, raw.Bytes(), 0o644))

	tempDir := t.TempDir()
	f, err := Open(path, tempDir)
	require.NoError(t, err)
	assert.True(t, f.Repacked())

	res, err := schematic.Read(f)
	require.NoError(t, err)
	assert.True(t, s.Equal(res.Stack))

	require.NoError(t, f.Close())
	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary copy is removed on close")
}

func TestOpenUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string][]byte{
		"text":  []byte("hello"),
		"empty": nil,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, content, 0o644))

		_, err := Open(path, dir)
		assert.True(t, errors.Is(err, ErrUnknownFormat), name)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"), "")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteFileKeepsTargetOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.schematic")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	boom := errors.New("boom")
	err := WriteFile(path, func(w io.Writer) error {
		w.Write([]byte("partial"))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), data)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveReplacesTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.schematic")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	s := sampleStack(t)
	require.NoError(t, Save(path, s))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	res, err := schematic.Read(f)
	require.NoError(t, err)
	assert.True(t, s.Equal(res.Stack))
}
