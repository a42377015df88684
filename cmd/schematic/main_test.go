package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-craft/schematic/internal/block"
	"github.com/go-theft-craft/schematic/internal/schematic"
	"github.com/go-theft-craft/schematic/internal/source"
	"github.com/go-theft-craft/schematic/internal/world"
)

func writeSample(t *testing.T) string {
	t.Helper()
	s := world.NewStack(2, 3, 2)
	require.NoError(t, s.Set(0, 0, 0, block.New(block.Stone, 0)))
	require.NoError(t, s.Set(1, 0, 0, block.New(block.Stone, 3)))
	require.NoError(t, s.Set(2, 1, 0, block.New(block.RedstoneWire, 0)))
	require.NoError(t, s.Set(1, 1, 0, block.New(block.RedstoneWire, 0)))

	path := filepath.Join(t.TempDir(), "sample.schematic")
	require.NoError(t, source.Save(path, s))
	return path
}

func readStack(t *testing.T, path string) *world.Stack {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	res, err := schematic.Read(f)
	require.NoError(t, err)
	return res.Stack
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestInfo(t *testing.T) {
	out, err := runCLI(t, "info", writeSample(t))
	require.NoError(t, err)

	assert.Contains(t, out, "size: 3 x 2, 2 layers")
	assert.Contains(t, out, "recovered errors: 0")
	assert.Contains(t, out, "connected wires: 2")
	assert.Contains(t, out, "       2  Redstone Wire")
	assert.Contains(t, out, "       1  Diorite")
}

func TestConvertRotate(t *testing.T) {
	in := writeSample(t)
	out := filepath.Join(t.TempDir(), "out.schematic")

	_, err := runCLI(t, "convert", "-rotate", "cw", "-o", out, in)
	require.NoError(t, err)

	s := readStack(t, out)
	assert.Equal(t, 2, s.Width())
	assert.Equal(t, 3, s.Height())

	// (1,1) and (2,1) turn into (0,1) and (0,2).
	for _, y := range []int{1, 2} {
		b, err := s.At(0, y, 0)
		require.NoError(t, err)
		assert.True(t, b.IsWire())
	}
	diorite, err := s.At(1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, block.New(block.Stone, 3), diorite)
}

func TestConvertTrimOverwritesInput(t *testing.T) {
	in := writeSample(t)

	_, err := runCLI(t, "convert", "-trim", in)
	require.NoError(t, err)

	s := readStack(t, in)
	assert.Equal(t, 1, s.Layers())
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, 2, s.Height())
}

func TestConvertCrop(t *testing.T) {
	in := writeSample(t)
	out := filepath.Join(t.TempDir(), "out.schematic")

	_, err := runCLI(t, "convert", "-crop", "1,0,0,1,0,0", "-o", out, in)
	require.NoError(t, err)

	s := readStack(t, out)
	assert.Equal(t, 1, s.Layers())
	assert.Equal(t, 2, s.Width())

	_, err = runCLI(t, "convert", "-crop", "1,2", in)
	assert.Error(t, err)
	_, err = runCLI(t, "convert", "-crop", "5,0,0,0,0,0", in)
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	in := writeSample(t)

	out, err := runCLI(t, "export", in)
	require.NoError(t, err)
	assert.Equal(t, "-- layer 0 --\n1 1 0\n0 55 55\n-- layer 1 --\n0 0 0\n0 0 0\n", out)

	file := filepath.Join(t.TempDir(), "dump.txt")
	_, err = runCLI(t, "export", "-o", file, in)
	require.NoError(t, err)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))
}

func TestFetchLocal(t *testing.T) {
	in := writeSample(t)
	dir := t.TempDir()

	out, err := runCLI(t, "fetch", "-dir", dir, in)
	require.NoError(t, err)
	assert.Contains(t, out, "saved: "+filepath.Join(dir, "sample.schematic"))
	assert.Contains(t, out, "size: 3 x 2, 2 layers")
}

func TestPlace(t *testing.T) {
	in := writeSample(t)
	dir := t.TempDir()

	out, err := runCLI(t, "place", "-at", "-2,70,0", "-dir", dir, in)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "r.-1.0.mca")+"\n"+filepath.Join(dir, "r.0.0.mca")+"\n", out)

	_, err = runCLI(t, "place", "-at", "0,255,0", "-dir", dir, in)
	assert.Error(t, err)
	_, err = runCLI(t, "place", "-at", "1,2", in)
	assert.Error(t, err)
}

func TestConfigFileAndExplicitFlags(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "schematic.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_format: xml\n"), 0o644))

	_, err := runCLI(t, "-config", cfgPath, "info", writeSample(t))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: error\nlog_format: json\n"), 0o644))
	_, err = runCLI(t, "-config", cfgPath, "-log-format", "text", "info", writeSample(t))
	assert.NoError(t, err)
}

func TestUsageErrors(t *testing.T) {
	_, err := runCLI(t)
	assert.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, "explode")
	assert.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, "info")
	assert.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, "convert", "-rotate", "sideways", writeSample(t))
	assert.Error(t, err)
}
