package anvil

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/klauspost/compress/zlib"

	"github.com/go-theft-craft/schematic/internal/source"
	"github.com/go-theft-craft/schematic/pkg/nbt"
)

const (
	sectorSize      = 4096
	headerSectors   = 2 // location table + timestamp table
	compressionZlib = 2
)

// ErrChunkMissing is returned by ReadChunk for chunks the region does not hold.
var ErrChunkMissing = errors.New("chunk not present in region")

// RegionPath returns the file name of region (rx, rz) inside dir.
func RegionPath(dir string, rx, rz int) string {
	return filepath.Join(dir, fmt.Sprintf("r.%d.%d.mca", rx, rz))
}

// Save encodes chunks and writes one region file per region they touch. It
// returns the written paths in sorted order. Existing region files are
// replaced, not merged.
func Save(dir string, chunks map[ChunkPos]*Chunk) ([]string, error) {
	type regionPos struct{ x, z int }
	regions := make(map[regionPos]map[ChunkPos][]byte)
	for pos, c := range chunks {
		data, err := c.Encode()
		if err != nil {
			return nil, fmt.Errorf("encode chunk (%d,%d): %w", pos.X, pos.Z, err)
		}
		rx, rz := pos.Region()
		rp := regionPos{rx, rz}
		if regions[rp] == nil {
			regions[rp] = make(map[ChunkPos][]byte)
		}
		regions[rp][pos] = data
	}

	paths := make([]string, 0, len(regions))
	for rp, rc := range regions {
		if err := SaveRegion(dir, rp.x, rp.z, rc); err != nil {
			return nil, err
		}
		paths = append(paths, RegionPath(dir, rp.x, rp.z))
	}
	sort.Strings(paths)
	return paths, nil
}

// SaveRegion writes all provided chunks to a .mca region file.
// chunks maps chunk positions to their uncompressed tag data.
func SaveRegion(dir string, rx, rz int, chunks map[ChunkPos][]byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create region dir: %w", err)
	}

	type chunkEntry struct {
		index      int
		compressed []byte
	}
	entries := make([]chunkEntry, 0, len(chunks))

	for pos, data := range chunks {
		var cbuf bytes.Buffer
		zw, err := zlib.NewWriterLevel(&cbuf, zlib.DefaultCompression)
		if err != nil {
			return fmt.Errorf("create zlib writer: %w", err)
		}
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("compress chunk (%d,%d): %w", pos.X, pos.Z, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("close zlib writer: %w", err)
		}

		idx := (pos.X & 31) + (pos.Z&31)*32
		entries = append(entries, chunkEntry{index: idx, compressed: cbuf.Bytes()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	locations := make([]byte, sectorSize)
	timestamps := make([]byte, sectorSize)
	now := uint32(time.Now().Unix())

	// Each chunk: 4 bytes length + 1 byte compression type + compressed
	// data, padded to a sector boundary.
	var dataBuf bytes.Buffer
	currentSector := uint32(headerSectors)

	for _, e := range entries {
		payloadLen := uint32(len(e.compressed)) + 1
		totalLen := 4 + payloadLen
		sectorCount := (totalLen + sectorSize - 1) / sectorSize
		if sectorCount > 0xFF {
			return fmt.Errorf("chunk %d needs %d sectors, limit is 255", e.index, sectorCount)
		}

		off := e.index * 4
		binary.BigEndian.PutUint32(locations[off:off+4], (currentSector<<8)|sectorCount)
		binary.BigEndian.PutUint32(timestamps[off:off+4], now)

		var header [5]byte
		binary.BigEndian.PutUint32(header[0:4], payloadLen)
		header[4] = compressionZlib
		dataBuf.Write(header[:])
		dataBuf.Write(e.compressed)

		if pad := int(sectorCount)*sectorSize - int(totalLen); pad > 0 {
			dataBuf.Write(make([]byte, pad))
		}
		currentSector += sectorCount
	}

	return source.WriteFile(RegionPath(dir, rx, rz), func(w io.Writer) error {
		for _, part := range [][]byte{locations, timestamps, dataBuf.Bytes()} {
			if _, err := w.Write(part); err != nil {
				return fmt.Errorf("write region file: %w", err)
			}
		}
		return nil
	})
}

// ReadChunk loads chunk pos from the region file at path and returns its
// root compound.
func ReadChunk(path string, pos ChunkPos) (nbt.Compound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var loc [4]byte
	idx := (pos.X & 31) + (pos.Z&31)*32
	if _, err := f.ReadAt(loc[:], int64(idx*4)); err != nil {
		return nil, fmt.Errorf("read location table: %w", err)
	}
	entry := binary.BigEndian.Uint32(loc[:])
	if entry == 0 {
		return nil, fmt.Errorf("chunk (%d,%d): %w", pos.X, pos.Z, ErrChunkMissing)
	}
	offset := int64(entry>>8) * sectorSize

	var header [5]byte
	if _, err := f.ReadAt(header[:], offset); err != nil {
		return nil, fmt.Errorf("read chunk header: %w", err)
	}
	length := binary.BigEndian.Uint32(header[0:4])
	if header[4] != compressionZlib {
		return nil, fmt.Errorf("chunk (%d,%d): unsupported compression %d", pos.X, pos.Z, header[4])
	}
	if length < 1 || length > 0xFF*sectorSize {
		return nil, fmt.Errorf("chunk (%d,%d): bad length %d", pos.X, pos.Z, length)
	}

	zr, err := zlib.NewReader(io.NewSectionReader(f, offset+5, int64(length-1)))
	if err != nil {
		return nil, fmt.Errorf("chunk (%d,%d): %w", pos.X, pos.Z, err)
	}
	defer zr.Close()

	_, root, err := nbt.Parse(zr)
	if err != nil {
		return nil, fmt.Errorf("chunk (%d,%d): %w", pos.X, pos.Z, err)
	}
	return root, nil
}
