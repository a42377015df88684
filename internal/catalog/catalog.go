// Package catalog names voxels for display. The table in blocks_gen.go is
// generated by cmd/codegen from the minecraft-data block list.
package catalog

//go:generate go run ../../cmd/codegen -out blocks_gen.go

import (
	"fmt"
	"sort"

	"github.com/go-theft-craft/schematic/internal/block"
)

// Entry describes the voxels with a given id and a data value in
// [MinData, MaxData].
type Entry struct {
	ID      uint16
	MinData uint8
	MaxData uint8
	Name    string // registry name, e.g. "stone"
	Display string // human readable, e.g. "Granite"
}

// Contains reports whether (id, data) falls in e.
func (e Entry) Contains(id uint16, data uint8) bool {
	return e.ID == id && data >= e.MinData && data <= e.MaxData
}

// Lookup returns the most specific entry for (id, data). Entries for the same
// id are ordered narrowest range first.
func Lookup(id uint16, data uint8) (Entry, bool) {
	i := sort.Search(len(entries), func(i int) bool { return entries[i].ID >= id })
	for ; i < len(entries) && entries[i].ID == id; i++ {
		if entries[i].Contains(id, data) {
			return entries[i], true
		}
	}
	return Entry{}, false
}

// Name returns the display name of b, or "unknown id:data" for voxels the
// table does not cover.
func Name(b block.Block) string {
	if e, ok := Lookup(b.ID, b.Data); ok {
		return e.Display
	}
	return fmt.Sprintf("unknown %d:%d", b.ID, b.Data)
}

// Len returns the number of entries in the table.
func Len() int {
	return len(entries)
}
