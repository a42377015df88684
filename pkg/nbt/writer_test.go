package nbt

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestWriterScalarEncoding(t *testing.T) {
	tests := []struct {
		name  string
		write func(w *Writer)
		want  []byte
	}{
		{
			name:  "byte",
			write: func(w *Writer) { w.WriteTagByte("Y", 7) },
			want:  []byte{TagByte, 0, 1, 'Y', 7},
		},
		{
			name:  "int",
			write: func(w *Writer) { w.WriteInt("x", -2) },
			want:  []byte{TagInt, 0, 1, 'x', 0xFF, 0xFF, 0xFF, 0xFE},
		},
		{
			name:  "long",
			write: func(w *Writer) { w.WriteLong("t", 1<<32) },
			want:  []byte{TagLong, 0, 1, 't', 0, 0, 0, 1, 0, 0, 0, 0},
		},
		{
			name:  "byte array",
			write: func(w *Writer) { w.WriteByteArray("B", []byte{9, 8}) },
			want:  []byte{TagByteArray, 0, 1, 'B', 0, 0, 0, 2, 9, 8},
		},
		{
			name:  "int array",
			write: func(w *Writer) { w.WriteIntArray("H", []int32{1, 256}) },
			want:  []byte{TagIntArray, 0, 1, 'H', 0, 0, 0, 2, 0, 0, 0, 1, 0, 0, 1, 0},
		},
		{
			name:  "list header",
			write: func(w *Writer) { w.BeginList("E", TagCompound, 0) },
			want:  []byte{TagList, 0, 1, 'E', TagCompound, 0, 0, 0, 0},
		},
		{
			name: "empty root",
			write: func(w *Writer) {
				w.BeginCompound("")
				w.EndCompound()
			},
			want: []byte{TagCompound, 0, 0, TagEnd},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			tt.write(w)
			if err := w.Err(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tt.want) {
				t.Fatalf("got % x, want % x", buf.Bytes(), tt.want)
			}
		})
	}
}

func TestWriterStreamsParseableTree(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.BeginCompound("")
	w.BeginCompound("Level")
	w.WriteInt("xPos", 3)
	w.BeginList("Sections", TagCompound, 2)
	for y := byte(0); y < 2; y++ {
		w.WriteTagByte("Y", y)
		w.WriteByteArray("Blocks", []byte{y, 1})
		w.EndCompound()
	}
	w.BeginList("TileEntities", TagCompound, 1)
	w.WriteListItem(Compound{"id": "Chest", "x": int32(4)})
	w.EndCompound()
	w.EndCompound()
	if err := w.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, got, err := Parse(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Compound{"Level": Compound{
		"xPos": int32(3),
		"Sections": List{Type: TagCompound, Items: []any{
			Compound{"Y": int8(0), "Blocks": []byte{0, 1}},
			Compound{"Y": int8(1), "Blocks": []byte{1, 1}},
		}},
		"TileEntities": List{Type: TagCompound, Items: []any{
			Compound{"id": "Chest", "x": int32(4)},
		}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("streamed tree mismatch:\n got %#v\nwant %#v", got, want)
	}
}

type failingWriter struct{ n int }

var errDiskFull = errors.New("disk full")

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errDiskFull
	}
	f.n--
	return len(p), nil
}

func TestWriterKeepsFirstError(t *testing.T) {
	w := NewWriter(&failingWriter{n: 2})
	w.WriteInt("x", 1)
	w.WriteListItem(42)
	if !errors.Is(w.Err(), errDiskFull) {
		t.Fatalf("Err() = %v, want %v", w.Err(), errDiskFull)
	}
}

func TestWriteListItemRejectsUnsupportedValue(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.WriteListItem(struct{}{})
	if w.Err() == nil {
		t.Fatal("expected error for unsupported list item")
	}
}

func TestWriteTagSortsCompoundKeys(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteTag("", Compound{"b": int8(2), "a": int8(1)})
	if err := w.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []byte{
		TagCompound, 0, 0,
		TagByte, 0, 1, 'a', 1,
		TagByte, 0, 1, 'b', 2,
		TagEnd,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x, want % x", buf.Bytes(), want)
	}
}

func TestWriteTagRejectsUnsupportedValue(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteTag("bad", 42) // plain int has no tag type
	if w.Err() == nil {
		t.Fatal("expected error for unsupported value type")
	}
}

func TestWriteTagRejectsMixedList(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteTag("l", List{Type: TagInt, Items: []any{int32(1), "two"}})
	if w.Err() == nil {
		t.Fatal("expected error for list item of the wrong type")
	}
}
