package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Writer streams big-endian tag data. Writes after the first failure are
// dropped; Err reports that failure.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter creates a new NBT Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered during writing.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) write(data []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(data)
}

func (w *Writer) putByte(v byte) {
	w.write([]byte{v})
}

func (w *Writer) putUint16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	w.write(buf[:])
}

func (w *Writer) putInt32(v int32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	w.write(buf[:])
}

func (w *Writer) putInt64(v int64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	w.write(buf[:])
}

func (w *Writer) putString(s string) {
	if len(s) > math.MaxUint16 {
		w.fail(fmt.Errorf("nbt: string of %d bytes exceeds %d", len(s), math.MaxUint16))
		return
	}
	w.putUint16(uint16(len(s)))
	if len(s) > 0 {
		w.write([]byte(s))
	}
}

func (w *Writer) writeTagHeader(tagType byte, name string) {
	w.putByte(tagType)
	w.putString(name)
}

// BeginCompound writes a compound tag header. Use name="" for the root.
func (w *Writer) BeginCompound(name string) {
	w.writeTagHeader(TagCompound, name)
}

// EndCompound writes an End tag to close a compound.
func (w *Writer) EndCompound() {
	w.putByte(TagEnd)
}

// WriteTagByte writes a named byte tag.
func (w *Writer) WriteTagByte(name string, v byte) {
	w.writeTagHeader(TagByte, name)
	w.putByte(v)
}

// WriteInt writes a named int tag.
func (w *Writer) WriteInt(name string, v int32) {
	w.writeTagHeader(TagInt, name)
	w.putInt32(v)
}

// WriteLong writes a named long tag.
func (w *Writer) WriteLong(name string, v int64) {
	w.writeTagHeader(TagLong, name)
	w.putInt64(v)
}

// WriteByteArray writes a named byte array tag.
func (w *Writer) WriteByteArray(name string, v []byte) {
	w.writeTagHeader(TagByteArray, name)
	w.putInt32(int32(len(v)))
	w.write(v)
}

// WriteIntArray writes a named int array tag.
func (w *Writer) WriteIntArray(name string, v []int32) {
	w.writeTagHeader(TagIntArray, name)
	w.putInt32(int32(len(v)))
	for _, val := range v {
		w.putInt32(val)
	}
}

// BeginList writes a named list tag header. The count items follow, each
// written with WriteListItem or, for compounds, as named tags closed by
// EndCompound.
func (w *Writer) BeginList(name string, elemType byte, count int32) {
	w.writeTagHeader(TagList, name)
	w.putByte(elemType)
	w.putInt32(count)
}

// WriteListItem writes v as an unnamed list element.
func (w *Writer) WriteListItem(v any) {
	t := TypeOf(v)
	if t == TagEnd {
		w.fail(fmt.Errorf("nbt: list item has unsupported value type %T", v))
		return
	}
	w.writePayload(t, v)
}

// WriteTag writes v as a named tag. Compounds are written with their keys in
// sorted order so output is deterministic.
func (w *Writer) WriteTag(name string, v any) {
	t := TypeOf(v)
	if t == TagEnd {
		w.fail(fmt.Errorf("nbt: tag %q has unsupported value type %T", name, v))
		return
	}
	w.writeTagHeader(t, name)
	w.writePayload(t, v)
}

func (w *Writer) writePayload(t byte, v any) {
	switch t {
	case TagByte:
		w.putByte(byte(v.(int8)))
	case TagShort:
		w.putUint16(uint16(v.(int16)))
	case TagInt:
		w.putInt32(v.(int32))
	case TagLong:
		w.putInt64(v.(int64))
	case TagFloat:
		w.putInt32(int32(math.Float32bits(v.(float32))))
	case TagDouble:
		w.putInt64(int64(math.Float64bits(v.(float64))))
	case TagByteArray:
		b := v.([]byte)
		w.putInt32(int32(len(b)))
		w.write(b)
	case TagString:
		w.putString(v.(string))
	case TagList:
		w.writeList(v.(List))
	case TagCompound:
		c := v.(Compound)
		for _, k := range c.Keys() {
			w.WriteTag(k, c[k])
		}
		w.EndCompound()
	case TagIntArray:
		a := v.([]int32)
		w.putInt32(int32(len(a)))
		for _, x := range a {
			w.putInt32(x)
		}
	case TagLongArray:
		a := v.([]int64)
		w.putInt32(int32(len(a)))
		for _, x := range a {
			w.putInt64(x)
		}
	}
}

func (w *Writer) writeList(l List) {
	elemType := l.Type
	w.putByte(elemType)
	w.putInt32(int32(len(l.Items)))
	for i, it := range l.Items {
		if got := TypeOf(it); got != elemType {
			w.fail(fmt.Errorf("nbt: list item %d is %s, list holds %s", i, TagName(got), TagName(elemType)))
			return
		}
		w.WriteListItem(it)
	}
}

// Marshal writes root as a named root compound.
func Marshal(out io.Writer, name string, root Compound) error {
	w := NewWriter(out)
	w.WriteTag(name, root)
	return w.Err()
}
