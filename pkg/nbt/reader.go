package nbt

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	// maxDepth bounds compound/list nesting so hostile input cannot exhaust the stack.
	maxDepth = 512

	// chunkSize caps what an array length may allocate before any of its
	// payload has been read.
	chunkSize = 1 << 16
)

// ErrNotCompound is returned by Parse when the root tag is not a compound.
var ErrNotCompound = errors.New("nbt: root tag is not a compound")

// Reader reads big-endian NBT binary data.
type Reader struct {
	r     *bufio.Reader
	depth int
}

// NewReader creates a new NBT Reader.
func NewReader(r io.Reader) *Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return &Reader{r: br}
	}
	return &Reader{r: bufio.NewReader(r)}
}

// Parse reads one named root compound from r.
func Parse(r io.Reader) (string, Compound, error) {
	nr := NewReader(r)
	tagType, name, err := nr.ReadTag()
	if err != nil {
		return "", nil, err
	}
	if tagType != TagCompound {
		return name, nil, fmt.Errorf("%w (got %s)", ErrNotCompound, TagName(tagType))
	}
	v, err := nr.ReadValue(tagType)
	if err != nil {
		return name, nil, err
	}
	return name, v.(Compound), nil
}

// ReadTag reads a tag header. For TagEnd the name is empty.
func (r *Reader) ReadTag() (tagType byte, name string, err error) {
	tagType, err = r.r.ReadByte()
	if err != nil || tagType == TagEnd {
		return tagType, "", err
	}
	name, err = r.readString()
	if err != nil {
		return tagType, "", fmt.Errorf("read tag name: %w", err)
	}
	return tagType, name, nil
}

func (r *Reader) readFull(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// readBytes reads an n-byte array. Past chunkSize the buffer grows with the
// bytes actually read rather than with the declared length.
func (r *Reader) readBytes(n int) ([]byte, error) {
	if n <= chunkSize {
		return r.readFull(n)
	}
	var buf bytes.Buffer
	buf.Grow(chunkSize)
	if _, err := io.CopyN(&buf, r.r, int64(n)); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Reader) readUint16() (uint16, error) {
	b, err := r.readFull(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) readInt32() (int32, error) {
	b, err := r.readFull(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (r *Reader) readInt64() (int64, error) {
	b, err := r.readFull(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (r *Reader) readString() (string, error) {
	n, err := r.readUint16()
	if err != nil {
		return "", err
	}
	b, err := r.readFull(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *Reader) readLength() (int, error) {
	n, err := r.readInt32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("nbt: negative length %d", n)
	}
	return int(n), nil
}

func (r *Reader) readCompound() (Compound, error) {
	c := make(Compound)
	for {
		tagType, name, err := r.ReadTag()
		if err != nil {
			return c, err
		}
		if tagType == TagEnd {
			return c, nil
		}
		v, err := r.ReadValue(tagType)
		if err != nil {
			return c, fmt.Errorf("%s: %w", name, err)
		}
		c[name] = v
	}
}

func (r *Reader) readList() (List, error) {
	elemType, err := r.r.ReadByte()
	if err != nil {
		return List{}, err
	}
	n, err := r.readLength()
	if err != nil {
		return List{}, err
	}
	if n > 0 && elemType == TagEnd {
		return List{}, fmt.Errorf("nbt: list of %d End tags", n)
	}
	l := List{Type: elemType}
	for i := 0; i < n; i++ {
		v, err := r.ReadValue(elemType)
		if err != nil {
			return l, fmt.Errorf("[%d]: %w", i, err)
		}
		l.Items = append(l.Items, v)
	}
	return l, nil
}

// ReadValue reads the payload of a tag of the given type.
func (r *Reader) ReadValue(tagType byte) (any, error) {
	switch tagType {
	case TagByte:
		b, err := r.r.ReadByte()
		return int8(b), err
	case TagShort:
		v, err := r.readUint16()
		return int16(v), err
	case TagInt:
		return r.readInt32()
	case TagLong:
		return r.readInt64()
	case TagFloat:
		v, err := r.readInt32()
		return math.Float32frombits(uint32(v)), err
	case TagDouble:
		v, err := r.readInt64()
		return math.Float64frombits(uint64(v)), err
	case TagByteArray:
		n, err := r.readLength()
		if err != nil {
			return nil, err
		}
		return r.readBytes(n)
	case TagString:
		return r.readString()
	case TagIntArray:
		n, err := r.readLength()
		if err != nil {
			return nil, err
		}
		a := make([]int32, 0, min(n, chunkSize))
		for i := 0; i < n; i++ {
			v, err := r.readInt32()
			if err != nil {
				return nil, err
			}
			a = append(a, v)
		}
		return a, nil
	case TagLongArray:
		n, err := r.readLength()
		if err != nil {
			return nil, err
		}
		a := make([]int64, 0, min(n, chunkSize))
		for i := 0; i < n; i++ {
			v, err := r.readInt64()
			if err != nil {
				return nil, err
			}
			a = append(a, v)
		}
		return a, nil
	case TagList, TagCompound:
		r.depth++
		defer func() { r.depth-- }()
		if r.depth > maxDepth {
			return nil, fmt.Errorf("nbt: nesting deeper than %d", maxDepth)
		}
		if tagType == TagList {
			return r.readList()
		}
		return r.readCompound()
	}
	return nil, fmt.Errorf("nbt: unknown tag type %d", tagType)
}
