package nbt

import (
	"fmt"
	"sort"
)

// NBT tag type IDs.
const (
	TagEnd       byte = 0
	TagByte      byte = 1
	TagShort     byte = 2
	TagInt       byte = 3
	TagLong      byte = 4
	TagFloat     byte = 5
	TagDouble    byte = 6
	TagByteArray byte = 7
	TagString    byte = 8
	TagList      byte = 9
	TagCompound  byte = 10
	TagIntArray  byte = 11
	TagLongArray byte = 12
)

var tagNames = [...]string{
	TagEnd:       "End",
	TagByte:      "Byte",
	TagShort:     "Short",
	TagInt:       "Int",
	TagLong:      "Long",
	TagFloat:     "Float",
	TagDouble:    "Double",
	TagByteArray: "ByteArray",
	TagString:    "String",
	TagList:      "List",
	TagCompound:  "Compound",
	TagIntArray:  "IntArray",
	TagLongArray: "LongArray",
}

// TagName returns the human readable name of a tag type.
func TagName(tagType byte) string {
	if int(tagType) < len(tagNames) {
		return tagNames[tagType]
	}
	return fmt.Sprintf("Unknown(%d)", tagType)
}

// Compound is a decoded TAG_Compound. Values are one of int8, int16, int32,
// int64, float32, float64, []byte, string, List, Compound, []int32 or []int64.
type Compound map[string]any

// List is a decoded TAG_List. All items share Type.
type List struct {
	Type  byte
	Items []any
}

// TagError reports a missing tag or a tag of an unexpected type.
// Got is TagEnd when the tag is absent.
type TagError struct {
	Name string
	Want byte
	Got  byte
}

func (e *TagError) Error() string {
	if e.Got == TagEnd {
		return fmt.Sprintf("nbt: missing %s tag %q", TagName(e.Want), e.Name)
	}
	return fmt.Sprintf("nbt: tag %q is %s, want %s", e.Name, TagName(e.Got), TagName(e.Want))
}

// TypeOf returns the tag type that v is encoded as, or TagEnd if v is not a
// valid tag value.
func TypeOf(v any) byte {
	switch v.(type) {
	case int8:
		return TagByte
	case int16:
		return TagShort
	case int32:
		return TagInt
	case int64:
		return TagLong
	case float32:
		return TagFloat
	case float64:
		return TagDouble
	case []byte:
		return TagByteArray
	case string:
		return TagString
	case List:
		return TagList
	case Compound:
		return TagCompound
	case []int32:
		return TagIntArray
	case []int64:
		return TagLongArray
	}
	return TagEnd
}

// Has reports whether a tag with the given name exists.
func (c Compound) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// Keys returns the tag names in sorted order.
func (c Compound) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func get[T any](c Compound, name string, want byte) (T, error) {
	var zero T
	v, ok := c[name]
	if !ok {
		return zero, &TagError{Name: name, Want: want}
	}
	t, ok := v.(T)
	if !ok {
		return zero, &TagError{Name: name, Want: want, Got: TypeOf(v)}
	}
	return t, nil
}

// Byte returns the TAG_Byte called name.
func (c Compound) Byte(name string) (int8, error) { return get[int8](c, name, TagByte) }

// Short returns the TAG_Short called name.
func (c Compound) Short(name string) (int16, error) { return get[int16](c, name, TagShort) }

// Int returns the TAG_Int called name.
func (c Compound) Int(name string) (int32, error) { return get[int32](c, name, TagInt) }

// Long returns the TAG_Long called name.
func (c Compound) Long(name string) (int64, error) { return get[int64](c, name, TagLong) }

// String returns the TAG_String called name.
func (c Compound) String(name string) (string, error) { return get[string](c, name, TagString) }

// ByteArray returns the TAG_Byte_Array called name.
func (c Compound) ByteArray(name string) ([]byte, error) {
	return get[[]byte](c, name, TagByteArray)
}

// List returns the TAG_List called name.
func (c Compound) List(name string) (List, error) { return get[List](c, name, TagList) }

// Compound returns the nested TAG_Compound called name.
func (c Compound) Compound(name string) (Compound, error) {
	return get[Compound](c, name, TagCompound)
}

// Compounds returns the items of the list called name as compounds. An empty
// list of any element type yields no compounds.
func (c Compound) Compounds(name string) ([]Compound, error) {
	l, err := c.List(name)
	if err != nil {
		return nil, err
	}
	if len(l.Items) == 0 {
		return nil, nil
	}
	if l.Type != TagCompound {
		return nil, &TagError{Name: name, Want: TagCompound, Got: l.Type}
	}
	out := make([]Compound, len(l.Items))
	for i, it := range l.Items {
		cc, ok := it.(Compound)
		if !ok {
			return nil, &TagError{Name: fmt.Sprintf("%s[%d]", name, i), Want: TagCompound, Got: TypeOf(it)}
		}
		out[i] = cc
	}
	return out, nil
}
