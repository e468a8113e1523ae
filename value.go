package phpserde

import (
	"strconv"
	"strings"
)

// Kind identifies the variant held by a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is one decoded PHP value. It is a closed sum over [Null], [Bool],
// [Int], [Float], [String], [*Array] and [*Object]; switch on the concrete
// type (or on [Value.Kind]) to unpack it.
//
// Values are immutable once returned from [Parse]. Containers are handed out
// by pointer, and a back-reference in the input yields the identical instance
// it refers to, so the same *Array or *Object may show up in several places
// of the decoded tree.
type Value interface {
	Kind() Kind

	// String renders the value for debugging and CLI output. The rendering
	// is not the wire format and is not meant to be parsed back.
	String() string

	// sealed limits implementations to the types of this package. The
	// decoder relies on the sum being closed.
	sealed()
}

// Null is the decoded form of PHP's null (the N token).
type Null struct{}

// Bool is a decoded PHP boolean.
type Bool bool

// Int is a decoded PHP integer.
type Int int64

// Float is a decoded PHP float.
type Float float64

// String is a decoded PHP string. PHP strings are byte strings; the decoder
// carries the bytes through unchanged.
type String string

// Array is a decoded PHP array: an insertion-ordered mapping from Value to
// Value. Keys are usually [Int] or [String] but the decoder does not restrict
// the key type.
type Array struct {
	Map
}

// Object is a decoded PHP object: a class name and an insertion-ordered
// attribute mapping.
type Object struct {
	// Name is the declared class name, e.g. "stdClass".
	Name string

	Map
}

func (Null) Kind() Kind    { return KindNull }
func (Bool) Kind() Kind    { return KindBool }
func (Int) Kind() Kind     { return KindInt }
func (Float) Kind() Kind   { return KindFloat }
func (String) Kind() Kind  { return KindString }
func (*Array) Kind() Kind  { return KindArray }
func (*Object) Kind() Kind { return KindObject }

func (Null) sealed()    {}
func (Bool) sealed()    {}
func (Int) sealed()     {}
func (Float) sealed()   {}
func (String) sealed()  {}
func (*Array) sealed()  {}
func (*Object) sealed() {}

func (Null) String() string { return "NULL" }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

func (s String) String() string { return strconv.Quote(string(s)) }

func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	writeEntries(&sb, &a.Map)
	sb.WriteByte('}')
	return sb.String()
}

func (o *Object) String() string {
	var sb strings.Builder
	sb.WriteString(o.Name)
	sb.WriteString(" {")
	writeEntries(&sb, &o.Map)
	sb.WriteByte('}')
	return sb.String()
}

func writeEntries(sb *strings.Builder, m *Map) {
	first := true
	for key, value := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false

		sb.WriteString(key.String())
		sb.WriteString(" => ")
		sb.WriteString(value.String())
	}
}

// Attr looks up an attribute by its string name. It is shorthand for
// Get(String(name)) on the embedded mapping.
func (o *Object) Attr(name string) (Value, bool) {
	return o.Get(String(name))
}

// Index looks up an array element by its integer key. It is shorthand for
// Get(Int(index)) on the embedded mapping.
func (a *Array) Index(index int64) (Value, bool) {
	return a.Get(Int(index))
}
