package phpserde

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Decoder configures decoding. The zero configuration (as returned by
// [NewDecoder]) assumes UTF-8 string lengths and admits every key. Decoders
// are immutable; the With* methods return adjusted copies, so a Decoder can
// be shared freely between goroutines as long as each Parse call gets its
// own input.
type Decoder struct {
	singleByte bool
	keyFilter  *regexp.Regexp
}

// The default Decoder instance used by [Parse].
var dec = NewDecoder()

// Parse decodes a single serialized PHP value using the default Decoder.
func Parse(input string) (Value, error) {
	return dec.Parse(input)
}

// NewDecoder returns a Decoder that interprets string lengths as UTF-8 byte
// counts and applies no key filter.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// WithSingleByteLengths returns a Decoder that charges every character one
// byte when consuming a string's declared length. Use this for payloads
// produced under a single-byte charset such as ISO-8859-1.
func (d *Decoder) WithSingleByteLengths() *Decoder {
	if d.singleByte {
		return d
	}

	return &Decoder{
		singleByte: true,
		keyFilter:  d.keyFilter,
	}
}

// WithKeyFilter returns a Decoder that admits a string key into an array or
// object only if pattern matches the whole key. Non-string keys are always
// admitted. Pairs with rejected keys are still consumed from the input, they
// just do not appear in the decoded container.
func (d *Decoder) WithKeyFilter(pattern *regexp.Regexp) *Decoder {
	// leftmost-first matching may settle on an alternative covering only a
	// prefix of the key; whole-key matching needs explicit anchors
	anchored := regexp.MustCompile(`^(?:` + pattern.String() + `)$`)

	return &Decoder{
		singleByte: d.singleByte,
		keyFilter:  anchored,
	}
}

// Parse decodes a single serialized PHP value from input. It returns the
// decoded [Value], or a [*DecodeError] describing the first structural
// violation. Input after the first complete value is ignored.
func (d *Decoder) Parse(input string) (Value, error) {
	s := &session{dec: d, input: input}
	return s.parseValue(false)
}

func (d *Decoder) acceptKey(key Value) bool {
	if d.keyFilter == nil {
		return true
	}

	str, ok := key.(String)
	if !ok {
		// the filter is a policy on attribute names; non-string keys
		// pass through untouched
		return true
	}

	return d.keyFilter.MatchString(string(str))
}

// session is the state of one Parse call: the input, the scan offset and the
// table of values produced so far. Back-references index into refs; the
// table dies with the session.
type session struct {
	dec   *Decoder
	input string
	pos   int
	refs  []Value
}

// parseValue reads one type tag plus its delimiter and dispatches to the
// matching decoder. key marks values parsed in key position; most primitives
// skip the reference table there.
func (s *session) parseValue(key bool) (Value, error) {
	if s.pos+2 > len(s.input) {
		return nil, errAt(s.pos, ErrUnexpectedEnd, "expected a value")
	}

	tag := s.input[s.pos]
	switch tag {
	case 'i':
		s.pos += 2
		return s.parseInt(key)
	case 'd':
		s.pos += 2
		return s.parseFloat(key)
	case 'b':
		s.pos += 2
		return s.parseBool()
	case 's':
		s.pos += 2
		return s.parseString(key)
	case 'a':
		s.pos += 2
		return s.parseArray()
	case 'O':
		s.pos += 2
		return s.parseObject()
	case 'N':
		s.pos += 2
		return Null{}, nil
	case 'R':
		s.pos += 2
		return s.parseReference()
	default:
		return nil, errAt(s.pos, ErrUnknownType, "unknown type tag %q", tag)
	}
}

// readUntil returns the text from the current offset up to the next delim
// and advances past the delimiter. The returned offset is the position the
// text started at, for error reporting.
func (s *session) readUntil(delim byte) (string, int, error) {
	start := s.pos

	i := strings.IndexByte(s.input[start:], delim)
	if i < 0 {
		return "", start, errAt(start, ErrMissingDelimiter, "expected %q", delim)
	}

	s.pos = start + i + 1
	return s.input[start : start+i], start, nil
}

// readLength reads a length field: digits up to ':', then one more character
// (the opening quote or brace every length field is followed by).
func (s *session) readLength() (int, error) {
	text, start, err := s.readUntil(':')
	if err != nil {
		return 0, err
	}

	n, err := parseDecimal[int](text)
	if err != nil {
		return 0, errLiteral(start, err, "invalid length %q", text)
	}
	if n < 0 {
		return 0, errLiteral(start, nil, "negative length %d", n)
	}

	s.pos++
	if s.pos > len(s.input) {
		return 0, errAt(start, ErrUnexpectedEnd, "input ends inside a length field")
	}

	return n, nil
}

func (s *session) parseInt(key bool) (Value, error) {
	text, start, err := s.readUntil(';')
	if err != nil {
		return nil, err
	}

	n, err := parseDecimal[int64](text)
	if err != nil {
		return nil, errLiteral(start, err, "invalid integer %q", text)
	}

	value := Int(n)
	if !key {
		s.refs = append(s.refs, value)
	}

	return value, nil
}

func (s *session) parseFloat(key bool) (Value, error) {
	text, start, err := s.readUntil(';')
	if err != nil {
		return nil, err
	}

	// ParseFloat also covers the INF, -INF and NAN spellings PHP emits
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, errLiteral(start, err, "invalid float %q", text)
	}

	value := Float(f)
	if !key {
		s.refs = append(s.refs, value)
	}

	return value, nil
}

// parseBool accepts exactly the literals 1 and 0. Unlike the other
// primitives a boolean occupies a reference slot even in key position.
func (s *session) parseBool() (Value, error) {
	text, start, err := s.readUntil(';')
	if err != nil {
		return nil, err
	}

	var value Bool
	switch text {
	case "1":
		value = true
	case "0":
		value = false
	default:
		return nil, errLiteral(start, nil, "invalid boolean %q, want 0 or 1", text)
	}

	s.refs = append(s.refs, value)
	return value, nil
}

// parseString consumes a string whose length field counts encoded bytes, not
// characters. Each character is charged its byte cost in the configured
// model (UTF-8 width, or one in single-byte mode) until the declared count
// is reached; the characters walked that way form the value.
func (s *session) parseString(key bool) (Value, error) {
	byteLen, err := s.readLength()
	if err != nil {
		return nil, err
	}

	start := s.pos
	end := start

	for bytes := 0; bytes < byteLen; {
		if end >= len(s.input) {
			return nil, errAt(end, ErrStringTooLong, "declared string length %d exceeds input", byteLen)
		}

		_, size := utf8.DecodeRuneInString(s.input[end:])
		if s.dec.singleByte {
			bytes++
		} else {
			bytes += size
		}
		end += size
	}

	value := String(s.input[start:end])

	if end+2 > len(s.input) || s.input[end:end+2] != `";` {
		return nil, errAt(end, ErrStringTooShort, "string of declared length %d is not followed by %q", byteLen, `";`)
	}
	s.pos = end + 2

	if !key {
		s.refs = append(s.refs, value)
	}

	return value, nil
}

// parseArray decodes an ordered key/value container. The array joins the
// reference table before its elements are decoded so that nested values can
// refer back to it.
func (s *session) parseArray() (Value, error) {
	count, err := s.readLength()
	if err != nil {
		return nil, err
	}

	array := &Array{Map: newMap()}
	s.refs = append(s.refs, array)

	if err := s.parsePairs(&array.Map, count); err != nil {
		return nil, err
	}

	return array, nil
}

// parseObject decodes a class name and an attribute container. The object is
// placed into the reference table before the name is read, for the same
// self-reference reason as arrays. The name length field is a plain byte
// count; the byte-cost walk of parseString does not apply here.
func (s *session) parseObject() (Value, error) {
	object := &Object{Map: newMap()}
	s.refs = append(s.refs, object)

	nameLen, err := s.readLength()
	if err != nil {
		return nil, err
	}
	if s.pos+nameLen+2 > len(s.input) {
		return nil, errAt(s.pos, ErrUnexpectedEnd, "input ends inside a class name of length %d", nameLen)
	}

	object.Name = s.input[s.pos : s.pos+nameLen]
	s.pos += nameLen + 2 // name, closing quote, colon

	count, err := s.readLength()
	if err != nil {
		return nil, err
	}

	if err := s.parsePairs(&object.Map, count); err != nil {
		return nil, err
	}

	return object, nil
}

// parsePairs decodes count key/value pairs into m and consumes the trailing
// closing brace. Pairs whose key is rejected by the filter are decoded but
// not stored.
func (s *session) parsePairs(m *Map, count int) error {
	for i := 0; i < count; i++ {
		key, err := s.parseValue(true)
		if err != nil {
			return err
		}

		value, err := s.parseValue(false)
		if err != nil {
			return err
		}

		if s.dec.acceptKey(key) {
			m.put(key, value)
		}
	}

	if s.pos >= len(s.input) || s.input[s.pos] != '}' {
		return errAt(s.pos, ErrMissingCloser, "container is not closed by '}'")
	}
	s.pos++

	return nil
}

// parseReference resolves a 1-based back-reference into the table of values
// produced so far. The resolved value is appended to the table again, so a
// reference to a reference keeps extending it.
func (s *session) parseReference() (Value, error) {
	text, start, err := s.readUntil(';')
	if err != nil {
		return nil, err
	}

	index, err := parseDecimal[int](text)
	if err != nil {
		return nil, errLiteral(start, err, "invalid reference index %q", text)
	}

	i := index - 1
	if i < 0 || i >= len(s.refs) {
		return nil, errAt(start, ErrOutOfRangeReference, "reference index %d outside table of %d values", index, len(s.refs))
	}

	value := s.refs[i]
	s.refs = append(s.refs, value)

	return value, nil
}

// parseDecimal parses a signed decimal literal into any signed integer type,
// sized by the width of the target type.
func parseDecimal[T constraints.Signed](text string) (T, error) {
	var zero T
	n, err := strconv.ParseInt(text, 10, int(unsafe.Sizeof(zero))*8)
	return T(n), err
}
