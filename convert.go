// FILE: lixenwraith/ini/convert.go
package ini

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Char is a single-character value. It is distinct from int32 so that
// runes and 32-bit integers convert differently.
type Char rune

// Value lists the types with a built-in text conversion.
type Value interface {
	string | bool | Char |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Codec converts a caller-defined type to and from its stored text.
type Codec[T any] interface {
	Format(T) string
	Parse(string) (T, error)
}

// CodecFuncs adapts a pair of functions to the Codec interface.
type CodecFuncs[T any] struct {
	FormatFunc func(T) string
	ParseFunc  func(string) (T, error)
}

func (c CodecFuncs[T]) Format(v T) string {
	return c.FormatFunc(v)
}

func (c CodecFuncs[T]) Parse(s string) (T, error) {
	return c.ParseFunc(s)
}

// valueCodec is the Codec backed by Format and Parse.
type valueCodec[T Value] struct{}

func (valueCodec[T]) Format(v T) string {
	return Format(v)
}

func (valueCodec[T]) Parse(s string) (T, error) {
	return Parse[T](s)
}

// Format returns the canonical text of v: integers in base 10, floats in the
// shortest form that parses back to the same value, booleans as "1" or "0",
// and a Char as its UTF-8 encoding.
func Format[T Value](v T) string {
	switch x := any(v).(type) {
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return "0"
	case Char:
		return string(rune(x))
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	panic(fmt.Sprintf("ini: no text conversion for %T", v))
}

// Parse converts stored text into T.
// Strings are returned verbatim. A bool is true only for exactly "1".
// A Char is the first character, or ' ' for empty text. Numbers use the Go
// literal grammar in base 10 with no surrounding whitespace; malformed or
// out-of-range text returns the zero value and an error wrapping ErrParse.
func Parse[T Value](s string) (T, error) {
	var out T
	var err error

	switch p := any(&out).(type) {
	case *string:
		*p = s
	case *bool:
		*p = s == "1"
	case *Char:
		*p = firstChar(s)
	case *int:
		var n int64
		n, err = strconv.ParseInt(s, 10, strconv.IntSize)
		*p = int(n)
	case *int8:
		var n int64
		n, err = strconv.ParseInt(s, 10, 8)
		*p = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(s, 10, 16)
		*p = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(s, 10, strconv.IntSize)
		*p = uint(n)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 8)
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(s, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	}

	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: cannot convert %q to %T: %w", ErrParse, s, zero, err)
	}
	return out, nil
}

// zeroValue is what Read returns for an absent key.
func zeroValue[T any]() T {
	var zero T
	if c, ok := any(&zero).(*Char); ok {
		*c = ' '
	}
	return zero
}

func firstChar(s string) Char {
	if s == "" {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Char(r)
}
