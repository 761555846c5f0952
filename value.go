package argparse

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Char is the retrieval tag for single-character coercion. Retrieving with
// any other integer type treats the stored text as a number; Get[Char]
// instead requires the text to be exactly one character and yields it.
//
// Char is a defined type rather than an alias because rune and byte are
// aliases for int32 and uint8, which already carry numeric semantics.
type Char rune

// Value enumerates the types an argument value can be retrieved as. Values
// are stored as the raw input strings, so the same parsed state can be
// reinterpreted as different types without re-parsing.
type Value interface {
	bool | string | Char |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Get retrieves the first value recorded for the named positional or
// optional argument, coerced to type T.
//
// For an absent Flag-kind optional, Get[bool] returns false. For any other
// absent optional, Get fails; use [GetOr] to supply a fallback. Get panics
// if no argument with the given name was declared.
func Get[T Value](p *Parser, name string) (T, error) {
	return getAt[T](p, name, 0, nil)
}

// GetOr is like [Get] but returns def when the user did not supply the
// argument. The default takes precedence over the implicit false of an
// absent Flag-kind optional.
func GetOr[T Value](p *Parser, name string, def T) (T, error) {
	return getAt[T](p, name, 0, &def)
}

// GetAt retrieves the value recorded at index idx for the named optional
// argument, coerced to type T. Indexes follow the order of appearance on the
// command line. Retrieving past the recorded occurrence count fails with an
// out-of-range error naming the index and the argument.
func GetAt[T Value](p *Parser, name string, idx int) (T, error) {
	return getAt[T](p, name, idx, nil)
}

// GetAtOr is like [GetAt] but returns def when the user did not supply the
// argument at all.
func GetAtOr[T Value](p *Parser, name string, idx int, def T) (T, error) {
	return getAt[T](p, name, idx, &def)
}

// GetAll returns every value recorded for the named optional argument,
// coerced to type T, in order of appearance. It returns an empty slice when
// the argument was not supplied.
func GetAll[T Value](p *Parser, name string) ([]T, error) {
	n := p.Count(name)
	values := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := GetAt[T](p, name, i)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func getAt[T Value](p *Parser, name string, idx int, def *T) (T, error) {
	var zero T
	if arg, ok := p.optionals[name]; ok {
		if arg.exists() {
			if idx >= len(arg.values) {
				return zero, libErrorf("index %d is out of range for '%s'", idx, name)
			}
			return coerce[T](p, name, arg.values[idx])
		}
		if def != nil {
			return *def, nil
		}
		if arg.kind == Flag {
			return coerce[T](p, name, "false")
		}
		return zero, libErrorf("no value given for '%s' and no default specified", name)
	}
	if arg, ok := p.positionals[name]; ok {
		if arg.set {
			return coerce[T](p, name, arg.value)
		}
		if def != nil {
			return *def, nil
		}
		return zero, libErrorf("no value given for '%s' and no default specified", name)
	}
	configPanic("no argument by the name %q", name)
	return zero, nil
}

// coerce converts the stored text into the requested target type, keyed by
// the zero value's dynamic type. Each kind has exactly one conversion rule.
func coerce[T Value](p *Parser, name, text string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case bool:
		switch text {
		case "true":
			return any(true).(T), nil
		case "false":
			return any(false).(T), nil
		}
		return zero, p.errorf("'%s' must be either 'true' or 'false'", name)
	case string:
		return any(text).(T), nil
	case Char:
		r, size := utf8.DecodeRuneInString(text)
		if text == "" || size != len(text) {
			return zero, p.errorf("'%s' must be a single character", name)
		}
		return any(Char(r)).(T), nil
	case int:
		n, err := p.parseSigned(name, text, math.MinInt, math.MaxInt)
		return any(int(n)).(T), err
	case int8:
		n, err := p.parseSigned(name, text, math.MinInt8, math.MaxInt8)
		return any(int8(n)).(T), err
	case int16:
		n, err := p.parseSigned(name, text, math.MinInt16, math.MaxInt16)
		return any(int16(n)).(T), err
	case int32:
		n, err := p.parseSigned(name, text, math.MinInt32, math.MaxInt32)
		return any(int32(n)).(T), err
	case int64:
		n, err := p.parseSigned(name, text, math.MinInt64, math.MaxInt64)
		return any(n).(T), err
	case uint:
		n, err := p.parseUnsigned(name, text, math.MaxUint)
		return any(uint(n)).(T), err
	case uint8:
		n, err := p.parseUnsigned(name, text, math.MaxUint8)
		return any(uint8(n)).(T), err
	case uint16:
		n, err := p.parseUnsigned(name, text, math.MaxUint16)
		return any(uint16(n)).(T), err
	case uint32:
		n, err := p.parseUnsigned(name, text, math.MaxUint32)
		return any(uint32(n)).(T), err
	case uint64:
		n, err := p.parseUnsigned(name, text, math.MaxUint64)
		return any(n).(T), err
	case float32:
		n, err := p.parseFloat(name, text, 32)
		return any(float32(n)).(T), err
	case float64:
		n, err := p.parseFloat(name, text, 64)
		return any(n).(T), err
	}
	// Unreachable: the Value constraint admits no other types.
	configPanic("unsupported retrieval type for %q", name)
	return zero, nil
}

func (p *Parser) parseSigned(name, text string, min, max int64) (int64, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, p.errorf("'%s' must be in range [%d,%d]", name, min, max)
		}
		return 0, p.errorf("'%s' must be of integral type", name)
	}
	if n < min || n > max {
		return 0, p.errorf("'%s' must be in range [%d,%d]", name, min, max)
	}
	return n, nil
}

// parseUnsigned rejects any '-' in the text before conversion: a naive
// conversion would report a negative literal as a syntax problem, but the
// user-facing error must be a range problem.
func (p *Parser) parseUnsigned(name, text string, max uint64) (uint64, error) {
	if strings.Contains(text, "-") {
		return 0, p.errorf("'%s' must be in range [0,%d]", name, max)
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, p.errorf("'%s' must be in range [0,%d]", name, max)
		}
		return 0, p.errorf("'%s' must be of integral type", name)
	}
	if n > max {
		return 0, p.errorf("'%s' must be in range [0,%d]", name, max)
	}
	return n, nil
}

func (p *Parser) parseFloat(name, text string, bits int) (float64, error) {
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, p.floatRangeError(name, bits)
		}
		return 0, p.errorf("'%s' must be of integral type", name)
	}
	if bits == 32 && (n < -math.MaxFloat32 || n > math.MaxFloat32) {
		return 0, p.floatRangeError(name, bits)
	}
	return n, nil
}

func (p *Parser) floatRangeError(name string, bits int) error {
	max := math.MaxFloat64
	if bits == 32 {
		max = math.MaxFloat32
	}
	return p.errorf("'%s' must be in range [%g,%g]", name, -max, max)
}
