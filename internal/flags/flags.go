// Package flags translates structured option values into command-line
// argument vectors for the external tools flotilla drives.
//
// Option values form a closed set of kinds (Bool, Int, Float, String,
// List, Dict), each with exactly one encoding rule. Options are held as an
// ordered slice rather than a map so the emitted argument vector always
// mirrors the order the options were supplied.
package flags

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidValue indicates an option value that cannot be encoded.
// Encoding fails before any token is emitted, so a subprocess is never
// spawned with a partially encoded argument vector.
var ErrInvalidValue = errors.New("invalid option value")

// Value is one encodable option value. The set of implementations is
// closed: Bool, Int, Float, String, List, and Dict.
type Value interface {
	isValue()
}

// Scalar is a Value that renders as a single token: Int, Float, or String.
// Scalars are the only values allowed inside a List.
type Scalar interface {
	Value

	// Token returns the value's bare token representation, without any
	// whitespace quoting.
	Token() string
}

// Bool encodes as a bare flag when true and as nothing when false.
type Bool bool

// Int encodes as a flag followed by its decimal representation.
type Int int64

// Float encodes as a flag followed by its decimal representation.
type Float float64

// String encodes as a flag followed by the value, double-quoted when the
// value contains whitespace.
type String string

// List encodes as a flag followed by a single comma-joined token.
//
// Elements are not quoted or escaped, even when they contain commas or
// whitespace. This matches the behavior of the scalar tools' own CLI
// conventions for comma lists and is a known limitation.
type List []Scalar

// Entry is one key/value pair inside a Dict.
type Entry struct {
	Key   string
	Value Value
}

// Dict is a one-level-deep ordered mapping, rendered as one repeated
// flag/`key=value` pair per entry. Keys and string values must be free of
// whitespace, and values must not themselves be Dicts.
type Dict []Entry

func (Bool) isValue()   {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (String) isValue() {}
func (List) isValue()   {}
func (Dict) isValue()   {}

// Token implements Scalar.
func (v Int) Token() string { return strconv.FormatInt(int64(v), 10) }

// Token implements Scalar.
func (v Float) Token() string { return strconv.FormatFloat(float64(v), 'f', -1, 64) }

// Token implements Scalar.
func (v String) Token() string { return string(v) }

// Option is a single named option.
type Option struct {
	Name  string
	Value Value
}

// Options is an ordered list of options. Encoding preserves this order.
type Options []Option

// Opt constructs a single Option. It exists so call sites can build an
// Options literal without naming the struct fields.
func Opt(name string, v Value) Option {
	return Option{Name: name, Value: v}
}

// Encode converts opts into an ordered argument token sequence.
//
// Each option name is converted from camelCase to a lower-case hyphenated
// flag (`testOption` becomes `--test-option`), with prefix inserted after
// the leading dashes. Encoding is pure and deterministic: the same options
// in the same order always produce the identical token sequence.
func Encode(opts Options, prefix string) ([]string, error) {
	var args []string
	for _, o := range opts {
		flag := "--" + prefix + hyphenate(o.Name)

		switch v := o.Value.(type) {
		case nil:
			// Absent value, nothing to emit.
		case Bool:
			if v {
				args = append(args, flag)
			}
		case Int:
			args = append(args, flag, v.Token())
		case Float:
			args = append(args, flag, v.Token())
		case String:
			args = append(args, flag, quoteIfSpace(string(v)))
		case List:
			args = append(args, flag, joinList(v))
		case Dict:
			dictArgs, err := encodeDict(flag, o.Name, v)
			if err != nil {
				return nil, err
			}
			args = append(args, dictArgs...)
		default:
			return nil, fmt.Errorf("%w: option %q has unsupported kind %T", ErrInvalidValue, o.Name, o.Value)
		}
	}
	return args, nil
}

// encodeDict renders one flag/`key=value` pair per entry, in entry order.
// All validation happens before any token is returned.
func encodeDict(flag, optName string, d Dict) ([]string, error) {
	args := make([]string, 0, 2*len(d))
	for _, e := range d {
		if containsSpace(e.Key) {
			return nil, fmt.Errorf("%w: option %q key %q contains whitespace", ErrInvalidValue, optName, e.Key)
		}

		var rendered string
		switch v := e.Value.(type) {
		case Bool:
			rendered = strconv.FormatBool(bool(v))
		case Int:
			rendered = v.Token()
		case Float:
			rendered = v.Token()
		case String:
			if containsSpace(string(v)) {
				return nil, fmt.Errorf("%w: option %q value for key %q contains whitespace", ErrInvalidValue, optName, e.Key)
			}
			rendered = v.Token()
		case List:
			for _, el := range v {
				if s, ok := el.(String); ok && containsSpace(string(s)) {
					return nil, fmt.Errorf("%w: option %q list element for key %q contains whitespace", ErrInvalidValue, optName, e.Key)
				}
			}
			rendered = joinList(v)
		case Dict:
			return nil, fmt.Errorf("%w: option %q key %q nests a mapping inside a mapping", ErrInvalidValue, optName, e.Key)
		default:
			return nil, fmt.Errorf("%w: option %q key %q has unsupported kind %T", ErrInvalidValue, optName, e.Key, e.Value)
		}

		args = append(args, flag, e.Key+"="+rendered)
	}
	return args, nil
}

// hyphenate converts a camelCase identifier to its lower-case hyphenated
// flag form: a hyphen is inserted before each upper-case letter, then the
// whole name is lower-cased.
func hyphenate(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 2)
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// joinList joins list elements with commas into a single token.
func joinList(l List) string {
	parts := make([]string, len(l))
	for i, el := range l {
		parts[i] = el.Token()
	}
	return strings.Join(parts, ",")
}

// quoteIfSpace wraps s in double quotes when it contains whitespace, so a
// value like `a b` survives as one argument to the external tool.
func quoteIfSpace(s string) string {
	if containsSpace(s) {
		return `"` + s + `"`
	}
	return s
}

func containsSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
