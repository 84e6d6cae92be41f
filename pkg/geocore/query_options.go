package geocore

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// QueryOptions is an ordered mapping from option name to a scalar or a
// slice of scalars. Setting a name that is already present replaces its
// value and keeps its original position.
type QueryOptions struct {
	keys   []string
	values map[string]interface{}
}

// NewQueryOptions creates an empty QueryOptions.
func NewQueryOptions() *QueryOptions {
	return &QueryOptions{
		values: make(map[string]interface{}),
	}
}

// Set sets an option value.
func (o *QueryOptions) Set(name string, value interface{}) *QueryOptions {
	if o.values == nil {
		o.values = make(map[string]interface{})
	}

	if _, ok := o.values[name]; !ok {
		o.keys = append(o.keys, name)
	}

	o.values[name] = value

	return o
}

// Get returns the value stored under name.
func (o *QueryOptions) Get(name string) (interface{}, bool) {
	if o == nil {
		return nil, false
	}

	value, ok := o.values[name]

	return value, ok
}

// Has reports whether name is present.
func (o *QueryOptions) Has(name string) bool {
	_, ok := o.Get(name)

	return ok
}

// Keys returns the option names in insertion order.
func (o *QueryOptions) Keys() []string {
	if o == nil {
		return nil
	}

	keys := make([]string, len(o.keys))
	copy(keys, o.keys)

	return keys
}

// Len returns the number of options.
func (o *QueryOptions) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Merge copies other's entries into o, in other's order.
func (o *QueryOptions) Merge(other *QueryOptions) *QueryOptions {
	if other == nil {
		return o
	}

	for _, name := range other.keys {
		o.Set(name, other.values[name])
	}

	return o
}

// Encode serializes the options as a query string, see BuildQueryString.
func (o *QueryOptions) Encode() string {
	return BuildQueryString(o)
}

// MergeOptions returns a new mapping holding first's entries followed by
// second's. Entries of second win on conflicting names.
func MergeOptions(first, second *QueryOptions) *QueryOptions {
	return NewQueryOptions().Merge(first).Merge(second)
}

// BuildQueryString serializes options into "?name=value&..." in insertion
// order. Function and nil values are skipped; slice values are joined with
// a comma and encoded as a single token. Nil or empty input yields "".
func BuildQueryString(options *QueryOptions) string {
	if options.Len() == 0 {
		return ""
	}

	var builder strings.Builder

	for _, name := range options.keys {
		value, ok := formatOption(options.values[name])
		if !ok {
			continue
		}

		if builder.Len() > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(name)
		builder.WriteByte('=')
		builder.WriteString(encodeURIComponent(value))
	}

	if builder.Len() == 0 {
		return ""
	}

	return "?" + builder.String()
}

func formatOption(value interface{}) (string, bool) {
	if value == nil {
		return "", false
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Func:
		return "", false
	case reflect.Slice, reflect.Array:
		if b, ok := value.([]byte); ok {
			return string(b), true
		}

		parts := make([]string, 0, rv.Len())
		for i := range rv.Len() {
			parts = append(parts, formatScalar(rv.Index(i).Interface()))
		}

		return strings.Join(parts, ","), true
	default:
		return formatScalar(value), true
	}
}

func formatScalar(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

const hexDigits = "0123456789ABCDEF"

// EncodeComponent percent-encodes s for use as one path segment or query
// value.
func EncodeComponent(s string) string {
	return encodeURIComponent(s)
}

// encodeURIComponent percent-encodes everything except the unreserved
// characters A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func encodeURIComponent(s string) string {
	var builder strings.Builder

	builder.Grow(len(s))

	for i := range len(s) {
		c := s[i]
		if isUnreserved(c) {
			builder.WriteByte(c)

			continue
		}

		builder.WriteByte('%')
		builder.WriteByte(hexDigits[c>>4])
		builder.WriteByte(hexDigits[c&0x0F])
	}

	return builder.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}

	return false
}
