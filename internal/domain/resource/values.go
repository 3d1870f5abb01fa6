package resource

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"reflect"
)

// NewDecoder returns a JSON decoder that keeps numbers as json.Number, so
// integral identifiers beyond 2^53 reach NormalizeID exactly.
func NewDecoder(r io.Reader) *json.Decoder {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec
}

// DecodeJSON is json.Unmarshal with numbers kept as json.Number. Like
// json.Unmarshal it rejects data after the first value.
func DecodeJSON(data []byte, v any) error {
	dec := NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("invalid character after top-level value")
	}
	return nil
}

// Truthy reports whether v counts as present. nil, false, zero numbers, NaN
// and the empty string are falsy, as are nil pointers, maps and slices.
// Empty but non-nil maps and slices are truthy.
func Truthy(v any) bool {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

// maxExactInt is the bound below which every integral float64 converts to
// int64 without loss.
const maxExactInt = 1 << 53

// NormalizeID converts an identifier to its canonical form so that 1,
// int64(1), float64(1) and json.Number("1") address the same entity.
// Falsy values and values that are neither strings nor numbers are not
// usable identifiers and report false.
func NormalizeID(v any) (ID, bool) {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, i != 0
		}
		f, err := n.Float64()
		if err != nil {
			return nil, false
		}
		v = f
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		return s, s != ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		return i, i != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return float64(u), true
		}
		return int64(u), u != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == 0 || math.IsNaN(f) {
			return nil, false
		}
		if f == math.Trunc(f) && math.Abs(f) < maxExactInt {
			return int64(f), true
		}
		return f, true
	default:
		return nil, false
	}
}

// isPrimitive reports whether v is a string or a number.
func isPrimitive(v any) bool {
	if _, ok := v.(json.Number); ok {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// plain converts v to the generic JSON shape (map[string]any, []any and
// scalars). Structs, typed maps and pointers go through a JSON round trip;
// values that cannot be encoded are returned unchanged.
func plain(v any) any {
	switch x := v.(type) {
	case nil, map[string]any, []any, string, bool, float64, json.Number:
		return v
	case []map[string]any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = e
		}
		return out
	}
	if isPrimitive(v) {
		return v
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := DecodeJSON(raw, &out); err != nil {
		return v
	}
	return out
}

// asList coerces data to a sequence: slices are returned element-wise and
// any other value is wrapped in a one-element slice.
func asList(data any) []any {
	switch x := plain(data).(type) {
	case []any:
		return x
	default:
		return []any{x}
	}
}

// asFields returns v as a field map, or nil when v is not an object.
func asFields(v any) Fields {
	if obj, ok := plain(v).(map[string]any); ok {
		return obj
	}
	return nil
}
