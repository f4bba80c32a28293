package sanitizer

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
)

// Value is a JSON-shaped structured value. The set of implementations is
// closed: Text, Sequence, Mapping and Scalar.
type Value interface {
	json.Marshaler
	isValue()
}

// Text is an untrusted string leaf.
type Text string

// Sequence is an ordered list of values.
type Sequence []Value

// Mapping is a set of string keys pointing to values.
type Mapping map[string]Value

// Scalar wraps a primitive that passes through sanitization unchanged:
// a number, a boolean, null, or any other non-container value.
type Scalar struct {
	v any
}

// Null is the null scalar. SafeJSONParse returns it on failure.
var Null = Scalar{}

// NewScalar wraps v as a pass-through primitive.
func NewScalar(v any) Scalar {
	return Scalar{v: v}
}

// Any returns the wrapped primitive.
func (s Scalar) Any() any { return s.v }

// IsNull reports whether the scalar holds nil.
func (s Scalar) IsNull() bool { return s.v == nil }

func (Text) isValue()     {}
func (Sequence) isValue() {}
func (Mapping) isValue()  {}
func (Scalar) isValue()   {}

func (t Text) MarshalJSON() ([]byte, error)     { return marshalJSON(ToAny(t)) }
func (s Sequence) MarshalJSON() ([]byte, error) { return marshalJSON(ToAny(s)) }
func (m Mapping) MarshalJSON() ([]byte, error)  { return marshalJSON(ToAny(m)) }
func (s Scalar) MarshalJSON() ([]byte, error)   { return marshalJSON(s.v) }

// FromAny converts untyped data, typically the output of json.Unmarshal,
// into a Value tree. Strings become Text, slices and arrays become Sequence,
// maps with string keys become Mapping; nil slices and maps become Null and
// everything else is wrapped as a Scalar.
func FromAny(x any) Value {
	switch v := x.(type) {
	case nil:
		return Null
	case Value:
		return v
	case string:
		return Text(v)
	case []any:
		if v == nil {
			return Null
		}
		seq := make(Sequence, len(v))
		for i, item := range v {
			seq[i] = FromAny(item)
		}
		return seq
	case map[string]any:
		if v == nil {
			return Null
		}
		m := make(Mapping, len(v))
		for k, item := range v {
			m[k] = FromAny(item)
		}
		return m
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.String:
		return Text(rv.String())
	case reflect.Slice:
		if rv.IsNil() {
			return Null
		}
		// []byte encodes as base64 in JSON, keep it opaque.
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return NewScalar(x)
		}
		fallthrough
	case reflect.Array:
		seq := make(Sequence, rv.Len())
		for i := range seq {
			seq[i] = FromAny(rv.Index(i).Interface())
		}
		return seq
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return NewScalar(x)
		}
		if rv.IsNil() {
			return Null
		}
		m := make(Mapping, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = FromAny(iter.Value().Interface())
		}
		return m
	}

	return NewScalar(x)
}

// ToAny converts a Value tree back to plain Go data: string, []any,
// map[string]any or the scalar's primitive.
func ToAny(v Value) any {
	switch val := v.(type) {
	case Text:
		return string(val)
	case Sequence:
		if val == nil {
			return []any(nil)
		}
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = ToAny(item)
		}
		return out
	case Mapping:
		if val == nil {
			return map[string]any(nil)
		}
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = ToAny(item)
		}
		return out
	case Scalar:
		return val.v
	}
	return nil
}

// marshalJSON encodes without HTML escaping so entities produced by
// EscapeHTML survive as written. Infinities and NaN, which JSON cannot
// represent, are written as null.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(finite(v)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// finite replaces non-finite floats in plain data produced by ToAny with nil.
func finite(v any) any {
	switch val := v.(type) {
	case float64:
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return nil
		}
	case float32:
		if math.IsInf(float64(val), 0) || math.IsNaN(float64(val)) {
			return nil
		}
	case []any:
		if val == nil {
			return val
		}
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = finite(item)
		}
		return out
	case map[string]any:
		if val == nil {
			return val
		}
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = finite(item)
		}
		return out
	}
	return v
}
