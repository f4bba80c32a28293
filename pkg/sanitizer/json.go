package sanitizer

import "github.com/tidwall/gjson"

// SafeJSONParse decodes strict JSON into a Value. Malformed input, including
// the empty string, yields Null instead of an error, which makes a failed
// parse indistinguishable from the literal "null".
//
// Numbers beyond the float64 range decode to ±Inf; MarshalJSON writes them
// back as null.
func SafeJSONParse(s string) Value {
	if !gjson.Valid(s) {
		return Null
	}
	return fromResult(gjson.Parse(s))
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.String:
		return Text(r.Str)
	case gjson.Number:
		return NewScalar(r.Num)
	case gjson.True:
		return NewScalar(true)
	case gjson.False:
		return NewScalar(false)
	case gjson.JSON:
		if r.IsArray() {
			seq := Sequence{}
			r.ForEach(func(_, item gjson.Result) bool {
				seq = append(seq, fromResult(item))
				return true
			})
			return seq
		}
		m := Mapping{}
		// Later duplicates overwrite earlier keys.
		r.ForEach(func(key, item gjson.Result) bool {
			m[key.Str] = fromResult(item)
			return true
		})
		return m
	}
	return Null
}
