package sanitizer

// SanitizeInput cleans every Text leaf of v with StripScripts followed by
// EscapeHTML. Sequences keep their length and order, mappings keep their key
// set (keys are not sanitized), scalars are returned unchanged.
//
// Self-referencing trees are not detected and recurse without bound.
func SanitizeInput(v Value) Value {
	switch val := v.(type) {
	case Text:
		return Text(EscapeHTML(StripScripts(string(val))))
	case Sequence:
		if val == nil {
			return val
		}
		out := make(Sequence, len(val))
		for i, item := range val {
			out[i] = SanitizeInput(item)
		}
		return out
	case Mapping:
		if val == nil {
			return val
		}
		out := make(Mapping, len(val))
		for k, item := range val {
			out[k] = SanitizeInput(item)
		}
		return out
	}
	return v
}

// SanitizeAny is SanitizeInput for untyped data such as the result of
// json.Unmarshal into an any.
func SanitizeAny(x any) any {
	return ToAny(SanitizeInput(FromAny(x)))
}
