package ai

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject returns the span from the first '{' to the last '}' in raw.
func ExtractJSONObject(raw string) (string, bool) {
	return extractSpan(raw, "{", "}")
}

// ExtractJSONArray returns the span from the first '[' to the last ']' in raw.
func ExtractJSONArray(raw string) (string, bool) {
	return extractSpan(raw, "[", "]")
}

func extractSpan(raw, open, close string) (string, bool) {
	start := strings.Index(raw, open)
	end := strings.LastIndex(raw, close)
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// UnescapeHTMLEntities undoes the entity escaping some models apply to their
// replies. Entities are replaced in a fixed order, so "&amp;lt;" becomes "<".
func UnescapeHTMLEntities(s string) string {
	for _, pair := range [][2]string{
		{"&apos;", "'"},
		{"&quot;", `"`},
		{"&amp;", "&"},
		{"&lt;", "<"},
		{"&gt;", ">"},
	} {
		s = strings.ReplaceAll(s, pair[0], pair[1])
	}
	return s
}

// ParseWithFallback extracts a JSON fragment from raw, decodes it into T and
// validates it. Any failure along the way yields fallback. A nil validate
// accepts every decoded value.
func ParseWithFallback[T any](raw string, extract func(string) (string, bool), validate func(T) bool, fallback T) T {
	v, ok := tryParse(raw, extract, validate)
	if !ok {
		return fallback
	}
	return v
}

// tryParse reports whether the value survived extraction, decoding and validation.
func tryParse[T any](raw string, extract func(string) (string, bool), validate func(T) bool) (T, bool) {
	var zero T
	fragment := raw
	if extract != nil {
		var ok bool
		if fragment, ok = extract(raw); !ok {
			return zero, false
		}
	}
	var v T
	if err := json.Unmarshal([]byte(fragment), &v); err != nil {
		return zero, false
	}
	if validate != nil && !validate(v) {
		return zero, false
	}
	return v, true
}
