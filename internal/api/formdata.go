package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
)

// FormData assembles a multipart/form-data body using the bracket-notation
// field convention the backend expects: nested objects become `a[b]`,
// indexed rows become `rows[0][col]`, and scalar lists become `ids[]`.
// Field order is deterministic (insertion order; object keys sorted).
type FormData struct {
	pairs []FormPair
	files []formFile
}

// FormPair is one flattened key/value field.
type FormPair struct {
	Key   string
	Value string
}

type formFile struct {
	key      string
	filename string
	r        io.Reader
}

// NewFormData creates an empty form.
func NewFormData() *FormData {
	return &FormData{}
}

// Set appends a single scalar field.
func (f *FormData) Set(key string, value any) *FormData {
	f.pairs = append(f.pairs, FormPair{Key: key, Value: scalar(value)})
	return f
}

// SetObject flattens a nested structure under prefix. Maps become
// `prefix[key]`, slices of objects become `prefix[i][key]`, and slices of
// scalars become `prefix[]` repeated per element. Nil values are skipped.
func (f *FormData) SetObject(prefix string, obj any) *FormData {
	f.pairs = append(f.pairs, Flatten(prefix, obj)...)
	return f
}

// AddArray appends values as repeated `key[]` fields.
func (f *FormData) AddArray(key string, values []string) *FormData {
	for _, v := range values {
		f.pairs = append(f.pairs, FormPair{Key: key + "[]", Value: v})
	}
	return f
}

// AddFile attaches a file part.
func (f *FormData) AddFile(key, filename string, r io.Reader) *FormData {
	f.files = append(f.files, formFile{key: key, filename: filename, r: r})
	return f
}

// Pairs returns the flattened fields accumulated so far.
func (f *FormData) Pairs() []FormPair {
	return f.pairs
}

// HasFiles reports whether any file part is attached.
func (f *FormData) HasFiles() bool {
	return len(f.files) > 0
}

// Encode writes the multipart body and returns it with its content type.
func (f *FormData) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range f.pairs {
		if err := w.WriteField(p.Key, p.Value); err != nil {
			return nil, "", fmt.Errorf("api: form field %s: %w", p.Key, err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.key, file.filename)
		if err != nil {
			return nil, "", fmt.Errorf("api: form file %s: %w", file.key, err)
		}
		if _, err := io.Copy(part, file.r); err != nil {
			return nil, "", fmt.Errorf("api: form file %s: %w", file.key, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("api: close form: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// Flatten converts a nested value into bracket-notation pairs.
func Flatten(prefix string, v any) []FormPair {
	switch val := v.(type) {
	case nil:
		return nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var out []FormPair
		for _, k := range keys {
			out = append(out, Flatten(fmt.Sprintf("%s[%s]", prefix, k), val[k])...)
		}
		return out
	case map[string]string:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var out []FormPair
		for _, k := range keys {
			out = append(out, FormPair{Key: fmt.Sprintf("%s[%s]", prefix, k), Value: val[k]})
		}
		return out
	case []any:
		if allScalar(val) {
			var out []FormPair
			for _, item := range val {
				out = append(out, FormPair{Key: prefix + "[]", Value: scalar(item)})
			}
			return out
		}
		var out []FormPair
		for i, item := range val {
			out = append(out, Flatten(fmt.Sprintf("%s[%d]", prefix, i), item)...)
		}
		return out
	case []string:
		var out []FormPair
		for _, item := range val {
			out = append(out, FormPair{Key: prefix + "[]", Value: item})
		}
		return out
	case []map[string]any:
		var out []FormPair
		for i, item := range val {
			out = append(out, Flatten(fmt.Sprintf("%s[%d]", prefix, i), item)...)
		}
		return out
	default:
		return []FormPair{{Key: prefix, Value: scalar(v)}}
	}
}

func allScalar(items []any) bool {
	for _, item := range items {
		switch item.(type) {
		case map[string]any, map[string]string, []any, []string, []map[string]any:
			return false
		}
	}
	return true
}

func scalar(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "1"
		}
		return "0"
	case float64:
		// JSON numbers decode as float64; render integers without a point.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprint(v)
	}
}
