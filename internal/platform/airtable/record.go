package airtable

import "math"

// Record is one row returned by the Airtable REST API. Fields is an opaque
// bag; nothing about key presence or value types is guaranteed.
type Record struct {
	ID          string `json:"id"`
	CreatedTime string `json:"createdTime"`
	Fields      Fields `json:"fields"`
}

// Fields wraps the untyped field bag with total accessors. Every accessor
// tolerates missing keys and wrong types; none of them panic.
type Fields map[string]any

// Str returns the string value for key, if present and a string.
func (f Fields) Str(key string) (string, bool) {
	v, ok := f[key].(string)
	return v, ok
}

// FirstStr walks a fallback chain of candidate keys and returns the first
// non-empty string found, or "".
func (f Fields) FirstStr(keys ...string) string {
	for _, key := range keys {
		if v, ok := f.Str(key); ok && v != "" {
			return v
		}
	}
	return ""
}

// StrOr is FirstStr with a literal default.
func (f Fields) StrOr(def string, keys ...string) string {
	if v := f.FirstStr(keys...); v != "" {
		return v
	}
	return def
}

// Num returns the numeric value for key. JSON numbers always decode to
// float64 inside an any-typed bag.
func (f Fields) Num(key string) (float64, bool) {
	v, ok := f[key].(float64)
	return v, ok
}

// IntOr walks candidate keys and returns the first numeric value as an
// int, or def.
func (f Fields) IntOr(def int, keys ...string) int {
	for _, key := range keys {
		if v, ok := f.Num(key); ok {
			return int(v)
		}
	}
	return def
}

// Bool returns the checkbox value for key; absent means false.
func (f Fields) Bool(key string) bool {
	v, _ := f[key].(bool)
	return v
}

// Strs returns a multi-select value as a string slice. A scalar string is
// treated as a one-element list.
func (f Fields) Strs(key string) []string {
	switch v := f[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// Attachment is one element of an Airtable attachment field.
type Attachment struct {
	ID       string
	URL      string
	Filename string
	Type     string
	Size     int64
}

// SizeMB converts the byte size to megabytes rounded to two decimals.
func (a Attachment) SizeMB() float64 {
	if a.Size <= 0 {
		return 0
	}
	return math.Round(float64(a.Size)/1048576*100) / 100
}

// Attachments decodes an attachment field. The bag holds attachments as
// []any of map[string]any after generic JSON decoding.
func (f Fields) Attachments(key string) []Attachment {
	raw, ok := f[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Attachment, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		a := Attachment{}
		a.ID, _ = m["id"].(string)
		a.URL, _ = m["url"].(string)
		a.Filename, _ = m["filename"].(string)
		a.Type, _ = m["type"].(string)
		if size, ok := m["size"].(float64); ok {
			a.Size = int64(size)
		}
		out = append(out, a)
	}
	return out
}

// FirstAttachment returns the first attachment under any of the candidate
// keys, or false when every key is empty or absent.
func (f Fields) FirstAttachment(keys ...string) (Attachment, bool) {
	for _, key := range keys {
		if atts := f.Attachments(key); len(atts) > 0 {
			return atts[0], true
		}
	}
	return Attachment{}, false
}
