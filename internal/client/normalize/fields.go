package normalize

import (
	"encoding/json"
	"math"
	"strconv"
)

// fields resolves a value from the top-level object first, then from the
// nested one.
type fields struct {
	top    object
	nested object
}

func newFields(top object, nestedKey string) fields {
	nested, _ := asObject(top.get(nestedKey))
	return fields{top: top, nested: nested}
}

func (f fields) lookup(key string) any {
	if v := f.top.get(key); v != nil {
		return v
	}
	return f.nested.get(key)
}

func (f fields) str(key string) string {
	if s, ok := f.top.get(key).(string); ok && s != "" {
		return s
	}
	s, _ := f.nested.get(key).(string)
	return s
}

func (f fields) id() string {
	switch v := f.lookup("id").(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return ""
}

func (f fields) strings(key string) []string {
	out := []string{}
	arr, ok := f.lookup(key).([]any)
	if !ok {
		return out
	}
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// timestamp returns epoch milliseconds for numeric values and the raw text
// for string values.
func (f fields) timestamp(key string) (int64, string) {
	switch v := f.lookup(key).(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, ""
		}
		if fl, err := v.Float64(); err == nil {
			return int64(math.Round(fl)), ""
		}
	case float64:
		return int64(math.Round(v)), ""
	case int64:
		return v, ""
	case int:
		return int64(v), ""
	case string:
		return 0, v
	}
	return 0, ""
}
