package normalize

import (
	"bytes"
	"encoding/json"
	"sort"
)

// object is a decoded JSON object that remembers the order its keys
// appeared in.
type object struct {
	keys []string
	vals map[string]any
}

func newObject() object {
	return object{vals: map[string]any{}}
}

// asObject accepts decoded objects and plain maps. Plain maps carry no
// order, so their keys are sorted.
func asObject(v any) (object, bool) {
	switch o := v.(type) {
	case object:
		return o, true
	case map[string]any:
		keys := make([]string, 0, len(o))
		for k := range o {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return object{keys: keys, vals: o}, true
	}
	return object{}, false
}

// set keeps the position of the first occurrence and the last value, as
// JSON.parse does for duplicate keys.
func (o *object) set(key string, v any) {
	if _, seen := o.vals[key]; !seen {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

func (o object) get(key string) any {
	return o.vals[key]
}

func (o object) has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

func (o object) valid() bool {
	return o.vals != nil
}

// MarshalJSON writes the keys in their original order.
func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(o.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
