package entity

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Record is a JSON-shaped tree of field values. Leaves are string, bool,
// int, float64 or nil; inner nodes are Record or []any.
type Record map[string]any

// ToRecord flattens a typed entity into a Record using its json tags.
func ToRecord(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", v, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode %T: %w", v, err)
	}

	return normalize(raw).(Record), nil
}

// normalize turns decoded JSON into Record nodes and integral floats into ints.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		rec := make(Record, len(val))
		for k, child := range val {
			rec[k] = normalize(child)
		}
		return rec
	case Record:
		rec := make(Record, len(val))
		for k, child := range val {
			rec[k] = normalize(child)
		}
		return rec
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = normalize(child)
		}
		return out
	case float64:
		if val == float64(int64(val)) && val < 1e15 && val > -1e15 {
			return int(val)
		}
		return val
	default:
		return val
	}
}

func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return cloneValue(r).(Record)
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Record:
		out := make(Record, len(val))
		for k, child := range val {
			out[k] = cloneValue(child)
		}
		return out
	case map[string]any:
		return cloneValue(Record(val))
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = cloneValue(child)
		}
		return out
	default:
		return val
	}
}

// Merge returns a copy of dst with override applied on top. Nested records
// are merged key by key; any other collision is won by override.
func Merge(dst, override Record) Record {
	out := dst.Clone()
	if out == nil {
		out = Record{}
	}
	for key, ov := range override {
		ovRec, ovIsRec := asRecord(ov)
		curRec, curIsRec := asRecord(out[key])
		if ovIsRec && curIsRec {
			out[key] = Merge(curRec, ovRec)
			continue
		}
		out[key] = cloneValue(ov)
	}
	return out
}

func asRecord(v any) (Record, bool) {
	switch val := v.(type) {
	case Record:
		return val, true
	case map[string]any:
		return Record(val), true
	default:
		return nil, false
	}
}

// Lookup follows a dotted path such as "employee.name".
func (r Record) Lookup(path string) (any, bool) {
	var cur any = r
	for _, part := range strings.Split(path, ".") {
		rec, ok := asRecord(cur)
		if !ok {
			return nil, false
		}
		cur, ok = rec[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func (r Record) String(path string) (string, bool) {
	v, ok := r.Lookup(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (r Record) Int(path string) (int, bool) {
	v, ok := r.Lookup(path)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func (r Record) Record(path string) (Record, bool) {
	v, ok := r.Lookup(path)
	if !ok {
		return nil, false
	}
	return asRecord(v)
}

// Keys returns the top level field names in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path builds a nested override that sets a single dotted field, so
// Path("passenger.seat", 4) yields {"passenger": {"seat": 4}}.
func Path(path string, value any) Record {
	parts := strings.Split(path, ".")
	var v any = value
	for i := len(parts) - 1; i >= 0; i-- {
		v = Record{parts[i]: v}
	}
	return v.(Record)
}
