package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AttrKind enumerates the closed set of value shapes a custom attribute can hold.
type AttrKind uint8

const (
	AttrNone AttrKind = iota
	AttrString
	AttrNumber
	AttrBool
	AttrList
)

// AttrValue is a small tagged value used for form answers, custom user data,
// payment metadata and activity details.
type AttrValue struct {
	Kind AttrKind
	Str  string
	Num  float64
	Bool bool
	List []string
}

// Attributes maps a field id (or free-form key) to its value.
type Attributes map[string]AttrValue

func String(s string) AttrValue  { return AttrValue{Kind: AttrString, Str: s} }
func Number(n float64) AttrValue { return AttrValue{Kind: AttrNumber, Num: n} }
func Bool(b bool) AttrValue      { return AttrValue{Kind: AttrBool, Bool: b} }

// List copies items so the value never aliases caller memory.
func List(items ...string) AttrValue {
	out := make([]string, len(items))
	copy(out, items)
	return AttrValue{Kind: AttrList, List: out}
}

// IsEmpty reports whether the value counts as "not provided" for required checks.
// Strings are trimmed, a false toggle counts as empty, numbers never do.
func (v AttrValue) IsEmpty() bool {
	switch v.Kind {
	case AttrString:
		return strings.TrimSpace(v.Str) == ""
	case AttrBool:
		return !v.Bool
	case AttrList:
		for _, item := range v.List {
			if strings.TrimSpace(item) != "" {
				return false
			}
		}
		return true
	case AttrNumber:
		return false
	default:
		return true
	}
}

// Text renders the value the way search and display code needs it.
func (v AttrValue) Text() string {
	switch v.Kind {
	case AttrString:
		return v.Str
	case AttrNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case AttrBool:
		return strconv.FormatBool(v.Bool)
	case AttrList:
		return strings.Join(v.List, ", ")
	default:
		return ""
	}
}

// Clone returns a deep copy.
func (v AttrValue) Clone() AttrValue {
	if v.List != nil {
		v.List = append([]string(nil), v.List...)
	}
	return v
}

// MarshalJSON encodes the value as the matching native JSON value.
func (v AttrValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case AttrString:
		return json.Marshal(v.Str)
	case AttrNumber:
		return json.Marshal(v.Num)
	case AttrBool:
		return json.Marshal(v.Bool)
	case AttrList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts strings, numbers, booleans, arrays of scalars and null.
func (v *AttrValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = AttrValue{}
		return nil
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// FromAny converts a decoded JSON value into an AttrValue. Objects are rejected.
func FromAny(raw any) (AttrValue, error) {
	switch t := raw.(type) {
	case nil:
		return AttrValue{}, nil
	case AttrValue:
		return t.Clone(), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return AttrValue{}, err
		}
		return Number(n), nil
	case []string:
		return List(t...), nil
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			scalar, err := FromAny(item)
			if err != nil {
				return AttrValue{}, err
			}
			if scalar.Kind == AttrList {
				return AttrValue{}, fmt.Errorf("nested list values are not supported")
			}
			items = append(items, scalar.Text())
		}
		return AttrValue{Kind: AttrList, List: items}, nil
	default:
		return AttrValue{}, fmt.Errorf("unsupported attribute value of type %T", raw)
	}
}

// Clone returns a deep copy of the map; nil stays nil.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v.Clone()
	}
	return out
}
