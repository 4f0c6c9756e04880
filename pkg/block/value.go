package block

import (
	"fmt"
	"sort"
	"strconv"
)

// Value is the recursive property tree: a string leaf, an ordered sequence,
// or a keyed object.
type Value interface {
	isValue()
}

// Str is a string leaf. Placeholder tokens only ever live here.
type Str string

// Seq is an ordered list of values.
type Seq []Value

// Obj is a keyed set of values.
type Obj map[string]Value

func (Str) isValue() {}
func (Seq) isValue() {}
func (Obj) isValue() {}

// Map returns a deep copy of v with fn applied to every string leaf. Sequences
// map elementwise and objects recurse, so the input is never shared with the
// result.
func Map(v Value, fn func(string) string) Value {
	switch node := v.(type) {
	case Str:
		if fn == nil {
			return node
		}
		return Str(fn(string(node)))
	case Seq:
		if node == nil {
			return Seq(nil)
		}
		out := make(Seq, len(node))
		for i, item := range node {
			out[i] = Map(item, fn)
		}
		return out
	case Obj:
		return mapObj(node, fn)
	default:
		return nil
	}
}

func mapObj(o Obj, fn func(string) string) Obj {
	if o == nil {
		return nil
	}
	out := make(Obj, len(o))
	for key, item := range o {
		out[key] = Map(item, fn)
	}
	return out
}

// Clone deep-copies v.
func Clone(v Value) Value {
	return Map(v, nil)
}

// CloneObj deep-copies an object.
func CloneObj(o Obj) Obj {
	return mapObj(o, nil)
}

// Strings collects every string leaf in depth-first order. Object keys are
// visited sorted so the result is stable.
func Strings(v Value) []string {
	var out []string
	collect(v, &out)
	return out
}

func collect(v Value, out *[]string) {
	switch node := v.(type) {
	case Str:
		*out = append(*out, string(node))
	case Seq:
		for _, item := range node {
			collect(item, out)
		}
	case Obj:
		keys := make([]string, 0, len(node))
		for key := range node {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			collect(node[key], out)
		}
	}
}

// String returns the string stored at key, or "" when absent or not a leaf.
func (o Obj) String(key string) string {
	if s, ok := o[key].(Str); ok {
		return string(s)
	}
	return ""
}

// Strings returns the string leaves of the sequence stored at key. A single
// string is treated as a one-element list.
func (o Obj) Strings(key string) []string {
	switch node := o[key].(type) {
	case Str:
		return []string{string(node)}
	case Seq:
		out := make([]string, 0, len(node))
		for _, item := range node {
			if s, ok := item.(Str); ok {
				out = append(out, string(s))
			}
		}
		return out
	default:
		return nil
	}
}

// Objs returns the object elements of the sequence stored at key.
func (o Obj) Objs(key string) []Obj {
	seq, ok := o[key].(Seq)
	if !ok {
		return nil
	}
	out := make([]Obj, 0, len(seq))
	for _, item := range seq {
		if obj, ok := item.(Obj); ok {
			out = append(out, obj)
		}
	}
	return out
}

// FromAny converts decoded JSON/YAML data into a Value. Non-string scalars are
// stored in their textual form; nil becomes an empty string.
func FromAny(raw any) (Value, error) {
	switch node := raw.(type) {
	case nil:
		return Str(""), nil
	case string:
		return Str(node), nil
	case bool:
		return Str(strconv.FormatBool(node)), nil
	case int:
		return Str(strconv.Itoa(node)), nil
	case int64:
		return Str(strconv.FormatInt(node, 10)), nil
	case uint64:
		return Str(strconv.FormatUint(node, 10)), nil
	case float64:
		return Str(strconv.FormatFloat(node, 'f', -1, 64)), nil
	case []any:
		out := make(Seq, 0, len(node))
		for idx, item := range node {
			converted, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", idx, err)
			}
			out = append(out, converted)
		}
		return out, nil
	case map[string]any:
		out := make(Obj, len(node))
		for key, item := range node {
			converted, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			out[key] = converted
		}
		return out, nil
	case map[any]any:
		out := make(Obj, len(node))
		for key, item := range node {
			name := fmt.Sprint(key)
			converted, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", name, err)
			}
			out[name] = converted
		}
		return out, nil
	default:
		return nil, fmt.Errorf("block: unsupported value type %T", raw)
	}
}

// ToAny converts a Value into plain maps, slices and strings for encoding.
func ToAny(v Value) any {
	switch node := v.(type) {
	case Str:
		return string(node)
	case Seq:
		out := make([]any, len(node))
		for i, item := range node {
			out[i] = ToAny(item)
		}
		return out
	case Obj:
		out := make(map[string]any, len(node))
		for key, item := range node {
			out[key] = ToAny(item)
		}
		return out
	default:
		return nil
	}
}

func strs(values []string) Seq {
	out := make(Seq, len(values))
	for i, v := range values {
		out[i] = Str(v)
	}
	return out
}
