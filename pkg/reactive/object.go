package reactive

import (
	"fmt"
	"sort"
	"strconv"
)

// Object is the reactive view of a mapping.
type Object struct {
	raw  map[string]any
	tree *tree
}

// Get returns the value stored under key. Containers come back wrapped and
// methods come back bound to o; anything else is returned as stored.
func (o *Object) Get(key string) any {
	switch v := o.raw[key].(type) {
	case Method:
		return o.bind(v)
	case func(*Object, ...any) any:
		return o.bind(v)
	default:
		return o.tree.wrap(v)
	}
}

func (o *Object) bind(m Method) func(args ...any) any {
	return func(args ...any) any {
		return m(o, args...)
	}
}

// Call invokes the method stored under key with o as its receiver. It
// returns an error when key does not hold a method.
func (o *Object) Call(key string, args ...any) (any, error) {
	fn, ok := o.Get(key).(func(args ...any) any)
	if !ok {
		return nil, fmt.Errorf("reactive: %q is not a method", key)
	}
	return fn(args...), nil
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.raw[key]
	return ok
}

// Keys returns the keys in sorted order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.raw))
	for k := range o.raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.raw)
}

// Set stores v under key and notifies.
func (o *Object) Set(key string, v any) {
	o.raw[key] = normalize(v)
	o.tree.notify()
}

// Delete removes key and notifies, whether or not key was present.
func (o *Object) Delete(key string) {
	delete(o.raw, key)
	o.tree.notify()
}

// Assign stores every entry of values, notifying once per entry.
func (o *Object) Assign(values map[string]any) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		o.Set(k, values[k])
	}
}

// String returns the value under key as a string. Numbers and booleans are
// formatted; nil and containers yield "".
func (o *Object) String(key string) string {
	return toString(o.raw[key])
}

// Int returns the value under key as an int, or 0.
func (o *Object) Int(key string) int {
	switch n := o.raw[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case int32:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, _ := strconv.Atoi(n)
		return i
	}
	return 0
}

// Bool returns the value under key as a bool, or false.
func (o *Object) Bool(key string) bool {
	b, _ := o.raw[key].(bool)
	return b
}

// Object returns the nested object under key, or nil.
func (o *Object) Object(key string) *Object {
	m, ok := o.raw[key].(map[string]any)
	if !ok {
		return nil
	}
	return o.tree.object(m)
}

// Array returns the nested array under key, or nil.
func (o *Object) Array(key string) *Array {
	s, ok := o.raw[key].(*[]any)
	if !ok || s == nil {
		return nil
	}
	return o.tree.array(s)
}

// Snapshot returns a deep plain copy: map[string]any and []any containers,
// primitives as stored. Methods are left out.
func (o *Object) Snapshot() map[string]any {
	return snapshotMap(o.raw)
}

func snapshotMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch v.(type) {
		case Method, func(*Object, ...any) any:
			continue
		}
		out[k] = snapshot(v)
	}
	return out
}

func snapshotSlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = snapshot(v)
	}
	return out
}

func snapshot(v any) any {
	switch c := v.(type) {
	case map[string]any:
		return snapshotMap(c)
	case *[]any:
		return snapshotSlice(*c)
	case Method, func(*Object, ...any) any:
		return nil
	}
	return v
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case map[string]any, *[]any:
		return ""
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}
