package reactive

import (
	"reflect"
	"runtime"
	"sync"
	"weak"
)

// Method is a function stored in reactive state. Reading it through an
// Object yields a closure bound to that Object, so the method observes and
// mutates state through the reactive layer.
type Method func(self *Object, args ...any) any

// Wrap returns the reactive view of initial. Mappings become *Object,
// sequences become *Array, anything else (including nil) is returned
// unchanged. onChange may be nil.
//
// Nested maps and slices of any element type are normalized once to
// map[string]any and *[]any, in place for map[string]any and []any values.
func Wrap(initial any, onChange func()) any {
	r := newTree(onChange)
	return r.wrap(normalize(initial))
}

// MakeReactive is an alias for Wrap.
func MakeReactive(initial any, onChange func()) any {
	return Wrap(initial, onChange)
}

// NewObject wraps a mapping. A nil mapping is replaced with an empty one.
func NewObject(initial map[string]any, onChange func()) *Object {
	if initial == nil {
		initial = map[string]any{}
	}
	return Wrap(initial, onChange).(*Object)
}

// NewArray wraps a sequence. A nil sequence is treated as empty.
func NewArray(initial []any, onChange func()) *Array {
	if initial == nil {
		initial = []any{}
	}
	return Wrap(initial, onChange).(*Array)
}

// tree is the state shared by every view of one wrapped root: the notify
// callback and the wrapper cache.
//
// The cache maps the address of a raw container to a weak pointer to its
// wrapper. A wrapper keeps its container alive, so while an entry resolves,
// the address cannot have been reused. Entries are dropped by a cleanup
// once the wrapper is collected.
type tree struct {
	onChange func()

	mu      sync.Mutex // cleanups run on another goroutine
	objects map[uintptr]weak.Pointer[Object]
	arrays  map[uintptr]weak.Pointer[Array]
}

func newTree(onChange func()) *tree {
	return &tree{
		onChange: onChange,
		objects:  make(map[uintptr]weak.Pointer[Object]),
		arrays:   make(map[uintptr]weak.Pointer[Array]),
	}
}

func (t *tree) notify() {
	if t.onChange != nil {
		t.onChange()
	}
}

// wrap returns the view for a normalized value.
func (t *tree) wrap(v any) any {
	switch c := v.(type) {
	case map[string]any:
		return t.object(c)
	case *[]any:
		return t.array(c)
	default:
		return v
	}
}

func (t *tree) object(m map[string]any) *Object {
	key := mapID(m)

	t.mu.Lock()
	defer t.mu.Unlock()
	if wp, ok := t.objects[key]; ok {
		if o := wp.Value(); o != nil {
			return o
		}
	}
	o := &Object{raw: m, tree: t}
	t.objects[key] = weak.Make(o)
	runtime.AddCleanup(o, t.forgetObject, key)
	return o
}

func (t *tree) array(s *[]any) *Array {
	key := uintptr(reflect.ValueOf(s).UnsafePointer())

	t.mu.Lock()
	defer t.mu.Unlock()
	if wp, ok := t.arrays[key]; ok {
		if a := wp.Value(); a != nil {
			return a
		}
	}
	a := &Array{raw: s, tree: t}
	t.arrays[key] = weak.Make(a)
	runtime.AddCleanup(a, t.forgetArray, key)
	return a
}

// forgetObject drops a cache entry whose wrapper was collected. A newer
// wrapper for the same address may already be in place; it is kept.
func (t *tree) forgetObject(key uintptr) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if wp, ok := t.objects[key]; ok && wp.Value() == nil {
		delete(t.objects, key)
	}
}

func (t *tree) forgetArray(key uintptr) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if wp, ok := t.arrays[key]; ok && wp.Value() == nil {
		delete(t.arrays, key)
	}
}

func mapID(m map[string]any) uintptr {
	return reflect.ValueOf(m).Pointer()
}

// cached returns the number of live cache entries.
func (t *tree) cached() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, wp := range t.objects {
		if wp.Value() != nil {
			n++
		}
	}
	for _, wp := range t.arrays {
		if wp.Value() != nil {
			n++
		}
	}
	return n
}

// normalize converts v into the raw representation held by a tree: nested
// mappings become map[string]any and sequences *[]any. Wrappers are
// unwrapped to their raw container.
func normalize(v any) any {
	switch c := v.(type) {
	case nil:
		return nil
	case *Object:
		return c.raw
	case *Array:
		return c.raw
	case Method, func(*Object, ...any) any:
		return v
	case map[string]any:
		if c == nil {
			return map[string]any{}
		}
		for k, e := range c {
			c[k] = normalize(e)
		}
		return c
	case []any:
		for i, e := range c {
			c[i] = normalize(e)
		}
		return &c
	case *[]any:
		if c == nil {
			s := []any{}
			return &s
		}
		for i, e := range *c {
			(*c)[i] = normalize(e)
		}
		return c
	case string, bool, int, int64, float64, []byte:
		return v
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = normalize(iter.Value().Interface())
		}
		return m
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			s := []any{}
			return &s
		}
		s := make([]any, rv.Len())
		for i := range s {
			s[i] = normalize(rv.Index(i).Interface())
		}
		return &s
	}
	return v
}

// raw returns the raw container behind a wrapper, or v itself.
func raw(v any) any {
	switch c := v.(type) {
	case *Object:
		return c.raw
	case *Array:
		return c.raw
	}
	return v
}
