package reactive

import (
	"reflect"
	"sort"
)

// Array is the reactive view of an ordered sequence. Mutating operations
// work on the backing sequence in place and notify exactly once.
type Array struct {
	raw  *[]any
	tree *tree
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(*a.raw)
}

// At returns the element at i, wrapped if it is a container. It returns nil
// when i is out of range.
func (a *Array) At(i int) any {
	s := *a.raw
	if i < 0 || i >= len(s) {
		return nil
	}
	return a.tree.wrap(s[i])
}

// ObjectAt returns the element at i as an object, or nil.
func (a *Array) ObjectAt(i int) *Object {
	o, _ := a.At(i).(*Object)
	return o
}

// Values returns every element, wrapped.
func (a *Array) Values() []any {
	s := *a.raw
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = a.tree.wrap(v)
	}
	return out
}

// Each calls fn for every element in order.
func (a *Array) Each(fn func(i int, v any)) {
	for i, v := range a.Values() {
		fn(i, v)
	}
}

// Filter returns the wrapped elements for which keep returns true.
func (a *Array) Filter(keep func(v any) bool) []any {
	var out []any
	for _, v := range a.Values() {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Find returns the first wrapped element matching pred.
func (a *Array) Find(pred func(v any) bool) (any, bool) {
	for _, v := range a.Values() {
		if pred(v) {
			return v, true
		}
	}
	return nil, false
}

// IndexOf returns the index of v, or -1. Wrappers compare by the identity of
// their container.
func (a *Array) IndexOf(v any) int {
	target := raw(v)
	for i, e := range *a.raw {
		if same(e, target) {
			return i
		}
	}
	return -1
}

// Snapshot returns a deep plain copy of the sequence.
func (a *Array) Snapshot() []any {
	return snapshotSlice(*a.raw)
}

// SetAt stores v at index i and notifies. Writing past the end grows the
// sequence, filling the gap with nil. A negative index is ignored but still
// notifies.
func (a *Array) SetAt(i int, v any) {
	if i >= 0 {
		s := *a.raw
		for len(s) <= i {
			s = append(s, nil)
		}
		s[i] = normalize(v)
		*a.raw = s
	}
	a.tree.notify()
}

// Push appends values and returns the new length.
func (a *Array) Push(values ...any) int {
	s := *a.raw
	for _, v := range values {
		s = append(s, normalize(v))
	}
	*a.raw = s
	a.tree.notify()
	return len(s)
}

// Pop removes and returns the last element, or nil when empty.
func (a *Array) Pop() any {
	s := *a.raw
	var out any
	if len(s) > 0 {
		out = s[len(s)-1]
		s[len(s)-1] = nil
		*a.raw = s[:len(s)-1]
	}
	a.tree.notify()
	return a.tree.wrap(out)
}

// Shift removes and returns the first element, or nil when empty.
func (a *Array) Shift() any {
	s := *a.raw
	var out any
	if len(s) > 0 {
		out = s[0]
		*a.raw = append(s[:0:0], s[1:]...)
	}
	a.tree.notify()
	return a.tree.wrap(out)
}

// Unshift prepends values, in order, and returns the new length.
func (a *Array) Unshift(values ...any) int {
	s := make([]any, 0, len(values)+len(*a.raw))
	for _, v := range values {
		s = append(s, normalize(v))
	}
	s = append(s, *a.raw...)
	*a.raw = s
	a.tree.notify()
	return len(s)
}

// Splice removes deleteCount elements starting at start, inserts items in
// their place and returns the removed elements. start is clamped to the
// sequence; a negative start counts from the end.
func (a *Array) Splice(start, deleteCount int, items ...any) []any {
	s := *a.raw
	n := len(s)
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if start > n {
		start = n
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	if start+deleteCount > n {
		deleteCount = n - start
	}

	removed := make([]any, deleteCount)
	copy(removed, s[start:start+deleteCount])

	next := make([]any, 0, n-deleteCount+len(items))
	next = append(next, s[:start]...)
	for _, v := range items {
		next = append(next, normalize(v))
	}
	next = append(next, s[start+deleteCount:]...)
	*a.raw = next
	a.tree.notify()

	for i, v := range removed {
		removed[i] = a.tree.wrap(v)
	}
	return removed
}

// RemoveAt removes the element at i and notifies. It reports whether i was
// in range.
func (a *Array) RemoveAt(i int) bool {
	if i < 0 || i >= a.Len() {
		a.tree.notify()
		return false
	}
	a.Splice(i, 1)
	return true
}

// Sort sorts the sequence in place with less, which receives wrapped
// elements, and notifies. The sort is stable.
func (a *Array) Sort(less func(x, y any) bool) {
	s := *a.raw
	sort.SliceStable(s, func(i, j int) bool {
		return less(a.tree.wrap(s[i]), a.tree.wrap(s[j]))
	})
	a.tree.notify()
}

// Reverse reverses the sequence in place and notifies.
func (a *Array) Reverse() {
	s := *a.raw
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	a.tree.notify()
}

// Clear removes every element and notifies.
func (a *Array) Clear() {
	*a.raw = []any{}
	a.tree.notify()
}

// Replace swaps the whole content for values and notifies once.
func (a *Array) Replace(values []any) {
	s := make([]any, 0, len(values))
	for _, v := range values {
		s = append(s, normalize(v))
	}
	*a.raw = s
	a.tree.notify()
}

// same compares raw values, using identity for containers.
func same(x, y any) bool {
	switch xv := x.(type) {
	case map[string]any:
		yv, ok := y.(map[string]any)
		return ok && mapID(xv) == mapID(yv)
	case *[]any:
		yv, ok := y.(*[]any)
		return ok && xv == yv
	}
	if x == nil || y == nil {
		return x == y
	}
	t := reflect.TypeOf(x)
	if t != reflect.TypeOf(y) || !t.Comparable() {
		return false
	}
	return x == y
}
