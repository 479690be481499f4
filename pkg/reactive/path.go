package reactive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPath is returned when a path does not resolve to a container.
var ErrPath = errors.New("reactive: path does not resolve")

// GetPath reads a dot-separated path such as "form.champions.blue.top" or
// "matches.0.id". Numeric segments index arrays. It returns nil when any
// segment is missing.
func (o *Object) GetPath(path string) any {
	var cur any = o
	for _, seg := range splitPath(path) {
		next, ok := step(cur, seg)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// SetPath writes v at path and notifies. Every segment but the last must
// resolve to an existing object or array.
func (o *Object) SetPath(path string, v any) error {
	parent, last, err := o.parent(path)
	if err != nil {
		return err
	}
	switch p := parent.(type) {
	case *Object:
		p.Set(last, v)
	case *Array:
		i, err := strconv.Atoi(last)
		if err != nil || i < 0 {
			return fmt.Errorf("%w: %q: bad index %q", ErrPath, path, last)
		}
		p.SetAt(i, v)
	}
	return nil
}

// DeletePath removes the key at path and notifies. The parent must be an
// object.
func (o *Object) DeletePath(path string) error {
	parent, last, err := o.parent(path)
	if err != nil {
		return err
	}
	p, ok := parent.(*Object)
	if !ok {
		return fmt.Errorf("%w: %q: parent is not an object", ErrPath, path)
	}
	p.Delete(last)
	return nil
}

func (o *Object) parent(path string) (any, string, error) {
	segs := splitPath(path)
	if len(segs) == 0 {
		return nil, "", fmt.Errorf("%w: empty path", ErrPath)
	}
	var cur any = o
	for _, seg := range segs[:len(segs)-1] {
		next, ok := step(cur, seg)
		if !ok {
			return nil, "", fmt.Errorf("%w: %q: missing %q", ErrPath, path, seg)
		}
		cur = next
	}
	switch cur.(type) {
	case *Object, *Array:
		return cur, segs[len(segs)-1], nil
	}
	return nil, "", fmt.Errorf("%w: %q: not a container", ErrPath, path)
}

func step(cur any, seg string) (any, bool) {
	switch c := cur.(type) {
	case *Object:
		if !c.Has(seg) {
			return nil, false
		}
		return c.Get(seg), true
	case *Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= c.Len() {
			return nil, false
		}
		return c.At(i), true
	}
	return nil, false
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}
