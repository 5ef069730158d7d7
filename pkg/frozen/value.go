// Package frozen wraps decoded YAML and JSON documents in a read-only
// Value that can be walked by key, index or dotted path.
package frozen

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrNoKey    = errors.New("no such key")
	ErrNotMap   = errors.New("value is not a map")
	ErrNotList  = errors.New("value is not a list")
	ErrBadIndex = errors.New("index out of range")
)

// Value is an immutable view over a decoded document node. The zero
// Value holds nil.
type Value struct {
	raw any
}

// New deep-copies v, so later changes to v are not visible through the
// returned Value.
func New(v any) Value {
	return Value{raw: freeze(v)}
}

func freeze(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = freeze(e)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = freeze(e)
		}
		return m
	case []any:
		l := make([]any, len(t))
		for i, e := range t {
			l[i] = freeze(e)
		}
		return l
	default:
		return v
	}
}

func (v Value) IsMap() bool {
	_, ok := v.raw.(map[string]any)
	return ok
}

func (v Value) IsList() bool {
	_, ok := v.raw.([]any)
	return ok
}

func (v Value) IsNil() bool {
	return v.raw == nil
}

// Get returns the child stored under key.
func (v Value) Get(key string) (Value, error) {
	m, ok := v.raw.(map[string]any)
	if !ok {
		return Value{}, fmt.Errorf("%w: looking up %q", ErrNotMap, key)
	}
	child, ok := m[key]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrNoKey, key)
	}
	return Value{raw: child}, nil
}

// Index returns the i-th element of a list.
func (v Value) Index(i int) (Value, error) {
	l, ok := v.raw.([]any)
	if !ok {
		return Value{}, ErrNotList
	}
	if i < 0 || i >= len(l) {
		return Value{}, fmt.Errorf("%w: %d of %d", ErrBadIndex, i, len(l))
	}
	return Value{raw: l[i]}, nil
}

// Path walks a dotted path such as "bot.texts.start" or "admins.0".
// Numeric segments index into lists.
func (v Value) Path(path string) (Value, error) {
	cur := v
	for _, seg := range strings.Split(path, ".") {
		var err error
		if i, convErr := strconv.Atoi(seg); convErr == nil && cur.IsList() {
			cur, err = cur.Index(i)
		} else {
			cur, err = cur.Get(seg)
		}
		if err != nil {
			return Value{}, fmt.Errorf("path %q: %w", path, err)
		}
	}
	return cur, nil
}

// Text returns the path's scalar as text, or def when it is missing.
func (v Value) Text(path, def string) string {
	child, err := v.Path(path)
	if err != nil || child.IsNil() || child.IsMap() || child.IsList() {
		return def
	}
	if s, ok := child.raw.(string); ok {
		return s
	}
	return fmt.Sprint(child.raw)
}

// Keys returns the sorted keys of a map, nil for anything else.
func (v Value) Keys() []string {
	m, ok := v.raw.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List returns the elements of a list, nil for anything else.
func (v Value) List() []Value {
	l, ok := v.raw.([]any)
	if !ok {
		return nil
	}
	res := make([]Value, len(l))
	for i, e := range l {
		res[i] = Value{raw: e}
	}
	return res
}

// Interface returns a copy of the underlying data.
func (v Value) Interface() any {
	return freeze(v.raw)
}

func (v Value) GoString() string {
	return fmt.Sprintf("frozen.Value(%#v)", v.raw)
}
