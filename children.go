package objwalk

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/ehsanranjbar/objwalk/utils/reflecthelpers"
)

// Decorated is implemented by wrapper values that contribute synthetic named
// fields on top of their underlying value, such as decorate.Decorated.
// During enumeration the extra fields are merged over the underlying value's
// own children.
type Decorated interface {
	Underlying() any
	ExtraFields() map[string]any
}

// Child is one directly reachable member of a composite value.
type Child struct {
	// Name is the field name, the map key rendered as a string, or the
	// decimal form of the sequence index.
	Name string
	// Access tells how the child is reached from its parent.
	Access Access
	// Index is the position of the child for AccessIndex children.
	Index int
	// Value is the child's value.
	Value any
}

// Path returns the path of the child when reached from base.
func (c Child) Path(base string) string {
	switch c.Access {
	case AccessIndex:
		return appendIndex(base, c.Index)
	case AccessKey:
		return appendKey(base, c.Name)
	default:
		return appendField(base, c.Name)
	}
}

// Children enumerates the direct named children of v in deterministic order:
// record fields in declaration order, map entries sorted by key, sequence
// elements by index. Scalars and nil values have no children. Enumeration
// failures on exotic values are reported instead of panicking.
func Children(v any) ([]Child, error) {
	raw, err := childrenOf(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}

	out := make([]Child, 0, len(raw))
	for _, c := range raw {
		cv, ok := reflecthelpers.SafeInterface(c.rv)
		if !ok {
			continue
		}
		c.Child.Value = cv
		out = append(out, c.Child)
	}
	return out, nil
}

// child pairs the exported Child view with the reflect.Value it was read
// from, so the walker never round-trips through any.
type child struct {
	Child
	rv reflect.Value
}

func childrenOf(v reflect.Value) (children []child, err error) {
	defer func() {
		if r := recover(); r != nil {
			children, err = nil, fmt.Errorf("introspection failed: %v", r)
		}
	}()

	if d, ok := asDecorated(v); ok {
		children, err = childrenOf(reflect.ValueOf(d.Underlying()))
		if err != nil {
			return nil, err
		}
		return append(children, extraChildren(d)...), nil
	}

	v = reflecthelpers.Indirect(v)
	switch classifyValue(v) {
	case KindRecord:
		return recordChildren(v), nil
	case KindMap:
		return mapChildren(v), nil
	case KindSequence:
		return sequenceChildren(v), nil
	default:
		return nil, nil
	}
}

func recordChildren(v reflect.Value) []child {
	t := v.Type()
	children := make([]child, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		children = append(children, child{
			Child: Child{Name: f.Name, Access: AccessField},
			rv:    v.Field(i),
		})
	}
	return children
}

func mapChildren(v reflect.Value) []child {
	type entry struct {
		name string
		key  reflect.Value
	}
	entries := make([]entry, 0, v.Len())
	for _, k := range v.MapKeys() {
		name := fmt.Sprint(reflecthelpers.Indirect(k).Interface())
		entries = append(entries, entry{name: name, key: k})
	}
	// Go maps iterate in random order; sorting keeps results deterministic.
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	children := make([]child, 0, len(entries))
	for _, e := range entries {
		children = append(children, child{
			Child: Child{Name: e.name, Access: AccessKey},
			rv:    v.MapIndex(e.key),
		})
	}
	return children
}

func sequenceChildren(v reflect.Value) []child {
	children := make([]child, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		children = append(children, child{
			Child: Child{Name: fmt.Sprint(i), Access: AccessIndex, Index: i},
			rv:    v.Index(i),
		})
	}
	return children
}

func asDecorated(v reflect.Value) (Decorated, bool) {
	i, ok := reflecthelpers.SafeInterface(v)
	if !ok || i == nil {
		return nil, false
	}
	d, ok := i.(Decorated)
	return d, ok
}

func extraChildren(d Decorated) []child {
	extras := d.ExtraFields()
	names := make([]string, 0, len(extras))
	for name := range extras {
		names = append(names, name)
	}
	sort.Strings(names)

	children := make([]child, 0, len(names))
	for _, name := range names {
		children = append(children, child{
			Child: Child{Name: name, Access: AccessField},
			rv:    reflect.ValueOf(extras[name]),
		})
	}
	return children
}
