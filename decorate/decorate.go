// Package decorate wraps values with a synthetic type name, extra named
// fields, and a default display property set, without touching the wrapped
// value itself. The flattener and the lazy tree model surface the extra
// fields next to the value's own children.
package decorate

import (
	"fmt"
	"reflect"

	"github.com/ehsanranjbar/objwalk/defaultprops"
)

// Decorated is a value enriched with presentation metadata.
type Decorated struct {
	value    any
	typeName string
	extras   map[string]any
	display  []string
}

// New wraps value in a Decorated.
func New(value any, opts ...func(*Decorated)) *Decorated {
	d := &Decorated{value: value}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithTypeName sets the synthetic type name reported by TypeName.
func WithTypeName(name string) func(*Decorated) {
	return func(d *Decorated) { d.typeName = name }
}

// WithExtraField adds a synthetic named field.
func WithExtraField(name string, value any) func(*Decorated) {
	return func(d *Decorated) {
		if d.extras == nil {
			d.extras = make(map[string]any)
		}
		d.extras[name] = value
	}
}

// WithDefaultDisplay sets the property names a host should show by default.
func WithDefaultDisplay(names ...string) func(*Decorated) {
	return func(d *Decorated) { d.display = names }
}

// Underlying returns the wrapped value.
func (d *Decorated) Underlying() any {
	return d.value
}

// ExtraFields returns the synthetic fields added to the wrapped value.
func (d *Decorated) ExtraFields() map[string]any {
	return d.extras
}

// TypeName returns the synthetic type name, falling back to the wrapped
// value's own type.
func (d *Decorated) TypeName() string {
	if d.typeName != "" {
		return d.typeName
	}
	return fmt.Sprintf("%T", d.value)
}

// DefaultDisplay returns the default display property set.
func (d *Decorated) DefaultDisplay() []string {
	return d.display
}

// RegisterIntrinsics registers the wrapped type's fields that fall outside
// the default display set as intrinsic properties in the defaultprops
// registry, so subsequent flattening of undecorated values of the same type
// surfaces only the fields a host would display.
func (d *Decorated) RegisterIntrinsics() {
	if d.value == nil || len(d.display) == 0 {
		return
	}

	t := reflect.TypeOf(d.value)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}

	shown := make(map[string]bool, len(d.display))
	for _, name := range d.display {
		shown[name] = true
	}

	var intrinsic []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.IsExported() && !shown[f.Name] {
			intrinsic = append(intrinsic, f.Name)
		}
	}
	defaultprops.Register(t, intrinsic...)
}
