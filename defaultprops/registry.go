// Package defaultprops keeps a registry of field names considered intrinsic
// to a runtime-supplied type rather than application data. The flattener
// consults it to keep wrapper-type plumbing out of flattened output.
package defaultprops

import (
	"reflect"
	"sync"
	"time"
)

var registry = struct {
	sync.RWMutex
	m map[reflect.Type][]string
}{m: make(map[reflect.Type][]string)}

// Register associates intrinsic field names with a type, replacing any
// previous registration for it.
func Register(t reflect.Type, names ...string) {
	registry.Lock()
	defer registry.Unlock()
	registry.m[t] = append([]string(nil), names...)
}

// Lookup returns the intrinsic field names registered for t. Unknown types
// and nil contribute nothing.
func Lookup(t reflect.Type) []string {
	if t == nil {
		return nil
	}

	registry.RLock()
	defer registry.RUnlock()
	names, ok := registry.m[t]
	if !ok {
		return nil
	}
	return append([]string(nil), names...)
}

func init() {
	// Temporal wrapper types carry canonical navigation fields that pollute
	// flattened output while saying nothing about the instance.
	Register(reflect.TypeOf(time.Time{}), "Date", "Clock", "Location", "Zone")
	Register(reflect.TypeOf(time.Duration(0)), "Hours", "Minutes", "Seconds")
	Register(reflect.TypeOf(&time.Location{}), "String")
}
