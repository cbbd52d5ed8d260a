package objwalk

import (
	"reflect"

	"github.com/ehsanranjbar/objwalk/utils/reflecthelpers"
)

// Kind is the traversal shape of a value. Every value encountered during a
// walk is classified into exactly one Kind before anything else happens to it.
type Kind int

const (
	// KindNil is the class of nil pointers, nil interfaces and invalid values.
	KindNil Kind = iota
	// KindScalar is the class of values with no enumerable structure.
	KindScalar
	// KindSequence is the class of slices and arrays.
	KindSequence
	// KindMap is the class of associative maps.
	KindMap
	// KindRecord is the class of structs with named fields.
	KindRecord
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMap:
		return "map"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Composite reports whether values of this kind have enumerable children.
func (k Kind) Composite() bool {
	return k == KindSequence || k == KindMap || k == KindRecord
}

// Classify returns the Kind of v. Pointers and interfaces are dereferenced
// first; a value that is both indexable and keyed cannot occur in Go's type
// system, but a named struct type with a map underlying type classifies as
// KindMap (the enumerable shape wins).
func Classify(v any) Kind {
	return classifyValue(reflect.ValueOf(v))
}

func classifyValue(v reflect.Value) Kind {
	v = reflecthelpers.Indirect(v)
	if reflecthelpers.IsNil(v) {
		return KindNil
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		return KindMap
	case reflect.Struct:
		return KindRecord
	default:
		return KindScalar
	}
}
