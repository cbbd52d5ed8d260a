package objwalk

import (
	"reflect"
	"time"

	"github.com/ehsanranjbar/objwalk/utils/reflecthelpers"
)

// SkipRule decides, before recursing into a child, whether recursion should
// be skipped. The child may still have been emitted as a leaf entry; rules
// only guard against walking into it. Returning true skips recursion.
type SkipRule func(name string, parent, child any) bool

// SyncRootField is the well-known name of the self-referencing
// synchronization-root field some runtimes attach to collection wrappers.
const SyncRootField = "SyncRoot"

// DefaultSkipRules returns the rules applied when no WithSkipRules option is
// given: DateLikeSelfReference and NilSyncRoot.
func DefaultSkipRules() []SkipRule {
	return []SkipRule{DateLikeSelfReference, NilSyncRoot}
}

// DateLikeSelfReference skips children of the exact same runtime type as
// their parent when that type is date-like. Temporal wrapper types tend to
// expose themselves recursively (a date's date's date...) and would otherwise
// walk until the depth limit.
func DateLikeSelfReference(_ string, parent, child any) bool {
	pt := baseTypeOf(parent)
	ct := baseTypeOf(child)
	if pt == nil || ct == nil || pt != ct {
		return false
	}
	return isDateLike(ct)
}

// NilSyncRoot skips a child named SyncRoot holding no value.
func NilSyncRoot(name string, _, child any) bool {
	return name == SyncRootField && (child == nil || reflecthelpers.IsNil(reflect.ValueOf(child)))
}

var timeType = reflect.TypeOf(time.Time{})

func isDateLike(t reflect.Type) bool {
	if t == timeType {
		return true
	}
	// Anything exposing the time.Time navigation surface counts.
	_, hasAddDate := t.MethodByName("AddDate")
	_, hasUnix := t.MethodByName("Unix")
	return hasAddDate && hasUnix
}

func baseTypeOf(v any) reflect.Type {
	if v == nil {
		return nil
	}
	return reflecthelpers.GetBaseType(reflect.TypeOf(v))
}
