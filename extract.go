package objwalk

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/ehsanranjbar/objwalk/utils/reflecthelpers"
)

// Extract navigates the object graph rooted at v along a path in the same
// grammar Flatten emits and returns the value found there. Paths are
// relative to v itself, so results produced with WithRootName("") can be fed
// back directly. The index wildcard [*] fans out over every element of a
// sequence and returns the collected values.
func Extract(v any, path string) (any, error) {
	segs, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	return extract(v, segs)
}

type segment struct {
	name     string
	access   Access
	index    int
	wildcard bool
}

func extract(v any, segs []segment) (any, error) {
	if len(segs) == 0 {
		return v, nil
	}
	if v == nil {
		return nil, fmt.Errorf("cannot extract %q from nil", segs[0].name)
	}

	seg := segs[0]
	rv := reflecthelpers.Indirect(reflect.ValueOf(v))

	if seg.wildcard {
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, fmt.Errorf("cannot fan out over %T", v)
		}
		result := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			iv, err := extract(rv.Index(i).Interface(), segs[1:])
			if err != nil {
				return nil, err
			}
			switch iv := iv.(type) {
			case []any:
				result = append(result, iv...)
			default:
				result = append(result, iv)
			}
		}
		return result, nil
	}

	switch seg.access {
	case AccessIndex:
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, fmt.Errorf("cannot index into %T", v)
		}
		if seg.index < 0 || seg.index >= rv.Len() {
			return nil, fmt.Errorf("index %d out of range", seg.index)
		}
		return extract(rv.Index(seg.index).Interface(), segs[1:])
	case AccessKey:
		if rv.Kind() != reflect.Map {
			return nil, fmt.Errorf("cannot look up key %q in %T", seg.name, v)
		}
		for _, k := range rv.MapKeys() {
			if fmt.Sprint(reflecthelpers.Indirect(k).Interface()) == seg.name {
				return extract(rv.MapIndex(k).Interface(), segs[1:])
			}
		}
		return nil, fmt.Errorf("key %q not found", seg.name)
	default:
		switch rv.Kind() {
		case reflect.Struct:
			f := rv.FieldByName(seg.name)
			if !f.IsValid() {
				return nil, fmt.Errorf("field %q not found in %T", seg.name, v)
			}
			fv, ok := reflecthelpers.SafeInterface(f)
			if !ok {
				return nil, fmt.Errorf("field %q is not readable", seg.name)
			}
			return extract(fv, segs[1:])
		case reflect.Map:
			// A dotted name against a map falls back to key lookup.
			return extract(v, append([]segment{{name: seg.name, access: AccessKey}}, segs[1:]...))
		default:
			return nil, fmt.Errorf("cannot extract %q from %T", seg.name, v)
		}
	}
}

func parsePath(path string) ([]segment, error) {
	var segs []segment
	rest := path
	for rest != "" {
		switch {
		case rest[0] == '.':
			rest = rest[1:]
			if rest == "" {
				return nil, fmt.Errorf("%w: trailing dot in %q", ErrBadPattern, path)
			}
		case rest[0] == '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated bracket in %q", ErrBadPattern, path)
			}
			inner := rest[1:end]
			rest = rest[end+1:]

			switch {
			case inner == "*":
				segs = append(segs, segment{name: "*", access: AccessIndex, wildcard: true})
			case strings.HasPrefix(inner, "'") && strings.HasSuffix(inner, "'") && len(inner) >= 2:
				segs = append(segs, segment{name: inner[1 : len(inner)-1], access: AccessKey})
			default:
				i, err := strconv.Atoi(inner)
				if err != nil {
					return nil, fmt.Errorf("%w: invalid index %q in %q", ErrBadPattern, inner, path)
				}
				segs = append(segs, segment{name: inner, access: AccessIndex, index: i})
			}
		case rest[0] == '\'':
			end := strings.IndexByte(rest[1:], '\'')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrBadPattern, path)
			}
			segs = append(segs, segment{name: rest[1 : end+1], access: AccessField})
			rest = rest[end+2:]
		default:
			end := len(rest)
			if i := strings.IndexAny(rest, ".["); i >= 0 {
				end = i
			}
			segs = append(segs, segment{name: rest[:end], access: AccessField})
			rest = rest[end:]
		}
	}

	if len(segs) == 0 {
		return nil, nil
	}
	return segs, nil
}
