package objwalk

import (
	"strconv"
	"strings"
)

// Access describes how a child is reached from its parent value.
type Access int

const (
	// AccessField is a named field of a record or a synthetic named field.
	AccessField Access = iota
	// AccessIndex is a positional element of a sequence.
	AccessIndex
	// AccessKey is a keyed entry of an associative map.
	AccessKey
)

// appendField joins a field name onto base. Names made entirely of
// identifier characters are appended as-is; anything else is quoted so that
// the resulting path stays parseable.
func appendField(base, name string) string {
	if !identifierLike(name) {
		name = "'" + name + "'"
	}
	if base == "" {
		return name
	}
	return base + "." + name
}

// appendIndex joins a sequence index onto base.
func appendIndex(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}

// appendKey joins a map key onto base.
func appendKey(base, key string) string {
	return base + "['" + key + "']"
}

func identifierLike(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

// LastSegment returns the name of the final accessor in a path produced by
// Flatten: the field name after the last dot, the key inside the trailing
// ['...'], or the index inside the trailing [...]. Quotes are stripped.
func LastSegment(path string) string {
	if path == "" {
		return ""
	}

	if strings.HasSuffix(path, "]") {
		if i := strings.LastIndex(path, "["); i >= 0 {
			seg := path[i+1 : len(path)-1]
			return strings.Trim(seg, "'")
		}
		return path
	}

	// A quoted trailing segment may itself contain dots, so the opening
	// quote is found before any dot splitting happens.
	if strings.HasSuffix(path, "'") {
		if i := strings.LastIndex(path[:len(path)-1], "'"); i >= 0 {
			return path[i+1 : len(path)-1]
		}
	}

	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}
