package objwalk

import (
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"github.com/ehsanranjbar/objwalk/defaultprops"
	"github.com/ehsanranjbar/objwalk/utils/reflecthelpers"
)

// Flatten walks the object graph rooted at root depth-first in pre-order and
// returns a Result mapping synthesized paths to the values found there.
// Every visited node that passes the include and value filters is emitted,
// composite or not; emission and recursion are independent of each other.
//
// The only errors returned are configuration errors (ErrInvalidDepth,
// ErrBadPattern). Failures to introspect individual nodes degrade those
// nodes to leaves and the walk continues.
func Flatten(root any, opts ...Option) (*Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	w := &walker{cfg: cfg, res: NewResult()}
	w.walk(reflect.ValueOf(root), root, cfg.rootName, 0)
	return w.res, nil
}

type walker struct {
	cfg Config
	res *Result
}

func (w *walker) walk(parent reflect.Value, parentVal any, path string, depth int) {
	children, err := childrenOf(parent)
	if err != nil {
		w.cfg.logger.Debug("treating node as leaf",
			zap.String("path", path),
			zap.Error(err))
		return
	}

	var defaults []string
	if w.cfg.excludeDefault {
		defaults = defaultprops.Lookup(baseTypeOf(parentVal))
	}

	for _, c := range children {
		if matchAny(w.cfg.exclude, c.Name) || slices.Contains(defaults, c.Name) {
			continue
		}

		childPath := c.Path(path)
		childDepth := depth + 1

		childVal, readable := reflecthelpers.SafeInterface(c.rv)
		if !readable {
			w.cfg.logger.Debug("skipping unreadable child", zap.String("path", childPath))
			continue
		}

		if w.shouldEmit(c.Name, childVal, childDepth) {
			w.emit(childPath, childVal)
		}

		if reflecthelpers.IsNil(c.rv) {
			continue
		}
		if w.shouldSkip(c.Name, parentVal, childVal) {
			continue
		}
		if childDepth < w.cfg.maxDepth && classifyValue(c.rv).Composite() {
			w.walk(c.rv, childVal, childPath, childDepth)
		}
	}
}

func (w *walker) shouldEmit(name string, value any, depth int) bool {
	if depth > w.cfg.maxDepth {
		return false
	}
	if len(w.cfg.include) > 0 && !matchAny(w.cfg.include, name) {
		return false
	}
	if len(w.cfg.valueFilter) > 0 && !matchAny(w.cfg.valueFilter, w.stringify(value)) {
		return false
	}
	return true
}

func (w *walker) emit(path string, value any) {
	w.res.Set(path, value)
	if w.cfg.sink != nil {
		if err := w.cfg.sink.Put(path, value); err != nil {
			w.cfg.logger.Warn("sink rejected entry",
				zap.String("path", path),
				zap.Error(err))
		}
	}
}

func (w *walker) shouldSkip(name string, parent, child any) bool {
	for _, rule := range w.cfg.skipRules {
		if rule(name, parent, child) {
			return true
		}
	}
	return false
}

// stringify renders a value for value-filter matching, tolerating Stringer
// implementations that panic.
func (w *walker) stringify(v any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			w.cfg.logger.Debug("value failed to render", zap.String("panic", fmt.Sprint(r)))
			s = fmt.Sprintf("<%T>", v)
		}
	}()

	return fmt.Sprint(v)
}
