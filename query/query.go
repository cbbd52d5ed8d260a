// Package query evaluates qlbridge filter expressions against flattened
// results, so a host can ask SQL-ish questions of an object graph without
// knowing its shape up front.
package query

import (
	"strings"
	"time"

	"github.com/araddon/qlbridge/expr"
	qlvalue "github.com/araddon/qlbridge/value"
	qlvm "github.com/araddon/qlbridge/vm"

	"github.com/ehsanranjbar/objwalk"
)

// Match reports whether the flattened result satisfies the given filter
// expression. Identities resolve against full paths first and then against
// paths with the result's root prefix prepended, so both `root.Title` and
// `Title` work.
func Match(res *objwalk.Result, q string) (bool, error) {
	qe, err := expr.ParseExpression(q)
	if err != nil {
		return false, err
	}

	t, _ := qlvm.MatchesExpr(NewResultContext(res, objwalk.DefaultRootName), qe)
	return t, nil
}

// ResultContext adapts a Result to the qlbridge ContextReader interface.
type ResultContext struct {
	res  *objwalk.Result
	root string
}

// NewResultContext creates a ResultContext. root is the prefix tried when an
// identity does not resolve as a full path.
func NewResultContext(res *objwalk.Result, root string) *ResultContext {
	return &ResultContext{res: res, root: root}
}

// Get implements the qlbridge.ContextReader interface.
func (c *ResultContext) Get(key string) (qlvalue.Value, bool) {
	if v, ok := c.res.Get(key); ok {
		return qlvalue.NewValue(v), true
	}
	if c.root != "" && !strings.HasPrefix(key, c.root+".") {
		if v, ok := c.res.Get(c.root + "." + key); ok {
			return qlvalue.NewValue(v), true
		}
		if v, ok := c.res.Get(c.root + "['" + key + "']"); ok {
			return qlvalue.NewValue(v), true
		}
	}
	return qlvalue.NewNilValue(), false
}

// Row implements the qlbridge.ContextReader interface.
func (c *ResultContext) Row() map[string]qlvalue.Value {
	row := make(map[string]qlvalue.Value, c.res.Len())
	for k, v := range c.res.Iter() {
		row[k] = qlvalue.NewValue(v)
	}
	return row
}

// Ts implements the qlbridge.ContextReader interface.
func (c *ResultContext) Ts() time.Time { return time.Time{} }
