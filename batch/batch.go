// Package batch applies the flattener to several root values in one go,
// each with its own independently-owned result.
package batch

import (
	"github.com/google/uuid"

	"github.com/ehsanranjbar/objwalk"
)

// Run is the outcome of flattening one root value.
type Run struct {
	ID     uuid.UUID
	Root   any
	Result *objwalk.Result
}

// Runner flattens batches of root values with a shared configuration.
type Runner struct {
	opts []objwalk.Option
	sink objwalk.Sink
}

// New creates a Runner applying the given options to every root.
func New(opts ...objwalk.Option) *Runner {
	return &Runner{opts: opts}
}

// WithSink makes the runner tee every emitted entry into s, with each path
// prefixed by the run's ID so entries from different roots stay apart.
func (r *Runner) WithSink(s objwalk.Sink) *Runner {
	r.sink = s
	return r
}

// Run flattens each root independently, in order. Configuration errors
// surface on the first root and abort the batch; per-node traversal
// anomalies never do.
func (r *Runner) Run(roots ...any) ([]Run, error) {
	runs := make([]Run, 0, len(roots))
	for _, root := range roots {
		id := uuid.New()

		opts := r.opts
		if r.sink != nil {
			opts = append(opts[:len(opts):len(opts)], objwalk.WithSink(prefixSink{
				prefix: id.String() + "/",
				next:   r.sink,
			}))
		}

		res, err := objwalk.Flatten(root, opts...)
		if err != nil {
			return nil, err
		}

		runs = append(runs, Run{ID: id, Root: root, Result: res})
	}
	return runs, nil
}

// prefixSink namespaces entries of one run inside the shared sink.
type prefixSink struct {
	prefix string
	next   objwalk.Sink
}

func (s prefixSink) Put(path string, value any) error {
	return s.next.Put(s.prefix+path, value)
}
