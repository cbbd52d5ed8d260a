package objwalk

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

var (
	// ErrInvalidDepth is returned when the configured max depth is not positive.
	ErrInvalidDepth = errors.New("max depth must be at least 1")
	// ErrBadPattern is returned when a name or value pattern is not a valid glob.
	ErrBadPattern = errors.New("bad pattern")
)

// DefaultMaxDepth is the recursion ceiling applied when no WithMaxDepth
// option is given.
const DefaultMaxDepth = 10

// DefaultRootName is the path prefix applied when no WithRootName option is
// given.
const DefaultRootName = "root"

// Sink receives every emitted path-value pair as a side channel next to the
// returned Result. Implementations live in the sink package.
type Sink interface {
	Put(path string, value any) error
}

// Config holds the read-only constraints of one Flatten call.
type Config struct {
	exclude        []string
	include        []string
	valueFilter    []string
	excludeDefault bool
	maxDepth       int
	rootName       string
	skipRules      []SkipRule
	logger         *zap.Logger
	sink           Sink
}

// Option customizes a Config.
type Option func(*Config)

// WithExclude sets glob patterns that suppress any field whose name matches,
// at every level.
func WithExclude(patterns ...string) Option {
	return func(c *Config) { c.exclude = patterns }
}

// WithInclude sets glob patterns that a field name must match for its entry
// to be emitted. It does not gate recursion.
func WithInclude(patterns ...string) Option {
	return func(c *Config) { c.include = patterns }
}

// WithValueFilter sets glob patterns matched against the string form of each
// value; non-matching entries are not emitted.
func WithValueFilter(patterns ...string) Option {
	return func(c *Config) { c.valueFilter = patterns }
}

// WithMaxDepth sets the recursion ceiling. It must be at least 1.
func WithMaxDepth(d int) Option {
	return func(c *Config) { c.maxDepth = d }
}

// WithoutDefaultExclusion disables the per-type intrinsic field exclusion
// driven by the defaultprops registry.
func WithoutDefaultExclusion() Option {
	return func(c *Config) { c.excludeDefault = false }
}

// WithRootName sets the path prefix of all emitted entries.
func WithRootName(name string) Option {
	return func(c *Config) { c.rootName = name }
}

// WithSkipRules replaces the default recursion-skipping rules.
func WithSkipRules(rules ...SkipRule) Option {
	return func(c *Config) { c.skipRules = rules }
}

// WithExtraSkipRules appends recursion-skipping rules to the defaults.
func WithExtraSkipRules(rules ...SkipRule) Option {
	return func(c *Config) { c.skipRules = append(c.skipRules, rules...) }
}

// WithLogger sets the logger used for per-node diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.logger = l }
}

// WithSink tees every emitted entry into s in addition to the Result.
func WithSink(s Sink) Option {
	return func(c *Config) { c.sink = s }
}

func newConfig(opts []Option) (Config, error) {
	c := Config{
		excludeDefault: true,
		maxDepth:       DefaultMaxDepth,
		rootName:       DefaultRootName,
		skipRules:      DefaultSkipRules(),
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	if c.maxDepth < 1 {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidDepth, c.maxDepth)
	}
	for _, set := range [][]string{c.exclude, c.include, c.valueFilter} {
		for _, p := range set {
			if !doublestar.ValidatePattern(p) {
				return Config{}, fmt.Errorf("%w: %q", ErrBadPattern, p)
			}
		}
	}

	return c, nil
}

// matchAny reports whether name matches at least one of the glob patterns.
// Patterns that fail to match due to malformed syntax were already rejected
// by newConfig, so match errors cannot occur here.
func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		ok, err := doublestar.Match(p, name)
		if err == nil && ok {
			return true
		}
	}
	return false
}
