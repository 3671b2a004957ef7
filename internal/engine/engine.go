package engine

import (
	"time"
)

// Default series parameters
const (
	DefaultTopN             = 5
	DefaultOtherLocationKey = "OUTRAS"
	DefaultOtherRoleKey     = "OUTROS"
)

// Options engine parameters
type Options struct {
	TopN             int
	OtherLocationKey string
	OtherRoleKey     string
	Location         *time.Location // time zone for month boundaries
}

// DefaultOptions returns the dashboard defaults
func DefaultOptions() Options {
	return Options{
		TopN:             DefaultTopN,
		OtherLocationKey: DefaultOtherLocationKey,
		OtherRoleKey:     DefaultOtherRoleKey,
		Location:         time.Local,
	}
}

// Engine workforce aggregation engine.
// Every method is a pure function of its arguments; nothing is cached between calls.
type Engine struct {
	opts Options
}

// New creates an engine, filling unset options with defaults
func New(opts Options) *Engine {
	def := DefaultOptions()
	if opts.TopN <= 0 {
		opts.TopN = def.TopN
	}
	if opts.OtherLocationKey == "" {
		opts.OtherLocationKey = def.OtherLocationKey
	}
	if opts.OtherRoleKey == "" {
		opts.OtherRoleKey = def.OtherRoleKey
	}
	if opts.Location == nil {
		opts.Location = def.Location
	}
	return &Engine{opts: opts}
}

// Options returns the effective options
func (e *Engine) Options() Options {
	return e.opts
}
