package token

import "github.com/zclconf/go-cty/cty"

// Options is the named half of a tokenized argument vector. It preserves the
// order in which option names first appeared so downstream matching is
// deterministic, while a repeated name overwrites the stored value
// (last-write-wins, flag and valued forms alike).
type Options struct {
	names  []string
	values map[string]cty.Value
}

// NewOptions returns an empty option set.
func NewOptions() *Options {
	return &Options{values: make(map[string]cty.Value)}
}

// Set stores val under name. A name already present keeps its position in
// the iteration order and has its value replaced.
func (o *Options) Set(name string, val cty.Value) {
	if _, ok := o.values[name]; !ok {
		o.names = append(o.names, name)
	}
	o.values[name] = val
}

// Get returns the value stored under name.
func (o *Options) Get(name string) (cty.Value, bool) {
	v, ok := o.values[name]
	return v, ok
}

// Names returns the option names in first-appearance order.
func (o *Options) Names() []string {
	return append([]string(nil), o.names...)
}

// Len is the number of distinct option names held.
func (o *Options) Len() int { return len(o.names) }
