package call

import "github.com/getcalltrack/calltrack/pkg/payload"

// Builder builds call records using a fluent API.
type Builder struct {
	rec Record
}

// New starts building a call record.
func New() *Builder {
	return &Builder{}
}

// WithArgs captures the call's arguments. For operations with more than one
// argument, pass a tuple built with Args.
func (b *Builder) WithArgs(args any) *Builder {
	b.rec.Args = payload.New(args)
	return b
}

// WithReturn captures the call's return value.
func (b *Builder) WithReturn(v any) *Builder {
	b.rec.Returned = payload.New(v)
	return b
}

// Record finalizes the builder and returns the record.
// The builder must not be reused afterwards.
func (b *Builder) Record() *Record {
	r := b.rec
	return &r
}
