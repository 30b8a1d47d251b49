package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/getcalltrack/calltrack/pkg/call"
)

func TestDebugDump(t *testing.T) {
	tr := New()
	tr.LogCall("greet", call.New().
		WithArgs(call.Args("Ann")).
		WithReturn("hi Ann").
		Record())
	tr.LogCall("greet", call.New().WithArgs(call.Args("Bob")).Record())

	dump := tr.DebugDump("greet")

	assert.Contains(t, dump, "greet: 2 call(s)")
	assert.Contains(t, dump, "[0]")
	assert.Contains(t, dump, "[1]")
	assert.Contains(t, dump, "args=")
	assert.Contains(t, dump, "Ann")
	assert.Contains(t, dump, "returned=")
}

func TestDebugDump_UnknownKey(t *testing.T) {
	tr := New()

	dump := tr.DebugDump("never-called")

	assert.Contains(t, dump, "never-called: 0 call(s)")
}

func TestDebugDump_RecordWithoutPayloads(t *testing.T) {
	tr := New()
	tr.LogCall("tick", call.New().Record())

	dump := tr.DebugDump("tick")

	assert.Contains(t, dump, "tick: 1 call(s)")
	assert.NotContains(t, dump, "args=")
	assert.NotContains(t, dump, "returned=")
}
