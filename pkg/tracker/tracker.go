package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/getcalltrack/calltrack/internal/registry"
	"github.com/getcalltrack/calltrack/pkg/call"
	"github.com/getcalltrack/calltrack/pkg/logging"
)

// Tracker records calls per key and answers assertion queries over them.
// Share a single *Tracker between the test and everything instrumented;
// every holder has equal rights to log and to query.
type Tracker struct {
	reg *registry.Registry
	log *slog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the operational logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.log = logger
		}
	}
}

// New creates an empty tracker.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		reg: registry.New(),
		log: logging.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// LogCall records one invocation of the operation identified by key.
// The record's ID and timestamp are stamped if unset. Never fails; safe
// under concurrent callers for the same or different keys.
func (t *Tracker) LogCall(key string, rec *call.Record) {
	if rec == nil {
		return
	}
	t.reg.Record(key, rec)
	t.log.Debug("call recorded", "key", key, "id", rec.ID)
}

// AssertThat starts an assertion chain for key over a snapshot of its log
// taken now. A key that was never logged yields an empty snapshot; asserting
// on it is not an error (WasntCalled passes).
func (t *Tracker) AssertThat(tb testing.TB, key string) *Assertion {
	tb.Helper()
	return &Assertion{
		t:     tb,
		key:   key,
		calls: t.reg.Snapshot(key),
	}
}

// Clear removes all keys and their recorded calls.
// Use this to reset shared state between tests.
func (t *Tracker) Clear() {
	t.reg.Clear()
	t.log.Debug("tracker cleared")
}

// Count returns the number of recorded calls for key.
func (t *Tracker) Count(key string) int {
	return t.reg.Count(key)
}

// Keys returns all keys that have recorded calls, sorted.
func (t *Tracker) Keys() []string {
	return t.reg.Keys()
}

// Calls returns a snapshot of the recorded calls for key in call order.
func (t *Tracker) Calls(key string) []*call.Record {
	return t.reg.Snapshot(key)
}

// Filter defines criteria for listing recorded calls.
type Filter struct {
	// HasArgs filters by whether an argument payload was logged.
	HasArgs *bool

	// HasReturn filters by whether a return payload was logged.
	HasReturn *bool

	// Limit is the maximum number of records to return.
	Limit int

	// Offset is the number of records to skip.
	Offset int
}

// List returns the recorded calls for key in call order, optionally filtered.
func (t *Tracker) List(key string, filter *Filter) []*call.Record {
	calls := t.reg.Snapshot(key)
	if filter == nil {
		return calls
	}

	result := make([]*call.Record, 0, len(calls))
	for _, rec := range calls {
		if filter.HasArgs != nil && (rec.Args != nil) != *filter.HasArgs {
			continue
		}
		if filter.HasReturn != nil && (rec.Returned != nil) != *filter.HasReturn {
			continue
		}
		result = append(result, rec)
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return []*call.Record{}
		}
		result = result[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(result) {
		result = result[:filter.Limit]
	}

	return result
}

// Subscribe registers a subscriber that receives every call recorded after
// this point, across all keys. Returns the channel and an unsubscribe
// function. Slow subscribers miss records rather than blocking LogCall.
func (t *Tracker) Subscribe() (<-chan *call.Record, func()) {
	ch, unsubscribe := t.reg.Subscribe()
	return ch, unsubscribe
}

// AwaitCalls blocks until key has at least n recorded calls or ctx expires.
// Useful when the instrumented code logs from other goroutines and the test
// needs a synchronization point before asserting.
func (t *Tracker) AwaitCalls(ctx context.Context, key string, n int) error {
	ch, unsubscribe := t.reg.Subscribe()
	defer unsubscribe()

	// Subscribe first, then check: calls recorded between the check and the
	// subscription can't be missed.
	if t.reg.Count(key) >= n {
		return nil
	}

	for {
		select {
		case rec := <-ch:
			if rec != nil && rec.Key == key && t.reg.Count(key) >= n {
				return nil
			}
		case <-ctx.Done():
			return fmt.Errorf("waiting for %d calls to %s: %w (have %d)",
				n, key, ctx.Err(), t.reg.Count(key))
		}
	}
}
