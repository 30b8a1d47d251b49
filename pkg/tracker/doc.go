// Package tracker records invocations of tracked operations and provides a
// chained assertion API over the recorded history.
//
// A Tracker maps opaque string keys to append-only call logs. Instrumentation
// code (hand-written wrappers, generated shims) logs into it through LogCall;
// test code queries it through AssertThat, which snapshots the key's log and
// returns an Assertion:
//
//	tr := tracker.New()
//	svc := NewService(tr) // service logs its calls into tr
//
//	svc.Greet("Ann")
//
//	tr.AssertThat(t, "Service::Greet").
//	    WasCalledOnce().
//	    With(call.Args("Ann")).
//	    AndReturned("hi Ann")
//
// Cardinality checks (WasCalledOnce, WasCalledTimes, WasntCalled) come first;
// a passed cardinality check hands over a MetaAssertion for payload checks
// (With, NotWith, WithMatch, AndReturned). Every failed check aborts the test
// via t.Fatalf with a message naming the key and the expected and actual
// state. Payload checks are existential: they pass when at least one recorded
// call matches, and each check re-scans the full snapshot.
//
// A Tracker is safe for concurrent use. Logging to one key never contends
// with logging to another, and an Assertion's snapshot is unaffected by calls
// recorded after AssertThat returned. Construct one Tracker per test where
// possible and share the pointer with everything that needs to log into it;
// Clear resets all keys between tests that must share one.
package tracker
