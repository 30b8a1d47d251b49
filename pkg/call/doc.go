// Package call provides the types for captured invocations: the Record for a
// single logged call and the per-key Log that stores records in call order.
//
// Instrumentation layers create Record instances (directly or via the fluent
// builder) and hand them to a tracker, which appends them to the Log for the
// invocation's key. Records are immutable once logged; the Log is append-only
// and only ever emptied by an explicit Clear.
//
// # Keys
//
// A key identifies one logically tracked operation. The convention is
// "Namespace::member_name" for methods and a bare "function_name" for free
// functions, but keys are opaque: they are compared byte-exact and never
// parsed.
//
// # Usage
//
//	rec := call.New().
//	    WithArgs(call.Args("Ann")).
//	    WithReturn("hi Ann").
//	    Record()
//	tracker.LogCall("Greeter::greet", rec)
package call
