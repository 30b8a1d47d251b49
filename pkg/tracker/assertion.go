package tracker

import (
	"testing"

	"github.com/expr-lang/expr"

	"github.com/getcalltrack/calltrack/pkg/call"
)

// Assertion is the cardinality stage of an assertion chain: how many times
// was the key called. It is bound to the snapshot taken by AssertThat and is
// consumed by its first check; call AssertThat again for a fresh one.
type Assertion struct {
	t     testing.TB
	key   string
	calls []*call.Record
	spent bool
}

// WasCalledOnce asserts the key was called exactly once and returns a
// MetaAssertion for payload checks.
func (a *Assertion) WasCalledOnce() *MetaAssertion {
	a.t.Helper()
	if !a.consume() {
		return nil
	}

	switch n := len(a.calls); {
	case n == 0:
		a.t.Fatalf("%s wasn't called.", a.key)
		return nil
	case n > 1:
		a.t.Fatalf("%s was called more than once: expected 1 call, was called %d times.", a.key, n)
		return nil
	}

	return &MetaAssertion{t: a.t, key: a.key, calls: a.calls}
}

// WasCalledTimes asserts the key was called exactly n times and returns a
// MetaAssertion for payload checks. n may be zero: the check then passes on
// an empty log, and the returned MetaAssertion's With fails while NotWith is
// vacuously true.
func (a *Assertion) WasCalledTimes(n int) *MetaAssertion {
	a.t.Helper()
	if !a.consume() {
		return nil
	}

	if n < 0 {
		a.t.Fatalf("WasCalledTimes requires a non-negative count, got %d", n)
		return nil
	}

	switch got := len(a.calls); {
	case got == n:
		// pass
	case got == 0:
		a.t.Fatalf("%s should've been called %d times, but wasn't called.", a.key, n)
		return nil
	case n == 0:
		a.t.Fatalf("%s: expected 0 calls, was called %d times.", a.key, got)
		return nil
	default:
		a.t.Fatalf("%s: expected %d calls, was called %d times.", a.key, n, got)
		return nil
	}

	return &MetaAssertion{t: a.t, key: a.key, calls: a.calls}
}

// WasntCalled asserts the key was never called. Terminal.
func (a *Assertion) WasntCalled() {
	a.t.Helper()
	if !a.consume() {
		return
	}

	if n := len(a.calls); n != 0 {
		a.t.Fatalf("%s should not have been called but was called %d times.", a.key, n)
	}
}

// consume marks the assertion spent. A second check on the same Assertion is
// a test bug (the snapshot may be stale) and fails the test.
func (a *Assertion) consume() bool {
	a.t.Helper()
	if a.spent {
		a.t.Fatalf("assertion for %s was already consumed; call AssertThat again for a fresh snapshot.", a.key)
		return false
	}
	a.spent = true
	return true
}

// MetaAssertion is the payload stage of an assertion chain. Every check is
// existential over the snapshot: it passes when at least one recorded call
// matches. Each check re-scans the full snapshot independently, so chaining
// order does not matter.
type MetaAssertion struct {
	t     testing.TB
	key   string
	calls []*call.Record
}

// With asserts that at least one recorded call's arguments equal args, where
// equality requires the exact logged type. A call logged without arguments or
// with arguments of a different type fails the test rather than silently not
// matching.
func (m *MetaAssertion) With(args any) *MetaAssertion {
	m.t.Helper()

	if len(m.calls) == 0 {
		m.t.Fatalf("%s wasn't called.", m.key)
		return m
	}

	for _, rec := range m.calls {
		if rec.Args == nil {
			m.t.Fatalf("no arguments were logged for the calls to %s.", m.key)
			return m
		}
		ok, err := rec.Args.Equal(args)
		if err != nil {
			m.t.Fatalf("%s: logged arguments had a different type than expected: %v", m.key, err)
			return m
		}
		if ok {
			return m
		}
	}

	m.t.Fatalf("%s wasn't called with the arguments specified.", m.key)
	return m
}

// NotWith asserts that no recorded call's arguments equal args. Vacuously
// true when the key was never called. As with With, a type mismatch between
// logged and asserted arguments fails loud instead of counting as "not equal".
func (m *MetaAssertion) NotWith(args any) *MetaAssertion {
	m.t.Helper()

	for _, rec := range m.calls {
		if rec.Args == nil {
			m.t.Fatalf("no arguments were logged for the calls to %s.", m.key)
			return m
		}
		ok, err := rec.Args.Equal(args)
		if err != nil {
			m.t.Fatalf("%s: logged arguments had a different type than expected: %v", m.key, err)
			return m
		}
		if ok {
			m.t.Fatalf("%s was called with the arguments when it shouldn't have been.", m.key)
			return m
		}
	}

	return m
}

// WithMatch asserts that at least one recorded call's arguments satisfy the
// given expr-lang predicate. The logged argument value is bound to "args":
//
//	tr.AssertThat(t, "Store::Save").
//	    WasCalledTimes(3).
//	    WithMatch(`args[0] == "Ann" and args[1] > 21`)
//
// A compile or evaluation error fails the test.
func (m *MetaAssertion) WithMatch(expression string) *MetaAssertion {
	m.t.Helper()

	if len(m.calls) == 0 {
		m.t.Fatalf("%s wasn't called.", m.key)
		return m
	}

	for _, rec := range m.calls {
		if rec.Args == nil {
			m.t.Fatalf("no arguments were logged for the calls to %s.", m.key)
			return m
		}

		env := map[string]any{"args": rec.Args.Value()}
		program, err := expr.Compile(expression, expr.Env(env), expr.AsBool())
		if err != nil {
			m.t.Fatalf("%s: compiling match expression %q: %v", m.key, expression, err)
			return m
		}
		out, err := expr.Run(program, env)
		if err != nil {
			m.t.Fatalf("%s: evaluating match expression %q: %v", m.key, expression, err)
			return m
		}
		if matched, _ := out.(bool); matched {
			return m
		}
	}

	m.t.Fatalf("%s wasn't called with arguments matching %q.", m.key, expression)
	return m
}

// AndReturned asserts that at least one recorded call returned value, with
// the same exact-type equality and loud-failure behavior as With. Terminal.
func (m *MetaAssertion) AndReturned(value any) {
	m.t.Helper()

	if len(m.calls) == 0 {
		m.t.Fatalf("%s wasn't called.", m.key)
		return
	}

	for _, rec := range m.calls {
		if rec.Returned == nil {
			m.t.Fatalf("no return value was logged for the calls to %s.", m.key)
			return
		}
		ok, err := rec.Returned.Equal(value)
		if err != nil {
			m.t.Fatalf("%s: logged return value had a different type than expected: %v", m.key, err)
			return
		}
		if ok {
			return
		}
	}

	m.t.Fatalf("%s didn't return the value specified.", m.key)
}
