package call

import "testing"

func TestBuilder(t *testing.T) {
	rec := New().
		WithArgs(Args("Ann", 30)).
		WithReturn("hi Ann").
		Record()

	if rec.Args == nil {
		t.Fatal("expected an argument payload")
	}
	if rec.Returned == nil {
		t.Fatal("expected a return payload")
	}

	ok, err := rec.Args.Equal([]any{"Ann", 30})
	if err != nil {
		t.Fatalf("argument comparison: %v", err)
	}
	if !ok {
		t.Error("argument tuple mismatch")
	}

	ok, err = rec.Returned.Equal("hi Ann")
	if err != nil {
		t.Fatalf("return comparison: %v", err)
	}
	if !ok {
		t.Error("return value mismatch")
	}
}

func TestBuilder_EmptyRecord(t *testing.T) {
	rec := New().Record()

	if rec.Args != nil {
		t.Error("expected no argument payload")
	}
	if rec.Returned != nil {
		t.Error("expected no return payload")
	}
}

func TestArgs(t *testing.T) {
	tuple := Args("a", 1, true)
	if len(tuple) != 3 {
		t.Fatalf("tuple length: got %d want 3", len(tuple))
	}
}
