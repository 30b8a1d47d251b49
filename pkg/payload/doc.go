// Package payload provides a type-erased container for a single captured value.
//
// A Payload stores one value of any type while preserving its dynamic type, so
// assertion code can later recover it as a caller-asserted concrete type. There
// is no partial or field-level access: a payload is recovered whole or the
// recovery fails with ErrTypeMismatch.
//
// Equality between a payload and an expected value is only ever evaluated after
// the type check passes, using reflect.DeepEqual on the concrete values. A type
// difference is always surfaced as an error, never as a silent false.
//
// # Package Design
//
// This is a leaf package with no internal dependencies, allowing it to be
// imported by any package without creating import cycles.
package payload
