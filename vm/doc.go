// Package vm implements the protolink object core.
//
// This package contains:
//   - Objects that act both as execution contexts and as instances
//   - Method tables and class descriptors
//   - Class composition with deferred, ordered construction
//   - Message dispatch and capability ("is-a") queries
//   - Function binding with partial application
//   - Inspection and CBOR snapshots of objects
//
// Nothing in this package performs I/O or logs; diagnostics are the
// caller's concern.
package vm
