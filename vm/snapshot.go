package vm

import (
	"crypto/sha256"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// snapshotEncMode encodes in canonical mode so equal objects produce
// equal bytes.
var snapshotEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("vm: failed to create CBOR enc mode: %v", err))
	}
	snapshotEncMode = em
}

// SnapshotRecord is the encoded form of an object: its class name and
// its fields. Nested objects appear as nested records.
type SnapshotRecord struct {
	Class  string           `cbor:"class"`
	Fields map[string]Value `cbor:"fields"`
}

// Snapshot serializes obj's class name and fields to canonical CBOR.
// Nested objects are walked through []Value, map[string]Value and
// map[any]any. An object held in any other container is an error, as are
// fields holding functions or channels and an object that reaches itself
// through its fields.
func Snapshot(obj *Object) ([]byte, error) {
	if obj == nil {
		return nil, misuse("snapshot", "nil object")
	}
	rec, err := recordOf(obj, make(map[*Object]bool))
	if err != nil {
		return nil, err
	}
	data, err := snapshotEncMode.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("vm: snapshot %s: %w", obj, err)
	}
	return data, nil
}

// DecodeSnapshot reverses Snapshot. Decoded values take CBOR's generic
// shapes: unsigned integers become uint64, nested maps map[any]any.
func DecodeSnapshot(data []byte) (*SnapshotRecord, error) {
	var rec SnapshotRecord
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("vm: decode snapshot: %w", err)
	}
	return &rec, nil
}

// Fingerprint returns the SHA-256 of obj's snapshot. Two objects with the
// same class name and equal fields share a fingerprint.
func Fingerprint(obj *Object) ([32]byte, error) {
	data, err := Snapshot(obj)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(data), nil
}

func recordOf(obj *Object, seen map[*Object]bool) (*SnapshotRecord, error) {
	if seen[obj] {
		return nil, misuse("snapshot", "cycle through %s", obj)
	}
	seen[obj] = true
	defer delete(seen, obj)

	fields := obj.Fields()
	rec := &SnapshotRecord{
		Class:  obj.ClassName(),
		Fields: make(map[string]Value, len(fields)),
	}
	for name, v := range fields {
		enc, err := snapshotValue(v, seen)
		if err != nil {
			return nil, err
		}
		rec.Fields[name] = enc
	}
	return rec, nil
}

func snapshotValue(v Value, seen map[*Object]bool) (Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case *Object:
		if x == nil {
			return nil, nil
		}
		return recordOf(x, seen)
	case []Value:
		out := make([]Value, len(x))
		for i, item := range x {
			enc, err := snapshotValue(item, seen)
			if err != nil {
				return nil, err
			}
			out[i] = enc
		}
		return out, nil
	case map[string]Value:
		out := make(map[string]Value, len(x))
		for k, item := range x {
			enc, err := snapshotValue(item, seen)
			if err != nil {
				return nil, err
			}
			out[k] = enc
		}
		return out, nil
	case map[any]any:
		out := make(map[any]any, len(x))
		for k, item := range x {
			if holdsObject(reflect.ValueOf(k), make(map[uintptr]bool)) {
				return nil, misuse("snapshot", "object used as a map key")
			}
			enc, err := snapshotValue(item, seen)
			if err != nil {
				return nil, err
			}
			out[k] = enc
		}
		return out, nil
	}
	if holdsObject(reflect.ValueOf(v), make(map[uintptr]bool)) {
		return nil, misuse("snapshot", "object nested in %T", v)
	}
	return v, nil
}

var objectType = reflect.TypeFor[*Object]()

// holdsObject reports whether rv reaches an *Object through containers
// snapshotValue does not walk itself. Such objects would encode as empty
// maps and lose their fields.
func holdsObject(rv reflect.Value, visited map[uintptr]bool) bool {
	if !rv.IsValid() {
		return false
	}
	if rv.Type() == objectType {
		return !rv.IsNil()
	}
	switch rv.Kind() {
	case reflect.Interface:
		return holdsObject(rv.Elem(), visited)
	case reflect.Pointer:
		if rv.IsNil() {
			return false
		}
		if visited[rv.Pointer()] {
			return false
		}
		visited[rv.Pointer()] = true
		return holdsObject(rv.Elem(), visited)
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if holdsObject(rv.Index(i), visited) {
				return true
			}
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if holdsObject(iter.Key(), visited) || holdsObject(iter.Value(), visited) {
				return true
			}
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if holdsObject(rv.Field(i), visited) {
				return true
			}
		}
	}
	return false
}
