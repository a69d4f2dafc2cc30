package vm

import (
	"fmt"
	"strconv"
	"strings"
)

// InspectionResult contains structured information about an inspected value.
type InspectionResult struct {
	Type      string              // Nil, String, Bool, Int, Float, Object, List, Callable, or the Go type
	Value     string              // String representation of the value
	ClassName string              // For objects: the class name
	Fields    []FieldInfo         // For objects: fields in name order
	Elements  []*InspectionResult // For lists: preview of elements (limited)
	Size      int                 // For lists: number of elements
}

// FieldInfo contains information about a single object field.
type FieldInfo struct {
	Name  string
	Value *InspectionResult
}

// MaxElementPreview is the maximum number of list elements to preview.
const MaxElementPreview = 10

// DefaultMaxDepth is the default recursion depth for inspection.
const DefaultMaxDepth = 3

// Inspect inspects a value with the default maximum depth.
func Inspect(v Value) *InspectionResult {
	return InspectDepth(v, DefaultMaxDepth)
}

// InspectDepth inspects a value with a specified maximum recursion depth.
// When depth reaches 0, nested objects are shown as summaries only.
func InspectDepth(v Value, depth int) *InspectionResult {
	result := &InspectionResult{}

	switch x := v.(type) {
	case nil:
		result.Type = "Nil"
		result.Value = "nil"

	case string:
		result.Type = "String"
		result.Value = strconv.Quote(x)

	case bool:
		result.Type = "Bool"
		result.Value = strconv.FormatBool(x)

	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		result.Type = "Int"
		result.Value = fmt.Sprintf("%d", x)

	case float32, float64:
		result.Type = "Float"
		result.Value = fmt.Sprintf("%g", x)

	case *Object:
		if x == nil {
			result.Type = "Nil"
			result.Value = "nil"
			return result
		}
		return inspectObject(x, depth)

	case []Value:
		return inspectList(x, depth)

	case []string:
		items := make([]Value, len(x))
		for i, s := range x {
			items[i] = s
		}
		return inspectList(items, depth)

	case Callable, MethodFunc, *BoundCallable:
		result.Type = "Callable"
		result.Value = fmt.Sprintf("<%T>", x)

	default:
		result.Type = fmt.Sprintf("%T", x)
		result.Value = fmt.Sprintf("%v", x)
	}

	return result
}

func inspectObject(obj *Object, depth int) *InspectionResult {
	result := &InspectionResult{
		Type:      "Object",
		ClassName: obj.ClassName(),
		Value:     obj.String(),
	}
	if depth <= 0 {
		return result
	}
	names := obj.FieldNames()
	result.Fields = make([]FieldInfo, 0, len(names))
	for _, name := range names {
		result.Fields = append(result.Fields, FieldInfo{
			Name:  name,
			Value: InspectDepth(obj.Get(name), depth-1),
		})
	}
	return result
}

func inspectList(items []Value, depth int) *InspectionResult {
	result := &InspectionResult{
		Type: "List",
		Size: len(items),
	}
	if depth <= 0 {
		result.Value = fmt.Sprintf("[%d items]", len(items))
		return result
	}
	for i, item := range items {
		if i >= MaxElementPreview {
			break
		}
		result.Elements = append(result.Elements, InspectDepth(item, depth-1))
	}
	return result
}

// String renders the result on one line: objects as Name{field: value},
// lists as [a, b, ...].
func (r *InspectionResult) String() string {
	var b strings.Builder
	r.write(&b)
	return b.String()
}

func (r *InspectionResult) write(b *strings.Builder) {
	switch r.Type {
	case "Object":
		if r.Fields == nil {
			b.WriteString(r.Value)
			return
		}
		b.WriteString(r.ClassName)
		b.WriteByte('{')
		for i, f := range r.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			b.WriteString(": ")
			f.Value.write(b)
		}
		b.WriteByte('}')
	case "List":
		if r.Elements == nil && r.Size > 0 {
			b.WriteString(r.Value)
			return
		}
		b.WriteByte('[')
		for i, e := range r.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			e.write(b)
		}
		if r.Size > len(r.Elements) {
			b.WriteString(", ...")
		}
		b.WriteByte(']')
	default:
		b.WriteString(r.Value)
	}
}
