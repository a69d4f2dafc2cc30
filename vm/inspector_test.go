package vm

import (
	"strings"
	"testing"
)

func TestInspectScalars(t *testing.T) {
	tests := []struct {
		v        Value
		wantType string
		want     string
	}{
		{nil, "Nil", "nil"},
		{"hi", "String", `"hi"`},
		{true, "Bool", "true"},
		{22, "Int", "22"},
		{uint64(7), "Int", "7"},
		{1.5, "Float", "1.5"},
		{(*Object)(nil), "Nil", "nil"},
		{struct{ X int }{1}, "struct { X int }", "{1}"},
	}

	for _, tt := range tests {
		r := Inspect(tt.v)
		if r.Type != tt.wantType {
			t.Errorf("Inspect(%v).Type = %q, want %q", tt.v, r.Type, tt.wantType)
		}
		if r.String() != tt.want {
			t.Errorf("Inspect(%v).String() = %q, want %q", tt.v, r.String(), tt.want)
		}
	}
}

func TestInspectObject(t *testing.T) {
	composed := mustCompose(newSubType(nil), newSuperType(nil))
	obj, _ := NewInstance(composed, "Charlie", 22)

	r := Inspect(obj)
	if r.Type != "Object" || r.ClassName != "SubType" {
		t.Errorf("Type/ClassName = %s/%s, want Object/SubType", r.Type, r.ClassName)
	}
	if len(r.Fields) != 3 {
		t.Fatalf("Fields = %d, want 3", len(r.Fields))
	}
	want := `SubType{age: 22, colors: ["red", "blue", "green"], name: "Charlie"}`
	if got := r.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestInspectEmptyObject(t *testing.T) {
	if got := Inspect(NewObject()).String(); got != "Object{}" {
		t.Errorf("String() = %q, want Object{}", got)
	}
}

func TestInspectDepthLimit(t *testing.T) {
	inner := NewObjectFrom(map[string]Value{"x": 1})
	outer := NewObjectFrom(map[string]Value{"inner": inner})

	got := InspectDepth(outer, 1).String()
	if !strings.HasPrefix(got, "Object{inner: <Object object_") {
		t.Errorf("String() = %q, want nested object summarized", got)
	}

	got = InspectDepth(outer, 2).String()
	if got != "Object{inner: Object{x: 1}}" {
		t.Errorf("String() = %q, want nested object expanded", got)
	}
}

func TestInspectListPreview(t *testing.T) {
	items := make([]Value, MaxElementPreview+2)
	for i := range items {
		items[i] = i
	}
	r := Inspect(items)
	if r.Size != len(items) {
		t.Errorf("Size = %d, want %d", r.Size, len(items))
	}
	if len(r.Elements) != MaxElementPreview {
		t.Errorf("Elements = %d, want %d", len(r.Elements), MaxElementPreview)
	}
	if !strings.HasSuffix(r.String(), ", ...]") {
		t.Errorf("String() = %q, want truncated list", r.String())
	}
	if got := Inspect([]Value{}).String(); got != "[]" {
		t.Errorf("empty list = %q, want []", got)
	}
	if got := InspectDepth([]Value{1, 2}, 0).String(); got != "[2 items]" {
		t.Errorf("depth 0 list = %q, want [2 items]", got)
	}
}

func TestInspectCallable(t *testing.T) {
	b := Bind(func(Value, []Value) (Value, error) { return nil, nil }, nil)
	if r := Inspect(b); r.Type != "Callable" {
		t.Errorf("Type = %q, want Callable", r.Type)
	}
}
