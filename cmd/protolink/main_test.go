package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chazu/protolink/manifest"
)

func TestRunAll(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, manifest.Default(), "all", plainHeading); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"== Function binding ==",
		"This isn't the right context!: click",
		"== Parasitic combination inheritance ==",
		"Charlie is 22.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Function binding") > strings.Index(out, "Parasitic") {
		t.Error("binding demo should run first")
	}
}

func TestRunSingle(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, manifest.Default(), "inheritance", plainHeading); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(buf.String(), "Function binding") {
		t.Error("binding demo should not run")
	}
	if !strings.HasPrefix(buf.String(), "== Parasitic combination inheritance ==\n") {
		t.Errorf("output = %q, want inheritance heading first", buf.String())
	}
}

func TestRunUnknownDemo(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, manifest.Default(), "closures", plainHeading)
	if err == nil || !strings.Contains(err.Error(), "unknown demo") {
		t.Errorf("error = %v, want unknown demo", err)
	}
}

func TestRunUsesConfig(t *testing.T) {
	m := manifest.Default()
	m.Inheritance.Name = "Ada"
	m.Inheritance.Age = 36

	var buf bytes.Buffer
	if err := run(&buf, m, "inheritance", plainHeading); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), "Ada is 36.") {
		t.Errorf("output = %q, want configured name and age", buf.String())
	}
}

func TestStyledHeadingKeepsTitle(t *testing.T) {
	if !strings.Contains(styledHeading("Title"), "Title") {
		t.Error("styled heading should contain the title")
	}
}
