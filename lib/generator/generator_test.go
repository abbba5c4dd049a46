package generator

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm/classbound/lib/catalog"
)

const sample = `
components:
  - name: LinkButton
    extends: Button
    class: btn--link
    element: a
  - name: Button
    element: button
    class: [btn]
    variants:
      primary: btn--primary
      large: [btn--lg, text-lg]
  - name: Danger
    from: Button
    variants:
      primary: btn--danger
  - name: Card
    class: {card: true, flat: false}
  - name: CardAction
    element: Card
`

func mustCatalog(t *testing.T, src string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return c
}

func parseGenerated(t *testing.T, src []byte) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "components_cb.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	return f
}

func varNames(f *ast.File) []string {
	var names []string
	for _, d := range f.Decls {
		gd, ok := d.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			for _, n := range spec.(*ast.ValueSpec).Names {
				names = append(names, n.Name)
			}
		}
	}
	return names
}

func TestGenerate(t *testing.T) {
	src, err := Generate(mustCatalog(t, sample), Options{Package: "ui", Source: "catalog.yaml"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	f := parseGenerated(t, src)
	if f.Name.Name != "ui" {
		t.Errorf("package = %q, want ui", f.Name.Name)
	}

	got := strings.Join(varNames(f), ",")
	want := "Button,LinkButton,Danger,Card,CardAction"
	if got != want {
		t.Errorf("var order = %s, want %s", got, want)
	}

	code := string(src)
	for _, s := range []string{
		"// Code generated by classbound. DO NOT EDIT.",
		"// Source: catalog.yaml",
		`"github.com/pthm/classbound"`,
		`[]any{"btn"}`,
		`{Name: "primary", Class: "btn--primary"}`,
		`{Name: "large", Class: []any{"btn--lg", "text-lg"}}`,
		`ElementType: "button"`,
		`Button.Extend("btn--link", "LinkButton").As("a")`,
		`Button.WithVariants(classbound.Variants{`,
		`}, "Danger")`,
		`map[string]bool{"card": true, "flat": false}`,
		`ElementType: Card`,
		"// LinkButton extends Button.",
	} {
		if !strings.Contains(code, s) {
			t.Errorf("generated code missing %q\n%s", s, code)
		}
	}
}

func TestGenerateDefaultPackage(t *testing.T) {
	src, err := Generate(mustCatalog(t, "components:\n  - name: Box\n"), Options{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	f := parseGenerated(t, src)
	if f.Name.Name != "components" {
		t.Errorf("package = %q, want components", f.Name.Name)
	}
	if strings.Contains(string(src), "// Source:") {
		t.Error("unexpected Source header")
	}
}

func TestGenerateCustomElement(t *testing.T) {
	src, err := Generate(mustCatalog(t, "components:\n  - name: Card\n    element: x-card\n"), Options{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	parseGenerated(t, src)
	if !strings.Contains(string(src), `ElementType: "x-card"`) {
		t.Errorf("custom element not quoted\n%s", src)
	}
}

func TestGenerateRejectsNames(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts Options
	}{
		{"import collision", "components:\n  - name: classbound\n", Options{}},
		{"package collision", "components:\n  - name: ui\n", Options{Package: "ui"}},
		{"bad package", "components:\n  - name: Box\n", Options{Package: "my-ui"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(mustCatalog(t, tt.src), tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	cat := mustCatalog(t, sample)
	path := filepath.Join(t.TempDir(), "components_cb.go")

	var out bytes.Buffer
	g := New(Options{Package: "ui", Out: &out})
	if err := g.WriteFile(cat, path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	parseGenerated(t, data)

	if !strings.Contains(out.String(), "generating "+path) {
		t.Errorf("progress output = %q", out.String())
	}
}

func TestWriteFileDryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "components_cb.go")

	var out bytes.Buffer
	g := New(Options{DryRun: true, Out: &out})
	if err := g.WriteFile(mustCatalog(t, sample), path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("dry run wrote %s", path)
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("dry run did not report path: %q", out.String())
	}
}

func TestClassLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, "nil"},
		{"string", `a"b`, `"a\"b"`},
		{"bool", false, "false"},
		{"int", 3, "3"},
		{"strings", []string{"a", "b"}, `[]string{"a", "b"}`},
		{"nested", []any{"a", []any{"b"}, nil}, `[]any{"a", []any{"b"}, nil}`},
		{"bool map sorted", map[string]bool{"z": true, "a": false}, `map[string]bool{"a": false, "z": true}`},
		{"any map", map[string]any{"on": true}, `map[string]bool{"on": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classLiteral(tt.input)
			if err != nil {
				t.Fatalf("classLiteral(%v) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("classLiteral(%v) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}

	if _, err := classLiteral(map[string]any{"x": 1}); err == nil {
		t.Error("expected error for non-boolean map value")
	}
	if _, err := classLiteral(1.5); err == nil {
		t.Error("expected error for float")
	}
}
