package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/pthm/classbound/lib/catalog"
	"github.com/pthm/classbound/lib/dom"
)

const fileTemplate = `// Code generated by classbound. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.Package}}

import "github.com/pthm/classbound"

{{range .Decls -}}
{{if .Description}}// {{.Name}} {{.Description}}.
{{end -}}
var {{.Name}} = {{.Expr}}

{{end -}}
`

var tmpl = template.Must(template.New("classbound").Parse(fileTemplate))

// renderTemplate renders the generated code template.
func renderTemplate(file *fileData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, file); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatSource(code []byte) ([]byte, error) {
	formatted, err := format.Source(code)
	if err != nil {
		return nil, fmt.Errorf("format source: %w", err)
	}
	return formatted, nil
}

// componentExpr builds the expression that constructs e. References to
// other entries use their var names.
func componentExpr(e catalog.Entry) (string, error) {
	displayName := e.DisplayName
	if displayName == "" {
		displayName = e.Name
	}

	class, err := classLiteral(e.Class)
	if err != nil {
		return "", fmt.Errorf("class: %w", err)
	}
	variants, err := variantsLiteral(e.Variants)
	if err != nil {
		return "", err
	}

	var expr string
	switch {
	case e.Extends != "":
		args := []string{class, strconv.Quote(displayName)}
		if variants != "nil" {
			args = append(args, variants)
		}
		expr = fmt.Sprintf("%s.Extend(%s)", e.Extends, strings.Join(args, ", "))
	case e.From != "":
		expr = fmt.Sprintf("%s.WithVariants(%s, %s)", e.From, variants, strconv.Quote(displayName))
	default:
		var fields []string
		if class != "nil" {
			fields = append(fields, "ClassName: "+class)
		}
		fields = append(fields, "DisplayName: "+strconv.Quote(displayName))
		if variants != "nil" {
			fields = append(fields, "Variants: "+variants)
		}
		if e.Element != "" {
			fields = append(fields, "ElementType: "+elementExpr(e.Element))
		}
		return "classbound.New(classbound.Options{\n" + strings.Join(fields, ",\n") + ",\n})", nil
	}

	if e.Element != "" {
		expr += fmt.Sprintf(".As(%s)", elementExpr(e.Element))
	}
	return expr, nil
}

// elementExpr is a quoted tag or the var of another component.
func elementExpr(name string) string {
	if dom.ValidTag(name) {
		return strconv.Quote(name)
	}
	return name
}

func variantsLiteral(list catalog.VariantList) (string, error) {
	if len(list) == 0 {
		return "nil", nil
	}

	var b strings.Builder
	b.WriteString("classbound.Variants{\n")
	for _, v := range list {
		class, err := classLiteral(v.Class)
		if err != nil {
			return "", fmt.Errorf("variant %s: %w", v.Name, err)
		}
		fmt.Fprintf(&b, "{Name: %s, Class: %s},\n", strconv.Quote(v.Name), class)
	}
	b.WriteString("}")
	return b.String(), nil
}

// classLiteral renders a class value as Go source.
func classLiteral(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "nil", nil
	case string:
		return strconv.Quote(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case []string:
		items := make([]string, len(x))
		for i, s := range x {
			items[i] = strconv.Quote(s)
		}
		return "[]string{" + strings.Join(items, ", ") + "}", nil
	case []any:
		items := make([]string, len(x))
		for i, item := range x {
			lit, err := classLiteral(item)
			if err != nil {
				return "", err
			}
			items[i] = lit
		}
		return "[]any{" + strings.Join(items, ", ") + "}", nil
	case map[string]bool:
		return boolMapLiteral(x), nil
	case map[string]any:
		m := make(map[string]bool, len(x))
		for k, item := range x {
			b, ok := item.(bool)
			if !ok {
				return "", fmt.Errorf("%q must map to a boolean", k)
			}
			m[k] = b
		}
		return boolMapLiteral(m), nil
	}
	return "", fmt.Errorf("unsupported class value %T", v)
}

func boolMapLiteral(m map[string]bool) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]string, len(keys))
	for i, k := range keys {
		items[i] = fmt.Sprintf("%s: %t", strconv.Quote(k), m[k])
	}
	return "map[string]bool{" + strings.Join(items, ", ") + "}"
}
