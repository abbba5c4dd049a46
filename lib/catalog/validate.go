package catalog

import (
	"fmt"
	"go/token"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/pthm/classbound/lib/dom"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// validatorInstance configures and returns the shared validator.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
			return isIdent(fl.Field().String())
		})

		// element is a host tag or the name of another entry; the
		// reference itself is resolved later.
		_ = v.RegisterValidation("element", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return dom.ValidTag(s) || isIdent(s)
		})

		validateInst = v
	})
	return validateInst
}

// isIdent reports whether s can name a generated Go var.
func isIdent(s string) bool {
	return identPattern.MatchString(s) && !token.IsKeyword(s)
}

// Validate checks doc and returns the first problem found.
//
// Field rules come from struct tags. On top of them, names must be unique,
// every reference (extends, from, element) must name an entry, class
// values must be strings, lists or maps of booleans, and references must
// not form a cycle.
func Validate(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidCatalog)
	}
	if err := validatorInstance().Struct(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	index := make(map[string]int, len(doc.Components))
	for i, e := range doc.Components {
		if j, ok := index[e.Name]; ok {
			return fmt.Errorf("%w: %q at components[%d] and components[%d]", ErrDuplicate, e.Name, j, i)
		}
		index[e.Name] = i
	}

	for _, e := range doc.Components {
		if e.From != "" && e.Class != nil {
			return fmt.Errorf("%w: %s: class cannot be combined with from", ErrInvalidCatalog, e.Name)
		}
		if err := validClass(e.Class); err != nil {
			return fmt.Errorf("%w: %s: class: %v", ErrInvalidCatalog, e.Name, err)
		}
		seen := make(map[string]bool, len(e.Variants))
		for _, v := range e.Variants {
			if seen[v.Name] {
				return fmt.Errorf("%w: %s: variant %q declared twice", ErrDuplicate, e.Name, v.Name)
			}
			seen[v.Name] = true
			if err := validClass(v.Class); err != nil {
				return fmt.Errorf("%w: %s: variant %s: %v", ErrInvalidCatalog, e.Name, v.Name, err)
			}
		}
		for _, ref := range references(e) {
			if _, ok := index[ref]; !ok {
				return fmt.Errorf("%w: %s references %q", ErrUnknownComponent, e.Name, ref)
			}
		}
	}

	if cycle := detectCycle(doc.Components); len(cycle) > 0 {
		return fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " -> "))
	}
	return nil
}

// references lists the entries e depends on.
func references(e Entry) []string {
	var refs []string
	if p := e.Parent(); p != "" {
		refs = append(refs, p)
	}
	if e.Element != "" && !dom.ValidTag(e.Element) {
		refs = append(refs, e.Element)
	}
	return refs
}

func validClass(v any) error {
	switch x := v.(type) {
	case nil, string:
		return nil
	case []any:
		for _, item := range x {
			if err := validClass(item); err != nil {
				return err
			}
		}
		return nil
	case []string:
		return nil
	case map[string]any:
		for k, item := range x {
			if _, ok := item.(bool); !ok {
				return fmt.Errorf("%q must map to a boolean", k)
			}
		}
		return nil
	case map[string]bool:
		return nil
	}
	return fmt.Errorf("unsupported value %T", v)
}

// detectCycle returns the entries participating in a reference cycle, or
// nil if no cycle exists.
func detectCycle(entries []Entry) []string {
	graph := make(map[string][]string, len(entries))
	for _, e := range entries {
		graph[e.Name] = references(e)
	}

	visiting := make(map[string]bool, len(entries))
	visited := make(map[string]bool, len(entries))
	var stack []string

	var cycle []string
	var dfs func(string) bool
	dfs = func(node string) bool {
		visiting[node] = true
		stack = append(stack, node)

		for _, dep := range graph[node] {
			if visited[dep] {
				continue
			}
			if visiting[dep] {
				idx := indexOf(stack, dep)
				cycle = append([]string{}, stack[idx:]...)
				cycle = append(cycle, dep)
				return true
			}
			if dfs(dep) {
				return true
			}
		}

		visiting[node] = false
		visited[node] = true
		stack = stack[:len(stack)-1]
		return false
	}

	names := make([]string, 0, len(graph))
	for name := range graph {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if visited[name] {
			continue
		}
		if dfs(name) {
			break
		}
	}

	return cycle
}

// dependencyOrder returns entry names so that every entry follows the
// entries it references. Ties keep declaration order. entries must be
// acyclic.
func dependencyOrder(entries []Entry) []string {
	byName := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
	}

	visited := make(map[string]bool, len(entries))
	order := make([]string, 0, len(entries))

	var visit func(string)
	visit = func(name string) {
		if visited[name] {
			return
		}
		visited[name] = true
		for _, dep := range references(byName[name]) {
			visit(dep)
		}
		order = append(order, name)
	}

	for _, e := range entries {
		visit(e.Name)
	}
	return order
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}
