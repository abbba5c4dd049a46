// Package generator writes Go source declaring the components of a catalog.
//
// The generated file holds one package-level var per component, in
// dependency order, so a catalog can be compiled into a program instead of
// being loaded at startup:
//
//	var Button = classbound.New(classbound.Options{...})
//	var LinkButton = Button.Extend("btn--link", "LinkButton").As("a")
package generator

import (
	"fmt"
	"go/token"
	"io"
	"os"

	"github.com/pthm/classbound/lib/catalog"
)

// Options configures the generator.
type Options struct {
	// Package is the package clause of the generated file. Defaults to
	// "components".
	Package string

	// Source is recorded in the file header, usually the catalog path.
	Source string

	// DryRun reports the target path without writing anything.
	DryRun bool

	// Out receives progress messages. Defaults to os.Stdout.
	Out io.Writer
}

// Generator generates component declarations.
type Generator struct {
	opts Options
}

// New creates a new generator.
func New(opts Options) *Generator {
	if opts.Package == "" {
		opts.Package = "components"
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Generator{opts: opts}
}

// Generate renders formatted Go source for every component in cat.
func (g *Generator) Generate(cat *catalog.Catalog) ([]byte, error) {
	file, err := g.plan(cat)
	if err != nil {
		return nil, err
	}

	code, err := renderTemplate(file)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	return formatSource(code)
}

// WriteFile generates source for cat and writes it to path.
func (g *Generator) WriteFile(cat *catalog.Catalog, path string) error {
	fmt.Fprintf(g.opts.Out, "generating %s\n", path)

	if g.opts.DryRun {
		return nil
	}

	file, err := g.plan(cat)
	if err != nil {
		return err
	}
	code, err := renderTemplate(file)
	if err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	formatted, err := formatSource(code)
	if err != nil {
		// Write unformatted for debugging
		if writeErr := os.WriteFile(path+".unformatted", code, 0644); writeErr == nil {
			fmt.Fprintf(g.opts.Out, "  wrote unformatted code to %s.unformatted for debugging\n", path)
		}
		return err
	}

	return os.WriteFile(path, formatted, 0644)
}

// Generate is shorthand for New(opts).Generate(cat).
func Generate(cat *catalog.Catalog, opts Options) ([]byte, error) {
	return New(opts).Generate(cat)
}

// fileData is the template input.
type fileData struct {
	Package string
	Source  string
	Decls   []decl
}

// decl is one generated var.
type decl struct {
	Name        string
	Description string
	Expr        string
}

// plan resolves every entry into a var declaration.
func (g *Generator) plan(cat *catalog.Catalog) (*fileData, error) {
	if !token.IsIdentifier(g.opts.Package) {
		return nil, fmt.Errorf("invalid package name %q", g.opts.Package)
	}

	file := &fileData{
		Package: g.opts.Package,
		Source:  g.opts.Source,
	}

	for _, name := range cat.Order() {
		e, _ := cat.Entry(name)
		if err := checkVarName(name, g.opts.Package); err != nil {
			return nil, err
		}

		expr, err := componentExpr(e)
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", name, err)
		}
		file.Decls = append(file.Decls, decl{
			Name:        name,
			Description: describe(e),
			Expr:        expr,
		})
	}
	return file, nil
}

func checkVarName(name, pkg string) error {
	switch {
	case token.IsKeyword(name):
		return fmt.Errorf("component %q is a Go keyword", name)
	case name == "classbound" || name == pkg:
		return fmt.Errorf("component %q collides with a package name", name)
	}
	return nil
}

func describe(e catalog.Entry) string {
	switch {
	case e.Extends != "":
		return "extends " + e.Extends
	case e.From != "":
		return "re-varies " + e.From
	}
	return ""
}
