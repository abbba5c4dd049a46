// Package catalog loads class-bound component definitions from YAML.
//
// A catalog declares components by name so that a design system's class
// vocabulary lives in one file:
//
//	components:
//	  - name: Button
//	    element: button
//	    class: [btn]
//	    variants:
//	      primary: btn--primary
//	      large: [btn--lg, text-lg]
//	  - name: LinkButton
//	    extends: Button
//	    class: btn--link
//	    element: a
//
// Every entry is validated and built into a *classbound.Component when the
// catalog is created. The built components are immutable, so a Catalog is
// safe for concurrent use.
package catalog

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/pthm/classbound"
	"github.com/pthm/classbound/lib/dom"
)

// Option configures a Catalog.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used while loading and building.
// Defaults to a disabled logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Catalog is a validated, fully built set of components.
type Catalog struct {
	doc        Document
	order      []string
	entries    map[string]Entry
	components map[string]*classbound.Component
	log        zerolog.Logger
}

// New validates doc and builds every component it declares.
func New(doc *Document, opts ...Option) (*Catalog, error) {
	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	if err := Validate(doc); err != nil {
		o.logger.Error().Err(err).Msg("catalog validation failed")
		return nil, err
	}

	c := &Catalog{
		doc:        *doc,
		entries:    make(map[string]Entry, len(doc.Components)),
		components: make(map[string]*classbound.Component, len(doc.Components)),
		log:        o.logger,
	}
	for _, e := range doc.Components {
		c.order = append(c.order, e.Name)
		c.entries[e.Name] = e
	}

	for _, name := range dependencyOrder(doc.Components) {
		comp := c.build(c.entries[name])
		c.components[name] = comp
		c.log.Debug().
			Str("component", name).
			Str("display_name", comp.DisplayName()).
			Str("element", ElementLabel(comp.ElementType())).
			Int("variants", len(classbound.OptionsOf(comp).Variants)).
			Msg("component built")
	}

	c.log.Info().Int("components", len(c.components)).Msg("catalog loaded")
	return c, nil
}

// Parse decodes a YAML catalog.
func Parse(data []byte, opts ...Option) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return New(&doc, opts...)
}

// Load reads and parses a YAML catalog file.
func Load(path string, opts ...Option) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// build resolves one entry. Its references are already built.
func (c *Catalog) build(e Entry) *classbound.Component {
	displayName := e.DisplayName
	if displayName == "" {
		displayName = e.Name
	}
	variants := toVariants(e.Variants)

	var comp *classbound.Component
	switch {
	case e.Extends != "":
		comp = c.components[e.Extends].Extend(e.Class, displayName, variants)
	case e.From != "":
		comp = c.components[e.From].WithVariants(variants, displayName)
	default:
		return classbound.FromOptions(classbound.Options{
			ClassName:   e.Class,
			DisplayName: displayName,
			Variants:    variants,
			ElementType: c.element(e.Element),
		})
	}

	if e.Element != "" {
		comp = comp.As(c.element(e.Element))
	}
	return comp
}

// element resolves an element name to a host tag or a built component.
func (c *Catalog) element(name string) any {
	if name == "" || dom.ValidTag(name) {
		return name
	}
	return c.components[name]
}

func toVariants(list VariantList) classbound.Variants {
	out := make(classbound.Variants, len(list))
	for i, v := range list {
		out[i] = classbound.Variant{Name: v.Name, Class: v.Class}
	}
	return out
}

// ElementLabel describes an element type for display: the tag, or the
// display name of a nested component.
func ElementLabel(elementType any) string {
	switch t := elementType.(type) {
	case string:
		return t
	case *classbound.Component:
		return t.DisplayName()
	}
	return fmt.Sprintf("%T", elementType)
}

// Names returns the component names in declaration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of components.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Component returns the named component.
func (c *Catalog) Component(name string) (*classbound.Component, error) {
	comp, ok := c.components[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	return comp, nil
}

// Entry returns the declaration of the named component.
func (c *Catalog) Entry(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Order returns component names so that each follows the components it
// references.
func (c *Catalog) Order() []string {
	return dependencyOrder(c.doc.Components)
}

// Document returns a copy of the validated document.
func (c *Catalog) Document() *Document {
	doc := Document{Components: append([]Entry(nil), c.doc.Components...)}
	return &doc
}
