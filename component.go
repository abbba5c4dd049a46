package classbound

import (
	"github.com/a-h/templ"

	"github.com/pthm/classbound/lib/dom"
)

// Component is a class-bound component: a fixed element type with a base
// class and boolean variants.
//
// Components are immutable. Every derivation (As, WithVariants, Extend,
// WithOptions) returns a new component and leaves its source untouched,
// so a Component can be declared once at package level and rendered from
// any goroutine.
//
//	var Button = classbound.New("btn", "Button", classbound.Variants{
//	    {Name: "primary", Class: "btn--primary"},
//	}, "button")
//
//	Button.Render(dom.Props{"primary": true, "children": "Save"})
//	// <button class="btn btn--primary">Save</button>
type Component struct {
	opts       Options
	host       dom.Host
	forwardRef bool
}

// New creates a component from any accepted call shape:
//
//	New(Options{...})
//	New(class)
//	New(class, displayName, variants, elementType)
//	New(class, variants, elementType)
//
// A string second argument is the display name; anything else is the
// variant map (Variants or any string-keyed map). An explicit nil
// variant map is an empty one, which lets a later element type through:
//
//	New("section", classbound.Variants{...}, nil, "article")
//
// New never fails. An element type the host does not recognize surfaces
// when the component is rendered.
func New(class any, args ...any) *Component {
	return newComponent(parseArgs(class, args), dom.HTML)
}

// FromOptions creates a component from an Options record.
func FromOptions(opts Options) *Component {
	return newComponent(withDefaults(opts), dom.HTML)
}

// newComponent takes ownership of opts, which must already be defaulted.
func newComponent(opts Options, host dom.Host) *Component {
	return &Component{
		opts:       opts,
		host:       host,
		forwardRef: host.ForwardsRef(opts.ElementType),
	}
}

// derive builds a sibling component on the same host.
func (c *Component) derive(opts Options) *Component {
	return newComponent(withDefaults(opts), c.host)
}

// WithHost returns a copy of c that renders through host.
func (c *Component) WithHost(host dom.Host) *Component {
	if host == nil {
		host = dom.HTML
	}
	return newComponent(c.opts.clone(), host)
}

// Value returns the value associated with key, in the manner of
// context.Context. OptionsKey yields a copy of the component's Options;
// every other key yields nil.
func (c *Component) Value(key any) any {
	if k, ok := key.(string); ok && k == OptionsKey {
		return c.opts.clone()
	}
	return nil
}

// OptionsOf returns the Options record stored on c under OptionsKey.
func OptionsOf(c *Component) Options {
	opts, _ := c.Value(OptionsKey).(Options)
	return opts
}

// DisplayName returns the component's display name, or "".
func (c *Component) DisplayName() string {
	return c.opts.DisplayName
}

// ElementType returns what the component renders as.
func (c *Component) ElementType() any {
	return c.opts.ElementType
}

// ForwardsRef reports whether refs reach the rendered node. It is true
// for host tags and for nested components that forward refs themselves.
func (c *Component) ForwardsRef() bool {
	return c.forwardRef
}

// Render resolves props and delegates to the host.
//
// The reserved "className" prop is appended after the base and variant
// classes. Variant flags are consumed and never reach the element. A
// *dom.Ref under "ref" is handled as if passed to RenderRef.
func (c *Component) Render(props dom.Props) templ.Component {
	return c.RenderRef(props, nil)
}

// RenderRef is Render with an explicit ref. The ref is propagated only
// when ForwardsRef is true and dropped silently otherwise.
func (c *Component) RenderRef(props dom.Props, ref *dom.Ref) templ.Component {
	if ref == nil {
		ref = props.Ref()
	}
	caller := props[dom.ClassNameProp]

	componentProps, variantProps := SplitProps(props.Without(dom.ClassNameProp, dom.RefProp), c.opts.Variants)
	className := ComposeClassName(c.opts.ClassName, c.opts.Variants, variantProps, caller)

	out := make(dom.Props, len(componentProps)+2)
	if className != "" {
		out[dom.ClassNameProp] = className
	}
	for k, v := range componentProps {
		out[k] = v
	}
	if c.forwardRef && ref != nil {
		out[dom.RefProp] = ref
	}

	return c.host.CreateElement(c.opts.ElementType, out)
}
