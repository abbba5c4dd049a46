// Package classbound creates templ components bound to class names.
//
// A class-bound component renders a fixed element type with a base class
// and a set of variants: boolean props that add classes when set. The
// component takes care of splitting variant flags out of the props,
// composing the class attribute, and delegating the element itself to the
// host layer in lib/dom.
//
//	var Alert = classbound.New("alert", "Alert", classbound.Variants{
//	    {Name: "danger", Class: "alert--danger"},
//	    {Name: "dismissible", Class: []string{"alert--dismissible", "pr-8"}},
//	}, "section")
//
//	Alert.Render(dom.Props{"danger": true, "role": "alert", "children": "Oops"})
//	// <section class="alert alert--danger" role="alert">Oops</section>
//
// # Class Composition
//
// The class attribute is composed in a fixed order: the base class, then
// the classes of active variants in declaration order, then any
// "className" prop the caller passes. Tokens are not deduplicated. When
// nothing contributes, the class attribute is omitted entirely.
//
// Class values may be strings, slices, maps of class to bool, templ.KV
// pairs, or templ CSS classes; see lib/classnames.
//
// # Derivation
//
// Components are immutable. New components are derived from existing ones:
//
//	As(c, "a")                    // same classes, different element
//	WithVariants(c, variants)     // add variants, same names replace
//	Extend(c, "extra", variants)  // append class, same names combine
//	WithOptions(c, transform)     // rebuild from transformed Options
//
// Each is also a method on *Component. The source is never modified.
//
// # Options Lookup
//
// Every component carries its Options record under the reserved
// OptionsKey, retrievable through Value or OptionsOf. The returned record
// is a copy.
//
// # Tag Shorthands
//
// Tags holds one Factory per known HTML tag, equivalent to New followed by
// As(tag):
//
//	var Title = classbound.Tags["h1"]("title", classbound.Variants{{Name: "muted", Class: "text-muted"}})
//
// # Refs
//
// A *dom.Ref passed to RenderRef (or under the "ref" prop) reaches the
// rendered node when the element type is a host tag or a ref-forwarding
// component. For plain function components the ref is dropped silently.
package classbound
