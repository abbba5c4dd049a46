// Package dom is the host layer that classbound components render into.
//
// It models a small element tree on top of templ: CreateElement pairs an
// element type with a property bag and returns an *Element, which is itself
// a templ.Component. Host tags ("div", "a", ...) are written as HTML; any
// other element type must implement Renderer and is rendered by delegation.
//
//	el := dom.CreateElement("a", dom.Props{
//	    "className": "link",
//	    "href":      "/docs",
//	    "children":  "Docs",
//	})
//	el.Render(ctx, w) // <a class="link" href="/docs">Docs</a>
//
// # Refs
//
// A *Ref passed under the "ref" property is attached to the host element
// when it renders. Only host tags and components that forward refs receive
// one; ForwardsRef reports which element types do. Plain function
// components never see the ref.
package dom
