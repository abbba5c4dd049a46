package dom

import "github.com/a-h/templ"

// Renderer is a component that renders from a property bag.
//
// Render should be pure: it reads props and returns the output without
// side effects. Renderers that do not also implement RefForwarder are
// function-style components and never receive a ref.
type Renderer interface {
	Render(props Props) templ.Component
}

// RefForwarder is a Renderer that can pass a ref through to the node it
// renders.
type RefForwarder interface {
	Renderer
	RenderRef(props Props, ref *Ref) templ.Component
}

// RefCapable is implemented by components whose ref forwarding is decided
// at construction time. ForwardsRef takes precedence over the static
// RefForwarder check.
type RefCapable interface {
	ForwardsRef() bool
}

// Host creates nodes for element types. It is the boundary classbound
// delegates rendering to.
type Host interface {
	CreateElement(elementType any, props Props) templ.Component
	ForwardsRef(elementType any) bool
}

// ComponentFunc adapts a function to a function-style Renderer.
type ComponentFunc func(props Props) templ.Component

// Render calls f(props).
func (f ComponentFunc) Render(props Props) templ.Component {
	return f(props)
}

// ForwardRefFunc adapts a function to a RefForwarder.
type ForwardRefFunc func(props Props, ref *Ref) templ.Component

// Render calls f(props, nil).
func (f ForwardRefFunc) Render(props Props) templ.Component {
	return f(props, nil)
}

// RenderRef calls f(props, ref).
func (f ForwardRefFunc) RenderRef(props Props, ref *Ref) templ.Component {
	return f(props, ref)
}
