package dom

import "github.com/a-h/templ"

// HTML is the default Host. It builds *Element nodes.
var HTML Host = htmlHost{}

type htmlHost struct{}

func (htmlHost) CreateElement(elementType any, props Props) templ.Component {
	return CreateElement(elementType, props)
}

func (htmlHost) ForwardsRef(elementType any) bool {
	return ForwardsRef(elementType)
}

// CreateElement returns the node for elementType with props.
//
// A *Ref under RefProp is lifted out of the props. It is kept only when
// elementType forwards refs; otherwise it is dropped silently.
// Unrecognized element types are not rejected here; rendering the node
// returns ErrInvalidElementType.
func CreateElement(elementType any, props Props) *Element {
	ref := props.Ref()
	el := &Element{
		Type:  elementType,
		Props: props.Without(RefProp),
	}
	if ref != nil && ForwardsRef(elementType) {
		el.ref = ref
	}
	return el
}

// ForwardsRef reports whether elementType accepts a ref: host tags always
// do, components only when they forward refs.
func ForwardsRef(elementType any) bool {
	switch t := elementType.(type) {
	case string:
		return t != ""
	case Renderer:
		return forwardsRef(t)
	}
	return false
}

func forwardsRef(r Renderer) bool {
	if rc, ok := r.(RefCapable); ok {
		return rc.ForwardsRef()
	}
	_, ok := r.(RefForwarder)
	return ok
}
