package classbound

import (
	"bytes"
	"context"
	"strings"

	"github.com/pthm/classbound/lib/dom"
)

// TestResult holds the result of rendering a component for testing.
//
// Node is the element the component handed to the host. It is nil when
// the component renders through a host that does not build *dom.Element
// nodes.
type TestResult struct {
	HTML string
	Node *dom.Element
}

// TestRender renders a component and returns testable output.
//
//	result, err := classbound.TestRender(Button, dom.Props{"primary": true})
//	if result.ClassName() != "btn btn--primary" {
//	    t.Fatal("unexpected class")
//	}
func TestRender(comp dom.Renderer, props dom.Props) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), comp, props)
}

// TestRenderWithContext renders a component with a custom context.
//
// Use this when nested templ children read values from context.
func TestRenderWithContext(ctx context.Context, comp dom.Renderer, props dom.Props) (*TestResult, error) {
	node := comp.Render(props)

	var buf bytes.Buffer
	if node != nil {
		if err := node.Render(ctx, &buf); err != nil {
			return nil, err
		}
	}

	el, _ := node.(*dom.Element)
	return &TestResult{
		HTML: buf.String(),
		Node: el,
	}, nil
}

// TestRenderRef renders a component with a ref and returns testable output.
// After it returns, ref.Current holds the host element if the ref was
// propagated.
func TestRenderRef(comp dom.RefForwarder, props dom.Props, ref *dom.Ref) (*TestResult, error) {
	node := comp.RenderRef(props, ref)

	var buf bytes.Buffer
	if node != nil {
		if err := node.Render(context.Background(), &buf); err != nil {
			return nil, err
		}
	}

	el, _ := node.(*dom.Element)
	return &TestResult{
		HTML: buf.String(),
		Node: el,
	}, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// ElementType returns the type of the rendered node, or nil.
func (r *TestResult) ElementType() any {
	if r.Node == nil {
		return nil
	}
	return r.Node.Type
}

// ClassName returns the class string the node received.
func (r *TestResult) ClassName() string {
	if r.Node == nil {
		return ""
	}
	return r.Node.ClassName()
}

// HasClassName reports whether the node received a className prop at all.
func (r *TestResult) HasClassName() bool {
	return r.Node != nil && r.Node.HasClassName()
}

// HasProp reports whether the node received key.
func (r *TestResult) HasProp(key string) bool {
	return r.Node != nil && r.Node.Props.Has(key)
}

// Prop returns the value of a prop the node received.
func (r *TestResult) Prop(key string) any {
	if r.Node == nil {
		return nil
	}
	return r.Node.Props[key]
}
