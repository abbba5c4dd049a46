package dom

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"testing"

	"github.com/a-h/templ"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestElementRenderHTML(t *testing.T) {
	tests := []struct {
		name   string
		tag    string
		props  Props
		expect string
	}{
		{
			name:   "bare div",
			tag:    "div",
			expect: "<div></div>",
		},
		{
			name:   "class first then sorted attrs",
			tag:    "a",
			props:  Props{"href": "/x", "className": "link", "id": "home", "children": "Home"},
			expect: `<a class="link" href="/x" id="home">Home</a>`,
		},
		{
			name:   "boolean attributes",
			tag:    "button",
			props:  Props{"disabled": true, "hidden": false},
			expect: "<button disabled></button>",
		},
		{
			name:   "numbers and camel case",
			tag:    "div",
			props:  Props{"tabIndex": -1},
			expect: `<div tabindex="-1"></div>`,
		},
		{
			name:   "htmlFor",
			tag:    "label",
			props:  Props{"htmlFor": "name"},
			expect: `<label for="name"></label>`,
		},
		{
			name:   "escaping",
			tag:    "span",
			props:  Props{"title": `"q"`, "children": "<b>"},
			expect: `<span title="&#34;q&#34;">&lt;b&gt;</span>`,
		},
		{
			name:   "void element",
			tag:    "img",
			props:  Props{"src": "/a.png", "children": "ignored"},
			expect: `<img src="/a.png">`,
		},
		{
			name:   "invalid attribute names skipped",
			tag:    "div",
			props:  Props{`x"y`: "1", "on click": "2"},
			expect: "<div></div>",
		},
		{
			name:   "function values skipped",
			tag:    "div",
			props:  Props{"onClick": func() {}},
			expect: "<div></div>",
		},
		{
			name:   "nested children",
			tag:    "ul",
			props:  Props{"children": []any{CreateElement("li", Props{"children": "one"}), "two", 3}},
			expect: "<ul><li>one</li>two3</ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, CreateElement(tt.tag, tt.props))
			if got != tt.expect {
				t.Errorf("Render() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestElementRenderComponent(t *testing.T) {
	inner := ComponentFunc(func(p Props) templ.Component {
		return CreateElement("span", Props{"className": p["className"], "children": p["color"]})
	})

	el := CreateElement(inner, Props{"className": "foo", "color": "green"})
	got := render(t, el)
	if got != `<span class="foo">green</span>` {
		t.Errorf("Render() = %q", got)
	}
}

func TestElementRenderInvalidType(t *testing.T) {
	tests := []struct {
		name string
		typ  any
	}{
		{"number", 42},
		{"empty tag", ""},
		{"nil", nil},
		{"attribute smuggled in tag", "img src=x onerror=alert(1)"},
		{"markup in tag", "div><script>"},
		{"unknown tag", "blink2"},
		{"uppercase custom element", "X-Card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CreateElement(tt.typ, nil).Render(context.Background(), io.Discard)
			if !errors.Is(err, ErrInvalidElementType) {
				t.Errorf("Render() error = %v, want ErrInvalidElementType", err)
			}
			if !IsInvalidElementType(err) {
				t.Error("IsInvalidElementType() = false")
			}
		})
	}
}

func TestValidTag(t *testing.T) {
	tests := []struct {
		tag    string
		expect bool
	}{
		{"div", true},
		{"img", true},
		{"x-card", true},
		{"my-app.v2", true},
		{"", false},
		{"x-", true},
		{"-x", false},
		{"card", false},
		{"x card", false},
		{"x-card onclick=y", false},
	}

	for _, tt := range tests {
		if got := ValidTag(tt.tag); got != tt.expect {
			t.Errorf("ValidTag(%q) = %v, want %v", tt.tag, got, tt.expect)
		}
	}
}

func TestElementRenderCustomElement(t *testing.T) {
	if got := render(t, CreateElement("x-card", Props{"id": "c"})); got != `<x-card id="c"></x-card>` {
		t.Errorf("HTML = %q", got)
	}
}

func TestCreateElementDoesNotMutateProps(t *testing.T) {
	ref := NewRef()
	props := Props{"ref": ref, "id": "x"}
	el := CreateElement("div", props)

	if !props.Has("ref") {
		t.Error("CreateElement() removed ref from caller props")
	}
	if el.Props.Has("ref") {
		t.Error("element props still contain ref")
	}
}

func TestRefAttachedToHostElement(t *testing.T) {
	ref := NewRef()
	el := CreateElement("img", Props{"ref": ref})
	if ref.Current != nil {
		t.Fatal("ref attached before render")
	}

	render(t, el)
	if ref.Current != el {
		t.Errorf("ref.Current = %v, want element", ref.Current)
	}
	if ref.Current.Type != "img" {
		t.Errorf("ref.Current.Type = %v, want img", ref.Current.Type)
	}
}

func TestRefForwardedThroughComponent(t *testing.T) {
	fwd := ForwardRefFunc(func(p Props, ref *Ref) templ.Component {
		return CreateElement("img", Props{"ref": ref})
	})

	ref := NewRef()
	render(t, CreateElement(fwd, Props{"ref": ref}))
	if ref.Current == nil || ref.Current.Type != "img" {
		t.Errorf("ref.Current = %v, want img element", ref.Current)
	}
}

func TestRefDroppedForFunctionComponent(t *testing.T) {
	var received Props
	fn := ComponentFunc(func(p Props) templ.Component {
		received = p
		return CreateElement("div", p)
	})

	ref := NewRef()
	el := CreateElement(fn, Props{"ref": ref})
	render(t, el)

	if el.Ref() != nil {
		t.Error("function component element kept the ref")
	}
	if received.Has("ref") {
		t.Error("function component received ref prop")
	}
	if ref.Current != nil {
		t.Error("ref was attached through a function component")
	}
}

type capable struct {
	ForwardRefFunc
	forwards bool
}

func (c capable) ForwardsRef() bool { return c.forwards }

func TestForwardsRef(t *testing.T) {
	fwd := ForwardRefFunc(func(Props, *Ref) templ.Component { return nil })
	fn := ComponentFunc(func(Props) templ.Component { return nil })

	tests := []struct {
		name   string
		typ    any
		expect bool
	}{
		{"host tag", "div", true},
		{"empty tag", "", false},
		{"forward ref func", fwd, true},
		{"function component", fn, false},
		{"capable true", capable{fwd, true}, true},
		{"capable false", capable{fwd, false}, false},
		{"unknown", 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForwardsRef(tt.typ); got != tt.expect {
				t.Errorf("ForwardsRef() = %v, want %v", got, tt.expect)
			}
			if got := HTML.ForwardsRef(tt.typ); got != tt.expect {
				t.Errorf("HTML.ForwardsRef() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestKnownTags(t *testing.T) {
	if !sort.StringsAreSorted(KnownTags) {
		t.Fatal("KnownTags is not sorted")
	}
	for _, tag := range []string{"a", "div", "h1", "img", "wbr"} {
		if !IsKnownTag(tag) {
			t.Errorf("IsKnownTag(%q) = false", tag)
		}
	}
	if IsKnownTag("blink") {
		t.Error("IsKnownTag(blink) = true")
	}
}

func TestElementClassName(t *testing.T) {
	el := CreateElement("div", Props{"className": "a b"})
	if !el.HasClassName() || el.ClassName() != "a b" {
		t.Errorf("ClassName() = %q", el.ClassName())
	}

	bare := CreateElement("div", nil)
	if bare.HasClassName() || bare.ClassName() != "" {
		t.Error("bare element reports a className")
	}
}
