package dom

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Element is a node: an element type paired with its resolved props.
//
// Elements are values returned by CreateElement. Rendering a host tag
// writes HTML; rendering a Renderer type delegates to it with Props.
type Element struct {
	Type  any
	Props Props
	ref   *Ref
}

// Ref returns the ref bound to e, if any.
func (e *Element) Ref() *Ref {
	return e.ref
}

// ClassName returns the class string the element received, or "" if the
// className property was omitted.
func (e *Element) ClassName() string {
	s, _ := e.Props[ClassNameProp].(string)
	return s
}

// HasClassName reports whether the className property is present at all.
func (e *Element) HasClassName() bool {
	return e.Props.Has(ClassNameProp)
}

// Render implements templ.Component.
func (e *Element) Render(ctx context.Context, w io.Writer) error {
	switch t := e.Type.(type) {
	case string:
		if t == "" {
			return fmt.Errorf("%w: empty tag", ErrInvalidElementType)
		}
		if !ValidTag(t) {
			return fmt.Errorf("%w: tag %q", ErrInvalidElementType, t)
		}
		e.ref.attach(e)
		return writeTag(ctx, w, t, e.Props)
	case Renderer:
		var out templ.Component
		if fwd, ok := t.(RefForwarder); ok && forwardsRef(t) {
			out = fwd.RenderRef(e.Props, e.ref)
		} else {
			out = t.Render(e.Props)
		}
		if out == nil {
			return nil
		}
		return out.Render(ctx, w)
	}
	return fmt.Errorf("%w: %T", ErrInvalidElementType, e.Type)
}

func writeTag(ctx context.Context, w io.Writer, tag string, props Props) error {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	writeAttrs(&b, props)
	b.WriteByte('>')
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if IsVoidElement(tag) {
		return nil
	}

	if err := writeChildren(ctx, w, props[ChildrenProp]); err != nil {
		return err
	}

	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// writeAttrs writes class first, then the remaining attributes sorted by
// name. Children and refs are never attributes.
func writeAttrs(b *strings.Builder, props Props) {
	if class, ok := props[ClassNameProp]; ok {
		writeAttr(b, "class", class)
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		switch k {
		case ClassNameProp, ChildrenProp, RefProp:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		writeAttr(b, AttrName(k), props[k])
	}
}

func writeAttr(b *strings.Builder, name string, value any) {
	if !validAttrName(name) {
		return
	}
	switch v := value.(type) {
	case nil:
		return
	case bool:
		if v {
			b.WriteByte(' ')
			b.WriteString(name)
		}
		return
	case string:
		writeAttrValue(b, name, v)
		return
	case int:
		writeAttrValue(b, name, strconv.Itoa(v))
		return
	case int64:
		writeAttrValue(b, name, strconv.FormatInt(v, 10))
		return
	case float64:
		writeAttrValue(b, name, strconv.FormatFloat(v, 'f', -1, 64))
		return
	}
	if reflect.ValueOf(value).Kind() == reflect.Func {
		return
	}
	writeAttrValue(b, name, fmt.Sprint(value))
}

func writeAttrValue(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(templ.EscapeString(value))
	b.WriteByte('"')
}

func writeChildren(ctx context.Context, w io.Writer, children any) error {
	switch c := children.(type) {
	case nil:
		return nil
	case string:
		_, err := io.WriteString(w, templ.EscapeString(c))
		return err
	case templ.Component:
		return c.Render(ctx, w)
	case []templ.Component:
		for _, child := range c {
			if err := writeChildren(ctx, w, child); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for _, child := range c {
			if err := writeChildren(ctx, w, child); err != nil {
				return err
			}
		}
		return nil
	case bool:
		return nil
	case int:
		_, err := io.WriteString(w, strconv.Itoa(c))
		return err
	}
	_, err := io.WriteString(w, templ.EscapeString(fmt.Sprint(children)))
	return err
}

// AttrName maps a property name to its HTML attribute name.
func AttrName(prop string) string {
	switch prop {
	case ClassNameProp:
		return "class"
	case "htmlFor":
		return "for"
	}
	return strings.ToLower(prop)
}

// ValidTag reports whether tag can be written as an element name: a
// known HTML tag or a custom element name such as "x-card".
func ValidTag(tag string) bool {
	return IsKnownTag(tag) || customElementPattern.MatchString(tag)
}

var customElementPattern = regexp.MustCompile(`^[a-z][a-z0-9._]*-[a-z0-9._-]*$`)

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, " \t\n\f\r\"'<>/=")
}
