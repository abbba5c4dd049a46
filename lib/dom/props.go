package dom

// Reserved property names.
const (
	ClassNameProp = "className"
	ChildrenProp  = "children"
	RefProp       = "ref"
)

// Props is the property bag passed to an element.
type Props map[string]any

// Clone returns a shallow copy of p. A nil Props clones to an empty one.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Without returns a shallow copy of p with keys removed.
func (p Props) Without(keys ...string) Props {
	out := p.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Has reports whether key is present, regardless of its value.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Ref returns the *Ref stored under RefProp, if any.
func (p Props) Ref() *Ref {
	ref, _ := p[RefProp].(*Ref)
	return ref
}
