package classbound

import "github.com/pthm/classbound/lib/classnames"

// As returns a component that renders as elementType, keeping the class
// and variants of c. The display name is kept unless a non-empty one is
// given.
//
//	var LinkButton = classbound.As(Button, "a")
func As(c *Component, elementType any, displayName ...string) *Component {
	opts := c.opts.clone()
	opts.ElementType = elementType
	if name := firstString(displayName); name != "" {
		opts.DisplayName = name
	}
	return c.derive(opts)
}

// WithVariants returns a component whose variants are those of c united
// with variants. A variant of the same name replaces the old one in
// place; new names are appended. The display name is kept unless a
// non-empty one is given.
//
// variants is a Variants list or any string-keyed map (composed in
// sorted key order).
func WithVariants(c *Component, variants any, displayName ...string) *Component {
	extra := asVariants(variants)

	opts := c.opts.clone()
	for _, v := range extra {
		opts.Variants = opts.Variants.Set(v.Name, v.Class)
	}
	if name := firstString(displayName); name != "" {
		opts.DisplayName = name
	}
	return c.derive(opts)
}

// Extend returns a component that adds class after the class of c and
// merges variants into those of c:
//
//	Extend(c, class)
//	Extend(c, class, displayName)
//	Extend(c, class, displayName, variants)
//	Extend(c, class, variants)
//
// Unlike WithVariants, a variant present on both sides keeps both class
// values, old first. The element type is inherited. The display name is
// NOT inherited: it is set only when given.
func Extend(c *Component, class any, args ...any) *Component {
	var (
		displayName string
		extra       Variants
	)
	if len(args) > 0 {
		if s, ok := args[0].(string); ok {
			displayName = s
			extra = asVariants(argAt(args, 1))
		} else if args[0] == nil {
			extra = asVariants(argAt(args, 1))
		} else {
			extra = asVariants(args[0])
		}
	}

	return c.derive(Options{
		ClassName:   classnames.Combine(c.opts.ClassName, class),
		DisplayName: displayName,
		Variants:    mergeVariants(c.opts.Variants, extra),
		ElementType: c.opts.ElementType,
	})
}

// WithOptions returns a component built from transform(Options of c).
// Fields the transform leaves zero revert to their defaults rather than
// to the values of c.
func WithOptions(c *Component, transform func(Options) Options) *Component {
	return c.derive(transform(c.opts.clone()))
}

// mergeVariants unites a and b, combining the class values of names
// present on both sides. Names keep their first-seen order.
func mergeVariants(a, b Variants) Variants {
	out := a.clone()
	for _, v := range b {
		prev, _ := out.Get(v.Name)
		out = out.Set(v.Name, classnames.Combine(prev, v.Class))
	}
	return out
}

func firstString(s []string) string {
	if len(s) > 0 {
		return s[0]
	}
	return ""
}

// As is the method form of As.
func (c *Component) As(elementType any, displayName ...string) *Component {
	return As(c, elementType, displayName...)
}

// WithVariants is the method form of WithVariants.
func (c *Component) WithVariants(variants any, displayName ...string) *Component {
	return WithVariants(c, variants, displayName...)
}

// Extend is the method form of Extend.
func (c *Component) Extend(class any, args ...any) *Component {
	return Extend(c, class, args...)
}

// WithOptions is the method form of WithOptions.
func (c *Component) WithOptions(transform func(Options) Options) *Component {
	return WithOptions(c, transform)
}
