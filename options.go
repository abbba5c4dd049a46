package classbound

import (
	"reflect"
	"sort"

	"github.com/pthm/classbound/lib/dom"
)

// OptionsKey is the reserved key under which every component exposes its
// Options record through Component.Value.
const OptionsKey = "__cbc_options"

// DefaultElementType is rendered when a definition names no element type.
const DefaultElementType = "div"

// Options is the definition backing a component.
//
// Zero fields mean "absent" and are defaulted when a component is built:
// Variants becomes an empty list and ElementType becomes "div".
type Options struct {
	// ClassName is the class value always applied.
	ClassName any
	// DisplayName names the component for debugging only.
	DisplayName string
	// Variants maps boolean props to the class values they enable, in
	// declaration order.
	Variants Variants
	// ElementType is a host tag or a nested dom.Renderer. Other values are
	// passed to the host uninterpreted.
	ElementType any
}

// Variant is a named, boolean-gated class value.
type Variant struct {
	Name  string
	Class any
}

// Variants is an ordered variant map. Names are unique; the order is the
// order classes are composed in.
type Variants []Variant

// Get returns the class value of the named variant.
func (v Variants) Get(name string) (any, bool) {
	for _, entry := range v {
		if entry.Name == name {
			return entry.Class, true
		}
	}
	return nil, false
}

// Has reports whether a variant is declared.
func (v Variants) Has(name string) bool {
	_, ok := v.Get(name)
	return ok
}

// Names returns the variant names in declaration order.
func (v Variants) Names() []string {
	names := make([]string, len(v))
	for i, entry := range v {
		names[i] = entry.Name
	}
	return names
}

// Set returns a copy of v with name bound to class. An existing entry is
// replaced in place; a new one is appended.
func (v Variants) Set(name string, class any) Variants {
	out := v.clone()
	for i := range out {
		if out[i].Name == name {
			out[i].Class = class
			return out
		}
	}
	return append(out, Variant{Name: name, Class: class})
}

func (v Variants) clone() Variants {
	out := make(Variants, len(v))
	for i, entry := range v {
		out[i] = Variant{Name: entry.Name, Class: cloneClass(entry.Class)}
	}
	return out
}

// active returns the class values of variants whose flag is truthy in
// flags, in declaration order.
func (v Variants) active(flags dom.Props) []any {
	var classes []any
	for _, entry := range v {
		if truthy(flags[entry.Name]) {
			classes = append(classes, entry.Class)
		}
	}
	return classes
}

// VariantsFromMap converts an unordered map to Variants sorted by name.
func VariantsFromMap[V any](m map[string]V) Variants {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Variants, len(names))
	for i, name := range names {
		out[i] = Variant{Name: name, Class: m[name]}
	}
	return out
}

var variantsType = reflect.TypeOf(Variants(nil))

// asVariants converts a variant-map argument to Variants. Any map with a
// string key kind is accepted and read in sorted key order; slices of
// Variant keep their order. nil and every other value yield no variants.
func asVariants(v any) Variants {
	switch x := v.(type) {
	case nil:
		return Variants{}
	case Variants:
		return x
	case []Variant:
		return Variants(x)
	case map[string]any:
		return VariantsFromMap(x)
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		out := make(Variants, len(keys))
		for i, k := range keys {
			out[i] = Variant{Name: k.String(), Class: rv.MapIndex(k).Interface()}
		}
		return out
	case rv.Kind() == reflect.Slice && rv.Type().ConvertibleTo(variantsType):
		return rv.Convert(variantsType).Interface().(Variants)
	}
	return Variants{}
}

// parseArgs turns any accepted call shape into one Options record:
//
//	(Options)                                    record as-is
//	(class, displayName, variants?, elementType?) positional
//	(class, variants, elementType?)              second argument is not a string
//
// A second argument that is not a string (nil included) is always the
// variant map. All shape disambiguation lives here.
func parseArgs(class any, args []any) Options {
	switch o := class.(type) {
	case Options:
		return withDefaults(o)
	case *Options:
		if o == nil {
			return withDefaults(Options{})
		}
		return withDefaults(*o)
	}

	opts := Options{ClassName: class}
	if len(args) == 0 {
		return withDefaults(opts)
	}

	if _, named := args[0].(string); !named {
		opts.Variants = asVariants(args[0])
		opts.ElementType = argAt(args, 1)
		if opts.ElementType == nil {
			opts.ElementType = argAt(args, 2)
		}
		return withDefaults(opts)
	}

	opts.DisplayName = args[0].(string)
	opts.Variants = asVariants(argAt(args, 1))
	opts.ElementType = argAt(args, 2)
	return withDefaults(opts)
}

func argAt(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

// withDefaults returns a detached copy of o with absent fields defaulted.
func withDefaults(o Options) Options {
	out := Options{
		ClassName:   cloneClass(o.ClassName),
		DisplayName: o.DisplayName,
		Variants:    o.Variants.clone(),
		ElementType: o.ElementType,
	}
	if s, ok := out.ElementType.(string); out.ElementType == nil || (ok && s == "") {
		out.ElementType = DefaultElementType
	}
	return out
}

func (o Options) clone() Options {
	return Options{
		ClassName:   cloneClass(o.ClassName),
		DisplayName: o.DisplayName,
		Variants:    o.Variants.clone(),
		ElementType: o.ElementType,
	}
}

// cloneClass copies the mutable shapes of a class value so a stored record
// never shares backing arrays or maps with a caller.
func cloneClass(v any) any {
	switch x := v.(type) {
	case []string:
		return append([]string(nil), x...)
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = cloneClass(item)
		}
		return out
	case map[string]bool:
		out := make(map[string]bool, len(x))
		for k, b := range x {
			out[k] = b
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = item
		}
		return out
	}
	return v
}
