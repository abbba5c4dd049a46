package classbound

import (
	"github.com/pthm/classbound/lib/classnames"
	"github.com/pthm/classbound/lib/dom"
)

// SplitProps separates variant flags from the props that reach the
// rendered element.
//
// A key is a variant flag when it is declared in variants and present in
// props; absent flags are simply not split out. props itself is never
// modified: componentProps is a shallow copy without the flag keys and
// variantProps holds the flags with their original values.
func SplitProps(props dom.Props, variants Variants) (componentProps, variantProps dom.Props) {
	componentProps = props.Clone()
	variantProps = make(dom.Props)
	for _, v := range variants {
		if value, ok := props[v.Name]; ok {
			variantProps[v.Name] = value
			delete(componentProps, v.Name)
		}
	}
	return componentProps, variantProps
}

// ComposeClassName joins the base class, the classes of active variants
// and the caller's class in that order. Returns "" when nothing applies.
func ComposeClassName(base any, variants Variants, flags dom.Props, caller any) string {
	return classnames.Join(base, variants.active(flags), caller)
}

func truthy(v any) bool {
	return classnames.Truthy(v)
}
