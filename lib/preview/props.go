package preview

import (
	"net/url"
	"strings"

	"github.com/pthm/classbound"
	"github.com/pthm/classbound/lib/dom"
)

// passAttrs are the attributes a query may set on the rendered element.
// Event handlers, style and anything else that can run script are not
// listed.
var passAttrs = map[string]bool{
	"alt": true, "autocomplete": true, "checked": true, "colspan": true,
	"dir": true, "disabled": true, "for": true, "height": true,
	"hidden": true, "href": true, "id": true, "lang": true, "max": true,
	"maxlength": true, "min": true, "minlength": true, "multiple": true,
	"name": true, "open": true, "placeholder": true, "readonly": true,
	"rel": true, "required": true, "role": true, "rowspan": true,
	"selected": true, "src": true, "step": true, "tabindex": true,
	"target": true, "title": true, "type": true, "value": true,
	"width": true,
}

// urlAttrs must hold a relative URL or one with a scheme in urlSchemes.
var urlAttrs = map[string]bool{"href": true, "src": true}

var urlSchemes = map[string]bool{"http": true, "https": true, "mailto": true}

// PropsFromQuery converts query parameters to render props for a
// component declaring variants. The last value of a repeated parameter
// wins.
//
// "class" and "text" map to the className and children. A declared
// variant name keeps its exact spelling. Other keys are matched
// case-insensitively against the pass-through attributes, plus any
// "data-" or "aria-" attribute; href and src also need a safe URL.
// Everything else is dropped.
func PropsFromQuery(q url.Values, variants classbound.Variants) dom.Props {
	props := make(dom.Props, len(q))
	for key, values := range q {
		if len(values) == 0 {
			continue
		}
		v := values[len(values)-1]
		switch key {
		case "class":
			props[dom.ClassNameProp] = v
			continue
		case "text":
			props[dom.ChildrenProp] = v
			continue
		}

		if variants.Has(key) {
			props[key] = flagValue(v)
			continue
		}

		attr := strings.ToLower(key)
		if !allowedAttr(attr) {
			continue
		}
		if urlAttrs[attr] {
			u, ok := safeURL(v)
			if !ok {
				continue
			}
			props[attr] = u
			continue
		}
		props[attr] = flagValue(v)
	}
	return props
}

func allowedAttr(attr string) bool {
	if passAttrs[attr] {
		return true
	}
	for _, prefix := range []string{"data-", "aria-"} {
		if rest, ok := strings.CutPrefix(attr, prefix); ok && rest != "" {
			return true
		}
	}
	return false
}

// safeURL trims v the way browsers do and accepts it when it is relative
// or uses an allowed scheme.
func safeURL(v string) (string, bool) {
	v = strings.TrimSpace(v)
	u, err := url.Parse(v)
	if err != nil {
		return "", false
	}
	if u.Scheme != "" && !urlSchemes[strings.ToLower(u.Scheme)] {
		return "", false
	}
	return v, true
}

func flagValue(v string) any {
	switch v {
	case "", "true":
		return true
	case "false":
		return false
	}
	return v
}
