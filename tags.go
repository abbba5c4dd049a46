package classbound

import "github.com/pthm/classbound/lib/dom"

// Factory creates a component from any call shape New accepts.
type Factory func(class any, args ...any) *Component

// Tags maps every known host tag to a factory that creates a component
// and re-types it to that tag. The element type given in the arguments
// is always overridden.
//
//	link := classbound.Tags["a"]("link", classbound.Variants{{Name: "active", Class: "link--on"}})
//
// The table is built once at init and must not be modified. Tags outside
// dom.KnownTags have no entry; look them up with Tag.
var Tags = make(map[string]Factory, len(dom.KnownTags))

func init() {
	for _, tag := range dom.KnownTags {
		Tags[tag] = shorthand(tag)
	}
}

func shorthand(tag string) Factory {
	return func(class any, args ...any) *Component {
		return New(class, args...).As(tag)
	}
}

// Tag returns the shorthand factory for tag. ok is false, and the factory
// nil, when tag is not a known host tag.
func Tag(tag string) (f Factory, ok bool) {
	f, ok = Tags[tag]
	return f, ok
}
