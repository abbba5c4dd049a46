// Package classboundecho provides Echo framework integration for classbound.
//
// Mount a catalog preview onto an Echo instance or group:
//
//	e := echo.New()
//	classboundecho.Mount(e, cat)
//	// GET /_cb/          index
//	// GET /_cb/Button    render Button
//
// Or mount on a group with middleware:
//
//	g := e.Group("/admin", authMiddleware)
//	classboundecho.MountGroup(g, cat, classboundecho.WithPath("/components/"))
package classboundecho

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/pthm/classbound"
	"github.com/pthm/classbound/lib/catalog"
	"github.com/pthm/classbound/lib/dom"
	"github.com/pthm/classbound/lib/preview"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	path    string
	preview []preview.Option
}

// WithPath sets the URL path prefix for preview routes.
// Defaults to "/_cb/".
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithPreviewOptions passes options through to the preview handler.
func WithPreviewOptions(opts ...preview.Option) Option {
	return func(o *options) {
		o.preview = append(o.preview, opts...)
	}
}

// Mount creates a preview handler for cat and mounts it on an Echo instance.
//
//	e := echo.New()
//	h := classboundecho.Mount(e, cat)
//
//	// With options:
//	h := classboundecho.Mount(e, cat, classboundecho.WithPath("/ui/"))
func Mount(e *echo.Echo, cat *catalog.Catalog, opts ...Option) *preview.Handler {
	h, path := newHandler(cat, opts)
	e.GET(path+"*", wrap(h))
	return h
}

// MountGroup mounts the preview handler on an Echo group so it shares the
// group's middleware (auth, logging, etc.).
//
//	g := e.Group("/admin", authMiddleware)
//	classboundecho.MountGroup(g, cat)
func MountGroup(g *echo.Group, cat *catalog.Catalog, opts ...Option) *preview.Handler {
	h, path := newHandler(cat, opts)
	g.GET(path+"*", wrap(h))
	return h
}

func newHandler(cat *catalog.Catalog, opts []Option) (*preview.Handler, string) {
	o := &options{path: "/_cb/"}
	for _, opt := range opts {
		opt(o)
	}

	path := o.path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return preview.New(cat, o.preview...), path
}

// wrap serves h with the request path rewritten to the part matched by
// the route wildcard, so the handler sees "/" and "/{name}" wherever it is
// mounted.
func wrap(h http.Handler) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		u := *req.URL
		u.Path = "/" + c.Param("*")
		u.RawPath = ""

		r := req.WithContext(req.Context())
		r.URL = &u
		h.ServeHTTP(c.Response(), r)
		return nil
	}
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return classboundecho.Render(c, page())
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}

// RenderComponent renders a class-bound component with props to the Echo
// response.
//
//	return classboundecho.RenderComponent(c, Button, dom.Props{"primary": true})
func RenderComponent(c echo.Context, comp *classbound.Component, props dom.Props) error {
	return Render(c, comp.Render(props))
}
