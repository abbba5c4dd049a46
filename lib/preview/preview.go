// Package preview serves the components of a catalog over HTTP.
//
//	GET /            index of every component
//	GET /{name}      render one component
//
// Query parameters become props when rendering: "class" is the caller
// className, "text" is the children, declared variant names toggle their
// variants, and a fixed set of safe attributes is passed through. Every
// other parameter is dropped. The values "true", "false" and "" (a bare
// ?flag) are booleans:
//
//	/Button?primary&text=Save&type=submit
package preview

import (
	"bytes"
	"net/http"
	"net/url"
	"time"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"

	"github.com/pthm/classbound"
	"github.com/pthm/classbound/lib/catalog"
	"github.com/pthm/classbound/lib/dom"
)

// Option configures a Handler.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	title  string
}

// WithLogger sets the request logger. Defaults to a disabled logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTitle sets the index page title. Defaults to "classbound".
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// Handler is an http.Handler for one catalog.
type Handler struct {
	cat   *catalog.Catalog
	mux   *http.ServeMux
	log   zerolog.Logger
	title string
}

// New creates a preview handler for cat.
func New(cat *catalog.Catalog, opts ...Option) *Handler {
	o := &options{logger: zerolog.Nop(), title: "classbound"}
	for _, opt := range opts {
		opt(o)
	}

	h := &Handler{
		cat:   cat,
		mux:   http.NewServeMux(),
		log:   o.logger,
		title: o.title,
	}
	h.mux.HandleFunc("GET /{$}", h.handleIndex)
	h.mux.HandleFunc("GET /{name}", h.handleComponent)
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, "index", indexPage(h.title, h.cat))
}

func (h *Handler) handleComponent(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	comp, err := h.cat.Component(name)
	if err != nil {
		h.log.Debug().Str("component", name).Msg("preview: unknown component")
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	props := PropsFromQuery(r.URL.Query(), classbound.OptionsOf(comp).Variants)
	h.write(w, r, name, comp.Render(props))
}

// write renders into a buffer first so a failed render leaves the
// response untouched.
func (h *Handler) write(w http.ResponseWriter, r *http.Request, name string, component templ.Component) {
	start := time.Now()

	var buf bytes.Buffer
	if err := component.Render(r.Context(), &buf); err != nil {
		h.log.Error().Err(err).Str("component", name).Msg("preview: render failed")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)

	h.log.Debug().
		Str("component", name).
		Dur("duration", time.Since(start)).
		Msg("preview: rendered")
}

// Index page components.
var (
	pageList = classbound.Tags["ul"]("cb-index")
	pageItem = classbound.Tags["li"]("cb-index__item")
	pageLink = classbound.Tags["a"]("cb-index__link")
	pageMeta = classbound.Tags["code"]("cb-index__meta", classbound.Variants{
		{Name: "derived", Class: "cb-index__meta--derived"},
	})
)

func indexPage(title string, cat *catalog.Catalog) templ.Component {
	items := make([]templ.Component, 0, cat.Len())
	for _, name := range cat.Names() {
		comp, _ := cat.Component(name)
		e, _ := cat.Entry(name)

		items = append(items, pageItem.Render(dom.Props{
			dom.ChildrenProp: []templ.Component{
				pageLink.Render(dom.Props{"href": url.PathEscape(name), dom.ChildrenProp: name}),
				pageMeta.Render(dom.Props{
					"derived":        e.Parent() != "",
					dom.ChildrenProp: catalog.ElementLabel(comp.ElementType()),
				}),
			},
		}))
	}

	body := []templ.Component{
		classbound.Tags["h1"](nil).Render(dom.Props{dom.ChildrenProp: title}),
		pageList.Render(dom.Props{dom.ChildrenProp: items}),
	}
	return document(title, body)
}

// document wraps body in an HTML page.
func document(title string, body []templ.Component) templ.Component {
	head := dom.HTML.CreateElement("head", dom.Props{
		dom.ChildrenProp: []templ.Component{
			dom.HTML.CreateElement("meta", dom.Props{"charset": "utf-8"}),
			dom.HTML.CreateElement("title", dom.Props{dom.ChildrenProp: title}),
		},
	})
	html := dom.HTML.CreateElement("html", dom.Props{
		dom.ChildrenProp: []templ.Component{
			head,
			dom.HTML.CreateElement("body", dom.Props{dom.ChildrenProp: body}),
		},
	})
	return templ.Join(templ.Raw("<!DOCTYPE html>"), html)
}
