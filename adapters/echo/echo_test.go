package classboundecho

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pthm/classbound"
	"github.com/pthm/classbound/lib/catalog"
	"github.com/pthm/classbound/lib/dom"
)

const sample = `
components:
  - name: Button
    element: button
    class: btn
    variants:
      primary: btn--primary
`

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return cat
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMount(t *testing.T) {
	e := echo.New()
	if h := Mount(e, testCatalog(t)); h == nil {
		t.Fatal("Mount returned nil handler")
	}

	rec := serve(e, "/_cb/Button?primary&text=Go")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got, want := rec.Body.String(), `<button class="btn btn--primary">Go</button>`; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestMountIndex(t *testing.T) {
	e := echo.New()
	Mount(e, testCatalog(t))

	rec := serve(e, "/_cb/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `href="Button"`) {
		t.Errorf("index missing Button link: %s", rec.Body.String())
	}
}

func TestMountWithPath(t *testing.T) {
	e := echo.New()
	Mount(e, testCatalog(t), WithPath("components"))

	if rec := serve(e, "/components/Button"); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec := serve(e, "/_cb/Button"); rec.Code != http.StatusNotFound {
		t.Errorf("default path still mounted: status %d", rec.Code)
	}
}

func TestMountGroup(t *testing.T) {
	e := echo.New()
	var hits int
	g := e.Group("/app", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			hits++
			return next(c)
		}
	})
	if h := MountGroup(g, testCatalog(t)); h == nil {
		t.Fatal("MountGroup returned nil handler")
	}

	rec := serve(e, "/app/_cb/Button")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if hits != 1 {
		t.Errorf("group middleware ran %d times, want 1", hits)
	}
}

func TestUnknownComponent(t *testing.T) {
	e := echo.New()
	Mount(e, testCatalog(t))

	if rec := serve(e, "/_cb/Nope"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRenderComponent(t *testing.T) {
	e := echo.New()
	card := classbound.New("card", "Card", classbound.Variants{{Name: "flat", Class: "card--flat"}}, "section")
	e.GET("/card", func(c echo.Context) error {
		return RenderComponent(c, card, dom.Props{"flat": true, "children": "hi"})
	})

	rec := serve(e, "/card")
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got, want := rec.Body.String(), `<section class="card card--flat">hi</section>`; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}
