// Package web holds the embedded HTML templates of the public pages and the
// gin renderer that serves them.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin/render"

	"github.com/cariesreview/catalog/internal/pkg/helpers"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Pages lists the page templates. Each is parsed together with layout.html.
var Pages = []string{
	"home", "study_list", "study_search", "study_detail", "dashboard",
	"analytics", "trends", "about", "methodology", "protocol", "error",
}

// Funcs are the helpers available to every template.
var Funcs = template.FuncMap{
	"comma":      comma,
	"decimal":    decimal,
	"optDecimal": optDecimal,
	"date":       helpers.FormatDate,
	"ago":        humanize.Time,
	"pageURL":    pageURL,
	"add":        func(a, b int) int { return a + b },
	"sub":        func(a, b int) int { return a - b },
}

// Renderer implements gin's render.HTMLRender over the embedded pages.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page with the layout.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(Pages))}
	for _, name := range Pages {
		t, err := template.New(name).Funcs(Funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Instance returns the render for the named page. Unknown names render the
// error page so a typo never panics a request.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		t = r.pages["error"]
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}

func comma(v any) string {
	switch n := v.(type) {
	case int:
		return humanize.Comma(int64(n))
	case int64:
		return humanize.Comma(n)
	case *int:
		if n == nil {
			return "n/a"
		}
		return humanize.Comma(int64(*n))
	case float64:
		return humanize.Commaf(n)
	default:
		return fmt.Sprint(v)
	}
}

// decimal formats f with at most two decimals.
func decimal(f float64) string {
	return humanize.FtoaWithDigits(f, 2)
}

func optDecimal(f *float64) string {
	if f == nil {
		return "n/a"
	}
	return decimal(*f)
}

// pageURL returns "?<query>&page=<page>" with any existing page parameter
// replaced.
func pageURL(query url.Values, page int) string {
	q := url.Values{}
	for k, v := range query {
		if k != "page" {
			q[k] = v
		}
	}
	q.Set("page", strconv.Itoa(page))
	return "?" + q.Encode()
}

