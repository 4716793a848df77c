package admin

import (
	"ShopBot/internal/core/domain"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "layout.html"

// renderer keeps one template set per page, each combined with the layout.
type renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"money": func(m domain.Money) string { return m.String() },
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "—"
		}
		return t.Format("02.01.2006 15:04")
	},
	"statusEmoji": func(s domain.OrderStatus) string { return s.Emoji() },
	"short": func(v fmt.Stringer) string {
		s := v.String()
		if len(s) > 8 {
			return s[:8]
		}
		return s
	},
	"str": func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	},
	"stock": func(p *int) string {
		if p == nil {
			return "∞"
		}
		return strconv.Itoa(*p)
	},
}

func newRenderer() (*renderer, error) {
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &renderer{pages: make(map[string]*template.Template)}
	for _, name := range names {
		base := path.Base(name)
		if base == layoutFile {
			continue
		}
		t, err := template.New(layoutFile).Funcs(templateFuncs).
			ParseFS(templateFS, "templates/"+layoutFile, name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", base, err)
		}
		r.pages[base] = t
	}
	return r, nil
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return t.ExecuteTemplate(w, layoutFile, data)
}

// pager carries pagination links for list pages.
type pager struct {
	Page    int
	Pages   int
	Total   int
	PrevURL string
	NextURL string
}

// pageParam reads ?page=, defaulting to 1.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func offset(page int) int {
	return (page - 1) * pageSize
}

func newPager(base string, query url.Values, page, total int) pager {
	pages := (total + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}
	link := func(p int) string {
		q := url.Values{}
		for k, v := range query {
			if k != "page" {
				q[k] = v
			}
		}
		q.Set("page", strconv.Itoa(p))
		return base + "?" + q.Encode()
	}

	p := pager{Page: page, Pages: pages, Total: total}
	if page > 1 {
		p.PrevURL = link(page - 1)
	}
	if page < pages {
		p.NextURL = link(page + 1)
	}
	return p
}
