package router

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"time"

	"bloghub/internal/utils"

	"github.com/gin-contrib/multitemplate"
)

const excerptLength = 160

// views maps the names handlers render to their files under templates/views.
var views = map[string]string{
	"index.html":     "index.html",
	"login.html":     "login.html",
	"error.html":     "error.html",
	"blog/new.html":  "blog/new.html",
	"blog/show.html": "blog/show.html",
	"blog/edit.html": "blog/edit.html",
}

var funcMap = template.FuncMap{
	"markdown": utils.RenderMarkdown,
	"excerpt": func(text string) string {
		return utils.Excerpt(utils.RenderMarkdown(text), excerptLength)
	},
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format("2006-01-02 15:04 UTC")
	},
}

// loadTemplates pairs every view with the layouts so views only define their blocks.
func loadTemplates(fsys fs.FS) (multitemplate.Renderer, error) {
	r := multitemplate.NewRenderer()

	layouts, err := fs.Glob(fsys, "templates/layouts/*.html")
	if err != nil {
		return nil, err
	}
	if len(layouts) == 0 {
		return nil, fmt.Errorf("no layouts found")
	}

	for name, view := range views {
		files := append(append([]string{}, layouts...), "templates/views/"+view)
		tmpl, err := template.New(path.Base(layouts[0])).Funcs(funcMap).ParseFS(fsys, files...)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.Add(name, tmpl)
	}

	return r, nil
}
