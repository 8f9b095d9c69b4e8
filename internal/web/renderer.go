package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateRenderer is a html/template renderer for Echo
type TemplateRenderer struct {
	Templates map[string]*template.Template
}

// NewTemplateRenderer parses every page together with the shared layout.
func NewTemplateRenderer() *TemplateRenderer {
	page := func(name string) *template.Template {
		return template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return &TemplateRenderer{
		Templates: map[string]*template.Template{
			"admin.html": page("admin.html"),
			"guest.html": page("guest.html"),
		},
	}
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.Templates[name]
	if !ok {
		return echo.NewHTTPError(500, "template not found: "+name)
	}
	if tmpl.Lookup("layout.html") != nil {
		return tmpl.ExecuteTemplate(w, "layout.html", data)
	}
	return tmpl.Execute(w, data)
}
