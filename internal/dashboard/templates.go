package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"

	"github.com/preston-bernstein/fpl-data-explorer/internal/fdr"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageExplorer = "explorer.html"
	pageAnalysis = "analysis.html"
)

// Templates holds the parsed dashboard pages, each cloned from the shared layout.
type Templates struct {
	pages map[string]*template.Template
}

// LoadTemplates parses the embedded layout and page templates.
func LoadTemplates() (*Templates, error) {
	base, err := template.New("base").Funcs(funcMap()).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, 2)
	for _, name := range []string{pageExplorer, pageAnalysis} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout: %w", err)
		}
		if _, err := clone.ParseFS(templateFS, "templates/"+name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = clone
	}
	return &Templates{pages: pages}, nil
}

func (t *Templates) execute(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"cellStyle": func(v any) template.CSS { return template.CSS(fdr.CellStyle(v)) },
	}
}

// heatStyle shades a correlation coefficient from blue (-1) through white to red (+1).
func heatStyle(r float64) template.CSS {
	if math.IsNaN(r) {
		return ""
	}
	r = math.Max(-1, math.Min(1, r))
	fade := int(math.Round(255 * (1 - math.Abs(r))))
	var red, green, blue int
	if r >= 0 {
		red, green, blue = 255, fade, fade
	} else {
		red, green, blue = fade, fade, 255
	}
	text := "black"
	if math.Abs(r) > 0.6 {
		text = "white"
	}
	return template.CSS(fmt.Sprintf("background-color: rgb(%d, %d, %d); color: %s;", red, green, blue, text))
}
