package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"regexp"

	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templateFS embed.FS

var htmlTmpl = template.Must(template.New("report.html").Funcs(template.FuncMap{
	"markdown": renderMarkdown,
	"color":    safeColor,
	"tint":     tint,
	"seq":      seq,
	"pct":      func(f float64) string { return fmt.Sprintf("%.1f", f) },
	"date":     func(r Report) string { return r.Date.Format("January 2, 2006") },
	"stamp":    func(r Report) string { return r.Generated.Format("2006-01-02 15:04") },
}).ParseFS(templateFS, "templates/report.html"))

// WriteHTML renders the report as a standalone printable HTML document.
func WriteHTML(w io.Writer, r Report) error {
	if err := htmlTmpl.Execute(w, r); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

// renderMarkdown converts a justification to HTML. goldmark drops raw HTML
// unless the unsafe renderer option is set, so user text cannot inject markup.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md)) //nolint:gosec // escaped above
	}
	return template.HTML(buf.String()) //nolint:gosec // goldmark omits raw HTML
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// safeColor passes catalog hex colors through to CSS as #rrggbb and
// replaces anything else with a neutral gray.
func safeColor(c string) template.CSS {
	if !hexColor.MatchString(c) {
		c = fallbackHex
	}
	if len(c) == 4 {
		c = string([]byte{'#', c[1], c[1], c[2], c[2], c[3], c[3]})
	}
	return template.CSS(c) //nolint:gosec // validated hex color
}

// tint is the category color at low alpha, for title backgrounds.
func tint(c string) template.CSS {
	return safeColor(c) + "26"
}

func seq(n int) []int {
	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = i
	}
	return out
}

// WriteHTMLFile renders the report to path, replacing any existing file.
func WriteHTMLFile(path string, r Report) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteHTML(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
