package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"storepay/internal/address"
	"storepay/internal/currency"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var stateTemplates = map[State]string{
	StateSuccess:      "success.tmpl",
	StateFailed:       "failed.tmpl",
	StateMissingOrder: "missing_order.tmpl",
	StateNotFound:     "not_found.tmpl",
}

// Renderer turns confirmation view models into HTML. One template per
// state, parsed once at construction.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl := template.New("confirmation").Funcs(template.FuncMap{
		"money":    currency.Format,
		"addrName": address.DisplayName,
	})
	tmpl, err := tmpl.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse confirmation templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, c Confirmation) error {
	name, ok := stateTemplates[c.State]
	if !ok {
		return fmt.Errorf("no template for state %q", c.State)
	}
	return r.templates.ExecuteTemplate(w, name, c)
}
