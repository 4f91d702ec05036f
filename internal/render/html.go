package render

import (
	"embed"
	"html/template"
	"io"

	"taskboard/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// TodoPage is the data behind the listing page
type TodoPage struct {
	Items []*domain.Task
	// Error is shown above the form when the previous submission failed.
	Error string
}

// HelloPage is the data behind the greeting page
type HelloPage struct {
	Name string
}

// Todo renders the listing page
func Todo(w io.Writer, page TodoPage) error {
	return templates.ExecuteTemplate(w, "todo.html", page)
}

// Hello renders the greeting page
func Hello(w io.Writer, name string) error {
	return templates.ExecuteTemplate(w, "hello.html", HelloPage{Name: name})
}
