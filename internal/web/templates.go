package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// scorePlaceholder is rendered when a draft has not been scored yet
const scorePlaceholder = "–"

var templateFuncs = template.FuncMap{
	// score formats a reliability score to two decimal places, or the dash
	// placeholder when scoring has not completed upstream
	"score": func(s *float64) string {
		if s == nil {
			return scorePlaceholder
		}
		return fmt.Sprintf("%.2f", *s)
	},
}

var pageTemplates = mustParsePages(
	"drafts.html",
	"draft.html",
	"notfound.html",
	"error.html",
	"settings.html",
)

// mustParsePages parses each page together with the shared layout. Every
// page defines "title" and "content" blocks that the layout pulls in.
func mustParsePages(pages ...string) map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl := template.Must(
			template.New("layout.html").Funcs(templateFuncs).ParseFS(
				templateFS,
				"templates/layout.html",
				"templates/"+page,
			),
		)
		parsed[page] = tmpl
	}
	return parsed
}

// renderPage writes a full HTML page with the given status code
func renderPage(w http.ResponseWriter, statusCode int, page string, data interface{}) {
	tmpl, ok := pageTemplates[page]
	if !ok {
		log.Error().Str("page", page).Msg("Unknown page template")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := tmpl.Execute(w, data); err != nil {
		log.Error().Err(err).Str("page", page).Msg("Failed to render page")
	}
}
