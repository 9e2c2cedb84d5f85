package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/docgen"
)

// RoutesDoc renders the router definition as markdown.
func RoutesDoc(r chi.Router) string {
	return docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
		ProjectPath: "github.com/SergeyParamoshkin/newsdesk",
		Intro:       "Routes of the newsdesk API.",
	})
}
