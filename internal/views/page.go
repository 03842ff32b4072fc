package views

import (
	"movieshelf/internal/movies"
	"movieshelf/internal/routes"
)

const appTitle = "Movies"

// Page is the full composition for one request.
type Page struct {
	Title  string
	Links  []Link
	Child  string
	Detail Detail
	Draft  Draft
}

// Compose builds the page for a route selection from a snapshot of the
// collection. draft is only used for the create view.
func Compose(list []movies.Movie, sel routes.Selection, draft Draft) Page {
	page := Page{
		Title: appTitle,
		Links: ListView(list),
		Child: sel.State.String(),
	}
	switch sel.State {
	case routes.ListWithDetail:
		page.Detail = DetailView(list, sel.MovieID)
		if page.Detail.Found {
			page.Title = page.Detail.Title + " · " + appTitle
		}
	case routes.ListWithCreate:
		page.Draft = draft
		page.Title = "Add Movie · " + appTitle
	}
	return page
}
