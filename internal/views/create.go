package views

import (
	"errors"

	"movieshelf/internal/movies"
	"movieshelf/internal/routes"
)

// Appender is the write capability the create form needs.
type Appender interface {
	Append(title string) (movies.Movie, error)
}

// Draft is the create form's local state.
type Draft struct {
	Title string
	Error string
}

// NewDraft returns an empty draft.
func NewDraft() Draft {
	return Draft{}
}

// Change replaces the draft title verbatim.
func (d *Draft) Change(value string) {
	d.Title = value
}

// Clear resets the draft to its initial state.
func (d *Draft) Clear() {
	*d = Draft{}
}

// Submit appends the drafted title and navigates to the movie list. When the
// store rejects the title the draft keeps its text, records the message, and
// no navigation happens.
func Submit(store Appender, nav routes.Navigator, d *Draft) (movies.Movie, error) {
	m, err := store.Append(d.Title)
	if err != nil {
		if errors.Is(err, movies.ErrValidation) {
			d.Error = err.Error()
		}
		return movies.Movie{}, err
	}
	d.Clear()
	nav.Navigate(routes.Root)
	return m, nil
}
