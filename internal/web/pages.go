package web

import (
	"bytes"
	"errors"
	"net/http"

	"movieshelf/internal/logging"
	"movieshelf/internal/movies"
	"movieshelf/internal/routes"
	"movieshelf/internal/views"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sel := routes.Resolve(r.URL.Path)

	switch sel.State {
	case routes.Outside:
		if r.URL.Path == "/" && isRead(r) {
			http.Redirect(w, r, routes.Root, http.StatusFound)
			return
		}
		http.NotFound(w, r)
		return
	case routes.ListWithCreate:
		if r.Method == http.MethodPost {
			s.handleCreate(w, r)
			return
		}
	}

	if !isRead(r) {
		w.Header().Set("Allow", allowFor(sel))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := http.StatusOK
	if sel.State == routes.ListOnly {
		status = http.StatusNotFound
	}
	s.renderPage(w, r, status, views.Compose(s.store.All(), sel, views.NewDraft()))
}

// handleCreate runs the create form submission. Success answers with a 303 to
// the list; a rejected title re-renders the form with the draft intact.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	draft := views.NewDraft()
	draft.Change(r.PostFormValue("title"))

	nav := routes.NewRedirectNavigator(w, r)
	movie, err := views.Submit(s.store, nav, &draft)
	if err == nil {
		target, navigated := nav.Navigated()
		if !navigated {
			target = routes.Root
			http.Redirect(w, r, target, http.StatusSeeOther)
		}
		logging.WithContext(r.Context(), s.logger).Debug("movie created from form",
			logging.Int64(logging.FieldMovieID, movie.ID),
			logging.String("redirect", target),
		)
		return
	}
	if !errors.Is(err, movies.ErrValidation) {
		logging.WithContext(r.Context(), s.logger).Error("create movie failed", logging.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	sel := routes.Selection{State: routes.ListWithCreate}
	s.renderPage(w, r, http.StatusUnprocessableEntity, views.Compose(s.store.All(), sel, draft))
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, page views.Page) {
	var buf bytes.Buffer
	if err := s.renderer.Page(&buf, page); err != nil {
		logging.WithContext(r.Context(), s.logger).Error("render page failed", logging.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}

func isRead(r *http.Request) bool {
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}

func allowFor(sel routes.Selection) string {
	if sel.State == routes.ListWithCreate {
		return "GET, HEAD, POST"
	}
	return "GET, HEAD"
}
