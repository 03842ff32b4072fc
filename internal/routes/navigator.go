package routes

import "net/http"

// Navigator moves the user to another path.
type Navigator interface {
	Navigate(path string)
}

// RedirectNavigator navigates by answering the current request with a
// 303 See Other, so a POSTed form is followed by a GET of the target.
type RedirectNavigator struct {
	w      http.ResponseWriter
	r      *http.Request
	target string
}

// NewRedirectNavigator binds a navigator to one request.
func NewRedirectNavigator(w http.ResponseWriter, r *http.Request) *RedirectNavigator {
	return &RedirectNavigator{w: w, r: r}
}

func (n *RedirectNavigator) Navigate(path string) {
	n.target = path
	http.Redirect(n.w, n.r, path, http.StatusSeeOther)
}

// Navigated reports whether a redirect was written, and where to.
func (n *RedirectNavigator) Navigated() (string, bool) {
	return n.target, n.target != ""
}

// Recorder collects navigations without side effects.
type Recorder struct {
	Paths []string
}

func (r *Recorder) Navigate(path string) {
	r.Paths = append(r.Paths, path)
}

// Last returns the most recent navigation target.
func (r *Recorder) Last() (string, bool) {
	if len(r.Paths) == 0 {
		return "", false
	}
	return r.Paths[len(r.Paths)-1], true
}
