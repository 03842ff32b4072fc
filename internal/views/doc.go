// Package views renders the movie pages.
//
// Each view is a pure function of typed inputs (ListView, DetailView,
// Compose) plus html/template fragments embedded from templates/. The create
// form keeps its own Draft; Submit is the only view code that writes, and it
// does so through the Appender and Navigator it is handed.
package views
