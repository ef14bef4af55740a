package cmdserver

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/creachadair/wordid/widlib"
	"github.com/creachadair/wordid/wordlist"
)

// UI implements the HTTP endpoints for the wordid web UI.
type UI struct {
	// Words returns the active word list to serve.
	Words func() *wordlist.List

	// Salt is the secret salt fixed at startup. It is used for derivation
	// only and must never be written to a response.
	Salt widlib.Salt

	// Templates are the compiled UI templates.
	Templates *template.Template
}

// ServeMux returns a router for the UI endpoints:
//
//	GET /    -- serve the main UI page
//	GET /id  -- serve a bare identifier (text/plain)
func (s UI) ServeMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.ui)
	mux.HandleFunc("GET /id", s.id)
	return mux
}

// uiData is the payload for the index template.
type uiData struct {
	Input     string
	Words     int
	Checksum  int
	Separator string
	ListSize  int

	ID    string // the generated identifier, if any
	Error string // a generation error, if any
}

// params decodes the generation settings from the request query, applying
// the standard defaults for missing values.
func (s UI) params(r *http.Request) (string, widlib.Options) {
	opts := widlib.DefaultOptions
	if n, err := strconv.Atoi(r.FormValue("n")); err == nil {
		opts.Words = n
	}
	if c, err := strconv.Atoi(r.FormValue("c")); err == nil {
		opts.Checksum = c
	}
	if sep := r.FormValue("sep"); sep != "" {
		opts.Separator = sep
	}
	return r.FormValue("q"), opts
}

// ui serves the main UI page.
func (s UI) ui(w http.ResponseWriter, r *http.Request) {
	input, opts := s.params(r)
	list := s.Words()
	data := uiData{
		Input:     input,
		Words:     opts.Words,
		Checksum:  opts.Checksum,
		Separator: opts.Separator,
		ListSize:  list.Len(),
	}
	if strings.TrimSpace(input) != "" {
		id, err := widlib.GenerateID(input, s.Salt, list, opts)
		if err != nil {
			data.Error = err.Error()
		} else {
			data.ID = id
		}
	}
	s.runTemplate(w, r, "index.html.tmpl", data)
}

// id serves a bare identifier as plain text, for scripted callers.
func (s UI) id(w http.ResponseWriter, r *http.Request) {
	input, opts := s.params(r)
	if strings.TrimSpace(input) == "" {
		http.Error(w, "missing input (q)", http.StatusBadRequest)
		return
	}
	id, err := widlib.GenerateID(input, s.Salt, s.Words(), opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(id + "\n"))
}

// runTemplate invokes the named template with the specified argument value.
// If the template reports an error, runTemplate serves a 500.
func (s UI) runTemplate(w http.ResponseWriter, r *http.Request, name string, value any) {
	var buf bytes.Buffer
	if err := s.Templates.Lookup(name).Execute(&buf, value); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
