package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/docnav/docnav/internal/logging"
	"github.com/docnav/docnav/internal/nav"
	"github.com/docnav/docnav/internal/site"
)

type setSummary struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern,omitempty"`
	Pages   int    `json:"pages"`
}

type pagesResponse struct {
	Set   string     `json:"set"`
	Pages []nav.Page `json:"pages"`
}

type neighborsResponse struct {
	Path string    `json:"path"`
	Set  string    `json:"set"`
	Prev *nav.Page `json:"prev"`
	Next *nav.Page `json:"next"`
}

func (s *Server) handleSets(w http.ResponseWriter, r *http.Request) {
	sets := s.nav.Sets()
	out := make([]setSummary, 0, len(sets))
	for _, set := range sets {
		out = append(out, setSummary{
			Name:    set.Name,
			Pattern: set.Pattern,
			Pages:   len(set.Pages()),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePages(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("set")
	if name == "" {
		writeError(w, http.StatusBadRequest, "set is required")
		return
	}
	set, err := s.nav.Set(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	pages := set.Pages()
	if pages == nil {
		pages = []nav.Page{}
	}
	writeJSON(w, http.StatusOK, pagesResponse{Set: set.Name, Pages: pages})
}

func (s *Server) handleNeighbors(w http.ResponseWriter, r *http.Request) {
	state, ok := s.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, neighborsResponse{
		Path: state.Path,
		Set:  state.Set,
		Prev: state.Prev,
		Next: state.Next,
	})
}

func (s *Server) handleSidebar(w http.ResponseWriter, r *http.Request) {
	state, ok := s.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// resolve reads the path query parameter and recomputes the navigation
// state for it, writing an error response when it cannot.
func (s *Server) resolve(w http.ResponseWriter, r *http.Request) (nav.State, bool) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return nav.State{}, false
	}
	state, ok := s.nav.Resolve(path)
	if !ok {
		writeError(w, http.StatusNotFound, "no navigation set serves "+path)
		return nav.State{}, false
	}
	return state, true
}

func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	css, err := site.Stylesheet()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(css))
}

func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write([]byte(site.Script()))
}

func (s *Server) handleSearchIndex(w http.ResponseWriter, r *http.Request) {
	entries, err := s.renderer.SearchIndex(s.nav)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// handlePage renders the requested page from its markdown source on every
// request, so edits show up on reload.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	set, ok := s.nav.Match(path)
	if !ok {
		writeError(w, http.StatusNotFound, "no navigation set serves "+path)
		return
	}

	if path == "/" {
		pages := set.Pages()
		if _, found := nav.Find(pages, "/"); !found && len(pages) > 0 {
			http.Redirect(w, r, pages[0].Link, http.StatusFound)
			return
		}
	}

	var buf bytes.Buffer
	if _, err := s.renderer.RenderPage(&buf, set, path); err != nil {
		if errors.Is(err, site.ErrPageNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.internalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error("request failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
