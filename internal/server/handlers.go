package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/AnthonyHerman/cvefeed/internal/cve"
)

// handleListCVEs answers GET /api/cves with every row of the cve table,
// normalized. Any database fault becomes an opaque 500.
func (s *Server) handleListCVEs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// the column probe is diagnostic only
	columns, err := s.store.ListColumns(ctx)
	if err != nil {
		s.log.Warnw("Failed to list available columns", "error", err)
	} else {
		s.log.Infow("Available columns", "columns", columns)
	}

	rows, err := s.store.FetchRows(ctx)
	if err != nil {
		s.log.Errorw("Database error", "error", err)
		serverError(w)
		return
	}

	normalized := cve.NormalizeAll(rows)
	if len(normalized) > 0 {
		sample := normalized[0]
		score, _ := sample.Get("base_score")
		severity, _ := sample.Get("base_severity")
		s.log.Debugw("Sample normalized row",
			"keys", sample.Keys(),
			"base_score", score,
			"base_severity", severity,
		)
	}

	// encode fully before writing so a failure cannot leak a partial body
	body, err := json.Marshal(normalized)
	if err != nil {
		s.log.Errorw("Failed to encode response", "error", err, "rows", len(normalized))
		serverError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	serveFile(w, r, frontendFS{root: s.files}, "/index.html")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.PingContext(r.Context()); err != nil {
		s.log.Warnw("Health check failed", "error", err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, "unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

func serverError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	io.WriteString(w, "Server Error")
}
