package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ydx-lana/assessad/internal/session"
	"github.com/ydx-lana/assessad/internal/shuffle"
	syncx "github.com/ydx-lana/assessad/internal/sync"
)

// GET /admin/raters?role=rater
func ListRatersHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := r.URL.Query().Get("role")
		var rows *sql.Rows
		var err error
		if role == "" {
			rows, err = db.QueryContext(r.Context(), `SELECT id,username,role FROM users ORDER BY username`)
		} else {
			rows, err = db.QueryContext(r.Context(), `SELECT id,username,role FROM users WHERE role=$1 ORDER BY username`, role)
		}
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		defer rows.Close()
		out := []map[string]string{}
		for rows.Next() {
			var id, u, role string
			if err := rows.Scan(&id, &u, &role); err != nil {
				http.Error(w, err.Error(), 500)
				return
			}
			out = append(out, map[string]string{"id": id, "username": u, "role": role})
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

// GET /admin/raters/{userID}/shuffle
func ShuffleStatsHandler(gen *shuffle.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := gen.Stats(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			http.Error(w, "no shuffle order for user", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(rec)
	}
}

// GET /admin/raters/{userID}/profile
func RaterProfileHandler(repo *session.ProfileRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := repo.Get(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			http.Error(w, "no profile for user", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(p)
	}
}

// GET /admin/raters/{userID}/events?limit=100
func RaterEventsHandler(events *syncx.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		evs, err := events.Recent(r.Context(), chi.URLParam(r, "userID"), limit)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(evs)
	}
}
