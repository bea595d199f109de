package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/ydx-lana/assessad/internal/api/http"
	"github.com/ydx-lana/assessad/internal/auth"
	authmw "github.com/ydx-lana/assessad/internal/auth/middleware"
	"github.com/ydx-lana/assessad/internal/config"
	"github.com/ydx-lana/assessad/internal/db"
	"github.com/ydx-lana/assessad/internal/docstore"
	"github.com/ydx-lana/assessad/internal/rbac"
	"github.com/ydx-lana/assessad/internal/session"
	"github.com/ydx-lana/assessad/internal/shuffle"
	syncx "github.com/ydx-lana/assessad/internal/sync"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := docstore.NewSQLStore(dbh)

	// --- Core wiring ---
	var genOpts []shuffle.Option
	if cfg.ShuffleSeed != 0 {
		genOpts = append(genOpts, shuffle.WithRand(rand.New(rand.NewSource(cfg.ShuffleSeed))))
	}
	gen := shuffle.NewGenerator(store, genOpts...)
	repo := session.NewProfileRepo(store)
	events := syncx.NewEventRepo(dbh)
	mgr := session.NewManager(repo, gen, events)

	authSvc := authmw.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/guest", auth.GuestLoginHandler(authSvc, dbh, cfg))
	r.Post("/auth/admin", auth.AdminLoginHandler(authSvc, cfg))

	// Rater flow (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(authSvc))

		pr.With(rbac.Require("session:view")).
			Get("/session", api.SessionViewHandler(mgr))
		pr.With(rbac.Require("session:ack")).
			Post("/session/media-ack", api.MediaAckHandler(mgr))
		pr.With(rbac.Require("session:answer")).
			Post("/session/answers", api.SubmitAnswerHandler(mgr))
		pr.With(rbac.Require("session:advance")).
			Post("/session/advance", api.AdvanceHandler(mgr))
		pr.With(rbac.Require("session:view")).
			Post("/session/signout", api.SignOutHandler(mgr))

		// Admin surfaces
		pr.With(rbac.Require("raters:list")).
			Get("/admin/raters", api.ListRatersHandler(dbh))
		pr.With(rbac.Require("raters:view")).
			Get("/admin/raters/{userID}/profile", api.RaterProfileHandler(repo))
		pr.With(rbac.Require("raters:view")).
			Get("/admin/raters/{userID}/shuffle", api.ShuffleStatsHandler(gen))
		pr.With(rbac.Require("raters:view")).
			Get("/admin/raters/{userID}/events", api.RaterEventsHandler(events))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := dbh.PingContext(r.Context()); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(200)
	})

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
