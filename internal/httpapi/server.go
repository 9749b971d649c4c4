// Package httpapi exposes the games as a small JSON API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/problemgen"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/store"
	"github.com/abhisek/smarty/internal/sudoku"
	"github.com/abhisek/smarty/internal/validate"
)

// SessionTTL is how long an untouched session stays registered.
const SessionTTL = 2 * time.Hour

// Server bundles router, session registry and the shared session Env.
type Server struct {
	r        *chi.Mux
	env      *session.Env
	planner  *session.Planner
	sessions *Registry
	log      zerolog.Logger
}

// New constructs a Server, installs middleware, and registers routes.
func New(env *session.Env, timeout time.Duration) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		env:      env,
		planner:  session.NewPlanner(env.Progress, env.Log),
		sessions: NewRegistry(SessionTTL),
		log:      env.Log,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(s.log))
	s.r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", chimw.GetReqID(r.Context())).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("request")
	}))
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(timeout))
	s.r.Use(jsonContentType)

	s.r.Get("/health", s.handleHealth)
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found: "+r.URL.Path)
	})

	s.r.Route("/api", func(r chi.Router) {
		r.Get("/progress", s.handleProgress)
		s.mountSyllables(r)
		s.mountMath(r)
		s.mountLetters(r)
		s.mountSudoku(r)
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is cancelled. Idle sessions are
// finished and dropped in the background.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()

	s.log.Info().Str("addr", addr).Msg("http server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) sweep(ctx context.Context) {
	for _, sess := range s.sessions.Sweep() {
		sess.Finish(ctx)
		s.log.Debug().Str("session", sess.ID()).Msg("expired session finished")
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ helpers ------------------------------------

type errorRes struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorRes{Error: msg})
}

// fail maps domain errors to HTTP statuses.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
	}
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	var cfgErr *validate.InvalidConfigurationError
	var poolErr *problemgen.InsufficientPoolError
	switch {
	case errors.Is(err, session.ErrNoWords), errors.As(err, &poolErr):
		return http.StatusServiceUnavailable
	case errors.Is(err, errSessionNotFound), errors.Is(err, session.ErrUnknownTask):
		return http.StatusNotFound
	case errors.Is(err, sudoku.ErrPrefilledCell),
		errors.Is(err, sudoku.ErrNoHintAvailable),
		errors.Is(err, session.ErrFinished):
		return http.StatusConflict
	case errors.As(err, &cfgErr),
		errors.Is(err, session.ErrUnknownWord),
		errors.Is(err, session.ErrNotANumber),
		errors.Is(err, errBadJSON):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

var errBadJSON = errors.New("bad json")

// decode reads an optional JSON body into v.
func decode(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadJSON
	}
	return nil
}

// ------------------------------ handlers -----------------------------------

type healthRes struct {
	OK       bool `json:"ok"`
	Words    int  `json:"words"`
	Sessions int  `json:"sessions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthRes{OK: true, Words: len(s.env.Words), Sessions: s.sessions.Len()})
}

type progressRes struct {
	Crowns map[crowns.Ledger]int `json:"crowns"`
	Levels map[string]int        `json:"levels"`
	Recent []store.SessionRecord `json:"recent"`
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res := progressRes{
		Crowns: crowns.NewService(s.env.Progress, s.log).Totals(ctx),
		Levels: map[string]int{},
	}
	for _, app := range crowns.AllApps() {
		res.Levels[string(app)] = s.planner.SavedLevel(ctx, app)
	}
	if s.env.Events != nil {
		recent, err := s.env.Events.RecentSessions(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("could not read session history")
		}
		res.Recent = recent
	}
	writeJSON(w, http.StatusOK, res)
}

// start builds, registers and returns a new session.
func (s *Server) start(w http.ResponseWriter, r *http.Request, plan session.Plan) {
	plan, err := s.planner.Build(r.Context(), plan)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	sess, err := session.New(r.Context(), s.env, plan)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.sessions.Add(sess)
	writeJSON(w, http.StatusCreated, sess.Snapshot())
}

func (s *Server) handleGet(app crowns.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var snap session.Snapshot
		err := s.sessions.With(chi.URLParam(r, "id"), app, func(sess session.Session) error {
			snap = sess.Snapshot()
			return nil
		})
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

func (s *Server) handleFinish(app crowns.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var sum *session.Summary
		err := s.sessions.With(id, app, func(sess session.Session) error {
			sum = sess.Finish(r.Context())
			return nil
		})
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.sessions.Remove(id)
		writeJSON(w, http.StatusOK, sum)
	}
}

// answerRes pairs the outcome of an answer with the new session state.
type answerRes struct {
	Outcome session.Outcome  `json:"outcome"`
	Session session.Snapshot `json:"session"`
}
