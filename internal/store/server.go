package store

import (
	"context"
	"encoding/json"
	"math/rand"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"staffdeck/internal/model"
	"staffdeck/internal/util/logx"
)

// ServerOptions tune the simulated backend. Latency is added to every
// request, FailRate is the probability in [0,1) that a request fails with
// a 500 before touching the roster.
type ServerOptions struct {
	Latency  time.Duration
	FailRate float64
	Seed     int64
}

// Server is an in-process employee directory backend. It owns the canonical
// roster and serves it over a localhost HTTP listener so the client path is
// exercised end to end.
type Server struct {
	mu    sync.Mutex
	users []model.User
	byID  map[string]int

	latency  time.Duration
	failRate float64
	rng      *rand.Rand

	handler http.Handler
	srv     *http.Server
}

func NewServer(users []model.User, opts ServerOptions) *Server {
	s := &Server{
		users:    make([]model.User, len(users)),
		byID:     make(map[string]int, len(users)),
		latency:  opts.Latency,
		failRate: opts.FailRate,
		rng:      rand.New(rand.NewSource(opts.Seed)),
	}
	copy(s.users, users)
	s.reindex()

	r := chi.NewRouter()
	r.Use(s.simulate)
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Get("/{id}", s.handleGet)
		r.Patch("/{id}", s.handleUpdate)
		r.Delete("/{id}", s.handleDelete)
	})
	s.handler = r
	return s
}

// Handler exposes the router directly; tests drive it through httptest.
func (s *Server) Handler() http.Handler { return s.handler }

// Start binds a localhost listener on an ephemeral port and serves until
// Close. It returns the base URL clients should dial.
func (s *Server) Start() (string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	s.srv = &http.Server{Handler: s.handler}
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			logx.Errorf("store: serve: %v", err)
		}
	}()
	return "http://" + ln.Addr().String(), nil
}

func (s *Server) Close() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

func (s *Server) reindex() {
	for k := range s.byID {
		delete(s.byID, k)
	}
	for i, u := range s.users {
		s.byID[u.ID] = i
	}
}

// simulate injects the configured latency and failure rate ahead of every
// handler.
func (s *Server) simulate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.latency > 0 {
			select {
			case <-time.After(s.latency):
			case <-r.Context().Done():
				return
			}
		}
		s.mu.Lock()
		fail := s.failRate > 0 && s.rng.Float64() < s.failRate
		s.mu.Unlock()
		if fail {
			writeMessage(w, http.StatusInternalServerError, "Simulated server error.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"users": out})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	i, ok := s.byID[id]
	var u model.User
	if ok {
		u = s.users[i]
	}
	s.mu.Unlock()
	if !ok {
		writeMessage(w, http.StatusNotFound, "User not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": u})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var u model.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeMessage(w, http.StatusBadRequest, "User data not provided.")
		return
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	s.mu.Lock()
	if _, dup := s.byID[u.ID]; dup {
		s.mu.Unlock()
		writeMessage(w, http.StatusBadRequest, "User id already exists.")
		return
	}
	s.users = append(s.users, u)
	s.byID[u.ID] = len(s.users) - 1
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]any{"user": u})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "User data not provided.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		writeMessage(w, http.StatusNotFound, "User not found.")
		return
	}
	merged, err := mergeUser(s.users[i], patch)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "User data not valid.")
		return
	}
	merged.ID = id
	s.users[i] = merged
	writeJSON(w, http.StatusOK, map[string]any{"user": merged})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		writeMessage(w, http.StatusNotFound, "User not found.")
		return
	}
	removed := s.users[i]
	s.users = append(s.users[:i], s.users[i+1:]...)
	s.reindex()
	writeJSON(w, http.StatusOK, map[string]any{"user": removed})
}

// mergeUser applies a partial JSON object over an existing record, leaving
// untouched fields intact.
func mergeUser(base model.User, patch map[string]json.RawMessage) (model.User, error) {
	raw, err := json.Marshal(base)
	if err != nil {
		return model.User{}, err
	}
	var full map[string]json.RawMessage
	if err := json.Unmarshal(raw, &full); err != nil {
		return model.User{}, err
	}
	for k, v := range patch {
		full[k] = v
	}
	out, err := json.Marshal(full)
	if err != nil {
		return model.User{}, err
	}
	var merged model.User
	if err := json.Unmarshal(out, &merged); err != nil {
		return model.User{}, err
	}
	return merged, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logx.Errorf("store: encode response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
