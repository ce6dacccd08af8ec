package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"chronopro-api/internal/chrono"
	"chronopro-api/internal/storage"
)

// Options configures a Server.
type Options struct {
	Engine     *chrono.Engine
	Store      storage.Store
	AdminToken string
	IPHashSalt string
}

// Server exposes the plan engine and the response store over HTTP.
type Server struct {
	engine     *chrono.Engine
	store      storage.Store
	adminToken string
	salt       string
	now        func() time.Time
}

func New(opts Options) *Server {
	return &Server{
		engine:     opts.Engine,
		store:      opts.Store,
		adminToken: opts.AdminToken,
		salt:       opts.IPHashSalt,
		now:        time.Now,
	}
}

// Handler returns the routed API wrapped in request logging.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/health", s.health).Methods("GET")
	r.HandleFunc("/api/generate-plan", s.generatePlan).Methods("POST")
	r.HandleFunc("/api/save-response", s.saveResponse).Methods("POST")

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(s.requireAdmin)
	admin.HandleFunc("/stats", s.stats).Methods("GET")
	admin.HandleFunc("/responses", s.listResponses).Methods("GET")
	admin.HandleFunc("/responses/{id}", s.getResponse).Methods("GET")

	return loggingMiddleware(r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
