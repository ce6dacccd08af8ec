package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"chronopro-api/internal/chrono"
	"chronopro-api/internal/storage"
)

const (
	msgInvalidProfile = "Invalid profile data"
	msgInternal       = "Internal server error"
)

type planResponse struct {
	Success bool         `json:"success"`
	Plan    *chrono.Plan `json:"plan"`
}

type saveRequest struct {
	chrono.Profile
	Plan json.RawMessage `json:"plan"`
}

type saveResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type statsResponse struct {
	Success bool           `json:"success"`
	Stats   *storage.Stats `json:"stats"`
}

type pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type listResponse struct {
	Success    bool               `json:"success"`
	Data       []storage.Response `json:"data"`
	Pagination pagination         `json:"pagination"`
}

type responseDetail struct {
	Success bool              `json:"success"`
	Data    *storage.Response `json:"data"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) generatePlan(w http.ResponseWriter, r *http.Request) {
	var p chrono.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidProfile)
		return
	}
	if err := p.Validate(); err != nil {
		log.Printf("generate-plan rejected: %v", err)
		writeError(w, http.StatusBadRequest, msgInvalidProfile)
		return
	}

	plan, err := s.engine.GeneratePlan(p)
	if err != nil {
		log.Printf("Error generating plan: %v", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, planResponse{Success: true, Plan: plan})
}

func (s *Server) saveResponse(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidProfile)
		return
	}
	if err := req.Validate(); err != nil {
		log.Printf("save-response rejected: %v", err)
		writeError(w, http.StatusBadRequest, msgInvalidProfile)
		return
	}

	resp := storage.NewResponse(req.Profile)
	resp.IPHash = hashIP(clientIP(r), s.salt)
	if ua := r.UserAgent(); ua != "" {
		resp.UserAgent = &ua
	}
	if len(req.Plan) > 0 && string(req.Plan) != "null" {
		resp.Plan = req.Plan
	}

	if err := s.store.Save(r.Context(), resp); err != nil {
		log.Printf("Error saving response: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save response")
		return
	}
	writeJSON(w, http.StatusOK, saveResponse{Success: true, ID: resp.ID})
}

// clientIP returns the first X-Forwarded-For hop, or "unknown".
func clientIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return "unknown"
	}
	first, _, _ := strings.Cut(forwarded, ",")
	if first = strings.TrimSpace(first); first == "" {
		return "unknown"
	}
	return first
}

// hashIP keeps a short salted digest so raw addresses are never stored.
func hashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(r.Context(), s.now().Add(-24*time.Hour))
	if err != nil {
		log.Printf("Error fetching stats: %v", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{Success: true, Stats: stats})
}

func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return fallback
	}
	return v
}

func (s *Server) listResponses(w http.ResponseWriter, r *http.Request) {
	opts := storage.ListOptions{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", storage.DefaultLimit),
	}.Normalize()

	q := r.URL.Query()
	if v := q.Get("chronotype"); v != "" {
		c, err := chrono.ParseChronotype(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		opts.Chronotype = c
	}
	if v := q.Get("diet"); v != "" {
		d, err := chrono.ParseDiet(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		opts.Diet = d
	}

	data, total, err := s.store.List(r.Context(), opts)
	if err != nil {
		log.Printf("Error fetching responses: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch responses")
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Data:    data,
		Pagination: pagination{
			Page:       opts.Page,
			Limit:      opts.Limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(opts.Limit))),
		},
	})
}

func (s *Server) getResponse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	resp, err := s.store.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Response not found")
		return
	}
	if err != nil {
		log.Printf("Error fetching response %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, responseDetail{Success: true, Data: resp})
}
