package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"chronopro-api/internal/chrono"
)

// ErrNotFound is returned when a requested response doesn't exist.
var ErrNotFound = errors.New("not found")

const (
	DefaultLimit = 20
	MaxLimit     = 100
	MaxPage      = 1_000_000
)

// Response is one submitted questionnaire, optionally with the plan that was
// generated for it.
type Response struct {
	ID           string              `json:"id"`
	CreatedAt    time.Time           `json:"created_at"`
	Chronotype   chrono.Chronotype   `json:"chronotype"`
	TrainingTime chrono.TrainingTime `json:"training_time"`
	Frequency    chrono.Frequency    `json:"frequency"`
	Diet         chrono.Diet         `json:"diet"`
	Experience   chrono.Experience   `json:"experience"`
	Supplements  []string            `json:"supplements"`
	Goal         chrono.Goal         `json:"goal"`
	IPHash       string              `json:"ip_hash,omitempty"`
	UserAgent    *string             `json:"user_agent"`
	Plan         json.RawMessage     `json:"plan_generated"`
}

// NewResponse copies the answers of p into a new, unsaved Response.
func NewResponse(p chrono.Profile) *Response {
	supplements := append([]string{}, p.Supplements...)
	return &Response{
		Chronotype:   p.Chronotype,
		TrainingTime: p.TrainingTime,
		Frequency:    p.Frequency,
		Diet:         p.Diet,
		Experience:   p.Experience,
		Supplements:  supplements,
		Goal:         p.Goal,
	}
}

// Profile returns the questionnaire answers stored in r.
func (r *Response) Profile() chrono.Profile {
	return chrono.Profile{
		Chronotype:   r.Chronotype,
		TrainingTime: r.TrainingTime,
		Frequency:    r.Frequency,
		Diet:         r.Diet,
		Experience:   r.Experience,
		Supplements:  append([]string{}, r.Supplements...),
		Goal:         r.Goal,
	}
}

// Prepare fills in the identity fields before an insert. Stores call it from
// Save; CreatedAt is normalised to UTC.
func (r *Response) Prepare(now time.Time) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.CreatedAt = r.CreatedAt.UTC()
	if r.Supplements == nil {
		r.Supplements = []string{}
	}
}

// ListOptions filters and paginates List. Zero values mean no filter.
type ListOptions struct {
	Page       int
	Limit      int
	Chronotype chrono.Chronotype
	Diet       chrono.Diet
}

// Normalize clamps the page to 1..MaxPage and the limit to 1..MaxLimit, so
// Offset never overflows.
func (o ListOptions) Normalize() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Page > MaxPage {
		o.Page = MaxPage
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	return o
}

func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// Stats aggregates stored responses for the admin dashboard.
type Stats struct {
	Total        int            `json:"total"`
	Last24h      int            `json:"last24h"`
	ByChronotype map[string]int `json:"byChronotype"`
	ByDiet       map[string]int `json:"byDiet"`
}

// NewStats returns Stats with every chronotype present at zero.
func NewStats() *Stats {
	s := &Stats{
		ByChronotype: make(map[string]int, len(chrono.Chronotypes)),
		ByDiet:       make(map[string]int),
	}
	for _, c := range chrono.Chronotypes {
		s.ByChronotype[string(c)] = 0
	}
	return s
}

// Store persists questionnaire responses.
type Store interface {
	// Save inserts r, assigning ID and CreatedAt when empty.
	Save(ctx context.Context, r *Response) error

	// Get retrieves a response by ID.
	Get(ctx context.Context, id string) (*Response, error)

	// List returns one page of responses, newest first, and the total number
	// of responses matching the filters.
	List(ctx context.Context, opts ListOptions) ([]Response, int, error)

	// Stats counts all responses and those created at or after since.
	Stats(ctx context.Context, since time.Time) (*Stats, error)

	// DeleteBefore removes responses created before cutoff.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)

	Migrate(ctx context.Context) error
	Close() error
}
