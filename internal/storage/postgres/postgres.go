package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"chronopro-api/internal/storage"
)

// Store implements storage.Store on PostgreSQL.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New connects to the database described by dsn.
func New(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS public.user_responses (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			chronotype TEXT NOT NULL CHECK (chronotype IN ('morning', 'intermediate', 'evening')),
			training_time TEXT NOT NULL CHECK (training_time IN ('morning', 'midday', 'afternoon', 'night')),
			frequency TEXT NOT NULL CHECK (frequency IN ('low', 'moderate', 'high')),
			diet TEXT NOT NULL,
			experience TEXT NOT NULL CHECK (experience IN ('beginner', 'intermediate', 'advanced')),
			supplements TEXT[] NOT NULL DEFAULT '{}',
			goal TEXT NOT NULL CHECK (goal IN ('hypertrophy', 'strength', 'both')),
			ip_hash TEXT,
			user_agent TEXT,
			plan_generated JSONB
		)`,
		`CREATE INDEX IF NOT EXISTS idx_user_responses_created_at ON public.user_responses(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_user_responses_chronotype ON public.user_responses(chronotype)`,
		`CREATE INDEX IF NOT EXISTS idx_user_responses_diet ON public.user_responses(diet)`,
	}
	for _, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *Store) Save(ctx context.Context, r *storage.Response) error {
	r.Prepare(s.now())

	var plan any
	if len(r.Plan) > 0 {
		plan = string(r.Plan)
	}
	var ipHash any
	if r.IPHash != "" {
		ipHash = r.IPHash
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO public.user_responses (
			id, created_at, chronotype, training_time, frequency, diet,
			experience, supplements, goal, ip_hash, user_agent, plan_generated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		r.ID, r.CreatedAt, r.Chronotype, r.TrainingTime, r.Frequency, r.Diet,
		r.Experience, pq.Array(r.Supplements), r.Goal, ipHash, r.UserAgent, plan,
	)
	if err != nil {
		return fmt.Errorf("insert response: %w", err)
	}
	return nil
}

const selectColumns = `
	SELECT id, created_at, chronotype, training_time, frequency, diet,
	       experience, supplements, goal, COALESCE(ip_hash, ''), user_agent, plan_generated
	FROM public.user_responses`

type scanner interface {
	Scan(dest ...any) error
}

func scanResponse(row scanner) (*storage.Response, error) {
	var (
		r         storage.Response
		userAgent sql.NullString
		plan      []byte
	)
	err := row.Scan(
		&r.ID, &r.CreatedAt, &r.Chronotype, &r.TrainingTime, &r.Frequency, &r.Diet,
		&r.Experience, pq.Array(&r.Supplements), &r.Goal, &r.IPHash, &userAgent, &plan,
	)
	if err != nil {
		return nil, err
	}
	if r.Supplements == nil {
		r.Supplements = []string{}
	}
	if userAgent.Valid {
		ua := userAgent.String
		r.UserAgent = &ua
	}
	if plan != nil {
		r.Plan = json.RawMessage(plan)
	}
	return &r, nil
}

func (s *Store) Get(ctx context.Context, id string) (*storage.Response, error) {
	r, err := scanResponse(s.db.QueryRowContext(ctx, selectColumns+` WHERE id::text = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get response %s: %w", id, err)
	}
	return r, nil
}

func where(opts storage.ListOptions) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if opts.Chronotype != "" {
		args = append(args, opts.Chronotype)
		conds = append(conds, fmt.Sprintf("chronotype = $%d", len(args)))
	}
	if opts.Diet != "" {
		args = append(args, opts.Diet)
		conds = append(conds, fmt.Sprintf("diet = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (s *Store) List(ctx context.Context, opts storage.ListOptions) ([]storage.Response, int, error) {
	opts = opts.Normalize()
	clause, args := where(opts)

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM public.user_responses`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count responses: %w", err)
	}

	query := fmt.Sprintf("%s%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		selectColumns, clause, len(args)+1, len(args)+2)
	rows, err := s.db.QueryContext(ctx, query, append(args, opts.Limit, opts.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list responses: %w", err)
	}
	defer rows.Close()

	responses := []storage.Response{}
	for rows.Next() {
		r, err := scanResponse(rows)
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, *r)
	}
	return responses, total, rows.Err()
}

// Stats runs the three aggregate queries concurrently on the pool.
func (s *Store) Stats(ctx context.Context, since time.Time) (*storage.Stats, error) {
	stats := storage.NewStats()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := s.db.QueryRowContext(gctx, `
			SELECT COUNT(*), COUNT(*) FILTER (WHERE created_at >= $1)
			FROM public.user_responses`, since).Scan(&stats.Total, &stats.Last24h)
		if err != nil {
			return fmt.Errorf("count responses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return s.countBy(gctx, "chronotype", stats.ByChronotype)
	})
	g.Go(func() error {
		return s.countBy(gctx, "diet", stats.ByDiet)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) countBy(ctx context.Context, column string, into map[string]int) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+column+`, COUNT(*) FROM public.user_responses GROUP BY `+column)
	if err != nil {
		return fmt.Errorf("count by %s: %w", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   string
			count int
		)
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("scan %s count: %w", column, err)
		}
		into[key] = count
	}
	return rows.Err()
}

func (s *Store) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM public.user_responses WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete responses: %w", err)
	}
	return res.RowsAffected()
}
