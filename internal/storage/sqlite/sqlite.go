package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"chronopro-api/internal/storage"
)

// Store implements storage.Store using SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New opens (and creates if needed) the SQLite database at path.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// SQLite works best with a single writer connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Migrate(ctx context.Context) error {
	return Migrate(ctx, s.db)
}

func (s *Store) Save(ctx context.Context, r *storage.Response) error {
	r.Prepare(s.now())

	supplements, err := json.Marshal(r.Supplements)
	if err != nil {
		return fmt.Errorf("encode supplements: %w", err)
	}
	var plan any
	if len(r.Plan) > 0 {
		plan = string(r.Plan)
	}
	var ipHash any
	if r.IPHash != "" {
		ipHash = r.IPHash
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO user_responses (
			id, created_at, chronotype, training_time, frequency, diet,
			experience, supplements, goal, ip_hash, user_agent, plan_generated
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt, r.Chronotype, r.TrainingTime, r.Frequency, r.Diet,
		r.Experience, string(supplements), r.Goal, ipHash, r.UserAgent, plan,
	)
	if err != nil {
		return fmt.Errorf("insert response: %w", err)
	}
	return nil
}

const selectColumns = `
	SELECT id, created_at, chronotype, training_time, frequency, diet,
	       experience, supplements, goal, COALESCE(ip_hash, ''), user_agent, plan_generated
	FROM user_responses`

type scanner interface {
	Scan(dest ...any) error
}

func scanResponse(row scanner) (*storage.Response, error) {
	var (
		r           storage.Response
		supplements string
		userAgent   sql.NullString
		plan        sql.NullString
	)
	err := row.Scan(
		&r.ID, &r.CreatedAt, &r.Chronotype, &r.TrainingTime, &r.Frequency, &r.Diet,
		&r.Experience, &supplements, &r.Goal, &r.IPHash, &userAgent, &plan,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(supplements), &r.Supplements); err != nil {
		return nil, fmt.Errorf("decode supplements of %s: %w", r.ID, err)
	}
	if userAgent.Valid {
		ua := userAgent.String
		r.UserAgent = &ua
	}
	if plan.Valid {
		r.Plan = json.RawMessage(plan.String)
	}
	return &r, nil
}

func (s *Store) Get(ctx context.Context, id string) (*storage.Response, error) {
	r, err := scanResponse(s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
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
		conds = append(conds, "chronotype = ?")
		args = append(args, opts.Chronotype)
	}
	if opts.Diet != "" {
		conds = append(conds, "diet = ?")
		args = append(args, opts.Diet)
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
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_responses`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count responses: %w", err)
	}

	query := selectColumns + clause + ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
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

func (s *Store) Stats(ctx context.Context, since time.Time) (*storage.Stats, error) {
	stats := storage.NewStats()

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN created_at >= ? THEN 1 ELSE 0 END), 0)
		FROM user_responses`, since.UTC()).Scan(&stats.Total, &stats.Last24h)
	if err != nil {
		return nil, fmt.Errorf("count responses: %w", err)
	}

	if err := countBy(ctx, s.db, "chronotype", stats.ByChronotype); err != nil {
		return nil, err
	}
	if err := countBy(ctx, s.db, "diet", stats.ByDiet); err != nil {
		return nil, err
	}
	return stats, nil
}

// countBy groups responses on column; column is always a literal from Stats.
func countBy(ctx context.Context, db *sql.DB, column string, into map[string]int) error {
	rows, err := db.QueryContext(ctx, `SELECT `+column+`, COUNT(*) FROM user_responses GROUP BY `+column)
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
	res, err := s.db.ExecContext(ctx, `DELETE FROM user_responses WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete responses: %w", err)
	}
	return res.RowsAffected()
}
