package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/feedbackportal/internal/domain/errors"
	"github.com/polkiloo/feedbackportal/internal/domain/model"
	"github.com/polkiloo/feedbackportal/internal/domain/repository"
)

// pgxPool is the subset of *pgxpool.Pool used by Storage.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type feedbackRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("postgres storage ready")
	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Feedbacks() repository.FeedbackRepository {
	return &feedbackRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL DEFAULT '',
            email TEXT NOT NULL,
            password TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS feedback (
            id BIGSERIAL PRIMARY KEY,
            rating INTEGER NOT NULL,
            comment TEXT NOT NULL DEFAULT '',
            service TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email, id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// unavailable marks driver failures so the HTTP layer can report them as 5xx.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domainErrors.ErrStoreUnavailable, err)
}

// --- UserRepository implementation ---

func (r *userRepository) Save(ctx context.Context, user model.User) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password, role) VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, user.Name, user.Email, user.Password, user.Role).Scan(&user.ID)
	if err != nil {
		return nil, unavailable("save user", err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password, role FROM users WHERE email=$1 ORDER BY id LIMIT 1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, unavailable("find user", err)
	}
	return &u, nil
}

// --- FeedbackRepository implementation ---

func (r *feedbackRepository) Save(ctx context.Context, feedback model.Feedback) (*model.Feedback, error) {
	const query = `INSERT INTO feedback (rating, comment, service, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, feedback.Rating, feedback.Comment, feedback.Service, feedback.Timestamp).Scan(&feedback.ID)
	if err != nil {
		return nil, unavailable("save feedback", err)
	}
	return &feedback, nil
}

func (r *feedbackRepository) FindAll(ctx context.Context) ([]model.Feedback, error) {
	const query = `SELECT id, rating, comment, service, created_at FROM feedback ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, unavailable("list feedback", err)
	}
	defer rows.Close()

	result := make([]model.Feedback, 0)
	for rows.Next() {
		var f model.Feedback
		if err := rows.Scan(&f.ID, &f.Rating, &f.Comment, &f.Service, &f.Timestamp); err != nil {
			return nil, unavailable("scan feedback", err)
		}
		f.Timestamp = f.Timestamp.UTC()
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list feedback", err)
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.pool.Ping(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

var _ repository.Factory = (*Storage)(nil)
