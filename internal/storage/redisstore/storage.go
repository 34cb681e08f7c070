package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	domainErrors "github.com/polkiloo/feedbackportal/internal/domain/errors"
	"github.com/polkiloo/feedbackportal/internal/domain/model"
	"github.com/polkiloo/feedbackportal/internal/domain/repository"
)

const keyPrefix = "feedbackportal:"

// Storage keeps users and feedback as JSON values in Redis.
//
// Layout:
//
//	users:seq            INCR counter for user IDs
//	user:<id>            JSON user record
//	user:email:<email>   ID of the first user saved with that email
//	feedback:seq         INCR counter for feedback IDs
//	feedback:<id>        JSON feedback record
//	feedback:ids         list of feedback IDs in insertion order
type Storage struct {
	client redis.UniversalClient
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type feedbackRepository struct {
	storage *Storage
}

type userRecord struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type feedbackRecord struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// New connects to Redis at url and verifies connectivity.
func New(ctx context.Context, url string, logger *slog.Logger) (*Storage, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Info("redis storage ready", slog.String("addr", opt.Addr))
	return NewWithClient(client, logger), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client redis.UniversalClient, logger *slog.Logger) *Storage {
	return &Storage{client: client, logger: logger}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Feedbacks() repository.FeedbackRepository {
	return &feedbackRepository{storage: s}
}

// HealthCheck pings Redis.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

// Close releases the client connection pool.
func (s *Storage) Close() {
	if s.client == nil {
		return
	}
	if err := s.client.Close(); err != nil {
		s.logger.Warn("close redis client", slog.String("error", err.Error()))
	}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domainErrors.ErrStoreUnavailable, err)
}

func userKey(id int64) string         { return keyPrefix + "user:" + strconv.FormatInt(id, 10) }
func emailKey(email string) string    { return keyPrefix + "user:email:" + email }
func feedbackKey(id int64) string     { return keyPrefix + "feedback:" + strconv.FormatInt(id, 10) }
func feedbackKeyRaw(id string) string { return keyPrefix + "feedback:" + id }

const (
	userSeqKey      = keyPrefix + "users:seq"
	feedbackSeqKey  = keyPrefix + "feedback:seq"
	feedbackListKey = keyPrefix + "feedback:ids"
)

// --- UserRepository implementation ---

func (r *userRepository) Save(ctx context.Context, user model.User) (*model.User, error) {
	client := r.storage.client
	id, err := client.Incr(ctx, userSeqKey).Result()
	if err != nil {
		return nil, unavailable("save user", err)
	}
	user.ID = id

	data, err := json.Marshal(userRecord(user))
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	_, err = client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, userKey(id), data, 0)
		pipe.SetNX(ctx, emailKey(user.Email), id, 0)
		return nil
	})
	if err != nil {
		return nil, unavailable("save user", err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	client := r.storage.client
	id, err := client.Get(ctx, emailKey(email)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, unavailable("find user", err)
	}

	data, err := client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, unavailable("find user", err)
	}

	var rec userRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode user %d: %w", id, err)
	}
	user := model.User(rec)
	return &user, nil
}

// --- FeedbackRepository implementation ---

func (r *feedbackRepository) Save(ctx context.Context, feedback model.Feedback) (*model.Feedback, error) {
	client := r.storage.client
	id, err := client.Incr(ctx, feedbackSeqKey).Result()
	if err != nil {
		return nil, unavailable("save feedback", err)
	}
	feedback.ID = id

	data, err := json.Marshal(feedbackRecord(feedback))
	if err != nil {
		return nil, fmt.Errorf("encode feedback: %w", err)
	}

	_, err = client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, feedbackKey(id), data, 0)
		pipe.RPush(ctx, feedbackListKey, id)
		return nil
	})
	if err != nil {
		return nil, unavailable("save feedback", err)
	}
	return &feedback, nil
}

func (r *feedbackRepository) FindAll(ctx context.Context) ([]model.Feedback, error) {
	client := r.storage.client
	ids, err := client.LRange(ctx, feedbackListKey, 0, -1).Result()
	if err != nil {
		return nil, unavailable("list feedback", err)
	}

	result := make([]model.Feedback, 0, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = feedbackKeyRaw(id)
	}
	values, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, unavailable("list feedback", err)
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			r.storage.logger.Warn("feedback record missing", slog.String("id", ids[i]))
			continue
		}
		var rec feedbackRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("decode feedback %s: %w", ids[i], err)
		}
		result = append(result, model.Feedback(rec))
	}
	return result, nil
}

var _ repository.Factory = (*Storage)(nil)
