package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/feedbackportal/internal/config"
	"github.com/polkiloo/feedbackportal/internal/domain/repository"
	"github.com/polkiloo/feedbackportal/internal/storage/memory"
	"github.com/polkiloo/feedbackportal/internal/storage/postgres"
	"github.com/polkiloo/feedbackportal/internal/storage/redisstore"
)

// Module wires the configured record store and its repositories.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.UserRepository { return f.Users() },
		func(f repository.Factory) repository.FeedbackRepository { return f.Feedbacks() },
	),
	fx.Invoke(registerLifecycle),
)

type factoryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newFactory(p factoryParams) (repository.Factory, error) {
	switch p.Config.StorageDriver {
	case config.DriverPostgres:
		s, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverRedis:
		s, err := redisstore.New(p.Ctx, p.Config.RedisURL, p.Logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverMemory:
		p.Logger.Warn("using in-memory storage, records are lost on restart")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", p.Config.StorageDriver)
	}
}

func registerLifecycle(lc fx.Lifecycle, factory repository.Factory) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			factory.Close()
			return nil
		},
	})
}
