package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/feedbackportal/internal/config"
	"github.com/polkiloo/feedbackportal/internal/domain/repository"
	"github.com/polkiloo/feedbackportal/internal/storage/memory"
	"github.com/polkiloo/feedbackportal/internal/storage/redisstore"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewFactory(t *testing.T) {
	ctx := context.Background()

	f, err := newFactory(factoryParams{Ctx: ctx, Config: &config.Config{StorageDriver: config.DriverMemory}, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("memory factory: %v", err)
	}
	if _, ok := f.(*memory.Storage); !ok {
		t.Fatalf("expected *memory.Storage, got %T", f)
	}

	mr := miniredis.RunT(t)
	f, err = newFactory(factoryParams{Ctx: ctx, Config: &config.Config{StorageDriver: config.DriverRedis, RedisURL: "redis://" + mr.Addr()}, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("redis factory: %v", err)
	}
	if _, ok := f.(*redisstore.Storage); !ok {
		t.Fatalf("expected *redisstore.Storage, got %T", f)
	}
	f.Close()

	if _, err := newFactory(factoryParams{Ctx: ctx, Config: &config.Config{StorageDriver: config.DriverPostgres, DatabaseURI: ":://bad"}, Logger: discardLogger()}); err == nil {
		t.Fatal("expected postgres dsn error")
	}
	if _, err := newFactory(factoryParams{Ctx: ctx, Config: &config.Config{StorageDriver: config.DriverRedis, RedisURL: "://bad"}, Logger: discardLogger()}); err == nil {
		t.Fatal("expected redis url error")
	}
	if _, err := newFactory(factoryParams{Ctx: ctx, Config: &config.Config{StorageDriver: "mongo"}, Logger: discardLogger()}); err == nil {
		t.Fatal("expected unknown driver error")
	}
}

func TestModuleProvidesRepositories(t *testing.T) {
	var (
		users     repository.UserRepository
		feedbacks repository.FeedbackRepository
	)
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		fx.Supply(&config.Config{StorageDriver: config.DriverMemory}, discardLogger()),
		Module,
		fx.Populate(&users, &feedbacks),
	)
	app.RequireStart()
	defer app.RequireStop()

	if users == nil || feedbacks == nil {
		t.Fatal("expected repositories to be populated")
	}
}
