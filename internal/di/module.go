package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/feedbackportal/internal/app"
	"github.com/polkiloo/feedbackportal/internal/config"
	"github.com/polkiloo/feedbackportal/internal/logger"
	"github.com/polkiloo/feedbackportal/internal/pkg/secret"
	"github.com/polkiloo/feedbackportal/internal/server/http/handlers"
	"github.com/polkiloo/feedbackportal/internal/server/http/router"
	"github.com/polkiloo/feedbackportal/internal/storage"
	"github.com/polkiloo/feedbackportal/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		secret.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(func(f *app.PortalFacade) handlers.PortalFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
