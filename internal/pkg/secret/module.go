package secret

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/feedbackportal/internal/config"
)

// Module provides the credential codec via fx.
var Module = fx.Provide(newCodec)

type codecParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newCodec(p codecParams) (Codec, error) {
	if p.Config.CredentialSecret == config.DefaultCredentialSecret {
		p.Logger.Warn("credential secret is the built-in default, stored passwords are readable by anyone with this build; set CREDENTIAL_SECRET")
	}
	return NewAESCodec(p.Config.CredentialSecret)
}
