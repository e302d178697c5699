package auth

import (
	"github.com/polkiloo/iscore/internal/config"
	"go.uber.org/fx"
)

// Module provides API key verification via fx.
var Module = fx.Provide(newKeyVerifier)

type verifierParams struct {
	fx.In

	Config *config.Config
}

func newKeyVerifier(p verifierParams) KeyVerifier {
	if p.Config.APIKeyHash == "" {
		return OpenVerifier{}
	}
	return NewBcryptVerifier(p.Config.APIKeyHash)
}
