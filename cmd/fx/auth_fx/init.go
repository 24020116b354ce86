package auth_fx

import (
	"go.uber.org/fx"
	"userhub/internal/infra"
	"userhub/pkg/utils"
)

var Module = fx.Provide(
	provideHasher, provideTokenProvider, provideTokenIssuer, provideTokenVerifier)

func provideHasher() utils.PasswordHasher {
	return utils.NewBcryptHasher()
}

func provideTokenProvider(cfg *infra.Config) *utils.TokenProvider {
	return utils.NewTokenProvider([]byte(cfg.JWTSecret), cfg.JWTTTL)
}

func provideTokenIssuer(provider *utils.TokenProvider) utils.TokenIssuer {
	return provider
}

func provideTokenVerifier(provider *utils.TokenProvider) utils.TokenVerifier {
	return provider
}
