package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"userhub/internal/repositories"
	"userhub/internal/services"
	"userhub/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, hasher utils.PasswordHasher, tokens utils.TokenIssuer) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, hasher, tokens)
}
