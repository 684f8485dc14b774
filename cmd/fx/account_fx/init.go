package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"tabi/internal/repositories"
	"tabi/internal/services"
	"tabi/pkg/config"
	mem "tabi/pkg/memcache"
	"tabi/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideTokenManager)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	if db == nil {
		return repositories.NewMemoryAccountRepository()
	}
	return repositories.NewAccountRepository(db)
}

func provideTokenManager(cfg *config.Config, logger *zap.Logger) *utils.TokenManager {
	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty, login will fail")
	}
	return utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenManager,
	revoked mem.RevokedTokenStore,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, revoked, logger)
}
