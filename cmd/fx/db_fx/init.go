package db_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"tabi/internal/infra"
	"tabi/pkg/config"
)

var Module = fx.Provide(
	provideDB)

// provideDB yields a nil *gorm.DB when POSTGRES_URL is empty. Repository
// providers switch to their in-memory versions in that case.
func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, logger)
	if err != nil {
		return nil, err
	}
	if db != nil {
		lc.Append(fx.StopHook(func() { infra.ClosePostgresql(db, logger) }))
	}
	return db, nil
}
