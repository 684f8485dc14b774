package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tabi/pkg/config"
	"tabi/pkg/logger"
)

var Module = fx.Provide(config.Load, provideLogger)

// provideLogger also installs the logger as zap's global so helpers that log
// through zap.L() share its configuration.
func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg)
	if err != nil {
		return nil, err
	}
	undo := zap.ReplaceGlobals(log)
	lc.Append(fx.StopHook(func() {
		_ = log.Sync()
		undo()
	}))
	return log, nil
}
