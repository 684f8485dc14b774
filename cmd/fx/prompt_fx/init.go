// cmd/fx/prompt_fx/init.go
package prompt_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tabi/internal/services"
	"tabi/pkg/config"
	"tabi/pkg/llm"
	"tabi/pkg/middleware"
	"tabi/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	ProvidePromptBuilder,
	ProvideRetryPolicy,
	ProvideRateLimiter,
	ProvideExtractor,
	services.NewPlanService,
)

// ProvideTextGenerator builds the client for AI_PROVIDER. A missing key does
// not stop the server; every plan request then gets the fallback plan.
func ProvideTextGenerator(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) llm.TextGenerator {
	generator, err := llm.New(context.Background(), cfg)
	if err != nil {
		logger.Warn("AI provider unavailable, plans will use the fallback",
			zap.String("provider", cfg.AIProvider),
			zap.Error(err))
		return llm.Unavailable{Err: err}
	}

	logger.Info("AI provider initialised", zap.String("provider", cfg.AIProvider))
	lc.Append(fx.StopHook(generator.Close))
	return generator
}

func ProvidePromptBuilder(cfg *config.Config) *services.PromptBuilder {
	return services.NewPromptBuilder(cfg.PromptLocale)
}

func ProvideExtractor() *utils.JSONExtractor {
	return utils.NewJSONExtractor(utils.DefaultStrategies()...)
}

func ProvideRetryPolicy(cfg *config.Config) services.RetryPolicy {
	return services.NewRetryPolicy(cfg.RecommendMaxAttempts, cfg.RecommendRetryDelay)
}

func ProvideRateLimiter(cfg *config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimitPerMin)
}
