package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"tabi/internal/models/request_models"
	resp "tabi/internal/models/response_models"
	"tabi/pkg/llm"
	"tabi/pkg/utils"
)

const fallbackMessage = "AIプラン生成に失敗しましたが、基本的なプランを提供します"

type PlanServiceInterface interface {
	GeneratePlan(ctx context.Context, req request_models.PlanRequest) (*resp.PlanResult, error)
	Recommend(ctx context.Context, req request_models.RecommendationRequest) resp.RecommendationResult
}

type PlanService struct {
	generator llm.TextGenerator
	prompts   *PromptBuilder
	extractor *utils.JSONExtractor
	retry     RetryPolicy
	logger    *zap.Logger
}

func NewPlanService(
	generator llm.TextGenerator,
	prompts *PromptBuilder,
	extractor *utils.JSONExtractor,
	retry RetryPolicy,
	logger *zap.Logger,
) PlanServiceInterface {
	return &PlanService{
		generator: generator,
		prompts:   prompts,
		extractor: extractor,
		retry:     retry,
		logger:    logger,
	}
}

// GeneratePlan returns an error only when the request is invalid. Model and
// parse failures degrade to the fallback plan.
func (p *PlanService) GeneratePlan(ctx context.Context, req request_models.PlanRequest) (*resp.PlanResult, error) {
	req.Normalize()
	if err := ValidatePlanRequest(req); err != nil {
		return nil, err
	}

	startTime := time.Now()
	prompt := p.prompts.BuildTravelPlanPrompt(req)

	text, err := p.generator.GenerateText(ctx, prompt)
	if err != nil {
		return p.fallback(req, err), nil
	}

	var plan resp.GeneratedPlan
	if err := p.extractor.Extract(text, &plan); err != nil {
		p.logger.Debug("Unparseable model response", zap.String("response", text))
		return p.fallback(req, err), nil
	}

	p.logger.Info("AI plan generated",
		zap.String("destination", req.Destination),
		zap.Int("days", len(plan.Schedule)),
		zap.Duration("took", time.Since(startTime)))

	return &resp.PlanResult{Success: true, Plan: &plan}, nil
}

func (p *PlanService) fallback(req request_models.PlanRequest, cause error) *resp.PlanResult {
	p.logger.Warn("AI plan generation failed, serving fallback plan",
		zap.String("destination", req.Destination),
		zap.Error(cause))

	return &resp.PlanResult{
		Success:  true,
		Plan:     BuildFallbackPlan(req),
		Fallback: true,
		Error:    cause.Error(),
		Message:  fallbackMessage,
	}
}

// Recommend retries overload failures and reports any other failure through
// the result instead of an error.
func (p *PlanService) Recommend(ctx context.Context, req request_models.RecommendationRequest) resp.RecommendationResult {
	prompt := p.prompts.BuildRecommendationPrompt(req)

	var recommendations []resp.AIRecommendation
	attempts, err := p.retry.Do(ctx, func(attempt int) error {
		text, err := p.generator.GenerateText(ctx, prompt)
		if err != nil {
			p.logger.Warn("Recommendation attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}

		var parsed []resp.AIRecommendation
		if err := p.extractor.Extract(text, &parsed); err != nil {
			p.logger.Warn("Recommendation response unparseable", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		recommendations = parsed
		return nil
	})
	if err != nil {
		p.logger.Error("AI recommendation failed", zap.Int("attempts", attempts), zap.Error(err))
		return resp.RecommendationResult{
			Success:         false,
			Recommendations: []resp.AIRecommendation{},
			Error:           err.Error(),
		}
	}

	for i := range recommendations {
		if recommendations[i].ID == "" {
			recommendations[i].ID = uuid.NewString()
		}
		if recommendations[i].Tags == nil {
			recommendations[i].Tags = []string{}
		}
	}
	if recommendations == nil {
		recommendations = []resp.AIRecommendation{}
	}

	return resp.RecommendationResult{Success: true, Recommendations: recommendations}
}
