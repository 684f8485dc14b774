package controllers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"tabi/internal/models/request_models"
	resp "tabi/internal/models/response_models"
	"tabi/internal/services"
	"tabi/pkg/utils"
)

// PlannerController serves the AI endpoints. Their bodies are flat
// {success, ...} objects rather than the APIResponse envelope.
type PlannerController struct {
	planService services.PlanServiceInterface
}

func NewPlannerController(planService services.PlanServiceInterface) *PlannerController {
	return &PlannerController{
		planService: planService,
	}
}

// GeneratePlanHandler godoc
// @Summary Generate a travel plan with AI
// @Description Builds a day-by-day plan. A fixed fallback plan is returned with fallback=true when the model fails.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Trip parameters"
// @Success 200 {object} response_models.PlanResult
// @Failure 400 {object} response_models.PlanResult
// @Router /api/ai/generate-plan [post]
func (p *PlannerController) GeneratePlanHandler(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resp.PlanResult{Success: false, Message: "リクエストの形式が正しくありません"})
		return
	}

	result, err := p.planService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		var ve *utils.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, resp.PlanResult{Success: false, Message: ve.Error()})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, resp.PlanResult{
			Success: false,
			Message: "AIプラン生成に失敗しました",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// RecommendHandler godoc
// @Summary Recommend sightseeing spots with AI
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.RecommendationRequest true "Preferences"
// @Success 200 {object} response_models.RecommendationResult
// @Failure 400 {object} response_models.RecommendationResult
// @Router /api/ai/recommend [post]
func (p *PlannerController) RecommendHandler(c *gin.Context) {
	var req request_models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resp.RecommendationResult{
			Success:         false,
			Recommendations: []resp.AIRecommendation{},
			Error:           "リクエストの形式が正しくありません",
		})
		return
	}

	c.JSON(http.StatusOK, p.planService.Recommend(c.Request.Context(), req))
}
