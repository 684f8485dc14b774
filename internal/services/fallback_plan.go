package services

import (
	"math"
	"strings"

	"tabi/internal/models/request_models"
	resp "tabi/internal/models/response_models"
)

// Fixed split applied to the requested budget.
const (
	shareTransportation = 0.3
	shareAccommodation  = 0.4
	shareFood           = 0.2
	shareActivities     = 0.1
)

// fallbackDestinationLabel stands in for the destination when the model was
// asked to choose one.
const fallbackDestinationLabel = "目的地"

// BuildFallbackPlan returns the deterministic one-day plan served when the
// model is unreachable or its answer cannot be parsed.
func BuildFallbackPlan(req request_models.PlanRequest) *resp.GeneratedPlan {
	dest := strings.TrimSpace(req.Destination)
	if dest == "" {
		dest = fallbackDestinationLabel
	}
	budget := float64(req.Budget)

	return &resp.GeneratedPlan{
		Schedule: []resp.PlanDay{
			{
				Date: req.StartDate,
				Day:  "Day 1",
				Items: []resp.PlanItem{
					{
						Time:        "09:00",
						Title:       dest + "到着",
						Location:    dest,
						Description: "空港・駅から目的地への移動",
						Category:    resp.CategoryTransport,
					},
					{
						Time:        "14:00",
						Title:       "おすすめ観光スポット",
						Location:    dest + "の名所",
						Description: strings.Join(req.Interests, "、") + "に基づいたおすすめスポット",
						Category:    resp.CategorySightseeing,
					},
				},
			},
		},
		Places: []resp.PlanPlace{
			{
				Name:        dest + "の人気スポット",
				Category:    "観光地",
				Rating:      4.5,
				Description: "AIが選んだおすすめの場所",
			},
		},
		Budget: resp.BudgetBreakdown{
			Transportation: math.Round(budget * shareTransportation),
			Accommodation:  math.Round(budget * shareAccommodation),
			Food:           math.Round(budget * shareFood),
			Activities:     math.Round(budget * shareActivities),
		},
		Recommendations: resp.PlanRecommendations{
			MustVisit: []string{dest + "の必見スポット"},
			LocalFood: []string{dest + "の名物グルメ"},
			Tips:      []string{"現地の天気をチェックしましょう", "公共交通機関の時刻表を確認しましょう"},
		},
	}
}

// DefaultBudgetBreakdown applies the same split to a travel's budget.
func DefaultBudgetBreakdown(budget int64) *resp.BudgetBreakdown {
	b := BuildFallbackPlan(request_models.PlanRequest{Budget: budget}).Budget
	return &b
}
