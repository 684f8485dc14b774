package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tabi/internal/models/request_models"
)

func kyotoRequest() request_models.PlanRequest {
	return request_models.PlanRequest{
		Destination: "京都",
		StartDate:   "2025-05-01",
		EndDate:     "2025-05-03",
		MemberCount: 2,
		Budget:      100000,
		Interests:   []string{"グルメ"},
		TravelStyle: request_models.TravelStyleBalanced,
		TravelType:  request_models.TravelTypeDomestic,
	}
}

func TestBuildTravelPlanPrompt(t *testing.T) {
	b := NewPromptBuilder("ja")

	t.Run("restates constraints", func(t *testing.T) {
		req := kyotoRequest()
		req.Departure = "東京"
		req.Interests = []string{"グルメ", "寺社"}
		prompt := b.BuildTravelPlanPrompt(req)

		assert.Contains(t, prompt, "- 出発地: 東京")
		assert.Contains(t, prompt, "- 到着地: 未指定")
		assert.Contains(t, prompt, "- 目的地: 京都")
		assert.Contains(t, prompt, "- 旅行期間: 2025-05-01 から 2025-05-03 (2泊3日)")
		assert.Contains(t, prompt, "- 参加人数: 2名")
		assert.Contains(t, prompt, "- 予算: ¥100,000")
		assert.Contains(t, prompt, "- 興味: グルメ, 寺社")
		assert.Contains(t, prompt, "- 旅行スタイル: balanced")
		assert.Contains(t, prompt, "- 追加要望: 特になし")
		assert.Contains(t, prompt, `"category": "transport|sightseeing|food|accommodation|activity"`)
		assert.Contains(t, prompt, "- 予算内で現実的なプランを作成してください")
		assert.Contains(t, prompt, "- 日本語で出力してください")
	})

	t.Run("placeholder when the model picks the destination", func(t *testing.T) {
		req := kyotoRequest()
		req.Destination = ""
		req.AISuggestDestination = true

		assert.Contains(t, b.BuildTravelPlanPrompt(req), "- 目的地: "+destinationPlaceholder)
	})

	t.Run("no placeholder without the flag", func(t *testing.T) {
		req := kyotoRequest()
		req.Destination = ""

		assert.NotContains(t, b.BuildTravelPlanPrompt(req), destinationPlaceholder)
	})

	t.Run("unparseable dates are restated without nights", func(t *testing.T) {
		req := kyotoRequest()
		req.EndDate = "someday"

		prompt := b.BuildTravelPlanPrompt(req)
		assert.Contains(t, prompt, "- 旅行期間: 2025-05-01 から someday\n")
	})

	t.Run("locale picks the answer language", func(t *testing.T) {
		assert.Contains(t, NewPromptBuilder("en").BuildTravelPlanPrompt(kyotoRequest()), "- 英語で出力してください")
		assert.Contains(t, NewPromptBuilder("xx").BuildTravelPlanPrompt(kyotoRequest()), "- 日本語で出力してください")
	})

	t.Run("international travel", func(t *testing.T) {
		req := kyotoRequest()
		req.TravelType = request_models.TravelTypeInternational
		assert.Contains(t, b.BuildTravelPlanPrompt(req), "- 旅行タイプ: 海外旅行")
	})
}

func TestBuildRecommendationPrompt(t *testing.T) {
	prompt := NewPromptBuilder("ja").BuildRecommendationPrompt(request_models.RecommendationRequest{
		Destination: "京都",
		Interests:   []string{"歴史", "グルメ"},
		Budget:      "50000",
		TravelStyle: "relaxed",
		GroupSize:   3,
		Duration:    "2",
	})

	assert.Contains(t, prompt, "目的地: 京都\n")
	assert.NotContains(t, prompt, "地域:")
	assert.Contains(t, prompt, "興味: 歴史, グルメ")
	assert.Contains(t, prompt, "予算: 50000")
	assert.Contains(t, prompt, "人数: 3")
	assert.Contains(t, prompt, "日数: 2")
	assert.Contains(t, prompt, "追加要望: 特になし")
	assert.Contains(t, prompt, `"name": "金閣寺"`)
	assert.Contains(t, prompt, "※10件程度返してください。")
}

func TestFormatThousands(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		100000:   "100,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatThousands(in))
	}
}
