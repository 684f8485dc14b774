package services

import (
	"fmt"
	"strconv"
	"strings"

	"tabi/internal/models/request_models"
	"tabi/pkg/utils"
)

const destinationPlaceholder = "（未指定。出発地・到着地・テーマなどからAIが最適な目的地を提案してください）"

var outputLanguages = map[string]string{
	"ja": "日本語",
	"en": "英語",
	"zh": "中国語",
	"ko": "韓国語",
	"vi": "ベトナム語",
}

const planShape = `{
  "schedule": [
    {
      "date": "YYYY-MM-DD",
      "day": "Day 1",
      "items": [
        {
          "time": "HH:MM",
          "title": "アクティビティ名",
          "location": "場所名",
          "description": "詳細説明",
          "category": "transport|sightseeing|food|accommodation|activity"
        }
      ]
    }
  ],
  "places": [
    {
      "name": "スポット名",
      "category": "カテゴリ",
      "rating": 4.5,
      "description": "説明"
    }
  ],
  "budget": {
    "transportation": 予算,
    "accommodation": 予算,
    "food": 予算,
    "activities": 予算
  },
  "recommendations": {
    "mustVisit": ["必見スポット1", "必見スポット2"],
    "localFood": ["地元グルメ1", "地元グルメ2"],
    "tips": ["旅行のコツ1", "旅行のコツ2"]
  }
}`

const recommendationShape = `[
  {
    "name": "金閣寺",
    "category": "mustVisit",
    "description": "金閣寺は京都を代表する観光名所で、黄金に輝く美しい建物が池に映える絶景スポットです。",
    "image": "https://images.pexels.com/photos/1583884/pexels-photo-1583884.jpeg",
    "tags": ["歴史", "絶景", "寺院"],
    "rating": 4.8,
    "aiReason": "京都観光で外せない定番スポットです。",
    "matchScore": 95,
    "estimatedTime": "1時間",
    "priceRange": "¥400",
    "isBookmarked": false
  }
]`

// PromptBuilder turns structured requests into model prompts. It performs no
// validation; callers reject bad requests first.
type PromptBuilder struct {
	language string
}

func NewPromptBuilder(locale string) *PromptBuilder {
	language, ok := outputLanguages[strings.ToLower(locale)]
	if !ok {
		language = outputLanguages["ja"]
	}
	return &PromptBuilder{language: language}
}

func (b *PromptBuilder) BuildTravelPlanPrompt(req request_models.PlanRequest) string {
	destination := req.Destination
	if destination == "" && req.AISuggestDestination {
		destination = destinationPlaceholder
	}

	period := fmt.Sprintf("%s から %s", req.StartDate, req.EndDate)
	if start, err := utils.ParseDate(req.StartDate); err == nil {
		if end, err := utils.ParseDate(req.EndDate); err == nil {
			nights, days := utils.NightsAndDays(start, end)
			period += fmt.Sprintf(" (%d泊%d日)", nights, days)
		}
	}

	travelType := "国内旅行"
	if req.TravelType == request_models.TravelTypeInternational {
		travelType = "海外旅行"
	}

	var sb strings.Builder
	sb.WriteString("\n以下の条件に基づいて、詳細な旅行プランを生成してください。\n\n")
	sb.WriteString("【旅行基本情報】\n")
	fmt.Fprintf(&sb, "- 出発地: %s\n", orDefault(req.Departure, "未指定"))
	fmt.Fprintf(&sb, "- 到着地: %s\n", orDefault(req.Arrival, "未指定"))
	fmt.Fprintf(&sb, "- 目的地: %s\n", destination)
	fmt.Fprintf(&sb, "- 旅行期間: %s\n", period)
	fmt.Fprintf(&sb, "- 旅行タイプ: %s\n", travelType)
	fmt.Fprintf(&sb, "- 参加人数: %d名\n", req.MemberCount)
	fmt.Fprintf(&sb, "- 予算: ¥%s\n", FormatThousands(req.Budget))
	fmt.Fprintf(&sb, "- 興味: %s\n", strings.Join(req.Interests, ", "))
	fmt.Fprintf(&sb, "- 旅行スタイル: %s\n", req.TravelStyle)
	fmt.Fprintf(&sb, "- 追加要望: %s\n\n", orDefault(req.Description, "特になし"))

	sb.WriteString("【出力形式】\n以下のJSON形式で出力してください：\n")
	sb.WriteString(planShape)
	sb.WriteString("\n【注意事項】\n")
	sb.WriteString("- 予算内で現実的なプランを作成してください\n")
	sb.WriteString("- 参加人数に応じた適切なアクティビティを提案してください\n")
	sb.WriteString("- 興味に基づいたスポットを選定してください\n")
	sb.WriteString("- 旅行スタイルに合わせたスケジュールにしてください\n")
	sb.WriteString("- 交通手段や移動時間も考慮してください\n")
	sb.WriteString("- 出発地から到着地までの移動も考慮してください\n")
	fmt.Fprintf(&sb, "- %sで出力してください\n", b.language)

	return sb.String()
}

func (b *PromptBuilder) BuildRecommendationPrompt(req request_models.RecommendationRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "あなたはプロの旅行プランナーです。以下の条件に合う観光地・体験・グルメを%sで推薦してください。\n\n", b.language)
	sb.WriteString("各推薦には「name」「category（mustVisit, localFood, tipsのいずれか）」「description（100文字程度）」「image（画像URL）」「tags（3つ程度）」「rating（1.0〜5.0）」「aiReason（AIによる推薦理由）」「matchScore（1〜100）」「estimatedTime（例: 1時間）」「priceRange（例: ¥1000〜¥3000）」「isBookmarked（false固定）」を必ず含めてください。\n\n")
	sb.WriteString("【条件】\n")
	fmt.Fprintf(&sb, "目的地: %s\n", req.Destination)
	if req.Region != "" {
		fmt.Fprintf(&sb, "地域: %s\n", req.Region)
	}
	fmt.Fprintf(&sb, "興味: %s\n", strings.Join(req.Interests, ", "))
	fmt.Fprintf(&sb, "予算: %s\n", req.Budget)
	fmt.Fprintf(&sb, "旅行スタイル: %s\n", req.TravelStyle)
	fmt.Fprintf(&sb, "人数: %d\n", req.GroupSize)
	fmt.Fprintf(&sb, "日数: %s\n", req.Duration)
	fmt.Fprintf(&sb, "追加要望: %s\n\n", orDefault(req.CustomNote, "特になし"))
	sb.WriteString("【出力形式】\n")
	sb.WriteString(recommendationShape)
	sb.WriteString("\n※10件程度返してください。")
	return sb.String()
}

// FormatThousands renders n with comma group separators, e.g. 100,000.
func FormatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
