package services

import (
	"fmt"
	"math"
	"time"

	"tabi/internal/models/request_models"
	resp "tabi/internal/models/response_models"
	"tabi/pkg/utils"
)

type TemplateServiceInterface interface {
	Generate(req request_models.TemplateRequest) (*resp.TravelTemplate, error)
}

type TemplateService struct{}

func NewTemplateService() TemplateServiceInterface {
	return &TemplateService{}
}

func (s *TemplateService) Generate(req request_models.TemplateRequest) (*resp.TravelTemplate, error) {
	if req.StartDate == "" || req.EndDate == "" {
		return nil, errMissingFields
	}
	if err := validateMemberCount(req.MemberCount); err != nil {
		return nil, err
	}
	if req.Budget < 0 {
		return nil, errNegativeBudget
	}
	start, end, err := ValidateDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	_, days := utils.NightsAndDays(start, end)
	international := req.TravelType == request_models.TravelTypeInternational

	return &resp.TravelTemplate{
		Rooms:       RoomAssignments(req.MemberCount),
		Schedule:    ScheduleTemplate(start, days),
		Budget:      EstimateBudget(req.Budget, international),
		PackingList: PackingList(international, days),
	}, nil
}

func memberNames(from, to int) []string {
	names := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		names = append(names, fmt.Sprintf("メンバー%d", i))
	}
	return names
}

func roomName(i int) string {
	if i < 26 {
		return "ルーム" + string(rune('A'+i))
	}
	return fmt.Sprintf("ルーム%d", i+1)
}

// RoomAssignments splits the party: one room up to two people, two rooms up
// to four, then rooms of two.
func RoomAssignments(memberCount int) []resp.RoomTemplate {
	switch {
	case memberCount <= 2:
		return []resp.RoomTemplate{{RoomName: "メインルーム", Members: memberNames(1, memberCount)}}
	case memberCount <= 4:
		half := (memberCount + 1) / 2
		return []resp.RoomTemplate{
			{RoomName: "ルームA", Members: memberNames(1, half)},
			{RoomName: "ルームB", Members: memberNames(half+1, memberCount)},
		}
	}

	roomsCount := (memberCount + 1) / 2
	rooms := make([]resp.RoomTemplate, 0, roomsCount)
	for i := 0; i < roomsCount; i++ {
		first := i*2 + 1
		last := min(first+1, memberCount)
		rooms = append(rooms, resp.RoomTemplate{RoomName: roomName(i), Members: memberNames(first, last)})
	}
	return rooms
}

// ScheduleTemplate lays out the same six slots on every day of the trip.
func ScheduleTemplate(start time.Time, days int) []resp.PlanDay {
	schedule := make([]resp.PlanDay, 0, days)
	for d := 0; d < days; d++ {
		schedule = append(schedule, resp.PlanDay{
			Date: utils.FormatDate(start.AddDate(0, 0, d)),
			Day:  fmt.Sprintf("Day %d", d+1),
			Items: []resp.PlanItem{
				{Time: "08:00", Title: "朝食", Location: "ホテル", Category: resp.CategoryFood},
				{Time: "10:00", Title: "観光地A", Location: "観光地A", Category: resp.CategorySightseeing},
				{Time: "12:00", Title: "昼食", Location: "レストラン", Category: resp.CategoryFood},
				{Time: "14:00", Title: "観光地B", Location: "観光地B", Category: resp.CategorySightseeing},
				{Time: "18:00", Title: "夕食", Location: "レストラン", Category: resp.CategoryFood},
				{Time: "20:00", Title: "ホテルで休憩", Location: "ホテル", Category: resp.CategoryAccommodation},
			},
		})
	}
	return schedule
}

func share(total int64, pct float64) int64 {
	return int64(math.Round(float64(total) * pct))
}

func EstimateBudget(total int64, international bool) resp.BudgetEstimate {
	if international {
		return resp.BudgetEstimate{
			Transportation: share(total, 0.35),
			Accommodation:  share(total, 0.30),
			Food:           share(total, 0.20),
			Activities:     share(total, 0.10),
			Shopping:       share(total, 0.05),
		}
	}
	return resp.BudgetEstimate{
		Transportation: share(total, 0.25),
		Accommodation:  share(total, 0.40),
		Food:           share(total, 0.20),
		Activities:     share(total, 0.15),
	}
}

var basePackingItems = []resp.PackingTemplateItem{
	{Name: "パスポート", Category: "重要書類", IsEssential: true},
	{Name: "財布", Category: "重要書類", IsEssential: true},
	{Name: "スマートフォン", Category: "電子機器", IsEssential: true},
	{Name: "充電器", Category: "電子機器", IsEssential: true},
	{Name: "着替え", Category: "衣類", IsEssential: true},
	{Name: "歯ブラシ", Category: "衛生用品", IsEssential: true},
	{Name: "歯磨き粉", Category: "衛生用品", IsEssential: true},
	{Name: "シャンプー", Category: "衛生用品"},
	{Name: "コンディショナー", Category: "衛生用品"},
	{Name: "タオル", Category: "衛生用品", IsEssential: true},
	{Name: "常備薬", Category: "医薬品"},
	{Name: "カメラ", Category: "電子機器"},
	{Name: "本・雑誌", Category: "娯楽"},
	{Name: "おやつ", Category: "食品"},
	{Name: "水", Category: "食品"},
}

var internationalPackingItems = []resp.PackingTemplateItem{
	{Name: "ビザ", Category: "重要書類"},
	{Name: "旅行保険証書", Category: "重要書類"},
	{Name: "変換プラグ", Category: "電子機器", IsEssential: true},
	{Name: "モバイルバッテリー", Category: "電子機器", IsEssential: true},
	{Name: "日焼け止め", Category: "衛生用品"},
	{Name: "サングラス", Category: "アクセサリー"},
	{Name: "帽子", Category: "アクセサリー"},
	{Name: "傘", Category: "アクセサリー"},
	{Name: "ガイドブック", Category: "娯楽"},
	{Name: "会話集", Category: "娯楽"},
}

var domesticPackingItems = []resp.PackingTemplateItem{
	{Name: "ICカード（Suica/PASMO）", Category: "重要書類", IsEssential: true},
	{Name: "温泉セット", Category: "衛生用品"},
	{Name: "レインコート", Category: "アクセサリー"},
	{Name: "地図", Category: "娯楽"},
}

var longTripPackingItems = []resp.PackingTemplateItem{
	{Name: "洗濯用品", Category: "衛生用品"},
	{Name: "予備の着替え", Category: "衣類"},
}

func PackingList(international bool, days int) []resp.PackingTemplateItem {
	list := append([]resp.PackingTemplateItem(nil), basePackingItems...)
	if international {
		list = append(list, internationalPackingItems...)
	} else {
		list = append(list, domesticPackingItems...)
	}
	if days > 3 {
		list = append(list, longTripPackingItems...)
	}
	for i := range list {
		list[i].Quantity = 1
	}
	return list
}
