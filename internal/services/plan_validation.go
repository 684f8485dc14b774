package services

import (
	"time"

	"tabi/internal/models/request_models"
	"tabi/pkg/utils"
)

const (
	maxTripSpanDays = 365
	MaxMemberCount  = 100
)

var (
	errMissingFields  = utils.NewValidationError(utils.ErrMissingFields, "必須項目が不足しています")
	errMemberCount    = utils.NewValidationError(utils.ErrInvalidInput, "参加人数は1名以上で入力してください")
	errTooManyMembers = utils.NewValidationError(utils.ErrInvalidInput, "参加人数は100名以下で入力してください")
	errNegativeBudget = utils.NewValidationError(utils.ErrInvalidInput, "予算は0円以上で入力してください")
	errEndBeforeStart = utils.NewValidationError(utils.ErrInvalidDateRange, "終了日は開始日以降の日付を選択してください")
	errSpanTooLong    = utils.NewValidationError(utils.ErrInvalidDateRange, "旅行期間は1年以内にしてください")
	errStartInPast    = utils.NewValidationError(utils.ErrStartDateInPast, "開始日は今日以降の日付を選択してください")
)

// ValidateDateRange parses both dates and checks end >= start and a span of
// at most 365 days.
func ValidateDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errEndBeforeStart
	}
	if utils.DaysBetween(start, end) > maxTripSpanDays {
		return time.Time{}, time.Time{}, errSpanTooLong
	}
	return start, end, nil
}

func validateMemberCount(n int) error {
	if n < 1 {
		return errMemberCount
	}
	if n > MaxMemberCount {
		return errTooManyMembers
	}
	return nil
}

// ValidatePlanRequest rejects requests before any model call is made.
func ValidatePlanRequest(req request_models.PlanRequest) error {
	if (req.Destination == "" && !req.AISuggestDestination) || req.StartDate == "" || req.EndDate == "" {
		return errMissingFields
	}
	if err := validateMemberCount(req.MemberCount); err != nil {
		return err
	}
	if req.Budget < 0 {
		return errNegativeBudget
	}
	_, _, err := ValidateDateRange(req.StartDate, req.EndDate)
	return err
}
