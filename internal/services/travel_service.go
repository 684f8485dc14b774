package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	dbm "tabi/internal/models/db_models"
	"tabi/internal/models/request_models"
	resp "tabi/internal/models/response_models"
	"tabi/internal/repositories"
	"tabi/pkg/utils"
)

const defaultTravelImage = "https://images.pexels.com/photos/1008155/pexels-photo-1008155.jpeg?auto=compress&cs=tinysrgb&w=600"

var destinationImages = map[string]string{
	"沖縄":  "https://images.pexels.com/photos/1583884/pexels-photo-1583884.jpeg?auto=compress&cs=tinysrgb&w=600",
	"京都":  "https://images.pexels.com/photos/2070033/pexels-photo-2070033.jpeg?auto=compress&cs=tinysrgb&w=600",
	"北海道": "https://images.pexels.com/photos/358457/pexels-photo-358457.jpeg?auto=compress&cs=tinysrgb&w=600",
	"東京":  "https://images.pexels.com/photos/2506923/pexels-photo-2506923.jpeg?auto=compress&cs=tinysrgb&w=600",
}

func DestinationImage(destination string) string {
	if img, ok := destinationImages[strings.TrimSpace(destination)]; ok {
		return img
	}
	return defaultTravelImage
}

var errInvalidStatus = utils.NewValidationError(utils.ErrInvalidInput, "ステータスが正しくありません")

type TravelServiceInterface interface {
	List(ctx context.Context, userID uuid.UUID) ([]dbm.Travel, error)
	Get(ctx context.Context, userID, travelID uuid.UUID) (*dbm.Travel, error)
	Create(ctx context.Context, userID uuid.UUID, travel *dbm.Travel) (*dbm.Travel, error)
	Update(ctx context.Context, userID, travelID uuid.UUID, patch []byte) (*dbm.Travel, error)
	Delete(ctx context.Context, userID, travelID uuid.UUID) error
}

type TravelService struct {
	travelRepo repositories.TravelRepository
	cascades   []repositories.TravelCascade
	logger     *zap.Logger
	now        func() time.Time
}

func NewTravelService(
	travelRepo repositories.TravelRepository,
	cascades []repositories.TravelCascade,
	logger *zap.Logger,
) TravelServiceInterface {
	return &TravelService{
		travelRepo: travelRepo,
		cascades:   cascades,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *TravelService) List(ctx context.Context, userID uuid.UUID) ([]dbm.Travel, error) {
	travels, err := s.travelRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if travels == nil {
		travels = []dbm.Travel{}
	}
	return travels, nil
}

// Get returns the travel only when it belongs to userID.
func (s *TravelService) Get(ctx context.Context, userID, travelID uuid.UUID) (*dbm.Travel, error) {
	travel, err := s.travelRepo.FindByID(ctx, travelID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if travel == nil {
		return nil, utils.ErrTravelNotFound
	}
	if !travel.OwnedBy(userID) {
		return nil, utils.ErrForbidden
	}
	return travel, nil
}

func (s *TravelService) Create(ctx context.Context, userID uuid.UUID, travel *dbm.Travel) (*dbm.Travel, error) {
	travel.ID = uuid.Nil
	travel.UserID = userID

	if err := s.validate(travel, true); err != nil {
		return nil, err
	}
	s.applyDefaults(travel)
	if err := s.derive(travel); err != nil {
		return nil, err
	}
	travel.Image = DestinationImage(travel.Destination)

	if err := s.travelRepo.Create(ctx, travel); err != nil {
		s.logger.Error("Failed to create travel", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("Travel created",
		zap.String("travel_id", travel.ID.String()),
		zap.String("destination", travel.Destination))
	return travel, nil
}

// Update merges patch into the stored travel. Fields absent from the patch
// keep their values; ids and creation time cannot be changed.
func (s *TravelService) Update(ctx context.Context, userID, travelID uuid.UUID, patch []byte) (*dbm.Travel, error) {
	existing, err := s.Get(ctx, userID, travelID)
	if err != nil {
		return nil, err
	}
	before := *existing

	if err := json.Unmarshal(patch, existing); err != nil {
		return nil, utils.NewValidationError(utils.ErrInvalidInput, "リクエストの形式が正しくありません")
	}
	existing.RestoreIdentity(before.BaseModel)
	existing.UserID = before.UserID

	datesChanged := existing.StartDate != before.StartDate || existing.EndDate != before.EndDate
	if err := s.validate(existing, datesChanged); err != nil {
		return nil, err
	}
	if existing.Status != "" && !dbm.ValidTravelStatus(existing.Status) {
		return nil, errInvalidStatus
	}
	s.applyDefaults(existing)
	if err := s.derive(existing); err != nil {
		return nil, err
	}
	if existing.Destination != before.Destination {
		existing.Image = DestinationImage(existing.Destination)
	}

	if err := s.travelRepo.Update(ctx, existing); err != nil {
		s.logger.Error("Failed to update travel", zap.String("travel_id", travelID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return existing, nil
}

// Delete removes the travel and every record attached to it.
func (s *TravelService) Delete(ctx context.Context, userID, travelID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, travelID); err != nil {
		return err
	}
	for _, c := range s.cascades {
		if err := c.DeleteByTravel(ctx, travelID); err != nil {
			s.logger.Error("Failed to delete travel items", zap.String("travel_id", travelID.String()), zap.Error(err))
			return utils.ErrDatabaseError
		}
	}
	if err := s.travelRepo.Delete(ctx, travelID); err != nil {
		return utils.ErrDatabaseError
	}
	s.logger.Info("Travel deleted", zap.String("travel_id", travelID.String()), zap.Int("cascades", len(s.cascades)))
	return nil
}

// validate checks required fields and counts. The date rules, including the
// start-not-in-the-past rule, run only when checkDates is set.
func (s *TravelService) validate(t *dbm.Travel, checkDates bool) error {
	t.Title = strings.TrimSpace(t.Title)
	t.Destination = strings.TrimSpace(t.Destination)
	if t.Title == "" || t.Destination == "" || t.StartDate == "" || t.EndDate == "" {
		return errMissingFields
	}
	if err := validateMemberCount(t.MemberCount); err != nil {
		return err
	}
	if t.Budget < 0 {
		return errNegativeBudget
	}
	if !checkDates {
		return nil
	}
	start, _, err := ValidateDateRange(t.StartDate, t.EndDate)
	if err != nil {
		return err
	}
	if start.Before(utils.Today(s.now())) {
		return errStartInPast
	}
	return nil
}

func (s *TravelService) applyDefaults(t *dbm.Travel) {
	if t.Status == "" {
		t.Status = dbm.TravelStatusPlanning
	}
	if t.TravelStyle == "" {
		t.TravelStyle = request_models.TravelStyleBalanced
	}
	if t.TravelType == "" {
		t.TravelType = request_models.TravelTypeDomestic
	}
	if t.Interests == nil {
		t.Interests = []string{}
	}
	if t.Schedule.Data() == nil {
		t.Schedule = datatypes.NewJSONType([]resp.PlanDay{})
	}
	if t.Places.Data() == nil {
		t.Places = datatypes.NewJSONType([]resp.PlanPlace{})
	}
	if t.BudgetBreakdown.Data() == nil {
		t.BudgetBreakdown = datatypes.NewJSONType(DefaultBudgetBreakdown(t.Budget))
	}
}

// derive recomputes the display fields that follow from the dates.
func (s *TravelService) derive(t *dbm.Travel) error {
	start, end, err := ValidateDateRange(t.StartDate, t.EndDate)
	if err != nil {
		return err
	}
	nights, days := utils.NightsAndDays(start, end)
	t.Duration = fmt.Sprintf("%d泊%d日", nights, days)
	t.Dates = t.StartDate + " - " + t.EndDate
	return nil
}
