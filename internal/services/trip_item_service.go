package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "tabi/internal/models/db_models"
	"tabi/internal/repositories"
	"tabi/pkg/utils"
)

// TripItemServiceInterface manages one kind of record under a travel the
// caller owns.
type TripItemServiceInterface[T any, P repositories.TripItemPtr[T]] interface {
	List(ctx context.Context, userID, travelID uuid.UUID) ([]T, error)
	Create(ctx context.Context, userID, travelID uuid.UUID, item P) (P, error)
	Update(ctx context.Context, userID, travelID, itemID uuid.UUID, patch []byte) (P, error)
	Delete(ctx context.Context, userID, travelID, itemID uuid.UUID) error
}

type TripItemService[T any, P repositories.TripItemPtr[T]] struct {
	travels TravelServiceInterface
	repo    repositories.TripItemRepository[T, P]
	logger  *zap.Logger
}

func NewTripItemService[T any, P repositories.TripItemPtr[T]](
	travels TravelServiceInterface,
	repo repositories.TripItemRepository[T, P],
	logger *zap.Logger,
) TripItemServiceInterface[T, P] {
	return &TripItemService[T, P]{
		travels: travels,
		repo:    repo,
		logger:  logger,
	}
}

func (s *TripItemService[T, P]) List(ctx context.Context, userID, travelID uuid.UUID) ([]T, error) {
	if _, err := s.travels.Get(ctx, userID, travelID); err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx, travelID, &userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *TripItemService[T, P]) Create(ctx context.Context, userID, travelID uuid.UUID, item P) (P, error) {
	if _, err := s.travels.Get(ctx, userID, travelID); err != nil {
		return nil, err
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	item.SetTravelID(travelID)
	if owned, ok := any(item).(dbm.UserOwned); ok {
		owned.SetUserID(userID)
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error("Failed to create trip item", zap.String("travel_id", travelID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return item, nil
}

// Update merges patch into the stored item. The id, travel, owner and
// creation time are kept from the stored record.
func (s *TripItemService[T, P]) Update(ctx context.Context, userID, travelID, itemID uuid.UUID, patch []byte) (P, error) {
	existing, err := s.find(ctx, userID, travelID, itemID)
	if err != nil {
		return nil, err
	}
	identity := existing.Identity()

	var ownerID uuid.UUID
	owned, isOwned := any(existing).(dbm.UserOwned)
	if isOwned {
		ownerID = owned.GetUserID()
	}

	if err := json.Unmarshal(patch, existing); err != nil {
		return nil, utils.NewValidationError(utils.ErrInvalidInput, "リクエストの形式が正しくありません")
	}
	existing.RestoreIdentity(identity)
	existing.SetTravelID(travelID)
	if isOwned {
		owned.SetUserID(ownerID)
	}

	if err := existing.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error("Failed to update trip item", zap.String("item_id", itemID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return existing, nil
}

func (s *TripItemService[T, P]) Delete(ctx context.Context, userID, travelID, itemID uuid.UUID) error {
	if _, err := s.find(ctx, userID, travelID, itemID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, travelID, itemID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripItemService[T, P]) find(ctx context.Context, userID, travelID, itemID uuid.UUID) (P, error) {
	if _, err := s.travels.Get(ctx, userID, travelID); err != nil {
		return nil, err
	}
	item, err := s.repo.FindByID(ctx, travelID, itemID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrNotFound
	}
	if owned, ok := any(item).(dbm.UserOwned); ok && owned.GetUserID() != userID {
		return nil, utils.ErrForbidden
	}
	return item, nil
}
