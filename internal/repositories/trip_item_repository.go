package repositories

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "tabi/internal/models/db_models"
)

// TripItemPtr is the pointer side of a trip item value type.
type TripItemPtr[T any] interface {
	*T
	dbm.TripItem
}

// TripItemRepository stores one kind of record attached to a travel.
// userID narrows List to one owner for user-owned records and is ignored
// otherwise.
type TripItemRepository[T any, P TripItemPtr[T]] interface {
	List(ctx context.Context, travelID uuid.UUID, userID *uuid.UUID) ([]T, error)
	FindByID(ctx context.Context, travelID, id uuid.UUID) (P, error)
	Create(ctx context.Context, item P) error
	Update(ctx context.Context, item P) error
	Delete(ctx context.Context, travelID, id uuid.UUID) error
	TravelCascade
}

// TravelCascade removes everything a travel owns when the travel goes away.
type TravelCascade interface {
	DeleteByTravel(ctx context.Context, travelID uuid.UUID) error
}

func orderClause(o dbm.ListOrder) string {
	switch o {
	case dbm.OrderOldestFirst:
		return "created_at ASC"
	case dbm.OrderByDate:
		return "date ASC, created_at ASC"
	default:
		return "created_at DESC"
	}
}

func listOrder[T any, P TripItemPtr[T]]() dbm.ListOrder {
	var zero T
	return P(&zero).ListOrder()
}

func isUserOwned[T any, P TripItemPtr[T]]() bool {
	var zero T
	_, ok := any(P(&zero)).(dbm.UserOwned)
	return ok
}

type tripItemRepository[T any, P TripItemPtr[T]] struct {
	db *gorm.DB
}

func NewTripItemRepository[T any, P TripItemPtr[T]](db *gorm.DB) TripItemRepository[T, P] {
	return &tripItemRepository[T, P]{db: db}
}

func (r *tripItemRepository[T, P]) List(ctx context.Context, travelID uuid.UUID, userID *uuid.UUID) ([]T, error) {
	items := make([]T, 0)
	q := r.db.WithContext(ctx).Where("travel_id = ?", travelID)
	if userID != nil && isUserOwned[T, P]() {
		q = q.Where("user_id = ?", *userID)
	}
	err := q.Order(orderClause(listOrder[T, P]())).Find(&items).Error
	return items, err
}

func (r *tripItemRepository[T, P]) FindByID(ctx context.Context, travelID, id uuid.UUID) (P, error) {
	var item T
	err := r.db.WithContext(ctx).
		Where("travel_id = ? AND id = ?", travelID, id).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return P(&item), nil
}

func (r *tripItemRepository[T, P]) Create(ctx context.Context, item P) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *tripItemRepository[T, P]) Update(ctx context.Context, item P) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *tripItemRepository[T, P]) Delete(ctx context.Context, travelID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("travel_id = ? AND id = ?", travelID, id).
		Delete(new(T)).Error
}

func (r *tripItemRepository[T, P]) DeleteByTravel(ctx context.Context, travelID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("travel_id = ?", travelID).Delete(new(T)).Error
}

type memoryTripItemRepository[T any, P TripItemPtr[T]] struct {
	store *memoryStore[T, P]
}

func NewMemoryTripItemRepository[T any, P TripItemPtr[T]]() TripItemRepository[T, P] {
	return &memoryTripItemRepository[T, P]{store: newMemoryStore[T, P]()}
}

func (m *memoryTripItemRepository[T, P]) List(_ context.Context, travelID uuid.UUID, userID *uuid.UUID) ([]T, error) {
	items := m.store.list(func(p P) bool {
		if p.GetTravelID() != travelID {
			return false
		}
		if owned, ok := any(p).(dbm.UserOwned); ok && userID != nil {
			return owned.GetUserID() == *userID
		}
		return true
	})

	switch listOrder[T, P]() {
	case dbm.OrderNewestFirst:
		reverse(items)
	case dbm.OrderByDate:
		sort.SliceStable(items, func(i, j int) bool {
			return dateKey[T, P](&items[i]) < dateKey[T, P](&items[j])
		})
	}
	return items, nil
}

func dateKey[T any, P TripItemPtr[T]](v *T) string {
	if d, ok := any(P(v)).(dbm.Dated); ok {
		return d.SortDate()
	}
	return ""
}

func (m *memoryTripItemRepository[T, P]) FindByID(_ context.Context, travelID, id uuid.UUID) (P, error) {
	item, ok := m.store.get(id)
	if !ok || item.GetTravelID() != travelID {
		return nil, nil
	}
	return item, nil
}

func (m *memoryTripItemRepository[T, P]) Create(_ context.Context, item P) error {
	m.store.insert(item)
	return nil
}

func (m *memoryTripItemRepository[T, P]) Update(_ context.Context, item P) error {
	if !m.store.update(item) {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (m *memoryTripItemRepository[T, P]) Delete(_ context.Context, travelID, id uuid.UUID) error {
	m.store.delete(func(p P) bool { return p.GetID() == id && p.GetTravelID() == travelID })
	return nil
}

func (m *memoryTripItemRepository[T, P]) DeleteByTravel(_ context.Context, travelID uuid.UUID) error {
	m.store.delete(func(p P) bool { return p.GetTravelID() == travelID })
	return nil
}
