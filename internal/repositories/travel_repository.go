package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "tabi/internal/models/db_models"
)

type TravelRepository interface {
	Create(ctx context.Context, travel *dbm.Travel) error
	FindByID(ctx context.Context, id uuid.UUID) (*dbm.Travel, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.Travel, error)
	Update(ctx context.Context, travel *dbm.Travel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type travelRepository struct {
	db *gorm.DB
}

func NewTravelRepository(db *gorm.DB) TravelRepository {
	return &travelRepository{db: db}
}

func (r *travelRepository) Create(ctx context.Context, travel *dbm.Travel) error {
	return r.db.WithContext(ctx).Create(travel).Error
}

func (r *travelRepository) FindByID(ctx context.Context, id uuid.UUID) (*dbm.Travel, error) {
	var travel dbm.Travel
	err := r.db.WithContext(ctx).First(&travel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &travel, nil
}

func (r *travelRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.Travel, error) {
	var travels []dbm.Travel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&travels).Error
	return travels, err
}

func (r *travelRepository) Update(ctx context.Context, travel *dbm.Travel) error {
	return r.db.WithContext(ctx).Save(travel).Error
}

func (r *travelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&dbm.Travel{}, "id = ?", id).Error
}

// memoryTravelRepository backs the service when no database is configured.
// Lists come back newest first.
type memoryTravelRepository struct {
	store *memoryStore[dbm.Travel, *dbm.Travel]
}

func NewMemoryTravelRepository() TravelRepository {
	return &memoryTravelRepository{store: newMemoryStore[dbm.Travel, *dbm.Travel]()}
}

func (m *memoryTravelRepository) Create(_ context.Context, travel *dbm.Travel) error {
	m.store.insert(travel)
	return nil
}

func (m *memoryTravelRepository) FindByID(_ context.Context, id uuid.UUID) (*dbm.Travel, error) {
	travel, ok := m.store.get(id)
	if !ok {
		return nil, nil
	}
	return travel, nil
}

func (m *memoryTravelRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]dbm.Travel, error) {
	travels := m.store.list(func(t *dbm.Travel) bool { return t.UserID == userID })
	reverse(travels)
	return travels, nil
}

func (m *memoryTravelRepository) Update(_ context.Context, travel *dbm.Travel) error {
	if !m.store.update(travel) {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (m *memoryTravelRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.store.delete(func(t *dbm.Travel) bool { return t.ID == id })
	return nil
}
