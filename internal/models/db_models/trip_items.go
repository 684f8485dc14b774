package db_models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"tabi/internal/models/response_models"
	"tabi/pkg/utils"
)

// ListOrder tells repositories how a resource is listed.
type ListOrder int

const (
	OrderNewestFirst ListOrder = iota
	OrderOldestFirst
	OrderByDate
)

// Record is anything that carries a BaseModel.
type Record interface {
	GetID() uuid.UUID
	PrepareCreate()
	PrepareUpdate()
	Identity() BaseModel
	RestoreIdentity(BaseModel)
}

// TripItem is a record that hangs off a travel.
type TripItem interface {
	Record
	GetTravelID() uuid.UUID
	SetTravelID(uuid.UUID)
	ListOrder() ListOrder
	Validate() error
}

// UserOwned items are additionally scoped to the user who created them.
type UserOwned interface {
	GetUserID() uuid.UUID
	SetUserID(uuid.UUID)
}

// Dated items are ordered by their Date when listed with OrderByDate.
type Dated interface {
	SortDate() string
}

type TripItemBase struct {
	BaseModel
	TravelID uuid.UUID `gorm:"type:uuid;index" json:"travel_id"`
}

func (b *TripItemBase) GetTravelID() uuid.UUID   { return b.TravelID }
func (b *TripItemBase) SetTravelID(id uuid.UUID) { b.TravelID = id }
func (b *TripItemBase) ListOrder() ListOrder     { return OrderNewestFirst }

type OwnerBase struct {
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
}

func (o *OwnerBase) GetUserID() uuid.UUID   { return o.UserID }
func (o *OwnerBase) SetUserID(id uuid.UUID) { o.UserID = id }

func invalid(format string, args ...any) error {
	return utils.NewValidationError(utils.ErrInvalidInput, fmt.Sprintf(format, args...))
}

type Schedule struct {
	TripItemBase
	Date  string                                         `json:"date"`
	Day   string                                         `json:"day"`
	Items datatypes.JSONType[[]response_models.PlanItem] `gorm:"type:jsonb" json:"items"`
}

func (s *Schedule) ListOrder() ListOrder { return OrderByDate }
func (s *Schedule) SortDate() string     { return s.Date }

func (s *Schedule) Validate() error {
	if _, err := utils.ParseDate(s.Date); err != nil {
		return invalid("schedule date must be YYYY-MM-DD")
	}
	return nil
}

type Place struct {
	TripItemBase
	ScheduleID   *uuid.UUID `gorm:"type:uuid" json:"schedule_id,omitempty"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	MainCategory string     `json:"main_category"`
	Rating       float64    `json:"rating"`
	Image        string     `json:"image"`
	Description  string     `json:"description"`
	Address      string     `json:"address"`
	Phone        string     `json:"phone"`
	Website      string     `json:"website"`
	OpeningHours string     `json:"opening_hours"`
	PriceRange   string     `json:"price_range"`
	IsFavorite   bool       `json:"is_favorite"`
}

func (p *Place) Validate() error {
	if p.Name == "" {
		return invalid("place name is required")
	}
	if p.Rating < 0 || p.Rating > 5 {
		return invalid("rating must be between 0 and 5")
	}
	return nil
}

// Budget is a single expense line of a travel.
type Budget struct {
	TripItemBase
	OwnerBase
	ScheduleID *uuid.UUID                           `gorm:"type:uuid" json:"schedule_id,omitempty"`
	Title      string                               `json:"title"`
	Category   string                               `json:"category"`
	Amount     int64                                `json:"amount"`
	Breakdown  datatypes.JSONType[map[string]int64] `gorm:"type:jsonb" json:"breakdown"`
}

func (b *Budget) Validate() error {
	if b.Title == "" {
		return invalid("budget title is required")
	}
	if b.Amount < 0 {
		return invalid("amount must not be negative")
	}
	return nil
}

type RoomAssignment struct {
	TripItemBase
	ScheduleID *uuid.UUID     `gorm:"type:uuid" json:"schedule_id,omitempty"`
	RoomName   string         `json:"room_name"`
	Members    pq.StringArray `gorm:"type:text[]" json:"members"`
}

func (r *RoomAssignment) Validate() error {
	if r.RoomName == "" {
		return invalid("room name is required")
	}
	return nil
}

type Member struct {
	TripItemBase
	Name        string         `json:"name"`
	Gender      string         `json:"gender"`
	Preferences pq.StringArray `gorm:"type:text[]" json:"preferences"`
}

func (m *Member) ListOrder() ListOrder { return OrderOldestFirst }

func (m *Member) Validate() error {
	if m.Name == "" {
		return invalid("member name is required")
	}
	switch m.Gender {
	case "", "male", "female":
		return nil
	}
	return invalid("gender must be male or female")
}

type Note struct {
	TripItemBase
	OwnerBase
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	IsPinned bool   `json:"is_pinned"`
}

func (n *Note) Validate() error {
	if n.Title == "" {
		return invalid("note title is required")
	}
	return nil
}

type PackingItem struct {
	TripItemBase
	Name        string `json:"name"`
	Category    string `json:"category"`
	Quantity    int    `gorm:"default:1" json:"quantity"`
	IsPacked    bool   `json:"is_packed"`
	IsEssential bool   `json:"is_essential"`
}

func (p *PackingItem) ListOrder() ListOrder { return OrderOldestFirst }

func (p *PackingItem) Validate() error {
	if p.Name == "" {
		return invalid("item name is required")
	}
	if p.Quantity == 0 {
		p.Quantity = 1
	}
	if p.Quantity < 1 {
		return invalid("quantity must be at least 1")
	}
	return nil
}
