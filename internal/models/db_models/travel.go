package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"tabi/internal/models/response_models"
)

const (
	TravelStatusPlanning  = "planning"
	TravelStatusConfirmed = "confirmed"
	TravelStatusCompleted = "completed"
)

type Travel struct {
	BaseModel
	UserID          uuid.UUID                                                `gorm:"type:uuid;index" json:"user_id"`
	Title           string                                                   `json:"title"`
	Destination     string                                                   `json:"destination"`
	StartDate       string                                                   `json:"start_date"`
	EndDate         string                                                   `json:"end_date"`
	Duration        string                                                   `json:"duration"`
	Dates           string                                                   `json:"dates"`
	Description     string                                                   `json:"description"`
	Image           string                                                   `json:"image"`
	Status          string                                                   `gorm:"default:planning" json:"status"`
	MemberCount     int                                                      `json:"member_count"`
	Budget          int64                                                    `json:"budget"`
	Interests       pq.StringArray                                           `gorm:"type:text[]" json:"interests"`
	TravelStyle     string                                                   `json:"travel_style"`
	TravelType      string                                                   `json:"travel_type"`
	Schedule        datatypes.JSONType[[]response_models.PlanDay]            `gorm:"type:jsonb" json:"schedule"`
	Places          datatypes.JSONType[[]response_models.PlanPlace]          `gorm:"type:jsonb" json:"places"`
	BudgetBreakdown datatypes.JSONType[*response_models.BudgetBreakdown]     `gorm:"type:jsonb" json:"budget_breakdown"`
	Recommendations datatypes.JSONType[*response_models.PlanRecommendations] `gorm:"type:jsonb" json:"recommendations"`
}

func (t *Travel) OwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}

func ValidTravelStatus(s string) bool {
	switch s {
	case TravelStatusPlanning, TravelStatusConfirmed, TravelStatusCompleted:
		return true
	}
	return false
}
