package db_models

import (
	"encoding/json"
	"slices"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Detacher is implemented by records holding slices, pointers or jsonb
// values. Detach replaces those fields with copies so the record no longer
// shares memory with the value it was copied from.
type Detacher interface {
	Detach()
}

func cloneJSON[T any](j datatypes.JSONType[T]) datatypes.JSONType[T] {
	raw, err := json.Marshal(j)
	if err != nil {
		return j
	}
	var out datatypes.JSONType[T]
	if err := json.Unmarshal(raw, &out); err != nil {
		return j
	}
	return out
}

func cloneID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func (t *Travel) Detach() {
	t.Interests = slices.Clone(t.Interests)
	t.Schedule = cloneJSON(t.Schedule)
	t.Places = cloneJSON(t.Places)
	t.BudgetBreakdown = cloneJSON(t.BudgetBreakdown)
	t.Recommendations = cloneJSON(t.Recommendations)
}

func (s *Schedule) Detach() { s.Items = cloneJSON(s.Items) }

func (p *Place) Detach() { p.ScheduleID = cloneID(p.ScheduleID) }

func (b *Budget) Detach() {
	b.ScheduleID = cloneID(b.ScheduleID)
	b.Breakdown = cloneJSON(b.Breakdown)
}

func (r *RoomAssignment) Detach() {
	r.ScheduleID = cloneID(r.ScheduleID)
	r.Members = slices.Clone(r.Members)
}

func (m *Member) Detach() { m.Preferences = slices.Clone(m.Preferences) }
