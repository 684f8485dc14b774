package request_models

import (
	"bytes"
	"encoding/json"
	"strings"
)

const (
	TravelStyleRelaxed  = "relaxed"
	TravelStyleBalanced = "balanced"
	TravelStyleActive   = "active"

	TravelTypeDomestic      = "domestic"
	TravelTypeInternational = "international"
)

type PlanRequest struct {
	Destination          string   `json:"destination"`
	Departure            string   `json:"departure"`
	Arrival              string   `json:"arrival"`
	StartDate            string   `json:"startDate"`
	EndDate              string   `json:"endDate"`
	MemberCount          int      `json:"memberCount"`
	Budget               int64    `json:"budget"`
	Interests            []string `json:"interests"`
	TravelStyle          string   `json:"travelStyle"`
	Description          string   `json:"description"`
	AISuggestDestination bool     `json:"aiSuggestDestination"`
	TravelType           string   `json:"travelType"`
}

// Normalize trims strings and fills the enumerated defaults.
func (r *PlanRequest) Normalize() {
	r.Destination = strings.TrimSpace(r.Destination)
	r.Departure = strings.TrimSpace(r.Departure)
	r.Arrival = strings.TrimSpace(r.Arrival)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)

	switch r.TravelStyle {
	case TravelStyleRelaxed, TravelStyleBalanced, TravelStyleActive:
	default:
		r.TravelStyle = TravelStyleBalanced
	}
	if r.TravelType != TravelTypeInternational {
		r.TravelType = TravelTypeDomestic
	}

	interests := r.Interests[:0:0]
	for _, i := range r.Interests {
		if i = strings.TrimSpace(i); i != "" {
			interests = append(interests, i)
		}
	}
	r.Interests = interests
}

// FlexibleString accepts either a JSON string or a JSON number.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexibleString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexibleString(n.String())
	return nil
}

type RecommendationRequest struct {
	Destination string         `json:"destination"`
	Region      string         `json:"region"`
	Interests   []string       `json:"interests"`
	Budget      FlexibleString `json:"budget"`
	TravelStyle string         `json:"travelStyle"`
	GroupSize   int            `json:"groupSize"`
	Duration    FlexibleString `json:"duration"`
	CustomNote  string         `json:"customNote"`
}
