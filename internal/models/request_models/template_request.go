package request_models

type TemplateRequest struct {
	MemberCount int    `json:"member_count"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Budget      int64  `json:"budget"`
	TravelType  string `json:"travel_type"`
}
