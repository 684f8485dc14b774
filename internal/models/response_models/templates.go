package response_models

type RoomTemplate struct {
	RoomName string   `json:"room_name"`
	Members  []string `json:"members"`
}

type PackingTemplateItem struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	IsEssential bool   `json:"is_essential"`
}

type BudgetEstimate struct {
	Transportation int64 `json:"transportation"`
	Accommodation  int64 `json:"accommodation"`
	Food           int64 `json:"food"`
	Activities     int64 `json:"activities"`
	Shopping       int64 `json:"shopping,omitempty"`
}

type TravelTemplate struct {
	Rooms       []RoomTemplate        `json:"rooms"`
	Schedule    []PlanDay             `json:"schedule"`
	Budget      BudgetEstimate        `json:"budget"`
	PackingList []PackingTemplateItem `json:"packing_list"`
}
