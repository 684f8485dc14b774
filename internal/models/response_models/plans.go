package response_models

// Schedule item categories.
const (
	CategoryTransport     = "transport"
	CategorySightseeing   = "sightseeing"
	CategoryFood          = "food"
	CategoryAccommodation = "accommodation"
	CategoryActivity      = "activity"
)

type GeneratedPlan struct {
	Schedule        []PlanDay           `json:"schedule"`
	Places          []PlanPlace         `json:"places"`
	Budget          BudgetBreakdown     `json:"budget"`
	Recommendations PlanRecommendations `json:"recommendations"`
}

type PlanDay struct {
	Date  string     `json:"date"`
	Day   string     `json:"day"`
	Items []PlanItem `json:"items"`
}

type PlanItem struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type PlanPlace struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}

// BudgetBreakdown is the four-bucket split. The sum is expected to be close
// to the requested budget but nothing enforces it.
type BudgetBreakdown struct {
	Transportation float64 `json:"transportation"`
	Accommodation  float64 `json:"accommodation"`
	Food           float64 `json:"food"`
	Activities     float64 `json:"activities"`
}

func (b BudgetBreakdown) Total() float64 {
	return b.Transportation + b.Accommodation + b.Food + b.Activities
}

type PlanRecommendations struct {
	MustVisit []string `json:"mustVisit"`
	LocalFood []string `json:"localFood"`
	Tips      []string `json:"tips"`
}

// PlanResult is the body of the plan-generation endpoint. Success stays true
// when the fallback plan was served; Fallback tells the two apart.
type PlanResult struct {
	Success  bool           `json:"success"`
	Plan     *GeneratedPlan `json:"plan,omitempty"`
	Fallback bool           `json:"fallback,omitempty"`
	Error    string         `json:"error,omitempty"`
	Message  string         `json:"message,omitempty"`
}
