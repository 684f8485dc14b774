package response_models

type AIRecommendation struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Image         string   `json:"image,omitempty"`
	Tags          []string `json:"tags"`
	Rating        float64  `json:"rating"`
	AIReason      string   `json:"aiReason"`
	MatchScore    float64  `json:"matchScore"`
	EstimatedTime string   `json:"estimatedTime,omitempty"`
	PriceRange    string   `json:"priceRange,omitempty"`
	IsBookmarked  bool     `json:"isBookmarked"`
}

// RecommendationResult never carries a nil slice so clients always get [].
type RecommendationResult struct {
	Success         bool               `json:"success"`
	Recommendations []AIRecommendation `json:"recommendations"`
	Error           string             `json:"error,omitempty"`
}
