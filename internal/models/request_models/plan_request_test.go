package request_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRequest_Normalize(t *testing.T) {
	r := PlanRequest{
		Destination: "  京都 ",
		TravelStyle: "wild",
		TravelType:  "space",
		Interests:   []string{" グルメ ", "", "寺社"},
	}
	r.Normalize()

	assert.Equal(t, "京都", r.Destination)
	assert.Equal(t, TravelStyleBalanced, r.TravelStyle)
	assert.Equal(t, TravelTypeDomestic, r.TravelType)
	assert.Equal(t, []string{"グルメ", "寺社"}, r.Interests)
}

func TestFlexibleString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FlexibleString
	}{
		{"string", `{"budget":"5万円"}`, "5万円"},
		{"integer", `{"budget":50000}`, "50000"},
		{"null", `{"budget":null}`, ""},
		{"missing", `{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r RecommendationRequest
			require.NoError(t, json.Unmarshal([]byte(tt.in), &r))
			assert.Equal(t, tt.want, r.Budget)
		})
	}

	var r RecommendationRequest
	assert.Error(t, json.Unmarshal([]byte(`{"budget":[1]}`), &r))
}
