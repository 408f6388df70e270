package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func baseRequest() PathRequest {
	return PathRequest{
		Start:        "NY",
		Goal:         "LA",
		AllowedModes: []string{"land", "sea", "air"},
	}
}

func TestValidateAppliesDefaults(t *testing.T) {
	req := baseRequest()
	require.NoError(t, req.Validate())

	assert.Equal(t, DefaultTopN, req.TopN)
	require.NotNil(t, req.TimeWeight)
	require.NotNil(t, req.PriceWeight)
	assert.Equal(t, 0.5, *req.TimeWeight)
	assert.Equal(t, 0.5, *req.PriceWeight)
	assert.Equal(t, FlagStrict, req.ProhibitedFlag)
	assert.Equal(t, FlagAvoid, req.RestrictedFlag)
}

func TestValidateNormalizesWeights(t *testing.T) {
	req := baseRequest()
	req.TimeWeight = f64(0.3)
	req.PriceWeight = f64(0.3)
	require.NoError(t, req.Validate())

	assert.InDelta(t, 0.5, *req.TimeWeight, 1e-12)
	assert.InDelta(t, 0.5, *req.PriceWeight, 1e-12)
	assert.InDelta(t, 1.0, *req.TimeWeight+*req.PriceWeight, 1e-12)

	req = baseRequest()
	req.TimeWeight = f64(1.0)
	require.NoError(t, req.Validate(), "a single provided weight implies zero for the other")
	assert.Equal(t, 1.0, *req.TimeWeight)
	assert.Equal(t, 0.0, *req.PriceWeight)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PathRequest)
		field  string
	}{
		{"empty start", func(r *PathRequest) { r.Start = "" }, "start"},
		{"empty goal", func(r *PathRequest) { r.Goal = "" }, "goal"},
		{"top_n too large", func(r *PathRequest) { r.TopN = 11 }, "top_n"},
		{"top_n negative", func(r *PathRequest) { r.TopN = -1 }, "top_n"},
		{"empty allowed_modes", func(r *PathRequest) { r.AllowedModes = nil }, "allowed_modes"},
		{"unknown mode", func(r *PathRequest) { r.AllowedModes = []string{"land", "teleport"} }, "allowed_modes"},
		{"time_weight above range", func(r *PathRequest) { r.TimeWeight = f64(1.5); r.PriceWeight = f64(0.5) }, "time_weight"},
		{"price_weight below range", func(r *PathRequest) { r.TimeWeight = f64(0.5); r.PriceWeight = f64(-0.1) }, "price_weight"},
		{"both weights zero", func(r *PathRequest) { r.TimeWeight = f64(0); r.PriceWeight = f64(0) }, "time_weight"},
		{"bad prohibited_flag", func(r *PathRequest) { r.ProhibitedFlag = "ignore" }, "prohibited_flag"},
		{"bad restricted_flag", func(r *PathRequest) { r.RestrictedFlag = "penalty" }, "restricted_flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			invalid, ok := err.(*InvalidRequestError)
			require.True(t, ok, "expected InvalidRequestError, got %T", err)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestModesParsesValidatedInput(t *testing.T) {
	req := baseRequest()
	req.AllowedModes = []string{"Land", "SEA"}
	require.NoError(t, req.Validate())
	assert.Equal(t, []Mode{Land, Sea}, req.Modes())
}

func TestParseMode(t *testing.T) {
	for input, want := range map[string]Mode{"land": Land, " Sea ": Sea, "AIR": Air} {
		got, ok := ParseMode(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, got)
	}
	_, ok := ParseMode("rail")
	assert.False(t, ok)
}
