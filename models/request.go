package models

import "fmt"

type CountryFlag string

const (
	// FlagAvoid penalizes paths through the flagged countries but still
	// allows them when no alternative exists.
	FlagAvoid CountryFlag = "avoid"
	// FlagStrict excludes any path touching the flagged countries.
	FlagStrict CountryFlag = "strict"
)

const (
	DefaultTopN      = 3
	MaxTopN          = 10
	defaultWeight    = 0.5
	weightSumEpsilon = 1e-9
)

// PathRequest is the planning request. Optional numeric fields are pointers
// so that an omitted field can be told apart from an explicit zero.
//
// avoid_countries is the prohibited class (embargoed or sanctioned
// destinations); restricted_countries is the restricted class (transit
// caution zones). Each class is governed by its own flag.
type PathRequest struct {
	Start               string      `json:"start" binding:"required"`
	Goal                string      `json:"goal" binding:"required"`
	AvoidCountries      []string    `json:"avoid_countries,omitempty"`
	RestrictedCountries []string    `json:"restricted_countries,omitempty"`
	TopN                int         `json:"top_n,omitempty"`
	TimeWeight          *float64    `json:"time_weight,omitempty"`
	PriceWeight         *float64    `json:"price_weight,omitempty"`
	AllowedModes        []string    `json:"allowed_modes" binding:"required"`
	ProhibitedFlag      CountryFlag `json:"prohibited_flag,omitempty"`
	RestrictedFlag      CountryFlag `json:"restricted_flag,omitempty"`
}

// Validate applies defaulting rules and checks every field, returning an
// InvalidRequestError naming the first offending field. It must be called
// once at the boundary before the request reaches the planner.
func (r *PathRequest) Validate() error {
	if r.Start == "" {
		return &InvalidRequestError{Field: "start", Reason: "must not be empty"}
	}
	if r.Goal == "" {
		return &InvalidRequestError{Field: "goal", Reason: "must not be empty"}
	}

	if r.TopN == 0 {
		r.TopN = DefaultTopN
	}
	if r.TopN < 1 || r.TopN > MaxTopN {
		return &InvalidRequestError{
			Field:  "top_n",
			Reason: fmt.Sprintf("must be between 1 and %d, got %d", MaxTopN, r.TopN),
		}
	}

	if err := r.normalizeWeights(); err != nil {
		return err
	}

	if len(r.AllowedModes) == 0 {
		return &InvalidRequestError{Field: "allowed_modes", Reason: "must not be empty"}
	}
	for _, m := range r.AllowedModes {
		if _, ok := ParseMode(m); !ok {
			return &InvalidRequestError{
				Field:  "allowed_modes",
				Reason: fmt.Sprintf("unrecognized mode %q", m),
			}
		}
	}

	if r.ProhibitedFlag == "" {
		r.ProhibitedFlag = FlagStrict
	}
	if r.RestrictedFlag == "" {
		r.RestrictedFlag = FlagAvoid
	}
	if r.ProhibitedFlag != FlagAvoid && r.ProhibitedFlag != FlagStrict {
		return &InvalidRequestError{
			Field:  "prohibited_flag",
			Reason: fmt.Sprintf("must be %q or %q", FlagAvoid, FlagStrict),
		}
	}
	if r.RestrictedFlag != FlagAvoid && r.RestrictedFlag != FlagStrict {
		return &InvalidRequestError{
			Field:  "restricted_flag",
			Reason: fmt.Sprintf("must be %q or %q", FlagAvoid, FlagStrict),
		}
	}
	return nil
}

// normalizeWeights defaults absent weights to 0.5 each and rescales a
// positive non-unit sum so the weights always sum to 1 afterwards.
func (r *PathRequest) normalizeWeights() error {
	if r.TimeWeight == nil && r.PriceWeight == nil {
		tw, pw := defaultWeight, defaultWeight
		r.TimeWeight, r.PriceWeight = &tw, &pw
		return nil
	}
	if r.TimeWeight == nil {
		zero := 0.0
		r.TimeWeight = &zero
	}
	if r.PriceWeight == nil {
		zero := 0.0
		r.PriceWeight = &zero
	}
	if *r.TimeWeight < 0 || *r.TimeWeight > 1 {
		return &InvalidRequestError{Field: "time_weight", Reason: "must be in [0, 1]"}
	}
	if *r.PriceWeight < 0 || *r.PriceWeight > 1 {
		return &InvalidRequestError{Field: "price_weight", Reason: "must be in [0, 1]"}
	}
	sum := *r.TimeWeight + *r.PriceWeight
	if sum < weightSumEpsilon {
		return &InvalidRequestError{
			Field:  "time_weight",
			Reason: "time_weight and price_weight must not both be zero",
		}
	}
	tw := *r.TimeWeight / sum
	pw := *r.PriceWeight / sum
	r.TimeWeight, r.PriceWeight = &tw, &pw
	return nil
}

// Modes returns the parsed allowed-mode set. Validate must have succeeded.
func (r *PathRequest) Modes() []Mode {
	modes := make([]Mode, 0, len(r.AllowedModes))
	for _, m := range r.AllowedModes {
		mode, _ := ParseMode(m)
		modes = append(modes, mode)
	}
	return modes
}
