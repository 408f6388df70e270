package planner

import (
	"sort"
	"strings"

	"github.com/LSUDOKO/GlobalRoute-Navigator/models"
)

const (
	// normScale is the upper bound of the normalized time/price range.
	normScale = 100.0
	// borderPenalty is added to an edge's weight whenever it crosses a
	// country boundary, discouraging needless border hops.
	borderPenalty = 1.0
	// avoidPenalty is the additive weight for entering a penalized
	// country. It dwarfs any single edge's normalized cost so penalized
	// countries lose to any clean alternative, yet stays finite so an
	// unavoidable country still yields a route.
	avoidPenalty = 10 * normScale
)

// Filter is the search-ready view of a request's country and mode
// constraints. It never mutates the underlying graph.
type Filter struct {
	graph     *Graph
	modes     map[models.Mode]bool
	strict    map[string]bool
	penalized map[string]bool
}

// BuildFilter translates the request's constraints into predicates for the
// search. Country codes that match no node in the dataset are inert.
func BuildFilter(g *Graph, req *models.PathRequest) (*Filter, error) {
	modes := make(map[models.Mode]bool, len(req.AllowedModes))
	for _, m := range req.Modes() {
		modes[m] = true
	}
	if len(modes) == 0 {
		return nil, &models.InvalidRequestError{Field: "allowed_modes", Reason: "must not be empty"}
	}

	f := &Filter{
		graph:     g,
		modes:     modes,
		strict:    make(map[string]bool),
		penalized: make(map[string]bool),
	}
	f.addClass(req.AvoidCountries, req.ProhibitedFlag)
	f.addClass(req.RestrictedCountries, req.RestrictedFlag)
	return f, nil
}

func (f *Filter) addClass(countries []string, flag models.CountryFlag) {
	for _, c := range countries {
		code := strings.ToUpper(strings.TrimSpace(c))
		if code == "" {
			continue
		}
		if flag == models.FlagStrict {
			f.strict[code] = true
		} else {
			f.penalized[code] = true
		}
	}
}

func (f *Filter) ModeAllowed(mode models.Mode) bool {
	return f.modes[mode]
}

// NodeHardExcluded reports whether the node's country is strictly excluded.
func (f *Filter) NodeHardExcluded(country string) bool {
	return f.strict[country]
}

// EdgeHardExcluded reports whether the edge may not be traversed at all:
// its mode is disallowed or its destination lies in a strictly excluded
// country.
func (f *Filter) EdgeHardExcluded(e Edge) bool {
	if !f.modes[e.Mode] {
		return true
	}
	dest, ok := f.graph.nodes[e.To]
	if !ok {
		return true
	}
	return f.strict[dest.Country]
}

// PenaltyFor returns the additive weight for entering the edge's destination
// country, zero unless that country is in an avoid-flagged class.
func (f *Filter) PenaltyFor(e Edge) float64 {
	dest, ok := f.graph.nodes[e.To]
	if !ok {
		return 0
	}
	if f.penalized[dest.Country] {
		return avoidPenalty
	}
	return 0
}

// StrictCountries returns the strict-class codes present in the dataset,
// i.e. the countries the response reports as actually avoided.
func (f *Filter) StrictCountries() []string {
	return presentSorted(f.strict, f.graph)
}

// PenalizedCountries returns the avoid-class codes present in the dataset.
func (f *Filter) PenalizedCountries() []string {
	return presentSorted(f.penalized, f.graph)
}

func presentSorted(set map[string]bool, g *Graph) []string {
	out := make([]string, 0, len(set))
	for code := range set {
		if g.HasCountry(code) {
			out = append(out, code)
		}
	}
	sort.Strings(out)
	return out
}
