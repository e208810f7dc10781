package entity

// Recommendation is the ranked result of a recommendation query. NoMatches is
// set when no restaurant satisfied the city, category and distance
// constraints, so callers can tell "nothing found" apart from "not computed".
type Recommendation struct {
	Items     []ScoredRestaurant `json:"items"`
	NoMatches bool               `json:"no_matches"`
}
