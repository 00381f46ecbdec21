package model

// Statute is a sample statute record. Relevance is carried as data only;
// search results are never ordered by it.
type Statute struct {
	Type      string  `json:"type"`
	Citation  string  `json:"citation"`
	Title     string  `json:"title"`
	Text      string  `json:"text"`
	Relevance float64 `json:"relevance"`
}

// StatuteSearchAll disables the statute type filter.
const StatuteSearchAll = "all"

// SearchStatutesRequest is bound from GET /api/statute/search?q=&type=.
type SearchStatutesRequest struct {
	Query string `query:"q" validate:"required"`
	Type  string `query:"type"`
}

func (r *SearchStatutesRequest) Validate() error {
	return validate(r)
}

// StatuteSearchResult is the response of a statute search.
type StatuteSearchResult struct {
	Query   string    `json:"query"`
	Type    string    `json:"type"`
	Results []Statute `json:"results"`
	Count   int       `json:"count"`
	Note    string    `json:"note"`
}
