package models

// ResearchRequest is the input to keyword research. IncludeRelated defaults to
// true and MaxDifficulty to 100 when omitted, so both use pointers.
type ResearchRequest struct {
	SeedKeyword     string   `json:"seed_keyword"`
	Location        *string  `json:"location"`
	Language        string   `json:"language"`
	IncludeRelated  *bool    `json:"include_related"`
	MinSearchVolume int      `json:"min_search_volume"`
	MaxDifficulty   *float64 `json:"max_difficulty"`
}

// AnalyzeRequest is the input to competitor analysis.
type AnalyzeRequest struct {
	TargetKeyword string  `json:"target_keyword"`
	Location      *string `json:"location"`
	Limit         int     `json:"limit"`
}

// GenerateOutlineRequest is the input to template-based outline generation.
type GenerateOutlineRequest struct {
	TargetKeyword string `json:"target_keyword"`
	ContentType   string `json:"content_type"`
}

// SetImplementedRequest toggles a suggestion's implemented flag.
type SetImplementedRequest struct {
	IsImplemented bool `json:"is_implemented"`
}

// DashboardCounts holds per-entity row counts for the dashboard page.
type DashboardCounts struct {
	Keywords    int64 `json:"keywords"`
	Competitors int64 `json:"competitors"`
	Outlines    int64 `json:"outlines"`
	Suggestions int64 `json:"suggestions"`
}
