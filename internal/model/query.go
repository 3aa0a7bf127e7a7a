package model

// SearchRequest represents a search query request
type SearchRequest struct {
	Query string `json:"query" form:"q"`
}

// SearchResponse represents a search result response
type SearchResponse struct {
	Results      []Property   `json:"results"`
	Total        int          `json:"total"`
	Parsed       *ParsedQuery `json:"parsed,omitempty"`
	FallbackUsed bool         `json:"fallback_used"`
	Took         int64        `json:"took_ms"` // Response time in milliseconds
}

// PropertyListResponse wraps an unfiltered property listing
type PropertyListResponse struct {
	Results []Property `json:"results"`
	Total   int        `json:"total"`
}

// OverviewResponse carries the generated summary of a property
type OverviewResponse struct {
	ID         string  `json:"id"`
	AIOverview *string `json:"ai_overview"`
}

// CitiesResponse lists the supported cities and the resolved selection
type CitiesResponse struct {
	Cities   []string `json:"cities"`
	Selected string   `json:"selected"`
}
