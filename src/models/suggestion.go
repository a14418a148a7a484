package models

// CategorySuggestion is the assessment for a single spending category.
type CategorySuggestion struct {
	Spent      float64  `json:"spent"`
	Status     []string `json:"status"`
	Color      string   `json:"color"`
	LabelTypes []string `json:"labelTypes"`
	Message    string   `json:"message"`
}

// AccountSuggestion is an account-wide assessment. TotalSpent is only set
// on the overall-spend entry, not on sentinel or spike entries.
type AccountSuggestion struct {
	TotalSpent *float64 `json:"totalSpent,omitempty"`
	Status     []string `json:"status"`
	Color      string   `json:"color"`
	LabelTypes []string `json:"labelTypes"`
	Message    string   `json:"message"`
}

// SuggestionResponse is the full classifier output for one expense list.
type SuggestionResponse struct {
	CategorySuggestions map[string]CategorySuggestion `json:"categorySuggestions"`
	AccountSuggestions  []AccountSuggestion           `json:"accountSuggestions"`
}
