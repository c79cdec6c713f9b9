package structs

// QuoteRequest asks for the priced breakdown of a configuration.
type QuoteRequest struct {
	Locale        string        `json:"locale,omitempty"`
	Configuration Configuration `json:"configuration"`
}

// FinancingEstimate is the amortized installment split for a total price.
type FinancingEstimate struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	UpfrontPayment float64 `json:"upfront_payment"`
}

// QuotedLine is one priced selection echoed back in a quote.
type QuotedLine struct {
	Label string  `json:"label"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Quote is the full priced view of a configuration.
type Quote struct {
	Configuration  Configuration     `json:"configuration"`
	AdjustedColors bool              `json:"adjusted_colors,omitempty"` // true when a disallowed pair was corrected
	BasePrice      string            `json:"base_price"`
	AdditionalCost float64           `json:"additional_cost"`
	TotalValue     float64           `json:"total_value"`
	TotalDisplay   string            `json:"total_display"`
	Lines          []QuotedLine      `json:"lines"`
	Financing      FinancingEstimate `json:"financing"`
}

// ShareResponse carries a freshly encoded shareable configuration token.
type ShareResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}
