// Wire types of the public HTTP API.
package rest

// DealsQuery is the query string of GET /v1/deals.
type DealsQuery struct {
	// Q Title filter, matched case-insensitively as a substring
	Q string `validate:"max=100"`

	// Country Visitor country (ISO 3166-1 alpha-2), defaults to the configured one
	Country string `validate:"omitempty,iso3166_1_alpha2"`
}

// Deals is the response of GET /v1/deals.
type Deals struct {
	// State one of "loading", "loaded", "failed"
	State    string `json:"state"`
	Query    string `json:"query"`
	Country  string `json:"country"`
	RateText string `json:"rateText"`
	// Total number of deals fetched before filtering
	Total int    `json:"total"`
	Deals []Deal `json:"deals"`
}

type Deal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	StoreID     string `json:"storeId"`
	Store       string `json:"store"`
	Thumb       string `json:"thumb"`
	SalePrice   Price  `json:"salePrice"`
	NormalPrice Price  `json:"normalPrice"`
	Savings     int    `json:"savings"`
	BuyURL      string `json:"buyUrl"`
}

// Price is one amount rendered in the local and the reference currency.
type Price struct {
	Local string `json:"local"`
	USD   string `json:"usd"`
}

type Store struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Error Error model
type Error struct {
	// Code Error code
	Code ErrorCode `json:"code"`

	// Message Human readable description
	Message string `json:"message"`

	SupportID string `json:"supportId"`
}

// ErrorCode Error code
type ErrorCode string
