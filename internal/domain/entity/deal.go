package entity

// RawDeal is one record of the upstream deals API, kept as received. Prices
// are decimal strings and are only parsed when a view is built.
type RawDeal struct {
	DealID      string `json:"dealID"`
	Title       string `json:"title"`
	StoreID     string `json:"storeID"`
	Thumb       string `json:"thumb"`
	SalePrice   string `json:"salePrice"`
	NormalPrice string `json:"normalPrice"`

	// Pass-through extras, unused by the pipeline.
	GameID          string `json:"gameID,omitempty"`
	MetacriticScore string `json:"metacriticScore,omitempty"`
	SteamRatingText string `json:"steamRatingText,omitempty"`
	DealRating      string `json:"dealRating,omitempty"`
}
