package entity

// DisplayPrice is one amount rendered twice. Local equals USD outside the
// local market.
type DisplayPrice struct {
	Local string
	USD   string
}

// DealView is the display model of a RawDeal. It is rebuilt on every render
// and never cached.
type DealView struct {
	ID          string
	Title       string
	StoreID     string
	Store       string
	Thumb       string
	SalePrice   DisplayPrice
	NormalPrice DisplayPrice
	// Savings is the discount in whole percent.
	Savings int
	BuyURL  string
}
