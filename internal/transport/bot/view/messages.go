package view

const (
	StartMessage = `🎮 <b>Game deals</b>

Discounted games from Steam, Epic Games, GOG, Humble Bundle and Fanatical, priced in your currency.

/deals - current deals
/deals <i>title</i> - deals whose title contains the text
/stores - stores we look at`

	DealsLoading = "⏳ Deals are still loading, try again in a moment."
	DealsFailed  = "⚠️ Could not load deals. Send /deals to retry."
	DealsNoMatch = "🔍 No games match <b>%s</b>."

	DealsHeader      = "🎮 <b>Game deals</b>\n<i>%s</i>\n\n"
	DealsFoundQuery  = "Found %d of %d deals matching <b>%s</b>:\n\n"
	DealsFound       = "%d deals:\n\n"
	DealItemTemplate = "%d. <a href=\"%s\">%s</a> (%s)\n    %s <s>%s</s> -%d%%\n"
	DealsTruncated   = "\n…and %d more. Narrow it down with /deals <i>title</i>."

	StoresHeader       = "🏬 <b>Stores</b>\n\n"
	StoreItemTemplate  = "• %s\n"
	QueryTooLong       = "❌ Search text is limited to %d characters."
	UnknownCommandHint = "Send /deals to see current deals."
)
