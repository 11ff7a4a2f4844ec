package handler

import (
	th "github.com/mymmrac/telego/telegohandler"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler) {
	bh.HandleMessage(h.OnStart, th.CommandEqual("start"))
	bh.HandleMessage(h.OnStart, th.CommandEqual("help"))
	bh.HandleMessage(h.OnDeals, th.CommandEqual("deals"))
	bh.HandleMessage(h.OnStores, th.CommandEqual("stores"))

	bh.HandleMessage(h.OnUnknown, th.AnyCommand())
}
