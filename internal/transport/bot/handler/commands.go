package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"gamedeals/internal/transport/bot/view"
	"gamedeals/pkg/logx"
)

const maxQueryLen = 100

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

// OnDeals runs one page session for the chat. Usage: /deals [title]
func (h *Handler) OnDeals(ctx *th.Context, msg telego.Message) error {
	query := CommandArgument(msg.Text)
	if utf8.RuneCountInString(query) > maxQueryLen {
		return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.QueryTooLong, maxQueryLen))
	}

	sessionCtx, cancel := context.WithTimeout(ctx, h.sessionTimeout)
	defer cancel()

	session := h.svc.OpenSession(sessionCtx)
	defer session.Close()

	if err := session.Wait(sessionCtx); err != nil {
		logger(ctx).Warn("page session not finished",
			slog.Int64(logx.FieldChatID, msg.Chat.ID),
			slog.String(logx.FieldQuery, query),
			logx.Error(err),
		)
	}

	snapshot := session.Search(query)
	views := h.svc.Views()

	text := view.Deals(snapshot, views.Render(ctx, snapshot.Deals), views.RateText(), h.maxDeals)

	return h.sendHTML(ctx, msg.Chat.ID, text)
}

func (h *Handler) OnStores(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.Stores(h.svc.Stores()))
}

func (h *Handler) OnUnknown(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.UnknownCommandHint)
}

// CommandArgument returns the text after the command word, e.g. "dead cells"
// for "/deals@bot dead cells".
func CommandArgument(text string) string {
	_, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
	return strings.TrimSpace(arg)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
		LinkPreviewOptions: &telego.LinkPreviewOptions{
			IsDisabled: true,
		},
	})
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
