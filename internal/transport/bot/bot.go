package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"gamedeals/internal/transport/bot/handler"
	"gamedeals/pkg/contextx"
	"gamedeals/pkg/logx"
)

const longPollingTimeout = 60

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Config struct {
	Token          string
	MaxDeals       int
	SessionTimeout time.Duration
}

// Bot serves the deal list to Telegram chats.
type Bot struct {
	bot     *telego.Bot
	handler *handler.Handler
}

func New(cfg Config, svc handler.DealService) (*Bot, error) {
	bot, err := telego.NewBot(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &Bot{
		bot:     bot,
		handler: handler.New(svc, cfg.MaxDeals, cfg.SessionTimeout),
	}, nil
}

// Run long-polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeout,
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler)

	go func() {
		if err := botHandler.Start(); err != nil {
			logger(ctx).Error("botHandler.Start", logx.Error(err))
		}
	}()

	logger(ctx).Info("telegram bot started", slog.String("username", b.username(ctx)))

	<-ctx.Done()

	if err := botHandler.Stop(); err != nil {
		logger(ctx).Error("botHandler.Stop", logx.Error(err))
	}

	return ctx.Err()
}

func (b *Bot) username(ctx context.Context) string {
	me, err := b.bot.GetMe(ctx)
	if err != nil {
		logger(ctx).Warn("bot.GetMe", logx.Error(err))
		return ""
	}

	return me.Username
}
