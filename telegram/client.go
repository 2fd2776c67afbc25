package telegram

import (
	"fmt"
	"net/http"
	"time"

	"novonexbot/state"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"go.uber.org/zap"
)

// NewTelegramClient creates the owner console bot and starts polling.
func NewTelegramClient() error {
	var (
		cfg    = state.State.Config
		logger = state.State.Logger
	)

	bot, err := gotgbot.NewBot(cfg.Telegram.BotToken, &gotgbot.BotOpts{
		BotClient: &gotgbot.BaseBotClient{
			Client: http.Client{},
			DefaultRequestOpts: &gotgbot.RequestOpts{
				Timeout: gotgbot.DefaultTimeout,
				APIURL:  cfg.Telegram.APIURL,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("could not initialize telegram bot: %w", err)
	}

	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *gotgbot.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			logger.Error("telegram handler failed", zap.Error(err))
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})
	updater := ext.NewUpdater(dispatcher, nil)

	err = updater.StartPolling(bot, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &gotgbot.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &gotgbot.RequestOpts{
				Timeout: 10 * time.Second,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("could not start telegram polling: %w", err)
	}

	logger.Info("telegram owner console started",
		zap.String("username", bot.User.Username),
	)

	state.State.TelegramBot = bot
	state.State.TelegramDispatcher = dispatcher
	state.State.TelegramUpdater = updater

	return nil
}
