package state

import (
	"time"

	"novonexbot/session"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"go.mau.fi/whatsmeow"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const NOVONEXBOT_VERSION = "1.2.0"

type state struct {
	Config *Config
	Logger *zap.Logger

	Database *gorm.DB
	Sessions session.Store

	WhatsAppClient *whatsmeow.Client

	TelegramBot        *gotgbot.Bot
	TelegramDispatcher *ext.Dispatcher
	TelegramUpdater    *ext.Updater
	TelegramCommands   []gotgbot.BotCommand

	StartTime     time.Time
	LocalLocation *time.Location
}

var State state

func init() {
	State.Config = &Config{}
	State.Logger = zap.NewNop()
	State.LocalLocation = time.UTC
}
