package utils

import (
	"bytes"
	"fmt"
	"html"

	"novonexbot/state"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

func TgRegisterBotCommands(b *gotgbot.Bot, commands ...gotgbot.BotCommand) error {
	if commands == nil {
		commands = []gotgbot.BotCommand{}
	}
	_, err := b.SetMyCommands(commands, &gotgbot.SetMyCommandsOpts{})
	return err
}

// TgUpdateIsAuthorized lets only the configured owner use the console.
func TgUpdateIsAuthorized(b *gotgbot.Bot, c *ext.Context) bool {
	return c.EffectiveUser != nil && c.EffectiveUser.Id == state.State.Config.Telegram.OwnerID
}

func TgReplyTextByContext(b *gotgbot.Bot, c *ext.Context, text string) (*gotgbot.Message, error) {
	return c.EffectiveMessage.Reply(b, text, &gotgbot.SendMessageOpts{
		ParseMode: "HTML",
	})
}

func TgReplyWithErrorByContext(b *gotgbot.Bot, c *ext.Context, eMessage string, eError error) error {
	_, err := TgReplyTextByContext(b, c, fmt.Sprintf("%s:\n\n<code>%s</code>",
		html.EscapeString(eMessage), html.EscapeString(eError.Error())))
	return err
}

// TgNotifyOwner sends text to the owner when the console is enabled. It is a
// no-op otherwise.
func TgNotifyOwner(text string) {
	var (
		cfg    = state.State.Config
		logger = state.State.Logger
		tgBot  = state.State.TelegramBot
	)

	if tgBot == nil {
		return
	}

	_, err := tgBot.SendMessage(cfg.Telegram.OwnerID, text, &gotgbot.SendMessageOpts{
		ParseMode: "HTML",
	})
	if err != nil {
		logger.Error("failed to notify telegram owner", zap.Error(err))
	}
}

// TgSendQRCodeToOwner renders a WhatsApp pairing code as PNG for the owner.
func TgSendQRCodeToOwner(code string) error {
	var (
		cfg   = state.State.Config
		tgBot = state.State.TelegramBot
	)

	if tgBot == nil || cfg.Telegram.SkipQrCodeSend {
		return nil
	}

	png, err := qrcode.Encode(code, qrcode.Medium, 512)
	if err != nil {
		return fmt.Errorf("failed to encode qr code: %w", err)
	}

	_, err = tgBot.SendPhoto(cfg.Telegram.OwnerID, &gotgbot.FileReader{Name: "qr.png", Data: bytes.NewReader(png)}, &gotgbot.SendPhotoOpts{
		Caption: "Scan this code from WhatsApp > Linked Devices to log in",
	})
	return err
}
