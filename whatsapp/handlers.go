package whatsapp

import (
	"context"
	"fmt"
	"html"

	"novonexbot/database"
	"novonexbot/state"
	"novonexbot/utils"

	"go.mau.fi/whatsmeow/types/events"
	"go.uber.org/zap"
)

// WhatsAppEventHandler returns the whatsmeow event callback that routes
// messages to r.
func WhatsAppEventHandler(r *Responder) func(evt interface{}) {
	return func(evt interface{}) {
		switch whatsAppEvent := evt.(type) {

		case *events.Connected:
			ConnectedHandler()

		case *events.LoggedOut:
			LogoutHandler(whatsAppEvent)

		case *events.PushName:
			PushNameEventHandler(whatsAppEvent)

		case *events.Message:
			r.Handle(context.Background(), InboundFromEvent(whatsAppEvent))
		}
	}
}

func ConnectedHandler() {
	var (
		logger = state.State.Logger
		cfg    = state.State.Config
	)
	defer logger.Sync()

	logger.Info("successfully connected to whatsapp")

	if !cfg.Telegram.SkipStartupMessage {
		utils.TgNotifyOwner("Successfully connected to WhatsApp")
	}
}

func LogoutHandler(v *events.LoggedOut) {
	logger := state.State.Logger
	defer logger.Sync()

	logger.Warn("logged out from whatsapp",
		zap.String("reason", v.Reason.String()),
		zap.Bool("on_connect", v.OnConnect),
	)

	updateText := "You have been logged out from WhatsApp:\n\n"
	updateText += fmt.Sprintf("<b>Reason:</b> %s", html.EscapeString(v.Reason.String()))

	utils.TgNotifyOwner(updateText)
}

func PushNameEventHandler(v *events.PushName) {
	logger := state.State.Logger
	defer logger.Sync()

	logger.Debug("new push_name update",
		zap.String("jid", v.JID.String()),
		zap.String("old_push_name", v.OldPushName),
		zap.String("new_push_name", v.NewPushName),
	)

	if err := database.ContactUpdatePushName(v.JID.ToNonAD().String(), v.NewPushName); err != nil {
		logger.Error("failed to update push name", zap.Error(err))
	}
}
