package whatsapp

import (
	"strings"
	"time"

	"go.mau.fi/whatsmeow/proto/waE2E"
	waTypes "go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
)

// Inbound is the part of a WhatsApp message the responder looks at.
type Inbound struct {
	Chat       waTypes.JID
	Sender     waTypes.JID
	PushName   string
	IsFromMe   bool
	IsGroup    bool
	HasMessage bool
	Text       string
	Timestamp  time.Time
}

func InboundFromEvent(v *events.Message) Inbound {
	return Inbound{
		Chat:       v.Info.Chat,
		Sender:     v.Info.Sender,
		PushName:   v.Info.PushName,
		IsFromMe:   v.Info.IsFromMe,
		IsGroup:    v.Info.IsGroup,
		HasMessage: v.Message != nil,
		Text:       ExtractText(v.Message),
		Timestamp:  v.Info.Timestamp,
	}
}

// ExtractText returns the text of a plain message, an extended text message,
// a button reply or a list reply, in that order. Anything else yields "".
func ExtractText(msg *waE2E.Message) string {
	if msg == nil {
		return ""
	}

	if text := msg.GetConversation(); text != "" {
		return strings.TrimSpace(text)
	} else if text := msg.GetExtendedTextMessage().GetText(); text != "" {
		return strings.TrimSpace(text)
	} else if id := msg.GetButtonsResponseMessage().GetSelectedButtonID(); id != "" {
		return id
	} else if id := msg.GetListResponseMessage().GetSingleSelectReply().GetSelectedRowID(); id != "" {
		return id
	}

	return ""
}
