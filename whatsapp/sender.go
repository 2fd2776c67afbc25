package whatsapp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"novonexbot/menu"

	goVCard "github.com/emersion/go-vcard"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	waTypes "go.mau.fi/whatsmeow/types"
	"google.golang.org/protobuf/proto"
)

// ClientSender sends replies through a whatsmeow client.
type ClientSender struct {
	Client *whatsmeow.Client
	// SendButtons selects native quick-reply buttons. When false the button
	// ids are listed in the text instead.
	SendButtons bool
}

func (s *ClientSender) SendReply(ctx context.Context, to waTypes.JID, reply menu.Reply) error {
	_, err := s.Client.SendMessage(ctx, to, BuildReplyMessage(reply, s.SendButtons))
	return err
}

func (s *ClientSender) SendContacts(ctx context.Context, to waTypes.JID, contacts []menu.Contact) error {
	msg, err := BuildContactsMessage(contacts)
	if err != nil {
		return err
	}
	_, err = s.Client.SendMessage(ctx, to, msg)
	return err
}

func BuildReplyMessage(reply menu.Reply, sendButtons bool) *waE2E.Message {
	if len(reply.Buttons) == 0 {
		return &waE2E.Message{Conversation: proto.String(reply.Text)}
	}

	if !sendButtons {
		return &waE2E.Message{Conversation: proto.String(reply.Text + "\n\n" + plainButtons(reply.Buttons))}
	}

	buttons := make([]*waE2E.ButtonsMessage_Button, 0, len(reply.Buttons))
	for _, b := range reply.Buttons {
		buttons = append(buttons, &waE2E.ButtonsMessage_Button{
			ButtonID: proto.String(b.ID),
			ButtonText: &waE2E.ButtonsMessage_Button_ButtonText{
				DisplayText: proto.String(b.Label),
			},
			Type: waE2E.ButtonsMessage_Button_RESPONSE.Enum(),
		})
	}

	return &waE2E.Message{
		ButtonsMessage: &waE2E.ButtonsMessage{
			ContentText: proto.String(reply.Text),
			HeaderType:  waE2E.ButtonsMessage_EMPTY.Enum(),
			Buttons:     buttons,
		},
	}
}

func plainButtons(buttons []menu.Button) string {
	lines := make([]string, 0, len(buttons)+1)
	lines = append(lines, "_Reply with:_")
	for _, b := range buttons {
		lines = append(lines, fmt.Sprintf("• *%s* for %s", b.ID, b.Label))
	}
	return strings.Join(lines, "\n")
}

func BuildContactsMessage(contacts []menu.Contact) (*waE2E.Message, error) {
	if len(contacts) == 0 {
		return nil, fmt.Errorf("no contacts to send")
	}

	cards := make([]*waE2E.ContactMessage, 0, len(contacts))
	for _, c := range contacts {
		vcard, err := EncodeVCard(c)
		if err != nil {
			return nil, fmt.Errorf("failed to encode vcard for %s: %w", c.Name, err)
		}
		cards = append(cards, &waE2E.ContactMessage{
			DisplayName: proto.String(c.Name),
			Vcard:       proto.String(vcard),
		})
	}

	if len(cards) == 1 {
		return &waE2E.Message{ContactMessage: cards[0]}, nil
	}

	return &waE2E.Message{
		ContactsArrayMessage: &waE2E.ContactsArrayMessage{
			DisplayName: proto.String(fmt.Sprintf("%d contacts", len(cards))),
			Contacts:    cards,
		},
	}, nil
}

// EncodeVCard renders a contact as a vCard 3.0. The waid parameter lets
// WhatsApp offer "Message" on the card.
func EncodeVCard(c menu.Contact) (string, error) {
	card := make(goVCard.Card)
	card.SetValue(goVCard.FieldVersion, "3.0")
	card.SetValue(goVCard.FieldFormattedName, c.Name)
	card.SetName(&goVCard.Name{GivenName: c.Name})
	card.SetValue(goVCard.FieldOrganization, c.Name)
	card.Add(goVCard.FieldTelephone, &goVCard.Field{
		Value: c.Phone,
		Params: goVCard.Params{
			goVCard.ParamType: {goVCard.TypeCell},
			"waid":            {strings.TrimPrefix(c.Phone, "+")},
		},
	})
	if c.Email != "" {
		card.SetValue(goVCard.FieldEmail, c.Email)
	}

	var buf bytes.Buffer
	if err := goVCard.NewEncoder(&buf).Encode(card); err != nil {
		return "", err
	}
	return buf.String(), nil
}
