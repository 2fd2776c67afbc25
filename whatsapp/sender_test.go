package whatsapp

import (
	"strings"
	"testing"

	"novonexbot/menu"

	goVCard "github.com/emersion/go-vcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mau.fi/whatsmeow/proto/waE2E"
)

func TestBuildReplyMessageWithButtons(t *testing.T) {
	msg := BuildReplyMessage(menu.WelcomeMenu(), true)

	require.NotNil(t, msg.GetButtonsMessage())
	assert.Equal(t, menu.WelcomeMenu().Text, msg.GetButtonsMessage().GetContentText())
	assert.Equal(t, waE2E.ButtonsMessage_EMPTY, msg.GetButtonsMessage().GetHeaderType())

	buttons := msg.GetButtonsMessage().GetButtons()
	require.Len(t, buttons, 3)
	assert.Equal(t, "1", buttons[0].GetButtonID())
	assert.Equal(t, "🚀 Software Solutions", buttons[0].GetButtonText().GetDisplayText())
	assert.Equal(t, waE2E.ButtonsMessage_Button_RESPONSE, buttons[0].GetType())
	assert.Equal(t, "contact_info", buttons[2].GetButtonID())
}

func TestBuildReplyMessagePlainButtons(t *testing.T) {
	msg := BuildReplyMessage(menu.WelcomeMenu(), false)

	assert.Nil(t, msg.GetButtonsMessage())
	text := msg.GetConversation()
	assert.True(t, strings.HasPrefix(text, menu.WelcomeMenu().Text))
	assert.Contains(t, text, "• *1* for 🚀 Software Solutions")
	assert.Contains(t, text, "• *contact_info* for 📞 Contact Info")
}

func TestBuildReplyMessageWithoutButtons(t *testing.T) {
	msg := BuildReplyMessage(menu.ContactInfo(), true)

	assert.Nil(t, msg.GetButtonsMessage())
	assert.Equal(t, menu.ContactInfo().Text, msg.GetConversation())
}

func TestBuildContactsMessage(t *testing.T) {
	msg, err := BuildContactsMessage(menu.ContactCards())
	require.NoError(t, err)

	contacts := msg.GetContactsArrayMessage().GetContacts()
	require.Len(t, contacts, 2)
	assert.Equal(t, "NovoNex Software Solutions", contacts[0].GetDisplayName())

	card, err := goVCard.NewDecoder(strings.NewReader(contacts[0].GetVcard())).Decode()
	require.NoError(t, err)
	assert.Equal(t, "NovoNex Software Solutions", card.PreferredValue(goVCard.FieldFormattedName))
	assert.Equal(t, "novonexlk@gmail.com", card.PreferredValue(goVCard.FieldEmail))

	tel := card.Get(goVCard.FieldTelephone)
	require.NotNil(t, tel)
	assert.Equal(t, "+94770691283", tel.Value)
	assert.Contains(t, strings.ToLower(contacts[0].GetVcard()), "waid=94770691283")
}

func TestBuildContactsMessageSingleAndEmpty(t *testing.T) {
	msg, err := BuildContactsMessage(menu.ContactCards()[:1])
	require.NoError(t, err)
	assert.NotNil(t, msg.GetContactMessage())

	_, err = BuildContactsMessage(nil)
	assert.Error(t, err)
}
