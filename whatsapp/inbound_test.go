package whatsapp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mau.fi/whatsmeow/proto/waE2E"
	waTypes "go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"google.golang.org/protobuf/proto"
)

func TestExtractText(t *testing.T) {
	tests := map[string]struct {
		msg  *waE2E.Message
		want string
	}{
		"nil": {nil, ""},
		"conversation": {
			&waE2E.Message{Conversation: proto.String("  hello  ")},
			"hello",
		},
		"extended text": {
			&waE2E.Message{ExtendedTextMessage: &waE2E.ExtendedTextMessage{Text: proto.String(" 2\n")}},
			"2",
		},
		"button reply": {
			&waE2E.Message{ButtonsResponseMessage: &waE2E.ButtonsResponseMessage{
				SelectedButtonID: proto.String("next_page"),
			}},
			"next_page",
		},
		"list reply": {
			&waE2E.Message{ListResponseMessage: &waE2E.ListResponseMessage{
				SingleSelectReply: &waE2E.ListResponseMessage_SingleSelectReply{SelectedRowID: proto.String("service14")},
			}},
			"service14",
		},
		"conversation wins": {
			&waE2E.Message{
				Conversation:        proto.String("1"),
				ExtendedTextMessage: &waE2E.ExtendedTextMessage{Text: proto.String("2")},
			},
			"1",
		},
		"image": {
			&waE2E.Message{ImageMessage: &waE2E.ImageMessage{Caption: proto.String("digital")}},
			"",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractText(tt.msg))
		})
	}
}

func TestInboundFromEvent(t *testing.T) {
	chat := waTypes.NewJID("94771234567", waTypes.DefaultUserServer)
	ts := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	evt := &events.Message{
		Info: waTypes.MessageInfo{
			MessageSource: waTypes.MessageSource{Chat: chat, Sender: chat},
			PushName:      "Kasun",
			Timestamp:     ts,
		},
		Message: &waE2E.Message{Conversation: proto.String("service3")},
	}

	in := InboundFromEvent(evt)
	assert.Equal(t, chat, in.Chat)
	assert.Equal(t, "Kasun", in.PushName)
	assert.Equal(t, "service3", in.Text)
	assert.True(t, in.HasMessage)
	assert.False(t, in.IsGroup)
	assert.Equal(t, ts, in.Timestamp)

	evt.Message = nil
	assert.False(t, InboundFromEvent(evt).HasMessage)
}
