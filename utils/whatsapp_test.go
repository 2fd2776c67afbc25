package utils

import (
	"path/filepath"
	"testing"
	"time"

	"novonexbot/database"
	"novonexbot/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mau.fi/whatsmeow/types"
)

func TestWaParseJID(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"94770691283", "94770691283@s.whatsapp.net", true},
		{"+94770691283", "94770691283@s.whatsapp.net", true},
		{"94770691283@s.whatsapp.net", "94770691283@s.whatsapp.net", true},
		{"120363000000000000@g.us", "120363000000000000@g.us", true},
		{"", "", false},
		{"@s.whatsapp.net", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			jid, ok := WaParseJID(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, jid.String())
			}
		})
	}
}

func TestWaIsIgnoredChat(t *testing.T) {
	chat := types.NewJID("94771234567", types.DefaultUserServer)

	assert.True(t, WaIsIgnoredChat(chat, []string{"94771234567"}))
	assert.True(t, WaIsIgnoredChat(chat, []string{"94771234567@s.whatsapp.net"}))
	assert.False(t, WaIsIgnoredChat(chat, []string{"94770000000"}))
	assert.False(t, WaIsIgnoredChat(chat, nil))
}

func TestWaFuzzyFindContacts(t *testing.T) {
	cfg := &state.Config{}
	cfg.SetDefaults()
	cfg.SilentDbLogs = true
	cfg.Database.URL = filepath.Join(t.TempDir(), "contacts.db")

	previousCfg, previousDb := state.State.Config, state.State.Database
	state.State.Config = cfg
	defer func() {
		state.State.Config = previousCfg
		state.State.Database = previousDb
	}()

	db, err := database.Connect()
	require.NoError(t, err)
	state.State.Database = db
	require.NoError(t, database.AutoMigrate())

	require.NoError(t, database.ContactTouch("94771111111@s.whatsapp.net", "Kasun Perera", time.Now()))
	require.NoError(t, database.ContactTouch("94772222222@s.whatsapp.net", "Nadeesha", time.Now()))

	matches, err := WaFuzzyFindContacts("kasun")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Kasun Perera", matches[0].PushName)

	matches, err = WaFuzzyFindContacts("2222")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "94772222222@s.whatsapp.net", matches[0].Jid)

	matches, err = WaFuzzyFindContacts("zzzz")
	require.NoError(t, err)
	assert.Empty(t, matches)
}
