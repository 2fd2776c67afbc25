package database

import (
	"path/filepath"
	"testing"
	"time"

	"novonexbot/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDatabase(t *testing.T) {
	t.Helper()

	cfg := &state.Config{}
	cfg.SetDefaults()
	cfg.SilentDbLogs = true
	cfg.Database.URL = filepath.Join(t.TempDir(), "test.db")

	previousCfg, previousDb := state.State.Config, state.State.Database
	state.State.Config = cfg
	t.Cleanup(func() {
		state.State.Config = previousCfg
		state.State.Database = previousDb
	})

	db, err := Connect()
	require.NoError(t, err)
	state.State.Database = db
	require.NoError(t, AutoMigrate())
}

func TestConnectRejectsUnknownType(t *testing.T) {
	cfg := &state.Config{}
	cfg.SetDefaults()
	cfg.Database.Type = "oracle"

	previous := state.State.Config
	state.State.Config = cfg
	defer func() { state.State.Config = previous }()

	_, err := Connect()
	assert.Error(t, err)
}

func TestContactTouch(t *testing.T) {
	setupDatabase(t)

	first := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	second := first.Add(time.Hour)
	jid := "94770000001@s.whatsapp.net"

	require.NoError(t, ContactTouch(jid, "Nimal", first))
	require.NoError(t, ContactTouch(jid, "", second))

	contact, found := ContactGet(jid)
	require.True(t, found)
	assert.Equal(t, "Nimal", contact.PushName)
	assert.Equal(t, int64(2), contact.MessageCount)
	assert.True(t, contact.FirstSeen.Equal(first))
	assert.True(t, contact.LastSeen.Equal(second))

	count, err := ContactCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestContactUpdatePushName(t *testing.T) {
	setupDatabase(t)

	jid := "94770000002@s.whatsapp.net"
	require.NoError(t, ContactTouch(jid, "Old", time.Now()))
	require.NoError(t, ContactUpdatePushName(jid, "New"))
	require.NoError(t, ContactUpdatePushName(jid, ""))

	contact, found := ContactGet(jid)
	require.True(t, found)
	assert.Equal(t, "New", contact.PushName)

	_, found = ContactGet("unknown@s.whatsapp.net")
	assert.False(t, found)
}

func TestContactGetAll(t *testing.T) {
	setupDatabase(t)

	require.NoError(t, ContactTouch("a@s.whatsapp.net", "Amal", time.Now()))
	require.NoError(t, ContactTouch("b@s.whatsapp.net", "Bimal", time.Now()))

	contacts, err := ContactGetAll()
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
	for id, contact := range contacts {
		assert.Equal(t, id, contact.ID)
	}
}

func TestInquiryCountByService(t *testing.T) {
	setupDatabase(t)

	require.NoError(t, InquiryAdd("a@s.whatsapp.net", "service3", true))
	require.NoError(t, InquiryAdd("b@s.whatsapp.net", "service3", true))
	require.NoError(t, InquiryAdd("a@s.whatsapp.net", "service14", true))
	require.NoError(t, InquiryAdd("a@s.whatsapp.net", "service99", false))

	counts, err := InquiryCountByService()
	require.NoError(t, err)
	assert.Equal(t, []ServiceCount{
		{ServiceID: "service3", Total: 2},
		{ServiceID: "service14", Total: 1},
	}, counts)
}
