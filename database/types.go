package database

import (
	"errors"
	"time"

	"novonexbot/state"
)

// Contact is a WhatsApp user that has talked to the bot.
type Contact struct {
	ID           int32  `gorm:"primaryKey;autoIncrement"`
	Jid          string `gorm:"uniqueIndex"`
	PushName     string
	FirstSeen    time.Time
	LastSeen     time.Time
	MessageCount int64
}

// Inquiry is one service-detail request.
type Inquiry struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Jid       string `gorm:"index"`
	ServiceID string `gorm:"index"`
	Known     bool
	CreatedAt time.Time
}

type ServiceCount struct {
	ServiceID string
	Total     int64
}

func AutoMigrate() error {
	db := state.State.Database
	if db == nil {
		return errors.New("database is not connected")
	}

	return errors.Join(
		db.AutoMigrate(&Contact{}),
		db.AutoMigrate(&Inquiry{}),
	)
}
