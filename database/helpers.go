package database

import (
	"errors"
	"time"

	"novonexbot/state"

	"gorm.io/gorm"
)

// ContactTouch records one inbound message from jid, creating the contact on
// first sight.
func ContactTouch(jid, pushName string, at time.Time) error {
	db := state.State.Database

	var contact Contact
	res := db.Where("jid = ?", jid).First(&contact)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		res = db.Create(&Contact{
			Jid:          jid,
			PushName:     pushName,
			FirstSeen:    at,
			LastSeen:     at,
			MessageCount: 1,
		})
		return res.Error
	} else if res.Error != nil {
		return res.Error
	}

	contact.LastSeen = at
	contact.MessageCount += 1
	if pushName != "" {
		contact.PushName = pushName
	}
	res = db.Save(&contact)
	return res.Error
}

func ContactUpdatePushName(jid, pushName string) error {
	if pushName == "" {
		return nil
	}

	db := state.State.Database
	res := db.Model(&Contact{}).Where("jid = ?", jid).Update("push_name", pushName)
	return res.Error
}

func ContactGet(jid string) (Contact, bool) {
	db := state.State.Database

	var contact Contact
	res := db.Where("jid = ?", jid).First(&contact)
	return contact, res.Error == nil
}

func ContactGetAll() (map[int32]Contact, error) {
	db := state.State.Database

	var contacts []Contact
	res := db.Find(&contacts)

	results := make(map[int32]Contact, len(contacts))
	for _, contact := range contacts {
		results[contact.ID] = contact
	}
	return results, res.Error
}

func ContactCount() (int64, error) {
	db := state.State.Database

	var count int64
	res := db.Model(&Contact{}).Count(&count)
	return count, res.Error
}

func InquiryAdd(jid, serviceID string, known bool) error {
	db := state.State.Database

	res := db.Create(&Inquiry{
		Jid:       jid,
		ServiceID: serviceID,
		Known:     known,
	})
	return res.Error
}

// InquiryCountByService returns the known services ordered by how often
// they were asked for.
func InquiryCountByService() ([]ServiceCount, error) {
	db := state.State.Database

	var counts []ServiceCount
	res := db.Model(&Inquiry{}).
		Select("service_id, count(*) as total").
		Where("known = ?", true).
		Group("service_id").
		Order("total desc, service_id").
		Scan(&counts)

	return counts, res.Error
}
