package utils

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"novonexbot/database"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.mau.fi/whatsmeow/types"
	"golang.org/x/exp/slices"
)

func WaParseJID(s string) (types.JID, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return types.EmptyJID, false
	}
	s = strings.TrimPrefix(s, "+")

	if !strings.ContainsRune(s, '@') {
		return types.NewJID(s, types.DefaultUserServer).ToNonAD(), true
	}

	recipient, err := types.ParseJID(s)
	if err != nil || recipient.User == "" {
		return recipient, false
	}

	return recipient, true
}

// WaIsIgnoredChat matches the chat against the configured ignore list, which
// holds bare phone numbers or full JIDs.
func WaIsIgnoredChat(chat types.JID, ignoreChats []string) bool {
	return slices.Contains(ignoreChats, chat.User) ||
		slices.Contains(ignoreChats, chat.ToNonAD().String())
}

type ContactMatch struct {
	Jid      string
	PushName string
}

// WaFuzzyFindContacts searches the contact log by push name and number.
func WaFuzzyFindContacts(query string) ([]ContactMatch, error) {
	contacts, err := database.ContactGetAll()
	if err != nil {
		return nil, err
	}

	var searchSpace []string
	for _, contact := range contacts {
		if contact.PushName != "" {
			searchSpace = append(searchSpace, fmt.Sprintf("%d", contact.ID)+"||"+strings.ToLower(contact.PushName))
		}
		if jid, ok := WaParseJID(contact.Jid); ok {
			searchSpace = append(searchSpace, fmt.Sprintf("%d", contact.ID)+"||"+jid.User)
		}
	}

	var (
		results = []ContactMatch{}
		seen    = make(map[string]bool)
	)
	for _, res := range fuzzy.Find(strings.ToLower(query), searchSpace) {
		info := strings.SplitN(res, "||", 2)
		idIndex, err := strconv.Atoi(info[0])
		if err != nil || seen[info[0]] {
			continue
		}
		seen[info[0]] = true

		contact := contacts[int32(idIndex)]
		results = append(results, ContactMatch{Jid: contact.Jid, PushName: contact.PushName})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Jid < results[j].Jid
	})
	return results, nil
}
