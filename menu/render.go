package menu

import (
	"strings"

	"novonexbot/session"

	"github.com/forPelevin/gomoji"
)

var (
	contactButton  = Button{ID: ButtonContactInfo, Label: "📞 Contact"}
	mainMenuButton = Button{ID: ButtonMainMenu, Label: "🏠 Main Menu"}
)

func WelcomeMenu() Reply {
	return Reply{
		Text: welcomeText,
		Buttons: []Button{
			{ID: ButtonSoftware, Label: "🚀 Software Solutions"},
			{ID: ButtonDigital, Label: "📱 Digital Works"},
			{ID: ButtonContactInfo, Label: "📞 Contact Info"},
		},
	}
}

func ContactInfo() Reply {
	return Reply{Text: contactText}
}

// Pages returns the catalogue pages of a company, nil for CompanyNone.
func Pages(company session.Company) []Page {
	switch company {
	case session.CompanySoftware:
		return softwarePages
	case session.CompanyDigital:
		return digitalPages
	}
	return nil
}

func MaxPages(company session.Company) int {
	return len(Pages(company))
}

// ClampPage keeps page within [1, MaxPages(company)].
func ClampPage(company session.Company, page int) int {
	if last := MaxPages(company); page > last {
		page = last
	}
	if page < 1 {
		page = 1
	}
	return page
}

// CompanyMenu renders one catalogue page. Out of range pages are clamped;
// CompanyNone renders the welcome menu.
func CompanyMenu(company session.Company, page int) Reply {
	pages := Pages(company)
	if len(pages) == 0 {
		return WelcomeMenu()
	}

	page = ClampPage(company, page)
	current := pages[page-1]

	var buttons []Button
	if page > 1 {
		buttons = append(buttons, Button{ID: ButtonPrevPage, Label: "⬅️ Previous"})
	}
	buttons = append(buttons, mainMenuButton)
	if page < len(pages) {
		buttons = append(buttons, Button{ID: ButtonNextPage, Label: "Next ➡️"})
	}
	buttons = append(buttons, contactButton)

	labels := make([]string, 0, len(current.Services))
	for _, s := range current.Services {
		labels = append(labels, s.Label)
	}

	return Reply{
		Text:    "*" + current.Title + "*\n\n*Select a service for details:*\n\n" + strings.Join(labels, "\n"),
		Buttons: buttons,
	}
}

// ServiceDetail looks up the detail text of a service id. Unknown ids get the
// generic fallback text and false.
func ServiceDetail(id string) (Reply, bool) {
	buttons := []Button{
		mainMenuButton,
		{ID: ButtonContactInfo, Label: "📞 More Info"},
	}

	info, found := serviceInfos[id]
	if !found {
		return Reply{Text: fallbackServiceText, Buttons: buttons}, false
	}
	return Reply{Text: info.render(), Buttons: buttons}, true
}

func (info serviceInfo) render() string {
	var sb strings.Builder

	sb.WriteString("*" + info.title + "*\n\n")
	for _, b := range info.bullets {
		sb.WriteString("• *" + b + "*\n")
	}
	sb.WriteString("\n")
	if len(info.extra) > 0 {
		sb.WriteString(strings.Join(info.extra, "\n"))
		sb.WriteString("\n\n")
	}

	hotline := softwareHotline
	if info.company == session.CompanyDigital {
		hotline = digitalHotline
	}
	sb.WriteString("📞 *Contact:* " + hotline + "\n")
	sb.WriteString("📧 *Email:* " + companyEmail)

	return sb.String()
}

// LookupService finds the menu entry for a service id.
func LookupService(id string) (Service, session.Company, bool) {
	for _, company := range []session.Company{session.CompanySoftware, session.CompanyDigital} {
		for _, page := range Pages(company) {
			for _, s := range page.Services {
				if s.ID == id {
					return s, company, true
				}
			}
		}
	}
	return Service{}, session.CompanyNone, false
}

// PlainLabel strips the emoji numbering off a menu label.
func PlainLabel(label string) string {
	return strings.Join(strings.Fields(gomoji.RemoveEmojis(label)), " ")
}

func ContactCards() []Contact {
	return []Contact{
		{Name: softwareName, Phone: "+94770691283", Email: companyEmail},
		{Name: digitalName, Phone: "+94753394278", Email: companyEmail},
	}
}
