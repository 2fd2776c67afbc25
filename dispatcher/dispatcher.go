// Package dispatcher maps an inbound text and the sender's current state to
// the next state and the reply to send.
package dispatcher

import (
	"strings"

	"novonexbot/menu"
	"novonexbot/session"
)

// Branch names the guard clause that produced a Result.
type Branch string

const (
	BranchNone         Branch = "none"
	BranchFirstContact Branch = "first_contact"
	BranchCompany      Branch = "company"
	BranchPage         Branch = "page"
	BranchMainMenu     Branch = "main_menu"
	BranchContact      Branch = "contact"
	BranchService      Branch = "service"
	BranchReset        Branch = "reset"
)

type Result struct {
	Next   session.UserState
	Reply  *menu.Reply
	Branch Branch
	// ServiceID is set on BranchService, known or not.
	ServiceID string
}

func Dispatch(st session.UserState, text string) Result {
	text = strings.TrimSpace(text)

	if st.Step == session.StepStart || st.Step == "" {
		return welcome(BranchFirstContact)
	}

	lower := strings.ToLower(text)

	if text == menu.ButtonSoftware || strings.Contains(lower, "software") {
		return openCompany(session.StepSoftware, session.CompanySoftware)
	}
	if text == menu.ButtonDigital || strings.Contains(lower, "digital") {
		return openCompany(session.StepDigital, session.CompanyDigital)
	}

	switch text {
	case menu.ButtonNextPage:
		return turnPage(st, +1)
	case menu.ButtonPrevPage:
		return turnPage(st, -1)
	case menu.ButtonMainMenu:
		return welcome(BranchMainMenu)
	case menu.ButtonContactInfo:
		reply := menu.ContactInfo()
		return Result{Next: st, Reply: &reply, Branch: BranchContact}
	}

	if strings.HasPrefix(text, menu.ServicePrefix) {
		reply, _ := menu.ServiceDetail(text)
		return Result{Next: st, Reply: &reply, Branch: BranchService, ServiceID: text}
	}

	return welcome(BranchReset)
}

func welcome(branch Branch) Result {
	reply := menu.WelcomeMenu()
	return Result{Next: session.WelcomeState(), Reply: &reply, Branch: branch}
}

func openCompany(step session.Step, company session.Company) Result {
	reply := menu.CompanyMenu(company, 1)
	return Result{
		Next:   session.UserState{Step: step, Page: 1, Company: company},
		Reply:  &reply,
		Branch: BranchCompany,
	}
}

// turnPage moves within the current catalogue. Without a catalogue there is
// nothing to page through, so the state is kept and nothing is sent.
func turnPage(st session.UserState, delta int) Result {
	if menu.MaxPages(st.Company) == 0 {
		return Result{Next: st, Branch: BranchNone}
	}

	page := menu.ClampPage(st.Company, menu.ClampPage(st.Company, st.Page)+delta)
	reply := menu.CompanyMenu(st.Company, page)

	next := st
	next.Page = page
	return Result{Next: next, Reply: &reply, Branch: BranchPage}
}
