package session

import "context"

// Step is the coarse stage a conversation is in.
type Step string

const (
	StepStart    Step = "start"
	StepWelcome  Step = "welcome"
	StepSoftware Step = "software"
	StepDigital  Step = "digital"
)

// Company identifies which catalogue the user is browsing. The zero value
// means no catalogue has been picked yet.
type Company string

const (
	CompanyNone     Company = ""
	CompanySoftware Company = "software"
	CompanyDigital  Company = "digital"
)

type UserState struct {
	Step    Step    `json:"step"`
	Page    int     `json:"page"`
	Company Company `json:"company"`
}

// NewUserState returns the state of a user we have never talked to.
func NewUserState() UserState {
	return UserState{Step: StepStart, Page: 1, Company: CompanyNone}
}

// WelcomeState is the state after the welcome menu was shown.
func WelcomeState() UserState {
	return UserState{Step: StepWelcome, Page: 1, Company: CompanyNone}
}

// Store keeps one UserState per sender identifier.
//
// Get never reports a missing key as an error: an unknown sender reads as
// NewUserState().
type Store interface {
	Get(ctx context.Context, id string) (UserState, error)
	Set(ctx context.Context, id string, st UserState) error
	Len() int
}
