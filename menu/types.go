package menu

// Button ids understood by the dispatcher.
const (
	ButtonSoftware    = "1"
	ButtonDigital     = "2"
	ButtonContactInfo = "contact_info"
	ButtonMainMenu    = "back_to_welcome"
	ButtonNextPage    = "next_page"
	ButtonPrevPage    = "prev_page"

	// ServicePrefix starts every service id (service1 .. service25).
	ServicePrefix = "service"
)

type Button struct {
	ID    string
	Label string
}

// Reply is one outbound message: text plus optional quick-reply buttons.
type Reply struct {
	Text    string
	Buttons []Button
}

type Service struct {
	ID    string
	Label string
}

type Page struct {
	Title    string
	Services []Service
}

// Contact is a company hotline rendered as a contact card.
type Contact struct {
	Name  string
	Phone string
	Email string
}
