package tui

import "github.com/MKhiriev/go-xref/models"

// Page names understood by RootModel. The two login pages match
// models.Role.LoginPage so guards can redirect to them directly.
const (
	pageHome          = "home"
	pageLogin         = "login"
	pageAdminLogin    = "admin_login"
	pageSignup        = "signup"
	pageForgot        = "forgot_password"
	pageReset         = "reset_password"
	pageVerify        = "verify_email"
	pageContact       = "contact"
	pageSearch        = "search"
	pageProfile       = "profile"
	pagePlans         = "plans"
	pageDeleteAccount = "delete_account"
	pageDashboard     = "dashboard"
	pageParts         = "parts"
)

// NavigateTo asks RootModel to switch the active page. The page's Init runs
// first; a non-nil Payload is delivered to it afterwards.
type NavigateTo struct {
	Page    string
	Payload any
}

// sessionMsg carries a snapshot published by a session manager.
type sessionMsg struct {
	session models.Session
}

// sessionFeedMsg is a snapshot read from the subscription channel. Only
// RootModel sees it; pages get it as a sessionMsg.
type sessionFeedMsg sessionMsg

type guardCheckedMsg struct {
	decision models.GuardDecision
}

// formDoneMsg is produced when a form's submit function returns.
type formDoneMsg struct {
	id     string
	notice string
	err    error
}

type searchDoneMsg struct {
	page models.SearchResultPage
	err  error
}

type manufacturersMsg struct {
	names []string
	err   error
}

type plansMsg struct {
	plans []models.Plan
	err   error
}

type dashboardMsg struct {
	dashboard models.Dashboard
	err       error
}

type partsMsg struct {
	page models.PartsPage
	err  error
}

type partChangedMsg struct {
	notice string
	err    error
}

// debounceMsg fires after the quiet period; only the one matching the
// latest keystroke's seq is acted on.
type debounceMsg struct {
	seq int
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}

// noticeMsg hands a success notice to the page being navigated to.
type noticeMsg struct {
	text string
}

type formCancelledMsg struct {
	id string
}
