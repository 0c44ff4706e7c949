package tui

import (
	"github.com/MKhiriev/f4f-study-portal/internal/adapter"
	"github.com/MKhiriev/f4f-study-portal/internal/schema"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

const (
	pageLogin      = "login"
	pageMenu       = "menu"
	pageList       = "list"
	pageDetail     = "detail"
	pageIdentifier = "identifier"
	pageGraph      = "graph"
)

type loginDoneMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}

// sessionEndedMsg signs the user out and returns to the login page.
type sessionEndedMsg struct {
	reason string
}

// loginNoticeMsg tells the login page why it is shown again.
type loginNoticeMsg struct {
	reason string
}

type openListMsg struct {
	resource adapter.Resource
}

type openDetailMsg struct {
	resource adapter.Resource
	row      entityRow
}

type deleteDoneMsg struct {
	row entityRow
	err error
}

type validatedMsg struct {
	result schema.Result
	err    error
}

type identifierCheckedMsg struct {
	resp    models.IdentifierCheckResponse
	offline bool
	err     error
}

type graphLoadedMsg struct {
	report schema.FoodGraphReport
	err    error
}

type exportDoneMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	id  string
	err error
}

type mirrorTickMsg struct{}
