// Package templates holds the templ views. Run `templ generate` (see the
// go:generate directive below) to produce the *_templ.go files; generated
// code is not checked in.
package templates

import (
	"html/template"

	"parietal.systems/acqview/pkg/acqsummary"
)

//go:generate templ generate

// RecentSlots is the number of recent-recording skeleton slots the home page
// shell renders; the recent API patches the same slots one by one.
const RecentSlots = 6

// RecordingDetail is the view model for the recording detail page.
type RecordingDetail struct {
	ID          string
	Kind        string
	Title       string
	Filename    string
	SubjectCode string
	Comment     string
	FirstSamp   *int64
	NumEvents   int
	SummaryRows []acqsummary.Row
	Notes       template.HTML
	NotesSource string
	CreatedAt   string
	Uploaded    string
}

// AdminUserRow is one line of the admin user management table.
type AdminUserRow struct {
	ID       string
	UserName string
	Email    string
	Role     string
	Enabled  bool
	IsSelf   bool
}
