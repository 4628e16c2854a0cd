// Package form holds the fixed application questionnaire and the session
// state machine that walks an applicant through it.
package form

// Kind describes how a question's raw input is interpreted.
type Kind int

const (
	KindText  Kind = iota // Free text, stored trimmed
	KindPhone             // Phone number, stored trimmed
	KindTeams             // Comma separated 1-based team numbers
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPhone:
		return "phone"
	case KindTeams:
		return "teams"
	default:
		return "unknown"
	}
}

// Question field identifiers. They double as the webhook form keys.
const (
	FieldFullName         = "fullName"
	FieldMobileNumber     = "mobileNumber"
	FieldCourse           = "course"
	FieldEnrollmentNumber = "enrollmentNumber"
	FieldYearSemester     = "yearSemester"
	FieldTeams            = "teams"
	FieldPortfolio        = "portfolio"
)

// Question is one entry of the questionnaire.
type Question struct {
	ID          string
	Text        string
	Placeholder string
	Hint        string // optional line shown under the question
	Kind        Kind
	Options     []string
}

// TeamOptions are the selectable teams, addressed 1-based by applicants.
var TeamOptions = []string{
	"Content Team",
	"Graphics Team",
	"Tech Team",
	"Media Team",
	"Social Media Team",
	"PR (Public Relations) Team",
	"Event Management Team",
}

const defaultPlaceholder = "Type your answer..."

// Questions returns the questionnaire in asking order.
// A fresh slice is returned on every call so callers cannot mutate the set.
func Questions() []Question {
	teams := make([]string, len(TeamOptions))
	copy(teams, TeamOptions)

	return []Question{
		{ID: FieldFullName, Text: "Full Name", Placeholder: defaultPlaceholder, Kind: KindText},
		{ID: FieldMobileNumber, Text: "Mobile Number", Placeholder: defaultPlaceholder, Kind: KindPhone},
		{ID: FieldCourse, Text: "Course or Program", Placeholder: defaultPlaceholder, Kind: KindText},
		{ID: FieldEnrollmentNumber, Text: "Enrollment or Application Number", Placeholder: defaultPlaceholder, Kind: KindText},
		{ID: FieldYearSemester, Text: "Year & Semester", Placeholder: "e.g., 2nd Year, 4th Semester", Kind: KindText},
		{
			ID:          FieldTeams,
			Text:        "Select the Team(s) you are most interested in joining*",
			Placeholder: "Select teams (comma separated numbers): 1-Content, 2-Graphics, 3-Tech, 4-Media, 5-Social Media, 6-PR, 7-Event Management",
			Hint:        "//Content Team //Graphics Team //Tech Team //Media Team //Social Media Team //PR Team //Event Management Team",
			Kind:        KindTeams,
			Options:     teams,
		},
		{
			ID:          FieldPortfolio,
			Text:        "Portfolio (Mandatory for Graphics / Media applicants)",
			Placeholder: "enter null if you dont have",
			Hint:        "(enter null if you don't have)",
			Kind:        KindText,
		},
	}
}

// FieldNames returns the question identifiers in asking order.
func FieldNames() []string {
	qs := Questions()
	names := make([]string, len(qs))
	for i, q := range qs {
		names[i] = q.ID
	}
	return names
}
