package entities

import "strings"

// FieldValue is the tagged union for a submitted form value, which arrives
// either as a scalar or as a list (multi-select, checkbox groups). It is
// resolved once at the submission boundary; everything downstream works with
// the flattened string.
type FieldValue struct {
	Scalar string
	List   []string
	IsList bool
}

func ScalarValue(v string) FieldValue {
	return FieldValue{Scalar: v}
}

func ListValue(vs ...string) FieldValue {
	return FieldValue{List: vs, IsList: true}
}

// Flatten stringifies the value, joining list entries with ", ".
func (v FieldValue) Flatten() string {
	if v.IsList {
		return strings.Join(v.List, ", ")
	}
	return v.Scalar
}

func (v FieldValue) IsEmpty() bool {
	return strings.TrimSpace(v.Flatten()) == ""
}

// SubmissionField is one submitted form field. Label is the human-visible
// field label, used only by the secondary capture heuristics.
type SubmissionField struct {
	ID    string
	Label string
	Value FieldValue
}

// SubmittedUser carries the authenticated site user attached to a
// submission, when one is present. Nil means anonymous.
type SubmittedUser struct {
	ID          string
	Email       string
	Login       string
	FirstName   string
	LastName    string
	DisplayName string
}

// SubmissionContext is the ephemeral per-request view of one inbound form
// submission. It is created per request and discarded once derivation
// completes; only the tracking columns on the Quote outlive it.
type SubmissionContext struct {
	Fields []SubmissionField

	PageTitle string
	PageURL   string
	PageID    string

	ReferrerURL string
	RemoteIP    string
	UserAgent   string

	User *SubmittedUser
}

// Field returns the field with the given id, in submission order.
func (s SubmissionContext) Field(id string) (SubmissionField, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return SubmissionField{}, false
}
