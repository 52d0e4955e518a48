package request

import (
	"strings"

	"rentalquotes/internal/domain/entities"
)

type SubmissionFieldRequest struct {
	ID     string   `json:"id" binding:"required"`
	Label  string   `json:"label"`
	Value  string   `json:"value"`
	Values []string `json:"values"`
}

type SubmittedUserRequest struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Login       string `json:"login"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
}

// SubmissionRequest is the inbound form submission payload. Values arrive
// either as a scalar "value" or a list "values"; when both are present the
// list wins, matching how multi-select fields serialize.
type SubmissionRequest struct {
	FormID      string                   `json:"form_id" binding:"required"`
	Fields      []SubmissionFieldRequest `json:"fields"`
	PageTitle   string                   `json:"page_title"`
	PageURL     string                   `json:"page_url"`
	PageID      string                   `json:"page_id"`
	ReferrerURL string                   `json:"referrer_url"`
	User        *SubmittedUserRequest    `json:"user"`
}

// ToSubmissionContext builds the per-request domain view. RemoteIP and
// UserAgent come from the transport, not the payload, so the caller supplies
// them.
func (r SubmissionRequest) ToSubmissionContext(remoteIP, userAgent string) entities.SubmissionContext {
	fields := make([]entities.SubmissionField, 0, len(r.Fields))
	for _, f := range r.Fields {
		v := entities.ScalarValue(f.Value)
		if len(f.Values) > 0 {
			v = entities.ListValue(f.Values...)
		}
		fields = append(fields, entities.SubmissionField{
			ID:    strings.TrimSpace(f.ID),
			Label: f.Label,
			Value: v,
		})
	}

	var user *entities.SubmittedUser
	if r.User != nil {
		user = &entities.SubmittedUser{
			ID:          r.User.ID,
			Email:       r.User.Email,
			Login:       r.User.Login,
			FirstName:   r.User.FirstName,
			LastName:    r.User.LastName,
			DisplayName: r.User.DisplayName,
		}
	}

	return entities.SubmissionContext{
		Fields:      fields,
		PageTitle:   r.PageTitle,
		PageURL:     r.PageURL,
		PageID:      r.PageID,
		ReferrerURL: r.ReferrerURL,
		RemoteIP:    remoteIP,
		UserAgent:   userAgent,
		User:        user,
	}
}
