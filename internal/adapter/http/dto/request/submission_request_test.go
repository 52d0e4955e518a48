package request

import (
	"testing"
)

func TestSubmissionRequest_ToSubmissionContext(t *testing.T) {
	r := SubmissionRequest{
		FormID: "form-1",
		Fields: []SubmissionFieldRequest{
			{ID: " 1 ", Label: "Name", Value: "Jane Smith"},
			{ID: "7", Label: "Extras", Values: []string{"GPS", "Child seat"}},
		},
		PageTitle:   "Fleet",
		PageURL:     "https://prestige.example/fleet",
		ReferrerURL: "https://google.com",
		User:        &SubmittedUserRequest{ID: "42", Email: "jane@example.com", DisplayName: "Jane"},
	}

	sub := r.ToSubmissionContext("81.2.69.142", "test-agent")

	f, ok := sub.Field("1")
	if !ok || f.Value.Flatten() != "Jane Smith" {
		t.Fatalf("scalar field not mapped: %+v", sub.Fields)
	}
	f, ok = sub.Field("7")
	if !ok || f.Value.Flatten() != "GPS, Child seat" {
		t.Fatalf("list field not flattened: %+v", f)
	}
	if sub.RemoteIP != "81.2.69.142" || sub.UserAgent != "test-agent" {
		t.Fatalf("transport metadata not carried: %+v", sub)
	}
	if sub.User == nil || sub.User.Email != "jane@example.com" {
		t.Fatalf("user not mapped: %+v", sub.User)
	}
}

func TestSubmissionRequest_ListValueWinsOverScalar(t *testing.T) {
	r := SubmissionRequest{
		FormID: "form-1",
		Fields: []SubmissionFieldRequest{
			{ID: "3", Value: "ignored", Values: []string{"Weekend"}},
		},
	}

	sub := r.ToSubmissionContext("", "")
	f, _ := sub.Field("3")
	if f.Value.Flatten() != "Weekend" {
		t.Fatalf("expected list value to win, got %q", f.Value.Flatten())
	}
}

func TestSubmissionRequest_AnonymousUser(t *testing.T) {
	sub := SubmissionRequest{FormID: "form-1"}.ToSubmissionContext("", "")
	if sub.User != nil {
		t.Fatalf("expected nil user for anonymous submission, got %+v", sub.User)
	}
}
